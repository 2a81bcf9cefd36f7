package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var cli CLI
	var stdout, stderr bytes.Buffer
	parser, err := newParser(&cli, &stdout, &stderr)
	if err != nil {
		t.Fatalf("newParser: %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return stdout.String(), err
	}
	err = ctx.Run()
	return stdout.String(), err
}

func TestGenerateAndVerify(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "icons")

	out, err := run(t, "generate", "--out", dir, "--ico")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png", "icon.ico"} {
		if !strings.Contains(out, "Created "+name) {
			t.Errorf("output missing %s:\n%s", name, out)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	out, err = run(t, "verify",
		filepath.Join(dir, "icon16.png"),
		filepath.Join(dir, "icon128.png"))
	if err != nil {
		t.Fatalf("verify: %v\n%s", err, out)
	}
	if !strings.Contains(out, "16x16 depth 8 color type 6") {
		t.Errorf("verify output:\n%s", out)
	}
}

func TestGenerateCustomSizesAndPolicy(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "generate", "-o", dir, "--size", "24,32", "--policy", "gradient", "--level", "9", "--workers", "2")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	for _, name := range []string{"icon24.png", "icon32.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "icon16.png")); !os.IsNotExist(err) {
		t.Error("default size written when sizes were given")
	}
}

func TestGenerateRejectsUnknownPolicy(t *testing.T) {
	if _, err := run(t, "generate", "-o", t.TempDir(), "--policy", "sparkle"); err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestVerifyRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "verify", path)
	if err == nil {
		t.Fatal("verify accepted a corrupt file")
	}
	if !strings.Contains(out, "FAIL") {
		t.Errorf("output:\n%s", out)
	}
}

func TestPreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	out, err := run(t, "preview", "--size", "16", "--scale", "4", "-o", path)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(out, "64x64") {
		t.Errorf("output:\n%s", out)
	}
	if _, err := verifyFile(path); err != nil {
		t.Errorf("preview file: %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("output = %q", out)
	}
}
