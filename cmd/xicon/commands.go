package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/gogpu/xicon"
	"github.com/gogpu/xicon/internal/pngenc"
)

// GenerateCmd writes one PNG per size into Out.
type GenerateCmd struct {
	Out     string `short:"o" default:"icons" env:"XICON_OUT" help:"Output directory" type:"path"`
	Sizes   []int  `name:"size" short:"s" default:"16,48,128" sep:"," help:"Icon sizes in pixels"`
	Policy  string `short:"p" default:"glyph" env:"XICON_POLICY" enum:"glyph,gradient" help:"Icon design (glyph, gradient)"`
	Level   int    `default:"0" help:"zlib compression level, 0 for the default"`
	ICO     bool   `name:"ico" help:"Also bundle the icons into icon.ico"`
	Workers int    `default:"1" help:"Encode up to N sizes concurrently"`
}

func (c *GenerateCmd) Run(ctx *kong.Context) error {
	policy, err := xicon.ParsePolicy(c.Policy)
	if err != nil {
		return err
	}

	g := xicon.NewGenerator(
		xicon.WithPolicy(policy),
		xicon.WithLevel(c.Level),
		xicon.WithWorkers(c.Workers),
	)
	results, err := g.Generate(c.Out, c.Sizes)
	for _, r := range results {
		fmt.Fprintf(ctx.Stdout, "Created %s\n", filepath.Base(r.Path))
	}
	if err != nil {
		return err
	}

	if c.ICO {
		path := filepath.Join(c.Out, "icon.ico")
		if err := xicon.WriteICO(path, results); err != nil {
			return err
		}
		fmt.Fprintf(ctx.Stdout, "Created %s\n", filepath.Base(path))
	}

	fmt.Fprintf(ctx.Stdout, "\nIcons generated in %s.\n", c.Out)
	return nil
}

// PreviewCmd writes a nearest-neighbor enlargement of one icon.
type PreviewCmd struct {
	Size   int    `default:"16" help:"Icon size in pixels"`
	Scale  int    `default:"8" help:"Enlargement factor"`
	Policy string `short:"p" default:"glyph" env:"XICON_POLICY" enum:"glyph,gradient" help:"Icon design (glyph, gradient)"`
	Out    string `short:"o" default:"preview.png" help:"Output file" type:"path"`
}

func (c *PreviewCmd) Run(ctx *kong.Context) error {
	policy, err := xicon.ParsePolicy(c.Policy)
	if err != nil {
		return err
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", xicon.ErrInvalidSize, c.Size)
	}

	p, err := xicon.Preview(xicon.Paint(c.Size, policy), c.Scale)
	if err != nil {
		return err
	}
	data, err := xicon.EncodeRaster(p, nil)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Out, err)
	}
	fmt.Fprintf(ctx.Stdout, "Created %s (%dx%d)\n", c.Out, p.Size(), p.Size())
	return nil
}

// VerifyCmd checks that files hold exactly IHDR, IDAT and IEND with valid
// checksums.
type VerifyCmd struct {
	Files []string `arg:"" help:"PNG files to check"`
}

func (c *VerifyCmd) Run(ctx *kong.Context) error {
	var failed int
	for _, path := range c.Files {
		summary, err := verifyFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(ctx.Stdout, "FAIL %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(ctx.Stdout, "ok   %s: %s\n", path, summary)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed verification", failed, len(c.Files))
	}
	return nil
}

func verifyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	chunks, err := pngenc.ReadChunks(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	want := []pngenc.ChunkType{pngenc.TypeIHDR, pngenc.TypeIDAT, pngenc.TypeIEND}
	if len(chunks) != len(want) {
		return "", fmt.Errorf("%d chunks, want %d", len(chunks), len(want))
	}
	for i, c := range chunks {
		if c.Type != want[i] {
			return "", fmt.Errorf("chunk %d is %s, want %s", i, c.Type, want[i])
		}
	}

	h, err := pngenc.ParseHeader(chunks[0].Data)
	if err != nil {
		return "", err
	}
	if h.Width != h.Height {
		return "", fmt.Errorf("%dx%d is not square", h.Width, h.Height)
	}
	return fmt.Sprintf("%dx%d depth %d color type %d, IDAT %d bytes",
		h.Width, h.Height, h.BitDepth, h.ColorType, len(chunks[1].Data)), nil
}
