package xicon

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/gogpu/xicon/internal/ico"
	"github.com/gogpu/xicon/internal/parallel"
)

// DefaultSizes are the icon sizes written when none are requested.
var DefaultSizes = []int{16, 48, 128}

// Result describes one written icon.
type Result struct {
	Size   int
	Path   string
	Bytes  int
	Digest string // BLAKE3-256, hex
}

// Generator writes icon files into a directory.
type Generator struct {
	opts []Option
}

// NewGenerator returns a generator that encodes every size with opts.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{opts: opts}
}

// FileName returns the file name used for an icon of the given size.
func FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// Generate creates dir if needed and writes dir/icon{size}.png for each
// size, in order. Each file is encoded completely in memory before a single
// write, so a failure never leaves a partial PNG behind. Generation stops at
// the first failing size; results for the sizes already written are
// returned with the error.
func (g *Generator) Generate(dir string, sizes []int) ([]Result, error) {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("xicon: create %s: %w", dir, err)
	}

	encoded, errs := g.encodeAll(sizes)

	results := make([]Result, 0, len(sizes))
	for i, size := range sizes {
		if errs[i] != nil {
			return results, fmt.Errorf("xicon: icon %d: %w", size, errs[i])
		}
		res, err := writeIcon(dir, size, encoded[i])
		if err != nil {
			return results, fmt.Errorf("xicon: icon %d: %w", size, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// encodeAll encodes every size, concurrently when WithWorkers asks for it.
// Sequential generation stops encoding at the first failure.
func (g *Generator) encodeAll(sizes []int) ([][]byte, []error) {
	encoded := make([][]byte, len(sizes))
	errs := make([]error, len(sizes))

	workers := buildOptions(g.opts).workers
	if workers <= 1 || len(sizes) == 1 {
		for i, size := range sizes {
			if encoded[i], errs[i] = Encode(size, g.opts...); errs[i] != nil {
				break
			}
		}
		return encoded, errs
	}

	pool := parallel.NewWorkerPool(min(workers, len(sizes)))
	defer pool.Close()

	jobs := make([]parallel.Job, len(sizes))
	for i, size := range sizes {
		i, size := i, size
		jobs[i] = func() error {
			var err error
			encoded[i], err = Encode(size, g.opts...)
			return err
		}
	}
	return encoded, pool.ExecuteAll(jobs)
}

func writeIcon(dir string, size int, data []byte) (Result, error) {
	path := filepath.Join(dir, FileName(size))
	if err := writeFile(path, data); err != nil {
		return Result{}, err
	}

	res := Result{
		Size:   size,
		Path:   path,
		Bytes:  len(data),
		Digest: Digest(data),
	}
	Logger().Info("xicon: wrote icon",
		"path", res.Path,
		"size", res.Size,
		"bytes", res.Bytes,
		"blake3", res.Digest)
	return res, nil
}

// WriteICO bundles the PNG files named by results into one .ico file at
// path. Icons larger than 256 pixels cannot be stored and are rejected.
func WriteICO(path string, results []Result) error {
	images := make([]ico.Image, 0, len(results))
	for _, r := range results {
		data, err := os.ReadFile(r.Path)
		if err != nil {
			return fmt.Errorf("xicon: read %s: %w", r.Path, err)
		}
		images = append(images, ico.Image{Width: r.Size, Height: r.Size, PNG: data})
	}

	data, err := ico.Encode(images)
	if err != nil {
		return fmt.Errorf("xicon: build %s: %w", path, err)
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	Logger().Info("xicon: wrote icon bundle", "path", path, "images", len(images), "bytes", len(data))
	return nil
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// writeFile writes data to a temporary file in the target directory and
// renames it over path.
func writeFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("xicon: create temp for %s: %w", path, err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("xicon: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("xicon: close %s: %w", path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("xicon: chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("xicon: rename %s: %w", path, err)
	}
	return nil
}
