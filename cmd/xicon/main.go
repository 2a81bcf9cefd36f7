// Command xicon writes the application icons as PNG files.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/xicon"
)

const version = "0.1.0"

// CLI defines the command-line interface for xicon.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug details to stderr"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Write icon{size}.png for each size"`
	Preview  PreviewCmd  `cmd:"" help:"Write an enlarged copy of one icon"`
	Verify   VerifyCmd   `cmd:"" help:"Check the chunk layout of PNG files"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	_, err := io.WriteString(ctx.Stdout, "xicon version "+version+"\n")
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newParser(cli *CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("xicon"),
		kong.Description("Procedural icon generator"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli, os.Stdout, os.Stderr)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	xicon.SetLogger(newLogger(os.Stderr, cli.Verbose))
	ctx.FatalIfErrorf(ctx.Run())
}
