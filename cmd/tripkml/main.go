package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tripkml/fs"
	tkslog "github.com/fwojciec/tripkml/slog"
	"github.com/fwojciec/tripkml/wanderlog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	// Run reports its own errors.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tripkml"),
		kong.Description("Convert an exported Wanderlog trip page to KML files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		err = fmt.Errorf("failed to create parser: %w", err)
		reportError(stderr, err)
		return err
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no input file provided")
		reportError(stderr, err)
		return err
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		reportError(stderr, err)
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: tkslog.NewLoggingExtractor(wanderlog.NewExtractor(), logger),
		Emitter:   tkslog.NewLoggingEmitter(fs.NewEmitter(), logger),
	}

	cmd := &ConvertCmd{
		Input:  cli.Input,
		Split:  cli.Split,
		Output: cli.Output,
		Dir:    cli.Dir,
		Verify: cli.Verify,
	}

	return cmd.Run(deps)
}
