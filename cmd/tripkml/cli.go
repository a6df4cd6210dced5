package main

import (
	"context"
	"io"

	"github.com/fwojciec/tripkml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor tripkml.Extractor
	Emitter   tripkml.Emitter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Split   bool   `short:"s" help:"Also write one KML file per date"`
	Output  string `short:"o" help:"Base name for output files (default: trip title)"`
	Dir     string `short:"d" default:"." env:"TRIPKML_DIR" help:"Directory for output files, created if missing"`
	Verify  bool   `help:"Read back each written file and check its placemark count"`
	Verbose bool   `short:"v" help:"Log extraction and write details to stderr"`
	Input   string `arg:"" help:"Exported Wanderlog HTML page"`
}

// ConvertCmd converts one exported page to KML files.
type ConvertCmd struct {
	Input  string
	Split  bool
	Output string
	Dir    string
	Verify bool
}
