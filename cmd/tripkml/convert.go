package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/tripkml"
	"github.com/fwojciec/tripkml/fs"
	"github.com/fwojciec/tripkml/kml"
)

// emission is one KML file to write.
type emission struct {
	path      string
	title     string
	places    []*tripkml.Place
	showDates bool
}

// reportError prints a fatal error as a single line. Application errors show
// their message; anything else is shown as is.
func reportError(w io.Writer, err error) {
	if tripkml.ErrorCode(err) == tripkml.EINTERNAL {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "error: %s\n", tripkml.ErrorMessage(err))
}

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	if err := fs.EnsureDir(dir); err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	html, err := fs.ReadInput(c.Input)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	trip, err := deps.Extractor.Extract(html)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	if len(trip.Places) == 0 {
		fmt.Fprintln(deps.Stderr, "No places found in the trip data")
		return tripkml.Errorf(tripkml.ENOPLACES, "no places found in %s", c.Input)
	}

	base := c.Output
	if base == "" {
		base = trip.Title
	}
	base = tripkml.Slugify(base)

	emissions := c.plan(trip, dir, base)

	var created []string
	for _, e := range emissions {
		if err := deps.Emitter.Emit(deps.Ctx, e.places, e.path, e.title, e.showDates); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", e.path, tripkml.ErrorMessage(err))
			continue
		}

		if c.Verify {
			if err := verify(e); err != nil {
				fmt.Fprintf(deps.Stderr, "error verifying %s: %v\n", e.path, err)
				continue
			}
		}

		created = append(created, e.path)
		fmt.Fprintf(deps.Stdout, "Created: %s\n", e.path)
	}

	if len(created) > 0 {
		printSummary(deps, trip, created)
	}

	if failed := len(emissions) - len(created); failed > 0 {
		return tripkml.Errorf(tripkml.EWRITE, "%d of %d files could not be written", failed, len(emissions))
	}

	return nil
}

// plan lists the combined file followed, when splitting, by one file per
// date group.
func (c *ConvertCmd) plan(trip *tripkml.Trip, dir, base string) []emission {
	emissions := []emission{{
		path:      filepath.Join(dir, tripkml.CombinedFileName(base)),
		title:     trip.Title,
		places:    trip.Places,
		showDates: true,
	}}

	if !c.Split {
		return emissions
	}

	for _, g := range tripkml.GroupByDate(trip.Places) {
		emissions = append(emissions, emission{
			path:   filepath.Join(dir, tripkml.GroupFileName(base, g.Key)),
			title:  g.Title(trip.Title),
			places: g.Places,
		})
	}

	return emissions
}

// verify reads a written file back and compares its placemark count.
func verify(e emission) error {
	f, err := os.Open(e.path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, placemarks, err := kml.Decode(f)
	if err != nil {
		return err
	}
	if len(placemarks) != len(e.places) {
		return fmt.Errorf("found %d placemarks, want %d", len(placemarks), len(e.places))
	}
	return nil
}

func printSummary(deps *Dependencies, trip *tripkml.Trip, files []string) {
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintf(deps.Stdout, "Trip:   %s\n", trip.Title)
	fmt.Fprintf(deps.Stdout, "Places: %d\n", len(trip.Places))
	fmt.Fprintf(deps.Stdout, "Files:  %d\n", len(files))
	for _, f := range files {
		fmt.Fprintf(deps.Stdout, "  %s\n", f)
	}
}
