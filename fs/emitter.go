// Package fs provides file-based input and output for trip conversion.
package fs

import (
	"bufio"
	"context"
	"os"

	"github.com/fwojciec/tripkml"
	"github.com/fwojciec/tripkml/kml"
)

// Ensure Emitter implements tripkml.Emitter at compile time.
var _ tripkml.Emitter = (*Emitter)(nil)

// Emitter writes KML documents to files.
// Each document is written to path.tmp and renamed over path, so a failed
// write never leaves a partial file behind.
type Emitter struct{}

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit writes places as a KML document to path.
func (e *Emitter) Emit(ctx context.Context, places []*tripkml.Place, path, title string, showDates bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := writeKML(tmp, places, title, showDates); err != nil {
		_ = os.Remove(tmp)
		return tripkml.Errorf(tripkml.EWRITE, "writing %s: %v", path, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return tripkml.Errorf(tripkml.EWRITE, "writing %s: %v", path, err)
	}

	return nil
}

func writeKML(path string, places []*tripkml.Place, title string, showDates bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := kml.Encode(w, places, title, showDates); err != nil {
		return err
	}
	return w.Flush()
}
