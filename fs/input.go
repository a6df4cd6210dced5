package fs

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/tripkml"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadInput reads an exported page as text. A byte order mark is honoured
// and removed, so UTF-16 pages saved by some editors are converted to UTF-8.
// Without a BOM the file must be valid UTF-8.
// Returns EUNREADABLE if the file cannot be read or decoded.
func ReadInput(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", tripkml.Errorf(tripkml.EUNREADABLE, "error reading file: %v", err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(encoding.UTF8Validator)
	b, err := io.ReadAll(transform.NewReader(f, decoder))
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return "", tripkml.Errorf(tripkml.EUNREADABLE, "error reading file: %s is not valid UTF-8 text", path)
	} else if err != nil {
		return "", tripkml.Errorf(tripkml.EUNREADABLE, "error reading file: %v", err)
	}

	return string(b), nil
}

// EnsureDir creates dir and any missing parents.
// Returns EOUTPUTDIR if the directory cannot be created.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return tripkml.Errorf(tripkml.EOUTPUTDIR, "error creating output directory: %v", err)
	}
	return nil
}
