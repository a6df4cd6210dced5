package mock

import "github.com/fwojciec/tripkml"

var _ tripkml.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tripkml.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*tripkml.Trip, error)
}

func (e *Extractor) Extract(html string) (*tripkml.Trip, error) {
	return e.ExtractFn(html)
}

var _ tripkml.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of tripkml.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) (string, bool)
}

func (e *TitleExtractor) ExtractTitle(html string) (string, bool) {
	return e.ExtractTitleFn(html)
}
