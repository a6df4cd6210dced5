package tripkml

import "context"

// Emitter writes places as a KML document.
type Emitter interface {
	// Emit writes places to path as a document named title, replacing any
	// existing file. When showDates is true, placemark names are prefixed
	// with the place's DayMonth.
	// Returns EWRITE if the document cannot be written.
	Emit(ctx context.Context, places []*Place, path, title string, showDates bool) error
}
