package tripkml

// Extractor extracts a trip from the full text of an exported page.
type Extractor interface {
	// Extract locates the embedded itinerary state in html and returns the
	// trip title and its places in itinerary order.
	// Returns EMISSINGPAYLOAD when no state assignment is present and
	// EINVALIDPAYLOAD when it cannot be decoded. A trip with no places is
	// not an error.
	Extract(html string) (*Trip, error)
}

// TitleExtractor finds the trip title in an exported page.
type TitleExtractor interface {
	// ExtractTitle returns the trip title and true, or false when the page
	// carries no recognizable title.
	ExtractTitle(html string) (string, bool)
}
