package tripkml

import "math"

// DefaultTitle is used when the exported page carries no recognizable title.
const DefaultTitle = "My Trip"

// Place represents one visited location extracted from a trip itinerary.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Date      string  `json:"date"`     // YYYY-MM-DD, empty when unknown
	DayMonth  string  `json:"dayMonth"` // DD.MM derived from Date
}

// NewPlace returns a Place with DayMonth derived from date.
func NewPlace(name string, lat, lng float64, date string) *Place {
	return &Place{
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
		Date:      date,
		DayMonth:  DayMonth(date),
	}
}

// Validate returns an error if the place contains invalid fields.
func (p *Place) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "place name required")
	}
	if !ValidLatitude(p.Latitude) {
		return Errorf(EINVALID, "place %q latitude %v out of range", p.Name, p.Latitude)
	}
	if !ValidLongitude(p.Longitude) {
		return Errorf(EINVALID, "place %q longitude %v out of range", p.Name, p.Longitude)
	}
	return nil
}

// ValidLatitude reports whether v is a finite latitude in [-90, 90].
func ValidLatitude(v float64) bool {
	return !math.IsNaN(v) && v >= -90 && v <= 90
}

// ValidLongitude reports whether v is a finite longitude in [-180, 180].
func ValidLongitude(v float64) bool {
	return !math.IsNaN(v) && v >= -180 && v <= 180
}

// DayMonth formats a YYYY-MM-DD date as DD.MM by position.
// Dates in any other shape are not rejected; they yield whatever characters
// sit at those positions. An empty date yields an empty string.
func DayMonth(date string) string {
	if date == "" {
		return ""
	}
	r := []rune(date)
	return runeSlice(r, 8, 10) + "." + runeSlice(r, 5, 7)
}

// runeSlice returns r[i:j] clamped to the bounds of r.
func runeSlice(r []rune, i, j int) string {
	if i > len(r) {
		i = len(r)
	}
	if j > len(r) {
		j = len(r)
	}
	return string(r[i:j])
}

// Trip represents the places extracted from a single exported itinerary.
type Trip struct {
	Title  string   `json:"title"`
	Places []*Place `json:"places"`
}

// Validate returns an error if the trip contains invalid fields.
func (t *Trip) Validate() error {
	if t.Title == "" {
		return Errorf(EINVALID, "trip title required")
	}
	for _, p := range t.Places {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
