package tripkml

import "strings"

// NoDateKey groups places whose effective date is unknown.
const NoDateKey = "no_date"

// DateGroup holds the places that share one effective date.
type DateGroup struct {
	Key    string // the date, or NoDateKey
	Places []*Place
}

// Title returns the document title for the group within a trip.
func (g *DateGroup) Title(tripTitle string) string {
	if g.Key == NoDateKey {
		return tripTitle + " - No Date"
	}
	return tripTitle + " - " + g.Key
}

// GroupByDate partitions places by date. Groups are ordered by the first
// appearance of their date, and places keep their relative order within a
// group. Places with an empty date fall into the NoDateKey group.
func GroupByDate(places []*Place) []*DateGroup {
	if len(places) == 0 {
		return nil
	}

	var groups []*DateGroup
	index := make(map[string]int)

	for _, p := range places {
		key := p.Date
		if key == "" {
			key = NoDateKey
		}

		if i, ok := index[key]; ok {
			groups[i].Places = append(groups[i].Places, p)
			continue
		}

		index[key] = len(groups)
		groups = append(groups, &DateGroup{Key: key, Places: []*Place{p}})
	}

	return groups
}

// CombinedFileName returns the file name of the document holding every place.
func CombinedFileName(base string) string {
	return base + "_combined.kml"
}

// GroupFileName returns the file name of the document for a date group.
// Example: ("rome", "2024-05-01") → rome_2024_05_01.kml
func GroupFileName(base, key string) string {
	return base + "_" + strings.ReplaceAll(key, "-", "_") + ".kml"
}
