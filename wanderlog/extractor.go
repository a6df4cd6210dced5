// Package wanderlog extracts trips from itinerary pages exported from
// Wanderlog. The page embeds the app's MobX store as a JSON object assigned
// to a global; the trip plan is read from that store.
package wanderlog

import (
	"github.com/fwojciec/tripkml"
	"github.com/fwojciec/tripkml/goquery"
	"github.com/fwojciec/tripkml/json"
	"github.com/tidwall/gjson"
)

// StateVariable is the global the exported page assigns its store to.
const StateVariable = "window.__MOBX_STATE__"

// Ensure Extractor implements tripkml.Extractor at compile time.
var _ tripkml.Extractor = (*Extractor)(nil)

// Extractor reads a trip from an exported Wanderlog page.
type Extractor struct {
	Titles tripkml.TitleExtractor
}

// NewExtractor creates an Extractor that reads titles with goquery.
func NewExtractor() *Extractor {
	return &Extractor{Titles: goquery.NewTitleExtractor()}
}

// Extract returns the trip title and the places of the trip plan in
// itinerary order. Blocks with a missing name or unusable coordinates are
// skipped.
func (e *Extractor) Extract(html string) (*tripkml.Trip, error) {
	title, ok := e.Titles.ExtractTitle(html)
	if !ok || title == "" {
		title = tripkml.DefaultTitle
	}

	raw, err := json.FindAssignment(html, StateVariable)
	if err != nil {
		return nil, err
	}

	root, err := json.Parse(raw)
	if err != nil {
		return nil, err
	}

	itinerary, ok := json.Object(root, "tripPlanStore", "data", "tripPlan", "itinerary")
	if !ok {
		return nil, tripkml.Errorf(tripkml.EINVALIDPAYLOAD, "error parsing trip data: tripPlanStore.data.tripPlan.itinerary not found")
	}

	trip := &tripkml.Trip{
		Title:  title,
		Places: collectPlaces(itinerary, blockDates(itinerary)),
	}
	if err := trip.Validate(); err != nil {
		return nil, err
	}
	return trip, nil
}

// blockDates maps block ids to the dates of their budget expenses.
// Later expenses for the same block win.
func blockDates(itinerary gjson.Result) map[any]string {
	dates := make(map[any]string)

	expenses, _ := json.Array(itinerary, "budget", "expenses")
	for _, expense := range expenses {
		id, ok := json.Lookup(expense, "blockId")
		if !ok {
			continue
		}
		key, ok := json.Key(id)
		if !ok {
			continue
		}
		date, ok := json.String(expense, "associatedDate")
		if !ok {
			continue
		}
		dates[key] = date
	}

	return dates
}

func collectPlaces(itinerary gjson.Result, dates map[any]string) []*tripkml.Place {
	var places []*tripkml.Place

	sections, _ := json.Array(itinerary, "sections")
	for _, section := range sections {
		blocks, ok := json.Array(section, "blocks")
		if !ok {
			continue
		}

		sectionDate, _ := json.String(section, "date")

		for _, block := range blocks {
			if p := placeFromBlock(block, dates, sectionDate); p != nil {
				places = append(places, p)
			}
		}
	}

	return places
}

// placeFromBlock returns nil for blocks that are not usable places.
func placeFromBlock(block gjson.Result, dates map[any]string, sectionDate string) *tripkml.Place {
	if typ, _ := json.String(block, "type"); typ != "place" {
		return nil
	}
	place, ok := json.Object(block, "place")
	if !ok {
		return nil
	}

	name, ok := json.String(place, "name")
	if !ok || name == "" {
		return nil
	}
	lat, ok := json.Number(place, "geometry", "location", "lat")
	if !ok || !tripkml.ValidLatitude(lat) {
		return nil
	}
	lng, ok := json.Number(place, "geometry", "location", "lng")
	if !ok || !tripkml.ValidLongitude(lng) {
		return nil
	}

	return tripkml.NewPlace(name, lat, lng, effectiveDate(block, dates, sectionDate))
}

// effectiveDate prefers the block's expense date over the section date.
func effectiveDate(block gjson.Result, dates map[any]string, sectionDate string) string {
	if id, ok := json.Lookup(block, "id"); ok {
		if key, ok := json.Key(id); ok {
			if date, ok := dates[key]; ok {
				return date
			}
		}
	}
	return sectionDate
}
