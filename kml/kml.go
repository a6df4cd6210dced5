// Package kml encodes places as KML 2.2 documents using etree.
package kml

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/tripkml"
)

// Namespace is the OGC KML 2.2 namespace.
const Namespace = "http://www.opengis.net/kml/2.2"

// NewDocument builds a KML document named title with one placemark per place.
// When showDates is true, placemark names of dated places are prefixed with
// "[DD.MM] ".
func NewDocument(places []*tripkml.Place, title string, showDates bool) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("kml")
	root.CreateAttr("xmlns", Namespace)

	document := root.CreateElement("Document")
	document.CreateElement("name").SetText(title)

	for _, p := range places {
		pm := document.CreateElement("Placemark")
		pm.CreateElement("name").SetText(placemarkName(p, showDates))

		point := pm.CreateElement("Point")
		point.CreateElement("coordinates").SetText(FormatCoordinates(p.Latitude, p.Longitude))

		if p.Date != "" {
			data := pm.CreateElement("ExtendedData").CreateElement("Data")
			data.CreateAttr("name", "date")
			data.CreateElement("value").SetText(p.Date)
		}
	}

	doc.Indent(2)
	return doc
}

func placemarkName(p *tripkml.Place, showDates bool) string {
	if showDates && p.DayMonth != "" {
		return "[" + p.DayMonth + "] " + p.Name
	}
	return p.Name
}

// Encode writes the KML document for places to w.
func Encode(w io.Writer, places []*tripkml.Place, title string, showDates bool) error {
	_, err := NewDocument(places, title, showDates).WriteTo(w)
	return err
}

// FormatCoordinates returns a KML coordinate tuple. KML puts longitude
// first; altitude is always 0.
func FormatCoordinates(lat, lng float64) string {
	return formatFloat(lng) + "," + formatFloat(lat) + ",0"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Placemark is a placemark read back from a KML document.
type Placemark struct {
	Name      string
	Latitude  float64
	Longitude float64
	Date      string
}

// Decode reads the document name and placemarks from a KML document in
// document order.
func Decode(r io.Reader) (string, []Placemark, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return "", nil, fmt.Errorf("parsing KML: %w", err)
	}

	root := doc.SelectElement("kml")
	if root == nil {
		return "", nil, fmt.Errorf("missing kml root element")
	}
	document := root.SelectElement("Document")
	if document == nil {
		return "", nil, fmt.Errorf("missing Document element")
	}

	var title string
	if name := document.SelectElement("name"); name != nil {
		title = name.Text()
	}

	var placemarks []Placemark
	for _, el := range document.SelectElements("Placemark") {
		pm, err := decodePlacemark(el)
		if err != nil {
			return "", nil, err
		}
		placemarks = append(placemarks, pm)
	}

	return title, placemarks, nil
}

func decodePlacemark(el *etree.Element) (Placemark, error) {
	var pm Placemark

	if name := el.SelectElement("name"); name != nil {
		pm.Name = name.Text()
	}

	coords := el.FindElement("Point/coordinates")
	if coords == nil {
		return pm, fmt.Errorf("placemark %q has no coordinates", pm.Name)
	}
	lat, lng, err := parseCoordinates(coords.Text())
	if err != nil {
		return pm, fmt.Errorf("placemark %q: %w", pm.Name, err)
	}
	pm.Latitude, pm.Longitude = lat, lng

	if value := el.FindElement("ExtendedData/Data[@name='date']/value"); value != nil {
		pm.Date = value.Text()
	}

	return pm, nil
}

func parseCoordinates(s string) (lat, lng float64, err error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("invalid coordinates %q", s)
	}
	if lng, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q", parts[0])
	}
	if lat, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q", parts[1])
	}
	return lat, lng, nil
}
