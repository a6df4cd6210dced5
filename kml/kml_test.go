package kml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/tripkml"
	"github.com/fwojciec/tripkml/kml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("writes dated placemark with day prefix", func(t *testing.T) {
		t.Parallel()

		places := []*tripkml.Place{
			tripkml.NewPlace("Colosseum", 41.8902, 12.4922, "2024-05-01"),
		}
		var buf bytes.Buffer

		err := kml.Encode(&buf, places, "Weekend in Rome", true)

		require.NoError(t, err)
		want := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <name>Weekend in Rome</name>
    <Placemark>
      <name>[01.05] Colosseum</name>
      <Point>
        <coordinates>12.4922,41.8902,0</coordinates>
      </Point>
      <ExtendedData>
        <Data name="date">
          <value>2024-05-01</value>
        </Data>
      </ExtendedData>
    </Placemark>
  </Document>
</kml>`
		assert.Equal(t, want, strings.TrimSpace(buf.String()))
	})

	t.Run("omits day prefix when dates are hidden", func(t *testing.T) {
		t.Parallel()

		places := []*tripkml.Place{
			tripkml.NewPlace("Colosseum", 41.8902, 12.4922, "2024-05-01"),
		}
		var buf bytes.Buffer

		err := kml.Encode(&buf, places, "Rome - 2024-05-01", false)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "<name>Colosseum</name>")
		assert.Contains(t, buf.String(), "<value>2024-05-01</value>")
	})

	t.Run("undated place has no prefix and no extended data", func(t *testing.T) {
		t.Parallel()

		places := []*tripkml.Place{
			tripkml.NewPlace("Somewhere", 1.5, -2, ""),
		}
		var buf bytes.Buffer

		err := kml.Encode(&buf, places, "Trip", true)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "<name>Somewhere</name>")
		assert.Contains(t, buf.String(), "<coordinates>-2,1.5,0</coordinates>")
		assert.NotContains(t, buf.String(), "ExtendedData")
	})

	t.Run("escapes markup in names", func(t *testing.T) {
		t.Parallel()

		places := []*tripkml.Place{
			tripkml.NewPlace("Fish & Chips <Best>", 1, 2, ""),
		}
		var buf bytes.Buffer

		err := kml.Encode(&buf, places, "Trip", true)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Fish &amp; Chips &lt;Best&gt;")
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		err := kml.Encode(&buf, nil, "Empty", true)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "<name>Empty</name>")
		assert.NotContains(t, buf.String(), "Placemark")
	})

	t.Run("output is deterministic", func(t *testing.T) {
		t.Parallel()

		places := []*tripkml.Place{
			tripkml.NewPlace("A", 1.123456789, 2.987654321, "2024-05-01"),
			tripkml.NewPlace("B", -3, 4, ""),
		}
		var first, second bytes.Buffer

		require.NoError(t, kml.Encode(&first, places, "Trip", true))
		require.NoError(t, kml.Encode(&second, places, "Trip", true))

		assert.Equal(t, first.Bytes(), second.Bytes())
	})
}

func TestFormatCoordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want string
	}{
		{name: "longitude first", lat: 41.8902, lng: 12.4922, want: "12.4922,41.8902,0"},
		{name: "integers", lat: 10, lng: -20, want: "-20,10,0"},
		{name: "no exponent for small values", lat: 0.00001, lng: 0, want: "0,0.00001,0"},
		{name: "full precision", lat: 48.858370100000004, lng: 2.2944813, want: "2.2944813,48.858370100000004,0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, kml.FormatCoordinates(tt.lat, tt.lng))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("round trips encoded places in order", func(t *testing.T) {
		t.Parallel()

		places := []*tripkml.Place{
			tripkml.NewPlace("Colosseum", 41.8902, 12.4922, "2024-05-01"),
			tripkml.NewPlace("Pantheon", 41.8986, 12.4769, "2024-05-02"),
			tripkml.NewPlace("Undated", -33.45, -70.66, ""),
		}
		var buf bytes.Buffer
		require.NoError(t, kml.Encode(&buf, places, "Weekend in Rome", true))

		title, placemarks, err := kml.Decode(&buf)

		require.NoError(t, err)
		assert.Equal(t, "Weekend in Rome", title)
		require.Len(t, placemarks, len(places))
		for i, p := range places {
			assert.Equal(t, p.Latitude, placemarks[i].Latitude)
			assert.Equal(t, p.Longitude, placemarks[i].Longitude)
			assert.Equal(t, p.Date, placemarks[i].Date)
		}
		assert.Equal(t, "[01.05] Colosseum", placemarks[0].Name)
		assert.Equal(t, "Undated", placemarks[2].Name)
	})

	t.Run("rejects non-KML documents", func(t *testing.T) {
		t.Parallel()

		_, _, err := kml.Decode(strings.NewReader(`<?xml version="1.0"?><urlset></urlset>`))

		assert.Error(t, err)
	})

	t.Run("rejects malformed coordinates", func(t *testing.T) {
		t.Parallel()

		doc := `<kml><Document><Placemark><name>A</name><Point><coordinates>abc</coordinates></Point></Placemark></Document></kml>`

		_, _, err := kml.Decode(strings.NewReader(doc))

		assert.Error(t, err)
	})
}
