package processor

import (
	"math"

	"github.com/e1four15f/AgeDatasetVisualization/internal/geo"

	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog/log"
)

// Transform maps records to output features, keeping input order.
// Records without a usable polygon produce a feature with null geometry
// and null coordinates.
func Transform(records []geo.Record) []geo.Feature {
	features := make([]geo.Feature, 0, len(records))

	for i, r := range records {
		d := geo.Derive(r.Geometry)
		if d.Polygon == nil {
			kind := "Null"
			if r.Geometry != nil {
				kind = r.Geometry.GeoJSONType()
			}
			log.Warn().
				Int("id", i).
				Str("name", r.Name).
				Str("type", kind).
				Msg("No polygon found, writing null geometry")
		}

		features = append(features, FormatFeature(r, d, i))
	}

	return features
}

// FormatFeature builds the output feature for the record at position index.
func FormatFeature(r geo.Record, d geo.Derived, index int) geo.Feature {
	f := geo.Feature{
		Type: geo.TypeFeature,
		Properties: geo.Properties{
			Name: r.Name,
			Area: int64(r.Area),
		},
		ID: index,
	}

	if d.Centroid != nil {
		lat, lng := round2(d.Centroid.Y()), round2(d.Centroid.X())
		f.Properties.Lat = &lat
		f.Properties.Lng = &lng
	}

	if d.Polygon != nil {
		f.Geometry = geojson.NewGeometry(d.Polygon)
	}

	return f
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
