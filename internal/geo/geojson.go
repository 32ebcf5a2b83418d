package geo

import (
	"github.com/paulmach/orb/geojson"
)

// GeoJSON type names used in the output document.
const (
	TypeFeature           = "Feature"
	TypeFeatureCollection = "FeatureCollection"
)

// Feature is a single output GeoJSON feature.
// Field order matches the order keys are written in.
type Feature struct {
	Type       string            `json:"type"`
	Properties Properties        `json:"properties"`
	Geometry   *geojson.Geometry `json:"geometry"`
	ID         int               `json:"id"`
}

// Properties are the attributes the globe front-end reads.
type Properties struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"` // centroid Y, 2 decimals
	Lng  *float64 `json:"lng"` // centroid X, 2 decimals
	Area int64    `json:"area"`
}
