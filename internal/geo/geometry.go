// Package geo handles geographic data structures and planar geometry helpers.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Geometry is the shape of an input record. It is one of Polygon,
// MultiPolygon or Unsupported.
type Geometry interface {
	// GeoJSONType returns the GeoJSON type name, or the source shape
	// type for unsupported geometries.
	GeoJSONType() string
	geometry()
}

// Polygon is a single polygon made of an outer ring followed by holes.
type Polygon orb.Polygon

// MultiPolygon is an ordered list of polygon parts.
type MultiPolygon orb.MultiPolygon

// Unsupported marks a null or non-areal geometry.
type Unsupported struct {
	Kind string // source shape type, empty for null
}

func (Polygon) GeoJSONType() string      { return orb.Polygon{}.GeoJSONType() }
func (MultiPolygon) GeoJSONType() string { return orb.MultiPolygon{}.GeoJSONType() }
func (u Unsupported) GeoJSONType() string {
	if u.Kind == "" {
		return "Null"
	}
	return u.Kind
}

func (Polygon) geometry()      {}
func (MultiPolygon) geometry() {}
func (Unsupported) geometry()  {}

// Record is one named input entity.
type Record struct {
	Name     string
	Geometry Geometry
	Area     float64 // planar area of the whole geometry, native units
}

// Derived holds values computed from a record. Both fields are nil when
// the record has no usable polygon.
type Derived struct {
	Polygon  orb.Polygon
	Centroid *orb.Point
}

// SelectRepresentativePolygon reduces a geometry to a single polygon.
// A multipolygon yields its largest part; on equal areas the first part wins.
func SelectRepresentativePolygon(g Geometry) (orb.Polygon, bool) {
	switch g := g.(type) {
	case Polygon:
		if len(g) == 0 {
			return nil, false
		}
		return orb.Polygon(g), true

	case MultiPolygon:
		var (
			best     orb.Polygon
			bestArea float64
		)
		for i, p := range g {
			a := planar.Area(p)
			if i == 0 || a > bestArea {
				best, bestArea = p, a
			}
		}
		if len(best) == 0 {
			return nil, false
		}
		return best, true
	}

	return nil, false
}

// Centroid returns the area weighted planar centroid of the polygon.
func Centroid(p orb.Polygon) orb.Point {
	c, _ := planar.CentroidArea(p)
	return c
}

// Area returns the planar area of the geometry. Multipolygon parts are summed.
func Area(g Geometry) float64 {
	switch g := g.(type) {
	case Polygon:
		return planar.Area(orb.Polygon(g))
	case MultiPolygon:
		return planar.Area(orb.MultiPolygon(g))
	}

	return 0
}

// Derive computes the representative polygon and its centroid.
func Derive(g Geometry) Derived {
	p, ok := SelectRepresentativePolygon(g)
	if !ok {
		return Derived{}
	}

	c := Centroid(p)
	return Derived{Polygon: p, Centroid: &c}
}
