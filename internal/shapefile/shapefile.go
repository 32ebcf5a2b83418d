// Package shapefile loads named polygon records from ESRI shapefiles.
package shapefile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/e1four15f/AgeDatasetVisualization/internal/geo"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/rs/zerolog/log"
)

// ErrNameFieldNotFound is returned when the DBF table lacks the name attribute.
var ErrNameFieldNotFound = errors.New("name field not found")

// ErrNoAttributes is returned when the .dbf attribute table is missing or unreadable.
var ErrNoAttributes = errors.New("dbf attribute table missing or unreadable")

// Load reads every shape of the .shp file at path together with the
// nameField attribute from the sibling .dbf file. Records keep file order.
func Load(path, nameField string) ([]geo.Record, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = reader.Close() }()

	field, err := fieldIndex(reader.Fields(), nameField)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([]geo.Record, 0, reader.AttributeCount())
	for reader.Next() {
		n, shape := reader.Shape()
		g := convertShape(shape)

		records = append(records, geo.Record{
			Name:     strings.Trim(reader.ReadAttribute(n, field), " \x00"), // DBF padding
			Geometry: g,
			Area:     geo.Area(g),
		})

		log.Trace().
			Int("row", n).
			Str("type", g.GeoJSONType()).
			Msg("Shape loaded")
	}

	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("records", len(records)).
		Msg("Shapefile loaded")

	return records, nil
}

// fieldIndex finds the attribute column by case-insensitive name.
func fieldIndex(fields []shp.Field, name string) (int, error) {
	if len(fields) == 0 {
		return 0, ErrNoAttributes
	}

	for i, f := range fields {
		if strings.EqualFold(f.String(), name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrNameFieldNotFound, name)
}

// convertShape maps a shapefile shape onto the geometry variant.
func convertShape(shape shp.Shape) geo.Geometry {
	switch s := shape.(type) {
	case *shp.Polygon:
		return assemble(s.Parts, s.Points)
	case *shp.PolygonZ:
		return assemble(s.Parts, s.Points)
	case *shp.PolygonM:
		return assemble(s.Parts, s.Points)
	case nil, *shp.Null:
		return geo.Unsupported{}
	}

	return geo.Unsupported{Kind: reflect.TypeOf(shape).Elem().Name()}
}

// assemble groups shapefile rings into polygons. Clockwise rings are
// shells, counter-clockwise rings are holes of the first shell that
// contains them.
func assemble(parts []int32, points []shp.Point) geo.Geometry {
	var (
		shells []orb.Polygon
		holes  []orb.Ring
	)

	for _, ring := range splitRings(parts, points) {
		if ring.Orientation() == orb.CW {
			shells = append(shells, orb.Polygon{ring})
		} else {
			holes = append(holes, ring)
		}
	}

	for _, hole := range holes {
		owner := -1
		for i, shell := range shells {
			if planar.RingContains(shell[0], hole[0]) {
				owner = i
				break
			}
		}

		if owner < 0 {
			// holes without a shell are kept as their own polygon
			shells = append(shells, orb.Polygon{hole})
			continue
		}
		shells[owner] = append(shells[owner], hole)
	}

	switch len(shells) {
	case 0:
		return geo.Unsupported{Kind: "EmptyPolygon"}
	case 1:
		return geo.Polygon(shells[0])
	}

	return geo.MultiPolygon(shells)
}

// splitRings cuts the flat point list at part offsets. Rings with fewer
// than three points are dropped and open rings are closed.
func splitRings(parts []int32, points []shp.Point) []orb.Ring {
	rings := make([]orb.Ring, 0, len(parts))

	for i, first := range parts {
		last := len(points)
		if i < len(parts)-1 {
			last = int(parts[i+1])
		}
		if int(first) >= last || last > len(points) {
			continue
		}

		pts := points[first:last]
		if len(pts) < 3 {
			continue
		}

		ring := make(orb.Ring, 0, len(pts)+1)
		for _, p := range pts {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}

		rings = append(rings, ring)
	}

	return rings
}
