// Package processor turns loaded shapefile records into GeoJSON documents.
package processor

import (
	"fmt"
	"os"
	"time"

	"github.com/e1four15f/AgeDatasetVisualization/internal/config"
	"github.com/e1four15f/AgeDatasetVisualization/internal/geo"
	"github.com/e1four15f/AgeDatasetVisualization/internal/shapefile"

	"github.com/rs/zerolog/log"
)

// ProcessDataset converts one shapefile into a GeoJSON file.
// It loads, transforms and writes, in that order; a load failure leaves
// the output untouched.
func ProcessDataset(ds config.Dataset) error {
	start := time.Now()

	log.Info().
		Str("dataset", ds.Name).
		Str("source", ds.Input).
		Msg("Processing dataset")

	records, err := shapefile.Load(ds.Input, ds.NameField)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	features := Transform(records)

	if err := saveGeoJSON(ds.Output, features); err != nil {
		return fmt.Errorf("write %s: %w", ds.Output, err)
	}

	log.Info().
		Str("dataset", ds.Name).
		Str("output", ds.Output).
		Int("features", len(features)).
		Dur("duration", time.Since(start)).
		Msg("Dataset converted")

	return nil
}

// saveGeoJSON streams the features to path. The parent directory must
// already exist; a partially written file is left in place on error.
func saveGeoJSON(path string, features []geo.Feature) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
			if err == nil {
				err = closeErr
			}
		}
	}()

	fw := NewFeatureWriter(f)
	for _, feature := range features {
		if err := fw.Write(feature); err != nil {
			return err
		}
	}

	return fw.Close()
}
