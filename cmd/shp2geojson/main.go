package main

import (
	"os"

	"github.com/e1four15f/AgeDatasetVisualization/internal/config"
	"github.com/e1four15f/AgeDatasetVisualization/internal/logger"
	"github.com/e1four15f/AgeDatasetVisualization/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"     env:"CONFIG_FILE"    description:"Path to YAML file listing datasets, overrides --in/--out"`
	Input      string `short:"i" long:"in"         env:"SHP_INPUT"      description:"Input shapefile"                    default:"data/ne_110m_admin_0_countries/ne_110m_admin_0_countries.shp"`
	Output     string `short:"o" long:"out"        env:"GEOJSON_OUTPUT" description:"Output GeoJSON file"                default:"../js/public/data/ne_110m_admin_0_countries.json"`
	NameField  string `short:"n" long:"name-field" env:"NAME_FIELD"     description:"DBF attribute used as feature name" default:"NAME"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}

	log.Info().Msg("Conversion finished successfully")
}

// loadConfig returns the YAML config when one is given, otherwise a
// single dataset built from the flags.
func loadConfig(opts Options) (*config.Config, error) {
	if opts.ConfigFile != "" {
		return config.Load(opts.ConfigFile)
	}

	cfg := config.Default()
	ds := &cfg.Datasets[0]
	ds.Input = opts.Input
	ds.Output = opts.Output
	if opts.NameField != "" {
		ds.NameField = opts.NameField
	}

	return cfg, nil
}

// run converts every dataset in order and stops at the first failure.
func run(cfg *config.Config) error {
	log.Info().
		Int("datasets", len(cfg.Datasets)).
		Msg("Starting conversion")

	for _, ds := range cfg.Datasets {
		if err := processor.ProcessDataset(ds); err != nil {
			return err
		}
	}

	return nil
}
