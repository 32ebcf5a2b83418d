// Package logger configures the global zerolog logger from command line options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds logging options, embedded as a go-flags group.
type Logger struct {
	Level   string `short:"L" long:"log-level"  env:"LOG_LEVEL"  description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Format  string `long:"log-format" env:"LOG_FORMAT" description:"Log output format" choice:"console" choice:"json" default:"console"`
	NoColor bool   `long:"log-no-color" env:"LOG_NO_COLOR" description:"Disable colored console output"`
}

// Setup applies the options to the global logger.
// Unknown levels fall back to info.
func (l Logger) Setup() {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(l.writer(os.Stderr)).With().Timestamp().Logger()
}

func (l Logger) writer(out io.Writer) io.Writer {
	if l.Format == "json" {
		return out
	}

	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    l.NoColor,
		TimeFormat: time.TimeOnly,
	}
}
