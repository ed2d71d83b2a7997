package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a configured logrus logger for the simulation core. Callers
// inject the returned logger into engines and simulation contexts; the core
// never reaches for ambient global state.
//
// In development mode logs are colored text at debug level; otherwise JSON
// at the requested level (defaulting to info).
func New(level string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if level == "" {
		if isDevelopment {
			level = "debug"
		} else {
			level = "info"
		}
	}
	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		log.SetLevel(parsed)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", level).Warn("Invalid log level, using INFO")
	}

	if isDevelopment {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	log.SetOutput(os.Stdout)

	return log
}

// NewSilent returns a logger that discards everything. Useful in tests and
// for callers that want the injection points satisfied without output.
func NewSilent() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// WithMatchContext annotates a logger with match identifiers.
func WithMatchContext(log *logrus.Logger, homeTeamID, awayTeamID, season int) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"home_team_id": homeTeamID,
		"away_team_id": awayTeamID,
		"season":       season,
	})
}

// WithStadiumContext annotates a logger with stadium economy context.
func WithStadiumContext(log *logrus.Logger, capacity, fanLoyalty int) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"stadium_capacity": capacity,
		"fan_loyalty":      fanLoyalty,
	})
}
