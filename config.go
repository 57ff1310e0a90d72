package easylog

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Config describes a root logger assembled by NewFromConfig. Values are
// supplied programmatically; this package does not parse configuration
// files.
type Config struct {
	// Name is the root logger's display name.
	Name string `validate:"required"`
	// Level is the textual minimum level, e.g. "debug". Empty means INFO.
	Level string
	// Format overrides DefaultFormat when non-empty.
	Format string
	// ConsoleLogging writes to the process-wide console destination.
	ConsoleLogging bool
	// FileLogging writes to a rolling file at LogFile.
	FileLogging bool
	// LogFile is the log file path, required when FileLogging is set.
	LogFile string `validate:"required_if=FileLogging true"`
	// LogFileMaxSizeMB, LogFileMaxBackups and LogFileMaxAgeDays bound the
	// rolling file; zero values defer to lumberjack's defaults.
	LogFileMaxSizeMB  int `validate:"gte=0"`
	LogFileMaxBackups int `validate:"gte=0"`
	LogFileMaxAgeDays int `validate:"gte=0"`
}

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New(errMsgNilConfig)
	}

	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, errMsgConfigInvalid)
	}
	return nil
}

// NewFromConfig validates cfg and assembles a root logger from it. With
// both channels enabled the logger writes to a fan-out of console and file;
// with neither enabled it falls back to the console.
func NewFromConfig(cfg *Config) (*Logger, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	var dests []Destination
	if cfg.FileLogging {
		dests = append(dests, NewFileDestination(
			cfg.LogFile,
			cfg.LogFileMaxSizeMB,
			cfg.LogFileMaxBackups,
			cfg.LogFileMaxAgeDays,
		))
	}
	if cfg.ConsoleLogging || len(dests) == 0 {
		dests = append(dests, DefaultDestination())
	}

	dest := dests[0]
	if len(dests) > 1 {
		dest = MultiDestination(dests...)
	}

	l := New(cfg.Name, dest)

	if cfg.Level != emptyString {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "setting logging level")
		}
		l.SetLevel(level)
	}
	if cfg.Format != emptyString {
		l.SetFormat(cfg.Format)
	}
	return l, nil
}
