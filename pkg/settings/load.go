package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/tetris-reserve/pkg/common/apperr"
)

const (
	DefaultQueueCapacity = 5
	DefaultStackCapacity = 3

	// CodeInvalidConfig is the apperr code for configs rejected by validation.
	CodeInvalidConfig = 2001
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Game: Game{
			QueueCapacity: DefaultQueueCapacity,
			StackCapacity: DefaultStackCapacity,
			Kinds:         []string{"I", "O", "T", "L"},
			FirstID:       0,
		},
		Logger: Logger{
			LogLevel:    "info",
			FileLogName: "logs/tetris-reserve.log",
			MaxBackups:  3,
			MaxAge:      7,
			MaxSize:     10,
			Compress:    false,
		},
	}
}

// Load reads a YAML config from path on top of Default and validates it.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal config")
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its validation tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return apperr.MapError("settings", err, CodeInvalidConfig, apperr.MsgInvalid)
	}
	return nil
}
