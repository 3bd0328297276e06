// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Shell configuration loaded through viper: defaults, optional yaml file,
// NSH_ environment variables and bound command line flags.

package control

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/momentics/nshring/api"
)

// Configuration keys.
const (
	KeyHistorySize = "history_size"
	KeyLineSize    = "line_size"
	KeyPrompt      = "prompt"
	KeyDispatcher  = "dispatcher"
	KeyLogLevel    = "log_level"
)

// Dispatcher strategies accepted by KeyDispatcher.
const (
	DispatcherFunc     = "func"
	DispatcherTable    = "table"
	DispatcherTableRef = "tableref"
)

// EnvPrefix prefixes environment overrides, e.g. NSH_HISTORY_SIZE.
const EnvPrefix = "nsh"

// Config holds shell settings.
type Config struct {
	HistorySize int    `mapstructure:"history_size"`
	LineSize    int    `mapstructure:"line_size"`
	Prompt      string `mapstructure:"prompt"`
	Dispatcher  string `mapstructure:"dispatcher"`
	LogLevel    string `mapstructure:"log_level"`
}

// NewViper returns a viper instance with defaults and env lookup set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyHistorySize, 16)
	v.SetDefault(KeyLineSize, 128)
	v.SetDefault(KeyPrompt, "nsh> ")
	v.SetDefault(KeyDispatcher, DispatcherTable)
	v.SetDefault(KeyLogLevel, "warn")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// Load reads configFile, or nsh.yaml from the working directory when
// configFile is empty, and decodes the result. A missing default file is
// not an error.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("nsh")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "failed to read config")
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the shell cannot be built from.
func (c Config) Validate() error {
	if c.HistorySize <= 0 {
		return api.WrapError(api.ErrCodeZeroCapacity, api.ErrZeroCapacity).
			WithContext(KeyHistorySize, c.HistorySize)
	}
	if c.LineSize <= 0 {
		return api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
			WithContext(KeyLineSize, c.LineSize)
	}
	switch c.Dispatcher {
	case DispatcherFunc, DispatcherTable, DispatcherTableRef:
	default:
		return api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
			WithContext(KeyDispatcher, c.Dispatcher)
	}
	return nil
}
