// Package config holds the configuration of the fdkeys command.
package config

import (
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of environment variables that override the
// configuration, as in FDKEYS_LOG_LEVEL.
const EnvPrefix = "FDKEYS"

// Configuration is the root of the configuration.
type Configuration struct {
	Log    Log
	Output Output
}

// Log holds configuration for logging.
type Log struct {
	// Level is one of debug, info, warn or error.
	Level string
	// Formatter is console or json.
	Formatter string
}

// Output holds configuration for the results of an analysis.
type Output struct {
	// Format is one of text, table, json or yaml.
	Format string
	// Workers is the number of files analyzed at the same time.
	Workers int
}

// NewConfiguration creates new default configuration.
func NewConfiguration() Configuration {
	return Configuration{
		Log:    NewLog(),
		Output: NewOutput(),
	}
}

// NewLog creates new default configuration for logging.
func NewLog() Log {
	return Log{
		Level:     "info",
		Formatter: "console",
	}
}

// NewOutput creates new default configuration for results.
func NewOutput() Output {
	return Output{
		Format:  "text",
		Workers: 4,
	}
}

// Holder loads a Configuration from a file, the environment and command
// line flags, in increasing order of priority.
type Holder struct {
	Configuration *Configuration
	viper         *viper.Viper
	path          string
}

// NewHolder creates a Holder for the configuration file at path.  An
// empty path means defaults and environment only.
func NewHolder(path string) *Holder {
	cfg := NewConfiguration()
	return &Holder{
		Configuration: &cfg,
		viper:         viper.New(),
		path:          path,
	}
}

// BindFlag makes the command line flag override the configuration key, a
// dotted path like output.format.
func (h *Holder) BindFlag(key string, flag *pflag.Flag) error {
	return errors.Wrapf(h.viper.BindPFlag(key, flag), "failed to bind flag '%s'", key)
}

// Load reads the configuration.
func (h *Holder) Load() error {
	jww.SetStdoutThreshold(jww.LevelError)

	def := NewConfiguration()
	h.viper.SetDefault("log.level", def.Log.Level)
	h.viper.SetDefault("log.formatter", def.Log.Formatter)
	h.viper.SetDefault("output.format", def.Output.Format)
	h.viper.SetDefault("output.workers", def.Output.Workers)

	h.viper.SetEnvPrefix(EnvPrefix)
	h.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	h.viper.AutomaticEnv()

	if h.path != "" {
		h.viper.SetConfigFile(h.path)
		if err := h.viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to load configuration from file '%s'", h.path)
		}
	}

	cfg := NewConfiguration()
	if err := h.viper.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "failed to unmarshal configuration")
	}
	if cfg.Output.Workers < 1 {
		return errors.Errorf("output.workers must be positive, got %d", cfg.Output.Workers)
	}
	h.Configuration = &cfg
	return nil
}

// ToString returns the configuration as YAML.
func ToString(cfg *Configuration) string {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return "failed to marshal configuration: " + err.Error()
	}
	return string(out)
}
