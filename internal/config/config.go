// Package config loads relalg's configuration from defaults, an optional
// relalg.yaml file, environment variables and CLI flags, layered in that
// precedence order. Grounded on the teacher's internal/cli/config/loader.go.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default values for the config surface, used to seed the confmap layer.
const (
	DefaultVocabularyPath = "vocabulary.txt"
	DefaultMaxDistance    = 2
	DefaultSuggestionCap  = 5
	DefaultListenAddr     = ":8080"
	DefaultLogFormat      = "text"
	DefaultLogLevel       = "info"
)

// envPrefix is the prefix environment-variable overrides must carry.
const envPrefix = "RELALG_"

// ConfigFileName and ConfigFileNameAlt are the two filenames searched for
// in the current directory when no explicit path is given.
const (
	ConfigFileName    = "relalg.yaml"
	ConfigFileNameAlt = "relalg.yml"
)

// Config is relalg's full configuration surface.
type Config struct {
	VocabularyPath string `koanf:"vocabulary_path"`
	MaxDistance    int    `koanf:"max_distance"`
	SuggestionCap  int    `koanf:"suggestion_cap"`
	ListenAddr     string `koanf:"listen_addr"`
	LogFormat      string `koanf:"log_format"`
	LogLevel       string `koanf:"log_level"`
}

// findConfigFile resolves which config file to load: an explicit path if
// given, else relalg.yaml, else relalg.yml, else none.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	if _, err := os.Stat(ConfigFileNameAlt); err == nil {
		return ConfigFileNameAlt
	}
	return ""
}

// Load builds a Config by layering, lowest precedence first: built-in
// defaults, an optional config file, RELALG_-prefixed environment
// variables, then explicitly-set CLI flags. flags may be nil, in which
// case only defaults/file/env apply.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"vocabulary_path": DefaultVocabularyPath,
		"max_distance":    DefaultMaxDistance,
		"suggestion_cap":  DefaultSuggestionCap,
		"listen_addr":     DefaultListenAddr,
		"log_format":      DefaultLogFormat,
		"log_level":       DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
