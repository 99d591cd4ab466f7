// Package config loads boil's settings: built-in defaults, then an
// optional TOML file under the config directory, then BOIL_* env vars,
// each layer overriding the one before it. Flags still win over all of
// these at the call site.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/boil/pkg/errors"
	"github.com/arthur-debert/boil/pkg/logging"
	"github.com/arthur-debert/boil/pkg/paths"
)

// ConfigFileName is the TOML file read from the config directory.
const ConfigFileName = "config.toml"

// EnvPrefix namespaces the environment overrides (BOIL_EDITOR, ...).
const EnvPrefix = "BOIL_"

// Settings are the user-tunable knobs.
type Settings struct {
	// Editor is the fallback editor command when $EDITOR is unset.
	Editor string `koanf:"editor"`

	// Level is the default maximum listing depth; 0 means unbounded.
	Level int `koanf:"level"`

	// Output is the default output format name.
	Output string `koanf:"output"`
}

// Load builds Settings from defaults, the config file (when present),
// and the environment, in that order.
func Load() (*Settings, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	_ = k.Load(confmap.Provider(map[string]interface{}{
		"editor": "",
		"level":  0,
		"output": "auto",
	}, "."), nil)

	// 2. Config file, if one exists
	path := filepath.Join(paths.ConfigDir(), ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		log.Debug().Str("path", path).Msg("loaded config file")
	}

	// 3. Environment overrides: BOIL_EDITOR=vi becomes editor=vi
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}

	log.Debug().
		Str("editor", settings.Editor).
		Int("level", settings.Level).
		Str("output", settings.Output).
		Msg("settings loaded")
	return &settings, nil
}
