// Package config loads linkify's layered configuration: embedded defaults
// first, then the user's config file when one exists.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/konradko/linkify/pkg/errors"
)

// Config is the fully merged configuration.
type Config struct {
	Paths  PathsConfig  `koanf:"paths" toml:"paths"`
	Output OutputConfig `koanf:"output" toml:"output"`
}

// PathsConfig controls candidate classification.
type PathsConfig struct {
	// AbsolutePrefixes are the recognized roots for absolute candidates.
	AbsolutePrefixes []string `koanf:"absolute_prefixes" toml:"absolute_prefixes"`
}

// OutputConfig controls when hyperlinks are emitted.
type OutputConfig struct {
	// When is "auto", "always" or "never".
	When string `koanf:"when" toml:"when"`
}

// UserConfigPath returns the default location of the user's config file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "linkify", "config.toml")
}

// Load builds the configuration. The embedded defaults always load; the
// file at path layers on top when it exists. An empty path means the
// default user location, where absence is not an error. An explicitly
// given path must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := validateUserFile(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse config file").WithDetail("path", path)
		}
	} else if explicit {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "config file not found").WithDetail("path", path)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	return &cfg, nil
}

// validateUserFile decodes the user's file strictly, so a typoed key fails
// loudly instead of being silently ignored by the merge.
func validateUserFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to read config file").WithDetail("path", path)
	}

	dec := tomlv2.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var strict Config
	if err := dec.Decode(&strict); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid config file").WithDetail("path", path)
	}
	return nil
}
