// Package config holds process configuration, loaded from environment
// variables (UKEIRE_ prefix) and optional command-line overrides.
package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the process configuration.
type Config struct {
	// DataPath is the directory holding static data files (uradora.txt).
	DataPath string
	// Debug enables debug-level logging.
	Debug bool
}

// Load populates the config from the environment and from args of the form
// key=value (data-path=/x/y, debug=true).
func (c *Config) Load(args []string) error {
	v := viper.New()
	v.SetEnvPrefix("ukeire")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("data-path", "./data")
	v.SetDefault("debug", false)

	for _, arg := range args {
		k, val, found := strings.Cut(arg, "=")
		if found {
			v.Set(strings.TrimPrefix(k, "--"), val)
		}
	}

	c.DataPath = v.GetString("data-path")
	c.Debug = v.GetBool("debug")
	return nil
}

// AdjustRelativePaths anchors relative data paths at the executable's
// directory, so the binary finds its data files no matter where it is
// invoked from.
func (c *Config) AdjustRelativePaths(exPath string) {
	if !filepath.IsAbs(c.DataPath) {
		c.DataPath = filepath.Join(exPath, c.DataPath)
	}
}

// UradoraTablePath is the location of the uradora distribution table.
func (c *Config) UradoraTablePath() string {
	return filepath.Join(c.DataPath, "uradora.txt")
}
