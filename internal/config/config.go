// Package config resolves scan settings from flags, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idelchi/filesum/internal/filesum"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FILESUM"

// DefaultDirName is the directory scanned under the home directory when none is configured.
const DefaultDirName = "kali-usb-creator-dev"

// Config holds the resolved settings.
type Config struct {
	// Dir is the directory to scan.
	Dir string `mapstructure:"dir"`
	// Top is the number of entries in the largest and oldest sections.
	Top int `mapstructure:"top"`
	// Debug enables debug logging.
	Debug bool `mapstructure:"debug"`
}

// Load builds a Config. Values come from flags that were set, then
// FILESUM_* environment variables, then defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}

	v.SetDefault("dir", filepath.Join(home, DefaultDirName))
	v.SetDefault("top", filesum.DefaultTopN)
	v.SetDefault("debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{"dir", "top", "debug"} {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("binding flag %q: %w", key, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg.Dir = ExpandHome(cfg.Dir, home)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports settings that cannot be used for a scan.
func (c *Config) Validate() error {
	if c.Top < 1 {
		return fmt.Errorf("top must be at least 1, got %d", c.Top)
	}

	if strings.TrimSpace(c.Dir) == "" {
		return errors.New("directory cannot be empty")
	}

	return nil
}

// ExpandHome replaces a leading "~" in path with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}

	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return filepath.Join(home, path[2:])
	}

	return path
}
