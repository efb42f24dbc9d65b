// Package config loads vpndeck configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Keymap   KeymapConfig
	Sections SectionConfig
	UI       UIConfig
}

// KeymapConfig points at the persisted shortcut customizations.
type KeymapConfig struct {
	Path string
}

// SectionConfig holds the lazy-loading defaults screens start from.
type SectionConfig struct {
	Timeout  time.Duration
	Debounce time.Duration
	Cache    time.Duration
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowFooter bool
	Theme      string
}

// Load reads configuration from file and env. Env var overrides use prefix
// VPNDECK_. The config file is $VPNDECK_CONFIG or
// ~/.config/vpndeck/config.toml; a missing file yields the defaults.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("keymap.path", filepath.Join(os.Getenv("HOME"), ".config", "vpndeck", "keymap.toml"))
	v.SetDefault("sections.timeout", "10s")
	v.SetDefault("sections.debounce", "300ms")
	v.SetDefault("sections.cache", "30s")
	v.SetDefault("ui.show_footer", true)
	v.SetDefault("ui.theme", "default")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VPNDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vpndeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VPNDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
