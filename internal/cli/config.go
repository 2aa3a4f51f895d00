package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config holds user defaults read from ~/.config/cardforge/config.toml.
// Flags override config values; config values override built-in defaults.
//
//	webhook_url = "https://outlook.office.com/webhook/..."
//	target = "teams"
//	profiles = "/path/to/profiles.toml"
type config struct {
	WebhookURL string `toml:"webhook_url"`
	Target     string `toml:"target"`
	Profiles   string `toml:"profiles"`
}

// loadConfig reads the config file at path. A missing file is not an
// error: commands fall back to flags and built-in defaults.
func loadConfig(path string) (config, error) {
	var cfg config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfig loads the config from the default location, tolerating a
// missing home directory.
func defaultConfig() config {
	path, err := configPath()
	if err != nil {
		return config{}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return config{}
	}
	return cfg
}
