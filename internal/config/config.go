// Package config carries the runtime settings of the tourist guide CLI.
// Values are resolved as defaults, then JSON file overrides, then
// command-line flags, each later source taking precedence.
package config

import "time"

// Config holds runtime settings for the tourist guide CLI.
//
// Fields:
//   - StorePath: path of the local profile database.
//   - CatalogURL: URL of the static attraction JSON; when set it wins
//     over CatalogPath.
//   - CatalogPath: local attraction JSON file, used when CatalogURL is
//     empty.
//   - CatalogTimeout: how long the startup fetch may take.
type Config struct {
	StorePath      string
	CatalogURL     string
	CatalogPath    string
	CatalogTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "touristguide.db"
	c.CatalogURL = ""
	c.CatalogPath = "data/attraction.json"
	c.CatalogTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
