package config

import (
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/dmitrijs2005/touristguide/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is given in seconds.
type JsonConfig struct {
	StorePath             string `json:"store_path"`
	CatalogURL            string `json:"catalog_url"`
	CatalogPath           string `json:"catalog_path"`
	CatalogTimeoutSeconds int    `json:"catalog_timeout_seconds"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent flags mean no JSON is loaded. Only fields
// present in the file override the existing values. Read and unmarshal
// errors panic; configuration is resolved before any user interaction.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.CatalogURL != "" {
		cfg.CatalogURL = jc.CatalogURL
	}
	if jc.CatalogPath != "" {
		cfg.CatalogPath = jc.CatalogPath
	}
	if jc.CatalogTimeoutSeconds > 0 {
		cfg.CatalogTimeout = time.Duration(jc.CatalogTimeoutSeconds) * time.Second
	}
}
