package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/touristguide/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   path of the local profile database
//	-u string   URL of the attraction JSON
//	-f string   local attraction JSON file
//	-t int      catalog fetch timeout in seconds
//
// Only the flags handled here are parsed; the rest of os.Args is filtered
// out with flagx.FilterArgs to avoid interfering with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-u", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local profile database")
	fs.StringVar(&cfg.CatalogURL, "u", cfg.CatalogURL, "URL of the attraction JSON")
	fs.StringVar(&cfg.CatalogPath, "f", cfg.CatalogPath, "local attraction JSON file")
	timeout := fs.Int("t", int(cfg.CatalogTimeout.Seconds()), "catalog fetch timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CatalogTimeout = time.Duration(*timeout) * time.Second
}
