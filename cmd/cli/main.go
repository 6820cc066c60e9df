package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/dmitrijs2005/touristguide/internal/app/cli"
	"github.com/dmitrijs2005/touristguide/internal/config"
	"github.com/dmitrijs2005/touristguide/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg, logging.NewSlogLogger(slog.Default()))

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
