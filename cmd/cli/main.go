package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophpos/internal/buildinfo"
	"github.com/dmitrijs2005/gophpos/internal/cli"
	"github.com/dmitrijs2005/gophpos/internal/config"
	"github.com/dmitrijs2005/gophpos/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
