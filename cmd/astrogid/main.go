package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/astrogid/astrogid/internal/buildinfo"
	"github.com/astrogid/astrogid/internal/cli"
	"github.com/astrogid/astrogid/internal/config"
	"github.com/astrogid/astrogid/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
