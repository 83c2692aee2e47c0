package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/filedesk/internal/client/cli"
	"github.com/dmitrijs2005/filedesk/internal/client/config"
	"github.com/dmitrijs2005/filedesk/internal/flagx"
	"github.com/dmitrijs2005/filedesk/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := app.Run(ctx, flagx.Positional(os.Args[1:], config.Flags))
	stop()

	os.Exit(code)
}
