package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sponsortrack/internal/app"
	"sponsortrack/internal/logger"
)

func main() {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// server migrate up|down [steps]|status
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := app.Migrate(ctx, os.Args[2:]); err != nil {
			log.WithError(err).Fatal("Migration error")
		}
		return
	}

	if err := app.Run(ctx); err != nil {
		log.WithError(err).Fatal("Application error")
	}
}
