package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/memefield/internal/app"
	"github.com/vancomm/memefield/internal/config"
	"github.com/vancomm/memefield/internal/field"
	"github.com/vancomm/memefield/internal/logging"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a config file (yaml, toml or json)")
	flag.StringVar(&configPath, "c", "", "shorthand for -config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log, err := logging.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up logging")
	}
	field.Log = log
	log.WithFields(cfg.Fields()).Debug("config loaded")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := app.New(log, cfg)
	if err := a.Run(ctx); err != nil {
		log.WithError(err).Error("server stopped")
		cancel()
		os.Exit(1)
	}
	log.Info("server stopped")
}
