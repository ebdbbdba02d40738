// Command server runs the Sportfolio ladder exchange: it wires the config,
// snapshot storage, trading engine and HTTP API together and serves until
// interrupted.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/tysonmb/sportfolio/internal/api"
	"github.com/tysonmb/sportfolio/internal/config"
	"github.com/tysonmb/sportfolio/internal/engine"
	"github.com/tysonmb/sportfolio/internal/storage"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Environment.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Environment.LogLevel, err)
	}
	logger.SetLevel(level)

	store, err := storage.NewStorage(cfg.Storage.Path)
	if err != nil {
		logger.WithError(err).Fatal("initializing storage")
	}
	breakered := storage.NewCircuitBreakerStorage(store)

	svc, err := engine.NewService(breakered, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("initializing engine")
	}

	server := api.NewServer(api.Config{
		Port:      cfg.Server.Port,
		AuthToken: cfg.Server.AuthToken,
	}, svc, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(ctx)
	})
	g.Go(func() error {
		select {
		case sig := <-sigChan:
			logger.WithField("signal", sig).Info("shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	logger.WithFields(logrus.Fields{
		"admin":  cfg.League.Admin,
		"rounds": cfg.League.TotalRounds,
		"port":   cfg.Server.Port,
	}).Info("sportfolio exchange starting")

	if err := g.Wait(); err != nil {
		logger.WithError(err).Fatal("server error")
	}
	logger.Info("server stopped")
}
