// Command reset_state rewrites the snapshot file with a fresh season.
// Emergency use only; requires -confirm RESET.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tysonmb/sportfolio/internal/config"
	"github.com/tysonmb/sportfolio/internal/engine"
	"github.com/tysonmb/sportfolio/internal/models"
	"github.com/tysonmb/sportfolio/internal/storage"
)

func main() {
	var configPath, confirm string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&confirm, "confirm", "", "Must be RESET to proceed")
	flag.Parse()

	if confirm != engine.ResetConfirmToken {
		fmt.Fprintln(os.Stderr, "refusing to reset: pass -confirm RESET")
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.NewStorage(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	fresh := models.NewGameState(cfg.Seeds(), cfg.League.StartingCash)
	if err := store.Save(fresh); err != nil {
		log.Fatalf("Failed to write fresh season: %v", err)
	}
	fmt.Printf("Fresh season written to %s (%d players, %d teams)\n",
		cfg.Storage.Path, len(fresh.Players), len(fresh.Ladder))
}
