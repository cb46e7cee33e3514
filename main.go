package main

import (
	"errors"
	"flag"
	"log"

	"ColonyCommand/internal/config"
	"ColonyCommand/internal/server"
)

func main() {
	humans := flag.Int("humans", -1, "number of human commanders (1-4); omit to be asked")
	ais := flag.Int("ai", 1, "number of AI factions (0-4)")
	mapSize := flag.String("map", "small", "map size: small, medium or large")
	seed := flag.Int64("seed", 0, "map generation seed (0 picks one)")
	dataDir := flag.String("data", "", "directory with structures.json and ships.json (default: built-in)")
	settings := flag.String("settings", "", "path to settings.yaml (default: built-in)")
	observe := flag.String("observe", "", "address for the spectator websocket feed (e.g. :8080); empty disables")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.Humans = *humans
	cfg.AIs = *ais
	cfg.MapSize = *mapSize
	cfg.Seed = *seed
	cfg.DataDir = *dataDir
	cfg.SettingsPath = *settings
	cfg.ObserveAddr = *observe

	if err := server.StartApp(cfg); err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			log.Fatalf("bad configuration: %v", cfgErr)
		}
		log.Fatalf("%v", err)
	}
}
