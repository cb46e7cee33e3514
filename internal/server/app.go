package server

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"ColonyCommand/internal/command"
	"ColonyCommand/internal/config"
	"ColonyCommand/internal/game"
)

type AppConfig struct {
	// Humans of -1 means ask interactively.
	Humans  int
	AIs     int
	MapSize string

	// Seed of 0 means derive one from the clock.
	Seed int64

	// DataDir overrides the embedded catalog; SettingsPath the embedded
	// settings. Empty uses the defaults compiled in.
	DataDir      string
	SettingsPath string

	// ObserveAddr enables the spectator websocket feed when non-empty.
	ObserveAddr string
}

func DefaultAppConfig() AppConfig {
	return AppConfig{Humans: -1, AIs: 1, MapSize: "small"}
}

// StartApp loads configuration, assembles a game, and runs it to its end.
func StartApp(cfg AppConfig) error {
	catalog, err := config.LoadCatalog(cfg.DataDir)
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return err
	}

	console := NewConsole(os.Stdin, os.Stdout)
	if cfg.Humans < 0 {
		choices, err := console.PromptSetup(settings.MapSizes)
		if err != nil {
			return err
		}
		cfg.Humans, cfg.AIs, cfg.MapSize = choices.Humans, choices.AIs, choices.MapSize
	}
	planetCount, ok := settings.MapSizes[cfg.MapSize]
	if !ok {
		return fmt.Errorf("unknown map size %q", cfg.MapSize)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("assembling game: %d commanders, %d AI, %q map (%d planets), seed %d",
		cfg.Humans, cfg.AIs, cfg.MapSize, planetCount, seed)

	state, strategies, err := assembleGame(catalog, settings, rng, cfg.Humans, cfg.AIs, planetCount)
	if err != nil {
		return err
	}

	var hub *ObserverHub
	if cfg.ObserveAddr != "" {
		hub = StartObserverFeed(cfg.ObserveAddr)
	}

	return runGame(state, strategies, console, hub)
}

// assembleGame builds the world: players on shuffled callsigns, the star
// map, and one seeded homeworld per player.
func assembleGame(catalog *config.Catalog, settings config.Settings, rng *rand.Rand, humans, ais, planetCount int) (*game.GameState, map[game.PlayerID]game.Strategy, error) {
	state := game.NewGameState(catalog, settings, rng)

	callsigns := append([]string(nil), settings.PlayerCallsigns...)
	rng.Shuffle(len(callsigns), func(i, j int) { callsigns[i], callsigns[j] = callsigns[j], callsigns[i] })
	strategies := make(map[game.PlayerID]game.Strategy)
	for i := 0; i < humans+ais; i++ {
		name := fmt.Sprintf("Commander %d", i+1)
		if len(callsigns) > 0 {
			name = callsigns[i%len(callsigns)]
		}
		p := &game.Player{
			ID:   game.PlayerID(fmt.Sprintf("player-%d", i+1)),
			Name: name,
			AI:   i >= humans,
		}
		state.Players = append(state.Players, p)
		if p.AI {
			strategies[p.ID] = game.NewExpanderStrategy()
		}
	}

	if err := game.GenerateMap(state, planetCount); err != nil {
		return nil, nil, err
	}
	if err := game.SeedHomeworlds(state); err != nil {
		return nil, nil, err
	}
	return state, strategies, nil
}

// runGame drives the scheduler until a victor emerges.
func runGame(state *game.GameState, strategies map[game.PlayerID]game.Strategy, console *Console, hub *ObserverHub) error {
	scheduler := game.NewScheduler(state)
	runner := &command.Runner{State: state}

	for {
		report := scheduler.BeginTurn()
		console.RenderReport(state, report)
		if hub != nil {
			hub.BroadcastReport(report)
		}

		player := state.CurrentPlayer()
		if player.AI {
			runAITurn(runner, state, player, strategies[player.ID])
		} else if err := runHumanTurn(runner, console, player); err != nil {
			return err
		}

		scheduler.EndTurn(report)
		if scheduler.GameOver() {
			winner := state.PlayerName(scheduler.Winner)
			console.Printf("\n*** %s rules the galaxy ***\n", winner)
			if hub != nil {
				hub.BroadcastGameOver(scheduler.Winner, winner)
			}
			return nil
		}
	}
}

func runHumanTurn(runner *command.Runner, console *Console, player *game.Player) error {
	for {
		line, err := console.ReadLine(fmt.Sprintf("[%s] > ", player.Name))
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("input closed mid-game")
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		outcome, err := runner.Run(player.ID, line)
		if err != nil {
			console.Printf("ERROR: %v\n", err)
			continue
		}
		console.Printf("%s\n", outcome.Message)
		if outcome.EndTurn {
			return nil
		}
	}
}

// runAITurn feeds the strategy's plan through the same pipeline humans use.
// Rejected lines are logged and skipped; the turn always ends even if the
// plan never says so.
func runAITurn(runner *command.Runner, state *game.GameState, player *game.Player, strategy game.Strategy) {
	if strategy == nil {
		return
	}
	budget := state.Settings.MaxAICommandsPerTurn
	for i, line := range strategy.Plan(state, player.ID) {
		if i >= budget {
			break
		}
		outcome, err := runner.Run(player.ID, line)
		if err != nil {
			log.Printf("ai %s: %q rejected: %v", player.Name, line, err)
			continue
		}
		log.Printf("ai %s: %s", player.Name, outcome.Message)
		if outcome.EndTurn {
			return
		}
	}
}
