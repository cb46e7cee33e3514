package game

import (
	"math/rand"
	"testing"

	"ColonyCommand/internal/config"
)

// newTestState builds a state on the embedded catalog and settings with a
// fixed rng seed, one player per id, and no planets.
func newTestState(t *testing.T, players ...PlayerID) *GameState {
	t.Helper()
	cat, err := config.LoadCatalog("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	settings, err := config.LoadSettings("")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	s := NewGameState(cat, settings, rand.New(rand.NewSource(1)))
	for _, id := range players {
		s.Players = append(s.Players, &Player{ID: id, Name: string(id)})
	}
	return s
}

// addTestPlanet registers a bare planet; owner != "" also founds a colony
// with a level-1 capital and full stores.
func addTestPlanet(t *testing.T, s *GameState, id PlanetID, owner PlayerID) *Planet {
	t.Helper()
	p := NewPlanet(id, string(id))
	s.Planets[id] = p
	s.Graph.AddPlanet(id)
	if owner != "" {
		p.Colonize(owner, "planetary_capital", s.Catalog)
	}
	return p
}

func addTestFleet(s *GameState, owner PlayerID, at PlanetID, ships map[config.ShipID]int) *Fleet {
	f := s.NewFleet(owner, "", at)
	for kind, n := range ships {
		f.AddShips(kind, n)
	}
	return f
}
