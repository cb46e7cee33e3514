package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"ColonyCommand/internal/config"
)

const capitalStructure = "planetary_capital"

// GameState owns the whole mutable world. It is passed explicitly through
// the scheduler, the command pipeline, and the combat resolver; there is no
// ambient game instance. The turn loop guarantees a single writer.
type GameState struct {
	Catalog  *config.Catalog
	Settings config.Settings

	Graph   *WorldGraph
	Planets map[PlanetID]*Planet

	// Players is the fixed turn queue; order never changes for the whole game.
	Players []*Player
	current int

	Fleets map[FleetID]*Fleet

	// Actions holds each player's pending-action queue in insertion order.
	Actions map[PlayerID][]*PendingAction

	// Cycle counts completed rounds of the full player queue.
	Cycle int

	Rng *rand.Rand

	fleetSeq int
}

func NewGameState(cat *config.Catalog, settings config.Settings, rng *rand.Rand) *GameState {
	return &GameState{
		Catalog:  cat,
		Settings: settings,
		Graph:    NewWorldGraph(),
		Planets:  make(map[PlanetID]*Planet),
		Fleets:   make(map[FleetID]*Fleet),
		Actions:  make(map[PlayerID][]*PendingAction),
		Rng:      rng,
	}
}

func (s *GameState) CurrentPlayer() *Player {
	return s.Players[s.current]
}

// AdvancePlayer moves the turn pointer exactly one position, wrapping to the
// queue head and bumping the cycle counter on wrap.
func (s *GameState) AdvancePlayer() {
	s.current++
	if s.current >= len(s.Players) {
		s.current = 0
		s.Cycle++
	}
}

func (s *GameState) Player(id PlayerID) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *GameState) PlayerName(id PlayerID) string {
	if p := s.Player(id); p != nil {
		return p.Name
	}
	return string(id)
}

// Planet resolves an id, nil when unknown.
func (s *GameState) Planet(id PlanetID) *Planet {
	return s.Planets[id]
}

// PlanetByName resolves a display name or id, case-insensitively.
func (s *GameState) PlanetByName(name string) *Planet {
	id := NameToID(name)
	if p, ok := s.Planets[PlanetID(id)]; ok {
		return p
	}
	return nil
}

// NameToID normalizes a display name into the identifier form used as map
// and graph keys: lower case with underscores for spaces.
func NameToID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// PlanetsOf returns the planets owned by player, sorted by id.
func (s *GameState) PlanetsOf(owner PlayerID) []*Planet {
	var out []*Planet
	for _, p := range s.Planets {
		if p.Owner == owner {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *GameState) OwnedPlanetCount(owner PlayerID) int {
	n := 0
	for _, p := range s.Planets {
		if p.Owner == owner {
			n++
		}
	}
	return n
}

// ActiveOwners returns the distinct players still holding at least one
// planet, in turn-queue order.
func (s *GameState) ActiveOwners() []*Player {
	var out []*Player
	for _, pl := range s.Players {
		if s.OwnedPlanetCount(pl.ID) > 0 {
			out = append(out, pl)
		}
	}
	return out
}

// Fleet resolves a fleet id, nil when unknown.
func (s *GameState) Fleet(id FleetID) *Fleet {
	return s.Fleets[id]
}

// FleetsOf returns a player's fleets in creation order, oldest first.
func (s *GameState) FleetsOf(owner PlayerID) []*Fleet {
	var out []*Fleet
	for _, f := range s.Fleets {
		if f.Owner == owner {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// FleetsAt returns every stationed fleet at a planet in creation order.
func (s *GameState) FleetsAt(planet PlanetID) []*Fleet {
	var out []*Fleet
	for _, f := range s.Fleets {
		if f.Stationed() && f.Location == planet {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// FleetsOfAt returns owner's stationed fleets at a planet in creation order.
func (s *GameState) FleetsOfAt(owner PlayerID, planet PlanetID) []*Fleet {
	var out []*Fleet
	for _, f := range s.FleetsAt(planet) {
		if f.Owner == owner {
			out = append(out, f)
		}
	}
	return out
}

// NewFleet registers an empty stationed fleet with the next sequential id.
// The sequence number travels with the fleet so creation order survives any
// id formatting.
func (s *GameState) NewFleet(owner PlayerID, name string, location PlanetID) *Fleet {
	s.fleetSeq++
	id := FleetID(fmt.Sprintf("fleet-%03d", s.fleetSeq))
	if name == "" {
		name = string(id)
	}
	f := &Fleet{
		ID:       id,
		Name:     name,
		Owner:    owner,
		Seq:      s.fleetSeq,
		Location: location,
		Ships:    make(map[config.ShipID]int),
	}
	s.Fleets[id] = f
	return f
}

// FleetByName resolves a fleet by id or display name for the given owner.
func (s *GameState) FleetByName(owner PlayerID, name string) *Fleet {
	norm := NameToID(name)
	for _, f := range s.FleetsOf(owner) {
		if string(f.ID) == norm || NameToID(f.Name) == norm {
			return f
		}
	}
	return nil
}

// RemoveFleet drops a fleet from the world (combat loss, merge, disband).
func (s *GameState) RemoveFleet(id FleetID) {
	delete(s.Fleets, id)
}
