package game

import (
	"fmt"
	"sort"
)

// GenerateMap populates the state with n named planets joined by a random
// spanning tree. Each new planet attaches to a uniformly chosen existing one
// with an edge distance in [1, maxDistance], so the galaxy is always fully
// connected and every route is reachable hop by hop.
func GenerateMap(s *GameState, n int) error {
	if n < 2 {
		return fmt.Errorf("map needs at least 2 planets, got %d", n)
	}
	gen := newNameGenerator(s.Rng, s.Settings.PlanetNameRoots, s.Settings.PlanetNameSuffixes)

	ids := make([]PlanetID, 0, n)
	for i := 0; i < n; i++ {
		name := gen.Next()
		id := PlanetID(NameToID(name))
		p := NewPlanet(id, name)
		s.Planets[id] = p
		s.Graph.AddPlanet(id)
		if i > 0 {
			anchor := ids[s.Rng.Intn(len(ids))]
			dist := 1 + s.Rng.Intn(s.Settings.MaxEdgeDistance)
			if err := s.Graph.AddEdge(id, anchor, dist); err != nil {
				return err
			}
		}
		ids = append(ids, id)
	}
	return nil
}

// SeedHomeworlds assigns one starting colony per player, spread over randomly
// chosen distinct planets. Each homeworld gets a founded colony plus the
// configured starting garrison.
func SeedHomeworlds(s *GameState) error {
	if len(s.Players) > len(s.Planets) {
		return fmt.Errorf("%d players need %d planets, map has %d", len(s.Players), len(s.Players), len(s.Planets))
	}
	ids := make([]PlanetID, 0, len(s.Planets))
	for id := range s.Planets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	s.Rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	for i, pl := range s.Players {
		planet := s.Planets[ids[i]]
		planet.Colonize(pl.ID, capitalStructure, s.Catalog)
		if len(s.Settings.StartingGarrison) > 0 {
			f := s.NewFleet(pl.ID, "Home Guard", planet.ID)
			for ship, count := range s.Settings.StartingGarrison {
				f.AddShips(ship, count)
			}
		}
	}
	return nil
}
