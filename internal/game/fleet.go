package game

import (
	"fmt"
	"sort"

	"ColonyCommand/internal/config"
)

type FleetID string

// FleetOrder is a standing order carried between turns.
type FleetOrder int

const (
	OrderNone FleetOrder = iota
	OrderBombard
)

// Transit records a fleet's position on a graph edge. Remaining counts down
// one distance unit per turn, so total travel time equals the edge weight.
type Transit struct {
	Origin    PlanetID `json:"origin"`
	Dest      PlanetID `json:"dest"`
	Distance  int      `json:"distance"`
	Remaining int      `json:"remaining"`
}

// Fleet is a group of ships under one owner. A fleet is either stationed at
// exactly one planet (Transit nil, Location set) or fully in transit on
// exactly one edge (Transit non-nil) — never both.
type Fleet struct {
	ID    FleetID
	Name  string
	Owner PlayerID

	// Seq is the fleet's creation number; lower means older. Ordering and
	// the combat tie-break use it rather than the id string.
	Seq int

	Location PlanetID
	Transit  *Transit

	// Ships maps ship kind to count.
	Ships map[config.ShipID]int

	// JustArrived is set when transit completes and cleared at the start of
	// the owner's next pre-turn. A just-arrived fleet can be attacked but
	// cannot be given a bombard or colonize order that same turn.
	JustArrived bool

	Order FleetOrder
}

func (f *Fleet) Stationed() bool { return f.Transit == nil }

func (f *Fleet) ShipCount() int {
	total := 0
	for _, n := range f.Ships {
		total += n
	}
	return total
}

func (f *Fleet) IsEmpty() bool { return f.ShipCount() == 0 }

func (f *Fleet) AddShips(kind config.ShipID, count int) {
	if count <= 0 {
		return
	}
	if f.Ships == nil {
		f.Ships = make(map[config.ShipID]int)
	}
	f.Ships[kind] += count
}

// RemoveShips takes count ships of kind out of the fleet, failing without
// mutation if the fleet holds fewer.
func (f *Fleet) RemoveShips(kind config.ShipID, count int) error {
	if count <= 0 {
		return fmt.Errorf("ship count must be positive")
	}
	have := f.Ships[kind]
	if have < count {
		return fmt.Errorf("fleet %s has %d %s, cannot remove %d", f.ID, have, kind, count)
	}
	if have == count {
		delete(f.Ships, kind)
	} else {
		f.Ships[kind] = have - count
	}
	return nil
}

// Kinds returns the fleet's ship kinds in sorted order for stable output.
func (f *Fleet) Kinds() []config.ShipID {
	kinds := make([]config.ShipID, 0, len(f.Ships))
	for kind := range f.Ships {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// BombardPower sums the bombardment stat across the fleet.
func (f *Fleet) BombardPower(cat *config.Catalog) int {
	total := 0
	for kind, count := range f.Ships {
		if def, ok := cat.Ships[kind]; ok {
			total += def.Bombardment * count
		}
	}
	return total
}

// HasColonizer reports whether the fleet carries at least one colony ship.
func (f *Fleet) HasColonizer(cat *config.Catalog) bool {
	for kind, count := range f.Ships {
		if count > 0 {
			if def, ok := cat.Ships[kind]; ok && def.Colonizer {
				return true
			}
		}
	}
	return false
}

// ConsumeColonizer removes one colony ship, preferring the sorted-first kind
// so the choice is deterministic. Returns the consumed kind.
func (f *Fleet) ConsumeColonizer(cat *config.Catalog) (config.ShipID, bool) {
	for _, kind := range f.Kinds() {
		if def, ok := cat.Ships[kind]; ok && def.Colonizer && f.Ships[kind] > 0 {
			_ = f.RemoveShips(kind, 1)
			return kind, true
		}
	}
	return "", false
}
