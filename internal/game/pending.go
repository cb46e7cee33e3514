package game

import (
	"fmt"

	"github.com/google/uuid"

	"ColonyCommand/internal/config"
)

// ActionKind says what a pending action produces when its countdown ends.
type ActionKind int

const (
	ActionBuild ActionKind = iota
	ActionUpgrade
	ActionBuildShips
)

func (k ActionKind) String() string {
	switch k {
	case ActionBuild:
		return "build"
	case ActionUpgrade:
		return "upgrade"
	case ActionBuildShips:
		return "build-ships"
	default:
		return "unknown"
	}
}

// PendingAction is a queued construction job. Its resource cost was reserved
// when it was enqueued; completion consumes the reservation, cancellation
// refunds it.
type PendingAction struct {
	ID     string
	Player PlayerID
	Planet PlanetID
	Kind   ActionKind

	Structure config.StructureID
	// TargetLevel is the structure level reached on completion.
	TargetLevel int

	Ship  config.ShipID
	Count int

	Remaining int
	Reserved  Resources
}

func (a *PendingAction) Describe() string {
	switch a.Kind {
	case ActionBuildShips:
		return fmt.Sprintf("%d %s at %s (%d turns left)", a.Count, a.Ship, a.Planet, a.Remaining)
	default:
		return fmt.Sprintf("%s %s -> level %d at %s (%d turns left)", a.Kind, a.Structure, a.TargetLevel, a.Planet, a.Remaining)
	}
}

// ErrActionNotFound is returned when a cancel names no live pending action.
type ErrActionNotFound struct {
	ID string
}

func (e *ErrActionNotFound) Error() string {
	return fmt.Sprintf("no pending action %q", e.ID)
}

// EnqueueAction reserves the cost on the planet's stockpile and appends the
// action to the owner's queue. The action id is a fresh uuid.
func (s *GameState) EnqueueAction(a *PendingAction) error {
	planet := s.Planets[a.Planet]
	if err := planet.Stock.Reserve(planet.Name, a.Reserved); err != nil {
		return err
	}
	a.ID = uuid.NewString()
	s.Actions[a.Player] = append(s.Actions[a.Player], a)
	return nil
}

// PendingAt reports whether the planet already has a live build or upgrade
// job. Planets run one structure job at a time; ship jobs do not block.
func (s *GameState) PendingAt(planet PlanetID) *PendingAction {
	for _, actions := range s.Actions {
		for _, a := range actions {
			if a.Planet == planet && a.Kind != ActionBuildShips {
				return a
			}
		}
	}
	return nil
}

// PendingOf returns the owner's queue in insertion order.
func (s *GameState) PendingOf(owner PlayerID) []*PendingAction {
	return s.Actions[owner]
}

// CancelAction removes the identified action from the owner's queue and
// refunds its reservation. The refund is clamped to the planet's storage
// headroom; the wasted remainder is returned for reporting.
func (s *GameState) CancelAction(owner PlayerID, id string) (*PendingAction, Resources, error) {
	queue := s.Actions[owner]
	for i, a := range queue {
		if a.ID != id {
			continue
		}
		s.Actions[owner] = append(queue[:i], queue[i+1:]...)
		wasted := s.Planets[a.Planet].Stock.Refund(a.Reserved)
		return a, wasted, nil
	}
	return nil, Resources{}, &ErrActionNotFound{ID: id}
}

// TickActions advances the owner's queue by one turn during their pre-turn.
// An action reaching zero in this pass completes immediately: the reserved
// cost is consumed and the result materializes before the owner acts.
// Completed actions are returned in insertion order.
func (s *GameState) TickActions(owner PlayerID) []*PendingAction {
	var done []*PendingAction
	var live []*PendingAction
	for _, a := range s.Actions[owner] {
		a.Remaining--
		if a.Remaining > 0 {
			live = append(live, a)
			continue
		}
		s.completeAction(a)
		done = append(done, a)
	}
	s.Actions[owner] = live
	return done
}

func (s *GameState) completeAction(a *PendingAction) {
	planet := s.Planets[a.Planet]
	planet.Stock.Consume(a.Reserved)

	switch a.Kind {
	case ActionBuild, ActionUpgrade:
		planet.SetStructureLevel(a.Structure, a.TargetLevel, s.Catalog)
	case ActionBuildShips:
		f := s.deliveryFleet(a.Player, a.Planet)
		f.AddShips(a.Ship, a.Count)
	}
}

// deliveryFleet picks where freshly built ships go: the owner's oldest
// stationed fleet at the planet, or a new fleet when none is present.
func (s *GameState) deliveryFleet(owner PlayerID, planet PlanetID) *Fleet {
	if fleets := s.FleetsOfAt(owner, planet); len(fleets) > 0 {
		return fleets[0]
	}
	return s.NewFleet(owner, "", planet)
}
