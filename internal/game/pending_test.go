package game

import (
	"errors"
	"testing"
)

func enqueueExtractor(t *testing.T, s *GameState, owner PlayerID, planet PlanetID) *PendingAction {
	t.Helper()
	def := s.Catalog.Structures["mineral_extractor"]
	a := &PendingAction{
		Player:      owner,
		Planet:      planet,
		Kind:        ActionBuild,
		Structure:   "mineral_extractor",
		TargetLevel: 1,
		Remaining:   def.BuildTime[0],
		Reserved:    FromConfig(def.Costs[0]),
	}
	if err := s.EnqueueAction(a); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	return a
}

// TestBuildCompletesWhenCountdownHitsZero verifies a queued structure ticks
// down over the owner's pre-turns and materializes in the same pass the
// countdown reaches zero.
func TestBuildCompletesWhenCountdownHitsZero(t *testing.T) {
	s := newTestState(t, "p1")
	planet := addTestPlanet(t, s, "kepler_prime", "p1")
	enqueueExtractor(t, s, "p1", planet.ID) // build time 2

	if done := s.TickActions("p1"); len(done) != 0 {
		t.Fatalf("completed after 1 tick: %d actions", len(done))
	}
	if planet.StructureLevel("mineral_extractor") != 0 {
		t.Fatal("structure appeared before countdown ended")
	}

	done := s.TickActions("p1")
	if len(done) != 1 {
		t.Fatalf("completed after 2 ticks: %d actions, want 1", len(done))
	}
	if planet.StructureLevel("mineral_extractor") != 1 {
		t.Errorf("level after completion: %d, want 1", planet.StructureLevel("mineral_extractor"))
	}
	if !planet.Stock.Reserved.IsZero() {
		t.Errorf("reservation not consumed: %s", planet.Stock.Reserved)
	}
	if len(s.PendingOf("p1")) != 0 {
		t.Errorf("queue not drained: %d actions left", len(s.PendingOf("p1")))
	}
}

// TestCancelRefundsReservation verifies cancelling returns the reserved cost
// and removes the action.
func TestCancelRefundsReservation(t *testing.T) {
	s := newTestState(t, "p1")
	planet := addTestPlanet(t, s, "kepler_prime", "p1")
	before := planet.Stock.Available
	a := enqueueExtractor(t, s, "p1", planet.ID)

	_, wasted, err := s.CancelAction("p1", a.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !wasted.IsZero() {
		t.Errorf("waste on a fresh cancel: %s", wasted)
	}
	if planet.Stock.Available != before {
		t.Errorf("available after cancel: %s, want %s", planet.Stock.Available, before)
	}
	if len(s.PendingOf("p1")) != 0 {
		t.Error("cancelled action still queued")
	}
}

// TestCancelUnknownID verifies cancelling a dead id is a typed error.
func TestCancelUnknownID(t *testing.T) {
	s := newTestState(t, "p1")
	addTestPlanet(t, s, "kepler_prime", "p1")

	_, _, err := s.CancelAction("p1", "no-such-action")
	var notFound *ErrActionNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("wrong error: %v", err)
	}
}

// TestShipsDeliverToOldestFleet verifies finished ships join the owner's
// oldest fleet stationed at the build planet.
func TestShipsDeliverToOldestFleet(t *testing.T) {
	s := newTestState(t, "p1")
	planet := addTestPlanet(t, s, "kepler_prime", "p1")
	first := addTestFleet(s, "p1", planet.ID, map[string]int{"interceptor": 1})
	addTestFleet(s, "p1", planet.ID, map[string]int{"interceptor": 1})

	a := &PendingAction{
		Player: "p1", Planet: planet.ID, Kind: ActionBuildShips,
		Ship: "interceptor", Count: 3, Remaining: 1,
		Reserved: Resources{Minerals: 300, Gas: 150},
	}
	if err := s.EnqueueAction(a); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	s.TickActions("p1")

	if first.Ships["interceptor"] != 4 {
		t.Errorf("oldest fleet has %d interceptors, want 4", first.Ships["interceptor"])
	}
}

// TestShipsFormNewFleetWhenNoneStationed verifies ship delivery with no
// fleet present creates one at the planet.
func TestShipsFormNewFleetWhenNoneStationed(t *testing.T) {
	s := newTestState(t, "p1")
	planet := addTestPlanet(t, s, "kepler_prime", "p1")

	a := &PendingAction{
		Player: "p1", Planet: planet.ID, Kind: ActionBuildShips,
		Ship: "interceptor", Count: 2, Remaining: 1,
		Reserved: Resources{Minerals: 200, Gas: 100},
	}
	if err := s.EnqueueAction(a); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	s.TickActions("p1")

	fleets := s.FleetsOfAt("p1", planet.ID)
	if len(fleets) != 1 {
		t.Fatalf("fleets at planet: %d, want 1", len(fleets))
	}
	if fleets[0].Ships["interceptor"] != 2 {
		t.Errorf("delivered ships: %d, want 2", fleets[0].Ships["interceptor"])
	}
}

// TestStructureJobsBlockEachOtherButShipsDoNot verifies one structure job
// per planet while ship orders queue freely alongside.
func TestStructureJobsBlockEachOtherButShipsDoNot(t *testing.T) {
	s := newTestState(t, "p1")
	planet := addTestPlanet(t, s, "kepler_prime", "p1")
	enqueueExtractor(t, s, "p1", planet.ID)

	if s.PendingAt(planet.ID) == nil {
		t.Fatal("structure job not visible")
	}
	ship := &PendingAction{
		Player: "p1", Planet: planet.ID, Kind: ActionBuildShips,
		Ship: "interceptor", Count: 1, Remaining: 2,
		Reserved: Resources{Minerals: 100, Gas: 50},
	}
	if err := s.EnqueueAction(ship); err != nil {
		t.Fatalf("ship order blocked by structure job: %v", err)
	}
	if got := s.PendingAt(planet.ID); got == nil || got.Kind != ActionBuild {
		t.Error("PendingAt should report the structure job only")
	}
}
