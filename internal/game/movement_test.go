package game

import "testing"

func twoPlanetState(t *testing.T, distance int) (*GameState, *Fleet) {
	t.Helper()
	s := newTestState(t, "p1")
	addTestPlanet(t, s, "kepler_prime", "p1")
	addTestPlanet(t, s, "tauron_reach", "")
	if err := s.Graph.AddEdge("kepler_prime", "tauron_reach", distance); err != nil {
		t.Fatalf("add edge: %v", err)
	}
	f := addTestFleet(s, "p1", "kepler_prime", map[string]int{"interceptor": 2})
	return s, f
}

// TestTravelTakesEdgeDistanceTurns verifies a fleet spends one turn per
// distance unit and docks with the arrival flag set.
func TestTravelTakesEdgeDistanceTurns(t *testing.T) {
	s, f := twoPlanetState(t, 2)
	if err := s.StartMove(f, "tauron_reach"); err != nil {
		t.Fatalf("start move: %v", err)
	}
	if f.Stationed() {
		t.Fatal("fleet still stationed after departure")
	}

	if arrived := s.AdvanceFleets("p1"); len(arrived) != 0 {
		t.Fatal("arrived a turn early")
	}
	arrived := s.AdvanceFleets("p1")
	if len(arrived) != 1 {
		t.Fatalf("arrivals: %d, want 1", len(arrived))
	}
	if !f.Stationed() || f.Location != "tauron_reach" {
		t.Errorf("fleet did not dock: stationed=%v location=%s", f.Stationed(), f.Location)
	}
	if !f.JustArrived {
		t.Error("arrival flag not set")
	}
}

// TestCancelMoveMirrorsTimeSpent verifies the return trip costs exactly the
// distance already covered.
func TestCancelMoveMirrorsTimeSpent(t *testing.T) {
	s, f := twoPlanetState(t, 5)
	if err := s.StartMove(f, "tauron_reach"); err != nil {
		t.Fatalf("start move: %v", err)
	}
	s.AdvanceFleets("p1")
	s.AdvanceFleets("p1") // two units covered, three remaining

	if err := s.CancelMove(f); err != nil {
		t.Fatalf("cancel move: %v", err)
	}
	if f.Transit.Origin != "tauron_reach" || f.Transit.Dest != "kepler_prime" {
		t.Errorf("endpoints not swapped: %s -> %s", f.Transit.Origin, f.Transit.Dest)
	}
	if f.Transit.Remaining != 2 {
		t.Errorf("return trip: %d turns, want 2", f.Transit.Remaining)
	}

	s.AdvanceFleets("p1")
	arrived := s.AdvanceFleets("p1")
	if len(arrived) != 1 || f.Location != "kepler_prime" {
		t.Errorf("fleet did not make it home: %v", f.Location)
	}
}

// TestCancelBeforeDepartureSnapsBack verifies a recall issued the same turn
// as the order returns the fleet instantly.
func TestCancelBeforeDepartureSnapsBack(t *testing.T) {
	s, f := twoPlanetState(t, 3)
	if err := s.StartMove(f, "tauron_reach"); err != nil {
		t.Fatalf("start move: %v", err)
	}
	if err := s.CancelMove(f); err != nil {
		t.Fatalf("cancel move: %v", err)
	}
	if !f.Stationed() || f.Location != "kepler_prime" {
		t.Errorf("fleet not back at origin: stationed=%v location=%s", f.Stationed(), f.Location)
	}
}

// TestMoveClearsStandingOrder verifies departure drops a bombard order.
func TestMoveClearsStandingOrder(t *testing.T) {
	s, f := twoPlanetState(t, 2)
	f.Order = OrderBombard
	if err := s.StartMove(f, "tauron_reach"); err != nil {
		t.Fatalf("start move: %v", err)
	}
	if f.Order != OrderNone {
		t.Error("bombard order survived departure")
	}
}

// TestMoveRequiresStationedFleet verifies an in-transit fleet cannot be
// redirected without a recall.
func TestMoveRequiresStationedFleet(t *testing.T) {
	s, f := twoPlanetState(t, 2)
	if err := s.StartMove(f, "tauron_reach"); err != nil {
		t.Fatalf("start move: %v", err)
	}
	if err := s.StartMove(f, "kepler_prime"); err == nil {
		t.Error("second move accepted while in transit")
	}
}
