package game

import "testing"

// TestFleetOrderSurvivesLargeSequences verifies creation order holds past
// the zero-padded id width, so oldest-first logic cannot be fooled by
// lexical id comparison once the sequence passes 999.
func TestFleetOrderSurvivesLargeSequences(t *testing.T) {
	s := newTestState(t, "p1")
	planet := addTestPlanet(t, s, "kepler_prime", "p1")
	for i := 0; i < 1001; i++ {
		s.NewFleet("p1", "", planet.ID)
	}

	fleets := s.FleetsOf("p1")
	if len(fleets) != 1001 {
		t.Fatalf("fleets: %d, want 1001", len(fleets))
	}
	for i := 1; i < len(fleets); i++ {
		if fleets[i-1].Seq >= fleets[i].Seq {
			t.Fatalf("fleet %s (seq %d) listed before %s (seq %d)",
				fleets[i-1].ID, fleets[i-1].Seq, fleets[i].ID, fleets[i].Seq)
		}
	}
	if fleets[0].ID != "fleet-001" {
		t.Errorf("oldest fleet: %s, want fleet-001", fleets[0].ID)
	}
	if last := fleets[len(fleets)-1]; last.Seq != 1001 {
		t.Errorf("newest fleet seq: %d, want 1001", last.Seq)
	}
}

// TestBattleTieBreakPastIDRollover verifies the oldest-fleet tie-break still
// favors the earlier fleet when its id no longer sorts first as a string.
func TestBattleTieBreakPastIDRollover(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	planet := addTestPlanet(t, s, "kepler_prime", "")
	s.fleetSeq = 998
	defender := addTestFleet(s, "p2", planet.ID, map[string]int{"interceptor": 3})
	attacker := addTestFleet(s, "p1", planet.ID, map[string]int{"interceptor": 3})
	if !(attacker.ID < defender.ID) {
		t.Fatalf("ids %s and %s do not exercise the rollover", defender.ID, attacker.ID)
	}

	results := s.ResolveBattles("p1")
	if len(results) != 1 {
		t.Fatalf("battles: %d, want 1", len(results))
	}
	if results[0].Winner != "p2" {
		t.Errorf("winner: %s, want the earlier fleet's owner p2", results[0].Winner)
	}
}
