package game

import (
	"strings"
	"testing"
)

// TestExpanderAlwaysEndsItsTurn verifies every plan terminates with an
// end-turn command.
func TestExpanderAlwaysEndsItsTurn(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	addTestPlanet(t, s, "kepler_prime", "p1")
	addTestPlanet(t, s, "tauron_reach", "p2")

	plan := NewExpanderStrategy().Plan(s, "p1")
	if len(plan) == 0 || plan[len(plan)-1] != "end" {
		t.Errorf("plan does not end the turn: %v", plan)
	}
}

// TestExpanderClimbsTheBuildLadder verifies the first structure ordered on a
// fresh colony is the bottom ladder rung.
func TestExpanderClimbsTheBuildLadder(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	addTestPlanet(t, s, "kepler_prime", "p1")
	addTestPlanet(t, s, "tauron_reach", "p2")

	plan := NewExpanderStrategy().Plan(s, "p1")
	if len(plan) < 2 || plan[0] != "build kepler_prime mineral_extractor" {
		t.Errorf("first order: %v", plan)
	}
}

// TestExpanderBesiegesShieldedWorlds verifies a bomber fleet parked over a
// shielded enemy planet is put on a standing bombard order.
func TestExpanderBesiegesShieldedWorlds(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	addTestPlanet(t, s, "kepler_prime", "p1")
	target := addTestPlanet(t, s, "tauron_reach", "p2")
	target.SetStructureLevel("defense_shield", 1, s.Catalog)
	f := addTestFleet(s, "p1", target.ID, map[string]int{"ravager": 3})

	plan := NewExpanderStrategy().Plan(s, "p1")
	want := "fleet bombard " + string(f.ID)
	if !containsLine(plan, want) {
		t.Errorf("plan %v missing %q", plan, want)
	}
}

// TestExpanderSettlesNeutralWorlds verifies an ark fleet over a neutral
// planet is told to colonize.
func TestExpanderSettlesNeutralWorlds(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	addTestPlanet(t, s, "kepler_prime", "p1")
	addTestPlanet(t, s, "tauron_reach", "p2")
	neutral := addTestPlanet(t, s, "vesper_haven", "")
	f := addTestFleet(s, "p1", neutral.ID, map[string]int{"ark": 1, "interceptor": 2})

	plan := NewExpanderStrategy().Plan(s, "p1")
	want := "fleet colonize " + string(f.ID)
	if !containsLine(plan, want) {
		t.Errorf("plan %v missing %q", plan, want)
	}
}

// TestExpanderRespectsTheCommandBudget verifies the plan never exceeds the
// configured per-turn command cap plus the closing end-turn.
func TestExpanderRespectsTheCommandBudget(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	for _, id := range []PlanetID{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		addTestPlanet(t, s, id, "p1")
	}
	addTestPlanet(t, s, "tauron_reach", "p2")

	plan := NewExpanderStrategy().Plan(s, "p1")
	if len(plan) > s.Settings.MaxAICommandsPerTurn+1 {
		t.Errorf("plan length %d exceeds budget %d", len(plan), s.Settings.MaxAICommandsPerTurn)
	}
}

func containsLine(plan []string, want string) bool {
	for _, line := range plan {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}
