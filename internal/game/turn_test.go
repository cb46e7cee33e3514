package game

import "testing"

// TestPreTurnRunsCompletionBeforeProduction verifies a structure finishing
// this pre-turn already contributes to the same pre-turn's production.
func TestPreTurnRunsCompletionBeforeProduction(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	planet := addTestPlanet(t, s, "kepler_prime", "p1")
	addTestPlanet(t, s, "tauron_reach", "p2")
	def := s.Catalog.Structures["mineral_extractor"]
	a := &PendingAction{
		Player: "p1", Planet: planet.ID, Kind: ActionBuild,
		Structure: "mineral_extractor", TargetLevel: 1,
		Remaining: 1, Reserved: FromConfig(def.Costs[0]),
	}
	if err := s.EnqueueAction(a); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	sch := NewScheduler(s)
	report := sch.BeginTurn()

	if len(report.Completed) != 1 {
		t.Fatalf("completed jobs: %d, want 1", len(report.Completed))
	}
	// Capital (10m) plus the freshly finished extractor (12m).
	if report.Production.Minerals != 22 {
		t.Errorf("mineral production: %d, want 22", report.Production.Minerals)
	}
}

// TestSchedulerPhasesAdvanceInOrder verifies the awaiting-pre-turn and
// awaiting-command phases alternate and the player pointer wraps with the
// cycle counter.
func TestSchedulerPhasesAdvanceInOrder(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	addTestPlanet(t, s, "kepler_prime", "p1")
	addTestPlanet(t, s, "tauron_reach", "p2")
	sch := NewScheduler(s)

	if report := sch.BeginTurn(); report.Player != "p1" {
		t.Fatalf("first turn belongs to %s", report.Player)
	}
	if sch.Phase != PhaseAwaitingCommand {
		t.Fatal("not awaiting commands after pre-turn")
	}
	if sch.BeginTurn() != nil {
		t.Fatal("pre-turn ran twice without an end-turn")
	}

	sch.EndTurn(nil)
	if report := sch.BeginTurn(); report.Player != "p2" {
		t.Fatalf("second turn belongs to %s", report.Player)
	}
	sch.EndTurn(nil)
	if s.Cycle != 1 {
		t.Errorf("cycle after full round: %d, want 1", s.Cycle)
	}
	if report := sch.BeginTurn(); report.Player != "p1" {
		t.Errorf("queue did not wrap: %s", report.Player)
	}
}

// TestVictoryDecidedOnlyAtTurnEnd verifies an elimination mid-turn does not
// end the game until the victory check at end of turn.
func TestVictoryDecidedOnlyAtTurnEnd(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	addTestPlanet(t, s, "kepler_prime", "p1")
	lost := addTestPlanet(t, s, "tauron_reach", "p2")
	sch := NewScheduler(s)

	report := sch.BeginTurn()
	s.TransferPlanet(lost, "p1")
	if sch.GameOver() {
		t.Fatal("game ended before the victory check")
	}

	sch.EndTurn(report)
	if !sch.GameOver() {
		t.Fatal("victory not declared with a sole planet owner")
	}
	if sch.Winner != "p1" || report.Winner != "p1" {
		t.Errorf("winner: scheduler %s, report %s, want p1", sch.Winner, report.Winner)
	}
}

// TestArrivalFlagClearsOnOwnersNextPreTurn verifies the just-arrived
// restriction lasts exactly until the owner's following pre-turn.
func TestArrivalFlagClearsOnOwnersNextPreTurn(t *testing.T) {
	s := newTestState(t, "p1", "p2")
	addTestPlanet(t, s, "kepler_prime", "p1")
	addTestPlanet(t, s, "tauron_reach", "p2")
	if err := s.Graph.AddEdge("kepler_prime", "tauron_reach", 1); err != nil {
		t.Fatalf("add edge: %v", err)
	}
	f := addTestFleet(s, "p1", "kepler_prime", map[string]int{"interceptor": 1})
	if err := s.StartMove(f, "tauron_reach"); err != nil {
		t.Fatalf("start move: %v", err)
	}

	sch := NewScheduler(s)
	report := sch.BeginTurn() // p1: fleet advances 1 and arrives
	if len(report.Arrivals) != 1 || !f.JustArrived {
		t.Fatalf("fleet did not arrive on p1's pre-turn")
	}
	sch.EndTurn(report)

	sch.BeginTurn() // p2
	if !f.JustArrived {
		t.Fatal("arrival flag cleared on another player's turn")
	}
	sch.EndTurn(nil)

	sch.BeginTurn() // p1 again
	if f.JustArrived {
		t.Error("arrival flag survived the owner's next pre-turn")
	}
}
