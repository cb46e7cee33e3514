package game

// Phase is the scheduler's position in the turn cycle.
type Phase int

const (
	// PhaseAwaitingPreTurn means the next player's automatic phase has not
	// run yet.
	PhaseAwaitingPreTurn Phase = iota
	// PhaseAwaitingCommand means the pre-turn pass is done and the current
	// player may issue commands.
	PhaseAwaitingCommand
	// PhaseGameOver means a victor has been decided; no further commands
	// are accepted.
	PhaseGameOver
)

// Scheduler drives the fixed turn cycle: run the current player's automatic
// pre-turn pass, accept their commands until they end the turn, check for
// victory, advance to the next player.
type Scheduler struct {
	State  *GameState
	Phase  Phase
	Winner PlayerID
}

func NewScheduler(state *GameState) *Scheduler {
	return &Scheduler{State: state, Phase: PhaseAwaitingPreTurn}
}

// BeginTurn runs the current player's pre-turn pass in its fixed order:
// arrival flags clear, construction ticks, production and shield regeneration
// run, in-transit fleets advance, then combat resolves where fleets meet.
// The pass is fully automatic; the player has no decisions inside it.
func (sch *Scheduler) BeginTurn() *TurnReport {
	if sch.Phase != PhaseAwaitingPreTurn {
		return nil
	}
	s := sch.State
	player := s.CurrentPlayer()
	report := &TurnReport{Cycle: s.Cycle, Player: player.ID}

	for _, f := range s.FleetsOf(player.ID) {
		f.JustArrived = false
	}

	for _, a := range s.TickActions(player.ID) {
		report.Completed = append(report.Completed, CompletedJob{
			Planet:      a.Planet,
			Description: a.Describe(),
		})
	}

	for _, p := range s.PlanetsOf(player.ID) {
		report.Production = report.Production.Add(p.Stock.Produce(p.ProductionRate(s.Catalog)))
		if p.regenTick(s.Catalog, s.Settings.ShieldRegenTurns) {
			report.ShieldRecharged = append(report.ShieldRecharged, p.ID)
		}
	}

	for _, f := range s.AdvanceFleets(player.ID) {
		report.Arrivals = append(report.Arrivals, Arrival{Fleet: f.ID, Planet: f.Location})
	}

	report.Battles = s.ResolveBattles(player.ID)
	report.Bombardments = s.RunBombardments(player.ID)
	report.Conquests = s.CaptureCheck(player.ID)

	sch.Phase = PhaseAwaitingCommand
	return report
}

// EndTurn closes the current player's command window, applies the victory
// check, and advances the queue. Victory is only ever decided here: a player
// holding every colonized planet wins even if the elimination happened on an
// earlier command.
func (sch *Scheduler) EndTurn(report *TurnReport) {
	if sch.Phase != PhaseAwaitingCommand {
		return
	}
	s := sch.State
	owners := s.ActiveOwners()
	if len(owners) == 1 {
		sch.Winner = owners[0].ID
		sch.Phase = PhaseGameOver
		if report != nil {
			report.Winner = sch.Winner
		}
		return
	}
	s.AdvancePlayer()
	sch.Phase = PhaseAwaitingPreTurn
}

func (sch *Scheduler) GameOver() bool { return sch.Phase == PhaseGameOver }
