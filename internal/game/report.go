package game

// CompletedJob is a finished pending action as it appears in a turn report.
type CompletedJob struct {
	Planet      PlanetID `json:"planet"`
	Description string   `json:"description"`
}

// Arrival is a fleet docking at its destination.
type Arrival struct {
	Fleet  FleetID  `json:"fleet"`
	Planet PlanetID `json:"planet"`
}

// TurnReport collects everything that happened during one player's pre-turn
// phase. The console renders it and the observer feed broadcasts it as JSON.
type TurnReport struct {
	Cycle  int      `json:"cycle"`
	Player PlayerID `json:"player"`

	Completed       []CompletedJob    `json:"completed,omitempty"`
	Production      Resources         `json:"production"`
	Arrivals        []Arrival         `json:"arrivals,omitempty"`
	Battles         []*BattleResult   `json:"battles,omitempty"`
	Bombardments    []*BombardResult  `json:"bombardments,omitempty"`
	Conquests       []*ConquestResult `json:"conquests,omitempty"`
	ShieldRecharged []PlanetID        `json:"shield_recharged,omitempty"`
	Winner          PlayerID          `json:"winner,omitempty"`
}
