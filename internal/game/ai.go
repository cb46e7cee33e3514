package game

// Strategy decides an AI player's moves for one turn. It returns command
// lines in the exact grammar human players type; the driver feeds them
// through the same pipeline, so an AI can never do anything a human could
// not. Lines the validator rejects are skipped.
type Strategy interface {
	Plan(s *GameState, self PlayerID) []string
}

// Agent binds a seat in the turn queue to its strategy.
type Agent struct {
	PlayerID PlayerID
	Strategy Strategy
}
