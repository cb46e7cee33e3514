package game

type PlayerID string

// Player is one seat in the fixed turn queue. Human and AI players share the
// same entity; the decision source is chosen at dispatch time.
type Player struct {
	ID   PlayerID
	Name string
	AI   bool
}
