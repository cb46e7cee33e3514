package command

import (
	"ColonyCommand/internal/game"
)

// Context carries everything a command may touch: the world, the scheduler,
// and the acting player. Commands always act as ctx.Actor regardless of what
// names appear in their arguments.
type Context struct {
	State *game.GameState
	Actor game.PlayerID
}

// Outcome is a successfully executed command's result. EndTurn tells the
// driver to close the actor's command window.
type Outcome struct {
	Message string
	EndTurn bool
}

// Command is one parsed player order. Execute validates against the current
// state before mutating anything, so a returned error guarantees the state
// is untouched.
type Command interface {
	Execute(ctx *Context) (Outcome, error)
}
