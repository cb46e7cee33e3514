package command

import "ColonyCommand/internal/game"

// Runner is the single entry point for player input. Human and AI commands
// go through the same parse-validate-execute path, so neither side can reach
// a state the other could not.
type Runner struct {
	State *game.GameState
}

// Run executes one input line as actor. An error means the line was rejected
// and the game state is exactly as it was.
func (r *Runner) Run(actor game.PlayerID, line string) (Outcome, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Outcome{}, err
	}
	return cmd.Execute(&Context{State: r.State, Actor: actor})
}
