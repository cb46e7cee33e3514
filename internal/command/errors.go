package command

import "fmt"

// Parse and validation errors are recoverable: the console reports them and
// re-prompts, the AI driver skips the command. Nothing in the game state
// changes when one is returned.

type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

type MissingArgumentsError struct {
	Command  string
	Expected string
}

func (e *MissingArgumentsError) Error() string {
	return fmt.Sprintf("missing arguments for command: %s. Expected: %s", e.Command, e.Expected)
}

type InvalidArgumentError struct {
	Command  string
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q for command %q: %s", e.Argument, e.Command, e.Reason)
}

type UnknownPlanetError struct {
	Name string
}

func (e *UnknownPlanetError) Error() string {
	return fmt.Sprintf("planet %s does not exist", e.Name)
}

type UnknownStructureError struct {
	Name string
}

func (e *UnknownStructureError) Error() string {
	return fmt.Sprintf("structure %s does not exist", e.Name)
}

type UnknownShipError struct {
	Name string
}

func (e *UnknownShipError) Error() string {
	return fmt.Sprintf("ship type %s does not exist", e.Name)
}

type UnknownFleetError struct {
	Name string
}

func (e *UnknownFleetError) Error() string {
	return fmt.Sprintf("fleet %s does not exist", e.Name)
}

// PlanetNotOwnedError means the target planet is neutral.
type PlanetNotOwnedError struct {
	Name string
}

func (e *PlanetNotOwnedError) Error() string {
	return fmt.Sprintf("planet %s is not owned by anyone", e.Name)
}

// WrongPlanetOwnerError means the target planet belongs to another player.
type WrongPlanetOwnerError struct {
	Name string
}

func (e *WrongPlanetOwnerError) Error() string {
	return fmt.Sprintf("planet %s is not owned by you", e.Name)
}

type ShipyardLevelError struct {
	Required int
	Current  int
}

func (e *ShipyardLevelError) Error() string {
	return fmt.Sprintf("shipyard level too low: requires level %d, current level %d", e.Required, e.Current)
}
