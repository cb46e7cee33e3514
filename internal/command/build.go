package command

import (
	"fmt"
	"strings"

	"ColonyCommand/internal/game"
)

// resolveOwnPlanet looks up a planet by name and checks the actor owns it.
func resolveOwnPlanet(ctx *Context, name string) (*game.Planet, error) {
	planet := ctx.State.PlanetByName(name)
	if planet == nil {
		return nil, &UnknownPlanetError{Name: name}
	}
	if !planet.Owned() {
		return nil, &PlanetNotOwnedError{Name: planet.Name}
	}
	if planet.Owner != ctx.Actor {
		return nil, &WrongPlanetOwnerError{Name: planet.Name}
	}
	return planet, nil
}

// BuildCommand starts construction of a structure, or its upgrade to the
// next level when it already stands.
type BuildCommand struct {
	Planet    string
	Structure string
}

func (c *BuildCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	planet, err := resolveOwnPlanet(ctx, c.Planet)
	if err != nil {
		return Outcome{}, err
	}
	structureID := game.NameToID(c.Structure)
	def, ok := s.Catalog.Structures[structureID]
	if !ok {
		return Outcome{}, &UnknownStructureError{Name: c.Structure}
	}
	if pending := s.PendingAt(planet.ID); pending != nil {
		return Outcome{}, &InvalidArgumentError{
			Command:  "build",
			Argument: c.Planet,
			Reason:   fmt.Sprintf("construction already underway: %s", pending.Describe()),
		}
	}

	level := planet.StructureLevel(structureID)
	if level >= def.MaxLevel {
		return Outcome{}, &InvalidArgumentError{
			Command:  "build",
			Argument: c.Structure,
			Reason:   fmt.Sprintf("%s is already at maximum level %d", def.Name, def.MaxLevel),
		}
	}
	target := level + 1

	for _, prereq := range def.Prerequisites {
		need := prereq.MinLevels[target-1]
		if have := planet.StructureLevel(prereq.Structure); have < need {
			return Outcome{}, &InvalidArgumentError{
				Command:  "build",
				Argument: c.Structure,
				Reason:   fmt.Sprintf("requires %s level %d, have %d", prereq.Structure, need, have),
			}
		}
	}

	kind := game.ActionBuild
	if level > 0 {
		kind = game.ActionUpgrade
	}
	action := &game.PendingAction{
		Player:      ctx.Actor,
		Planet:      planet.ID,
		Kind:        kind,
		Structure:   structureID,
		TargetLevel: target,
		Remaining:   def.BuildTime[target-1],
		Reserved:    game.FromConfig(def.Costs[target-1]),
	}
	if err := s.EnqueueAction(action); err != nil {
		return Outcome{}, err
	}
	return Outcome{Message: fmt.Sprintf("%s: %s level %d under construction, ready in %d turns",
		planet.Name, def.Name, target, action.Remaining)}, nil
}

// BuildShipCommand queues ship construction at a planet's shipyard.
type BuildShipCommand struct {
	Planet string
	Ship   string
	Count  int
}

func (c *BuildShipCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	planet, err := resolveOwnPlanet(ctx, c.Planet)
	if err != nil {
		return Outcome{}, err
	}
	shipID := game.NameToID(c.Ship)
	def, ok := s.Catalog.Ships[shipID]
	if !ok {
		return Outcome{}, &UnknownShipError{Name: c.Ship}
	}
	yard := planet.StructureLevel("orbital_shipyard")
	if yard < def.RequiredShipyardLevel {
		return Outcome{}, &ShipyardLevelError{Required: def.RequiredShipyardLevel, Current: yard}
	}

	cost := game.FromConfig(def.Cost)
	total := cost
	for i := 1; i < c.Count; i++ {
		total = total.Add(cost)
	}
	action := &game.PendingAction{
		Player:    ctx.Actor,
		Planet:    planet.ID,
		Kind:      game.ActionBuildShips,
		Ship:      shipID,
		Count:     c.Count,
		Remaining: def.BuildTime,
		Reserved:  total,
	}
	if err := s.EnqueueAction(action); err != nil {
		return Outcome{}, err
	}
	return Outcome{Message: fmt.Sprintf("%s: %d %s laid down, ready in %d turns",
		planet.Name, c.Count, def.Name, action.Remaining)}, nil
}

// CancelCommand aborts a pending job. The target is a planet name, which
// cancels that planet's structure job, or a raw action id.
type CancelCommand struct {
	Target string
}

func (c *CancelCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	id := c.Target
	if planet := s.PlanetByName(c.Target); planet != nil {
		if planet.Owner != ctx.Actor {
			return Outcome{}, &WrongPlanetOwnerError{Name: planet.Name}
		}
		pending := s.PendingAt(planet.ID)
		if pending == nil || pending.Player != ctx.Actor {
			return Outcome{}, &InvalidArgumentError{
				Command:  "cancel",
				Argument: c.Target,
				Reason:   "no pending action on this planet",
			}
		}
		id = pending.ID
	}
	action, wasted, err := s.CancelAction(ctx.Actor, id)
	if err != nil {
		return Outcome{}, err
	}
	msg := fmt.Sprintf("cancelled: %s", action.Describe())
	if !wasted.IsZero() {
		msg += fmt.Sprintf(" (%s lost to full storage)", wasted)
	}
	return Outcome{Message: msg}, nil
}

// EndTurnCommand closes the actor's command window.
type EndTurnCommand struct{}

func (c *EndTurnCommand) Execute(ctx *Context) (Outcome, error) {
	name := ctx.State.PlayerName(ctx.Actor)
	return Outcome{Message: fmt.Sprintf("%s ends their turn", name), EndTurn: true}, nil
}

// HelpCommand lists the grammar.
type HelpCommand struct{}

func (c *HelpCommand) Execute(ctx *Context) (Outcome, error) {
	lines := []string{
		"build <planet> <structure>        start or upgrade a structure",
		"build_ship <planet> <ship> [n]    queue ship construction",
		"cancel <planet|action-id>         abort a pending job, refunding its cost",
		"status [planet]                   empire overview, or one planet in detail",
		"map                               show the star map",
		"ships                             show the ship catalog",
		"fleets                            list your fleets",
		"fleet create <name> <planet> <ship:count>...",
		"fleet add <fleet> <ship:count>... fleet remove <fleet> <ship:count>...",
		"fleet merge <from> <into>         fleet split <fleet> <new-name> <ship:count>...",
		"fleet move <fleet> <planet>       fleet cancel-move <fleet>",
		"fleet bombard <fleet>             fleet cancel-bombard <fleet>",
		"fleet colonize <fleet>            fleet disband <fleet>",
		"fleet status <fleet>              one fleet in detail",
		"end                               end your turn",
	}
	return Outcome{Message: strings.Join(lines, "\n")}, nil
}
