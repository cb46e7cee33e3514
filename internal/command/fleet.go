package command

import (
	"fmt"
	"sort"
	"strings"

	"ColonyCommand/internal/config"
	"ColonyCommand/internal/game"
)

// resolveOwnFleet looks up a fleet by id or name and checks the actor owns it.
func resolveOwnFleet(ctx *Context, name string) (*game.Fleet, error) {
	f := ctx.State.FleetByName(ctx.Actor, name)
	if f == nil {
		return nil, &UnknownFleetError{Name: name}
	}
	return f, nil
}

func resolveStationedFleet(ctx *Context, cmd, name string) (*game.Fleet, error) {
	f, err := resolveOwnFleet(ctx, name)
	if err != nil {
		return nil, err
	}
	if !f.Stationed() {
		return nil, &InvalidArgumentError{Command: cmd, Argument: name, Reason: "fleet is in transit"}
	}
	return f, nil
}

func sortedKinds(ships map[config.ShipID]int) []config.ShipID {
	kinds := make([]config.ShipID, 0, len(ships))
	for kind := range ships {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func describeShips(ships map[config.ShipID]int) string {
	parts := make([]string, 0, len(ships))
	for _, kind := range sortedKinds(ships) {
		parts = append(parts, fmt.Sprintf("%d %s", ships[kind], kind))
	}
	return strings.Join(parts, ", ")
}

// checkShipKinds validates every requested kind against the catalog.
func checkShipKinds(ctx *Context, ships map[config.ShipID]int) error {
	for kind := range ships {
		if !ctx.State.Catalog.HasShip(kind) {
			return &UnknownShipError{Name: kind}
		}
	}
	return nil
}

// transferShips moves the requested ships from the actor's stationed fleets
// at planet (oldest first, excluding dst) into dst, nil dst meaning the
// caller takes delivery itself. It verifies the full request can be
// satisfied before moving anything, so failure leaves every fleet
// untouched. Donor fleets drained empty are removed. The bool reports
// whether any donor carried the just-arrived restriction.
func transferShips(ctx *Context, cmd string, planet game.PlanetID, dst *game.Fleet, ships map[config.ShipID]int) (bool, error) {
	s := ctx.State
	donors := make([]*game.Fleet, 0)
	for _, f := range s.FleetsOfAt(ctx.Actor, planet) {
		if dst == nil || f.ID != dst.ID {
			donors = append(donors, f)
		}
	}
	for kind, want := range ships {
		have := 0
		for _, f := range donors {
			have += f.Ships[kind]
		}
		if have < want {
			return false, &InvalidArgumentError{
				Command:  cmd,
				Argument: kind,
				Reason:   fmt.Sprintf("only %d available at %s, need %d", have, planet, want),
			}
		}
	}
	arrived := false
	for kind, want := range ships {
		for _, f := range donors {
			if want == 0 {
				break
			}
			n := min(want, f.Ships[kind])
			if n == 0 {
				continue
			}
			_ = f.RemoveShips(kind, n)
			if dst != nil {
				dst.AddShips(kind, n)
			}
			if f.JustArrived {
				arrived = true
			}
			want -= n
		}
	}
	// Ships out of a just-arrived fleet keep the arrival restriction.
	if dst != nil && arrived {
		dst.JustArrived = true
	}
	for _, f := range donors {
		if f.IsEmpty() {
			s.RemoveFleet(f.ID)
		}
	}
	return arrived, nil
}

// FleetCreateCommand forms a new fleet at a planet from ships already
// stationed there.
type FleetCreateCommand struct {
	Name   string
	Planet string
	Ships  map[config.ShipID]int
}

func (c *FleetCreateCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	planet := s.PlanetByName(c.Planet)
	if planet == nil {
		return Outcome{}, &UnknownPlanetError{Name: c.Planet}
	}
	if err := checkShipKinds(ctx, c.Ships); err != nil {
		return Outcome{}, err
	}
	if s.FleetByName(ctx.Actor, c.Name) != nil {
		return Outcome{}, &InvalidArgumentError{Command: "fleet create", Argument: c.Name, Reason: "you already have a fleet by that name"}
	}
	// Availability check runs before the fleet exists so a failure does not
	// leave an empty shell behind.
	arrived, err := transferShips(ctx, "fleet create", planet.ID, nil, copyCounts(c.Ships))
	if err != nil {
		return Outcome{}, err
	}
	f := s.NewFleet(ctx.Actor, c.Name, planet.ID)
	f.JustArrived = arrived
	for kind, n := range c.Ships {
		f.AddShips(kind, n)
	}
	return Outcome{Message: fmt.Sprintf("fleet %s (%s) formed at %s with %s", f.Name, f.ID, planet.Name, describeShips(c.Ships))}, nil
}

func copyCounts(ships map[config.ShipID]int) map[config.ShipID]int {
	out := make(map[config.ShipID]int, len(ships))
	for k, v := range ships {
		out[k] = v
	}
	return out
}

// FleetAddCommand reinforces a fleet with ships from co-located fleets.
type FleetAddCommand struct {
	Fleet string
	Ships map[config.ShipID]int
}

func (c *FleetAddCommand) Execute(ctx *Context) (Outcome, error) {
	f, err := resolveStationedFleet(ctx, "fleet add", c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	if err := checkShipKinds(ctx, c.Ships); err != nil {
		return Outcome{}, err
	}
	if _, err := transferShips(ctx, "fleet add", f.Location, f, c.Ships); err != nil {
		return Outcome{}, err
	}
	return Outcome{Message: fmt.Sprintf("%s reinforced with %s", f.Name, describeShips(c.Ships))}, nil
}

// FleetRemoveCommand decommissions ships out of a stationed fleet. The hulls
// are scrapped, not returned anywhere.
type FleetRemoveCommand struct {
	Fleet string
	Ships map[config.ShipID]int
}

func (c *FleetRemoveCommand) Execute(ctx *Context) (Outcome, error) {
	f, err := resolveStationedFleet(ctx, "fleet remove", c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	for kind, n := range c.Ships {
		if have := f.Ships[kind]; have < n {
			return Outcome{}, &InvalidArgumentError{
				Command:  "fleet remove",
				Argument: kind,
				Reason:   fmt.Sprintf("fleet has %d, cannot remove %d", have, n),
			}
		}
	}
	for kind, n := range c.Ships {
		_ = f.RemoveShips(kind, n)
	}
	msg := fmt.Sprintf("%s decommissioned %s", f.Name, describeShips(c.Ships))
	if f.IsEmpty() {
		ctx.State.RemoveFleet(f.ID)
		msg += "; fleet disbanded"
	}
	return Outcome{Message: msg}, nil
}

// FleetDisbandCommand scraps a stationed fleet and everything in it.
type FleetDisbandCommand struct {
	Fleet string
}

func (c *FleetDisbandCommand) Execute(ctx *Context) (Outcome, error) {
	f, err := resolveStationedFleet(ctx, "fleet disband", c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	ctx.State.RemoveFleet(f.ID)
	return Outcome{Message: fmt.Sprintf("fleet %s disbanded", f.Name)}, nil
}

// FleetMergeCommand folds one fleet into another at the same planet.
type FleetMergeCommand struct {
	From string
	Into string
}

func (c *FleetMergeCommand) Execute(ctx *Context) (Outcome, error) {
	from, err := resolveStationedFleet(ctx, "fleet merge", c.From)
	if err != nil {
		return Outcome{}, err
	}
	into, err := resolveStationedFleet(ctx, "fleet merge", c.Into)
	if err != nil {
		return Outcome{}, err
	}
	if from.ID == into.ID {
		return Outcome{}, &InvalidArgumentError{Command: "fleet merge", Argument: c.From, Reason: "cannot merge a fleet into itself"}
	}
	if from.Location != into.Location {
		return Outcome{}, &InvalidArgumentError{
			Command:  "fleet merge",
			Argument: c.From,
			Reason:   fmt.Sprintf("%s is at %s but %s is at %s", from.Name, from.Location, into.Name, into.Location),
		}
	}
	for kind, n := range from.Ships {
		into.AddShips(kind, n)
	}
	if from.JustArrived {
		into.JustArrived = true
	}
	ctx.State.RemoveFleet(from.ID)
	return Outcome{Message: fmt.Sprintf("fleet %s merged into %s", from.Name, into.Name)}, nil
}

// FleetSplitCommand carves ships out of a fleet into a new one alongside it.
type FleetSplitCommand struct {
	Fleet string
	Name  string
	Ships map[config.ShipID]int
}

func (c *FleetSplitCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	f, err := resolveStationedFleet(ctx, "fleet split", c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	if err := checkShipKinds(ctx, c.Ships); err != nil {
		return Outcome{}, err
	}
	if s.FleetByName(ctx.Actor, c.Name) != nil {
		return Outcome{}, &InvalidArgumentError{Command: "fleet split", Argument: c.Name, Reason: "you already have a fleet by that name"}
	}
	for kind, n := range c.Ships {
		if have := f.Ships[kind]; have < n {
			return Outcome{}, &InvalidArgumentError{
				Command:  "fleet split",
				Argument: kind,
				Reason:   fmt.Sprintf("fleet has %d, cannot split off %d", have, n),
			}
		}
	}
	detached := s.NewFleet(ctx.Actor, c.Name, f.Location)
	detached.JustArrived = f.JustArrived
	for kind, n := range c.Ships {
		_ = f.RemoveShips(kind, n)
		detached.AddShips(kind, n)
	}
	if f.IsEmpty() {
		s.RemoveFleet(f.ID)
	}
	return Outcome{Message: fmt.Sprintf("fleet %s (%s) split off with %s", detached.Name, detached.ID, describeShips(c.Ships))}, nil
}

// FleetMoveCommand sends a fleet down a direct lane to a neighboring planet.
type FleetMoveCommand struct {
	Fleet  string
	Planet string
}

func (c *FleetMoveCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	f, err := resolveStationedFleet(ctx, "fleet move", c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	if f.IsEmpty() {
		return Outcome{}, &InvalidArgumentError{Command: "fleet move", Argument: c.Fleet, Reason: "fleet has no ships"}
	}
	dest := s.PlanetByName(c.Planet)
	if dest == nil {
		return Outcome{}, &UnknownPlanetError{Name: c.Planet}
	}
	if dest.ID == f.Location {
		return Outcome{}, &InvalidArgumentError{Command: "fleet move", Argument: c.Planet, Reason: "fleet is already there"}
	}
	conn, ok := s.Graph.Connection(f.Location, dest.ID)
	if !ok {
		return Outcome{}, &InvalidArgumentError{
			Command:  "fleet move",
			Argument: c.Planet,
			Reason:   fmt.Sprintf("no direct lane from %s", f.Location),
		}
	}
	if err := s.StartMove(f, dest.ID); err != nil {
		return Outcome{}, &InvalidArgumentError{Command: "fleet move", Argument: c.Fleet, Reason: err.Error()}
	}
	return Outcome{Message: fmt.Sprintf("fleet %s en route to %s, arriving in %d turns", f.Name, dest.Name, conn.Distance)}, nil
}

// FleetCancelMoveCommand turns an in-transit fleet back toward its origin.
type FleetCancelMoveCommand struct {
	Fleet string
}

func (c *FleetCancelMoveCommand) Execute(ctx *Context) (Outcome, error) {
	f, err := resolveOwnFleet(ctx, c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	if f.Stationed() {
		return Outcome{}, &InvalidArgumentError{Command: "fleet cancel-move", Argument: c.Fleet, Reason: "fleet is not in transit"}
	}
	if err := ctx.State.CancelMove(f); err != nil {
		return Outcome{}, &InvalidArgumentError{Command: "fleet cancel-move", Argument: c.Fleet, Reason: err.Error()}
	}
	if f.Stationed() {
		return Outcome{Message: fmt.Sprintf("fleet %s recalled to %s", f.Name, f.Location)}, nil
	}
	return Outcome{Message: fmt.Sprintf("fleet %s returning to %s, %d turns out", f.Name, f.Transit.Dest, f.Transit.Remaining)}, nil
}

// FleetBombardCommand sets a standing bombard order against the enemy planet
// the fleet is stationed over. The order fires each of the actor's pre-turns
// until cancelled or the planet falls.
type FleetBombardCommand struct {
	Fleet string
}

func (c *FleetBombardCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	f, err := resolveStationedFleet(ctx, "fleet bombard", c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	if f.JustArrived {
		return Outcome{}, &InvalidArgumentError{Command: "fleet bombard", Argument: c.Fleet, Reason: "fleet arrived this turn and must hold position"}
	}
	planet := s.Planets[f.Location]
	if !planet.Owned() {
		return Outcome{}, &PlanetNotOwnedError{Name: planet.Name}
	}
	if planet.Owner == ctx.Actor {
		return Outcome{}, &InvalidArgumentError{Command: "fleet bombard", Argument: c.Fleet, Reason: "cannot bombard your own planet"}
	}
	if f.BombardPower(s.Catalog) == 0 {
		return Outcome{}, &InvalidArgumentError{Command: "fleet bombard", Argument: c.Fleet, Reason: "no ship in the fleet carries bombardment weapons"}
	}
	f.Order = game.OrderBombard
	return Outcome{Message: fmt.Sprintf("fleet %s will bombard %s each turn until ordered otherwise", f.Name, planet.Name)}, nil
}

// FleetCancelBombardCommand lifts a standing bombard order.
type FleetCancelBombardCommand struct {
	Fleet string
}

func (c *FleetCancelBombardCommand) Execute(ctx *Context) (Outcome, error) {
	f, err := resolveOwnFleet(ctx, c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	if f.Order != game.OrderBombard {
		return Outcome{}, &InvalidArgumentError{Command: "fleet cancel-bombard", Argument: c.Fleet, Reason: "fleet has no bombard order"}
	}
	f.Order = game.OrderNone
	return Outcome{Message: fmt.Sprintf("fleet %s stands down", f.Name)}, nil
}

// FleetColonizeCommand claims the planet the fleet is stationed over. A
// neutral planet is settled outright; an enemy planet must have its shield
// broken and no defending fleets in orbit. Either way one colony ship is
// consumed.
type FleetColonizeCommand struct {
	Fleet string
}

func (c *FleetColonizeCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	f, err := resolveStationedFleet(ctx, "fleet colonize", c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	if f.JustArrived {
		return Outcome{}, &InvalidArgumentError{Command: "fleet colonize", Argument: c.Fleet, Reason: "fleet arrived this turn and must hold position"}
	}
	if !f.HasColonizer(s.Catalog) {
		return Outcome{}, &InvalidArgumentError{Command: "fleet colonize", Argument: c.Fleet, Reason: "no colony ship in the fleet"}
	}
	planet := s.Planets[f.Location]
	if planet.Owner == ctx.Actor {
		return Outcome{}, &InvalidArgumentError{Command: "fleet colonize", Argument: c.Fleet, Reason: "you already hold this planet"}
	}

	if planet.Owned() {
		if planet.Shield > 0 {
			return Outcome{}, &InvalidArgumentError{
				Command:  "fleet colonize",
				Argument: c.Fleet,
				Reason:   fmt.Sprintf("%s's shield is still holding at %d", planet.Name, planet.Shield),
			}
		}
		for _, g := range s.FleetsAt(planet.ID) {
			if g.Owner != ctx.Actor && !g.IsEmpty() {
				return Outcome{}, &InvalidArgumentError{
					Command:  "fleet colonize",
					Argument: c.Fleet,
					Reason:   "defending fleets still hold orbit",
				}
			}
		}
		old := planet.Owner
		f.ConsumeColonizer(s.Catalog)
		s.TransferPlanet(planet, ctx.Actor)
		for _, g := range s.FleetsOfAt(ctx.Actor, planet.ID) {
			g.Order = game.OrderNone
		}
		if f.IsEmpty() {
			s.RemoveFleet(f.ID)
		}
		return Outcome{Message: fmt.Sprintf("%s captured from %s", planet.Name, s.PlayerName(old))}, nil
	}

	f.ConsumeColonizer(s.Catalog)
	planet.Colonize(ctx.Actor, "planetary_capital", s.Catalog)
	if f.IsEmpty() {
		s.RemoveFleet(f.ID)
	}
	return Outcome{Message: fmt.Sprintf("colony founded on %s", planet.Name)}, nil
}
