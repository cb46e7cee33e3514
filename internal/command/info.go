package command

import (
	"fmt"
	"sort"
	"strings"

	"ColonyCommand/internal/game"
)

// StatusCommand reports the actor's empire, or one planet in detail.
type StatusCommand struct {
	// Planet is empty for an empire-wide overview.
	Planet string
}

func (c *StatusCommand) Execute(ctx *Context) (Outcome, error) {
	if c.Planet == "" {
		return Outcome{Message: empireStatus(ctx)}, nil
	}
	planet := ctx.State.PlanetByName(c.Planet)
	if planet == nil {
		return Outcome{}, &UnknownPlanetError{Name: c.Planet}
	}
	return Outcome{Message: planetStatus(ctx, planet)}, nil
}

func empireStatus(ctx *Context) string {
	s := ctx.State
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s, cycle %d ===\n", s.PlayerName(ctx.Actor), s.Cycle)

	planets := s.PlanetsOf(ctx.Actor)
	fmt.Fprintf(&b, "planets: %d\n", len(planets))
	for _, p := range planets {
		fmt.Fprintf(&b, "  %-20s stock %s  cap %s", p.Name, p.Stock.Available, p.Stock.Capacity)
		if p.Shield > 0 {
			fmt.Fprintf(&b, "  shield %d", p.Shield)
		}
		b.WriteByte('\n')
	}

	if pending := s.PendingOf(ctx.Actor); len(pending) > 0 {
		b.WriteString("in progress:\n")
		for _, a := range pending {
			fmt.Fprintf(&b, "  [%s] %s\n", a.ID, a.Describe())
		}
	}

	fleets := s.FleetsOf(ctx.Actor)
	fmt.Fprintf(&b, "fleets: %d\n", len(fleets))
	for _, f := range fleets {
		b.WriteString("  " + fleetLine(f) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func planetStatus(ctx *Context, planet *game.Planet) string {
	s := ctx.State
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", planet.Name)
	if planet.Owned() {
		fmt.Fprintf(&b, "owner: %s\n", s.PlayerName(planet.Owner))
	} else {
		b.WriteString("owner: none\n")
	}

	// Full detail only for the actor's own planets; foreign worlds show what
	// a fleet in orbit would see.
	if planet.Owner == ctx.Actor {
		fmt.Fprintf(&b, "stock: %s of %s (%s reserved)\n", planet.Stock.Available, planet.Stock.Capacity, planet.Stock.Reserved)
		fmt.Fprintf(&b, "production: %s per turn\n", planet.ProductionRate(s.Catalog))
		b.WriteString("structures:\n")
		for _, id := range s.Catalog.StructureOrder {
			if level := planet.StructureLevel(id); level > 0 {
				fmt.Fprintf(&b, "  %-20s level %d\n", id, level)
			}
		}
		if pending := s.PendingAt(planet.ID); pending != nil {
			fmt.Fprintf(&b, "constructing: %s\n", pending.Describe())
		}
	}
	if ceiling := planet.MaxShield(s.Catalog); ceiling > 0 {
		fmt.Fprintf(&b, "shield: %d/%d\n", planet.Shield, ceiling)
	}

	if fleets := s.FleetsAt(planet.ID); len(fleets) > 0 {
		b.WriteString("in orbit:\n")
		for _, f := range fleets {
			fmt.Fprintf(&b, "  [%s] %s\n", s.PlayerName(f.Owner), fleetLine(f))
		}
	}

	b.WriteString("lanes:\n")
	conns := append([]game.Connection(nil), s.Graph.Neighbors(planet.ID)...)
	sort.Slice(conns, func(i, j int) bool { return conns[i].To < conns[j].To })
	for _, conn := range conns {
		fmt.Fprintf(&b, "  %-20s %d turns\n", s.Planets[conn.To].Name, conn.Distance)
	}
	return strings.TrimRight(b.String(), "\n")
}

func fleetLine(f *game.Fleet) string {
	ships := make([]string, 0, len(f.Ships))
	for _, kind := range f.Kinds() {
		ships = append(ships, fmt.Sprintf("%d %s", f.Ships[kind], kind))
	}
	where := fmt.Sprintf("at %s", f.Location)
	if !f.Stationed() {
		where = fmt.Sprintf("%s -> %s, %d turns out", f.Transit.Origin, f.Transit.Dest, f.Transit.Remaining)
	}
	line := fmt.Sprintf("%s (%s): %s, %s", f.Name, f.ID, strings.Join(ships, ", "), where)
	if f.Order == game.OrderBombard {
		line += ", bombarding"
	}
	if f.JustArrived {
		line += ", just arrived"
	}
	return line
}

// MapCommand renders the star map as an adjacency list.
type MapCommand struct{}

func (c *MapCommand) Execute(ctx *Context) (Outcome, error) {
	s := ctx.State
	ids := make([]game.PlanetID, 0, len(s.Planets))
	for id := range s.Planets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var b strings.Builder
	for _, id := range ids {
		p := s.Planets[id]
		owner := "-"
		if p.Owned() {
			owner = s.PlayerName(p.Owner)
		}
		fmt.Fprintf(&b, "%-20s [%s]", p.Name, owner)
		conns := append([]game.Connection(nil), s.Graph.Neighbors(id)...)
		sort.Slice(conns, func(i, j int) bool { return conns[i].To < conns[j].To })
		for _, conn := range conns {
			fmt.Fprintf(&b, "  %s:%d", conn.To, conn.Distance)
		}
		b.WriteByte('\n')
	}
	return Outcome{Message: strings.TrimRight(b.String(), "\n")}, nil
}

// ShipsCommand prints the ship catalog with build requirements.
type ShipsCommand struct{}

func (c *ShipsCommand) Execute(ctx *Context) (Outcome, error) {
	cat := ctx.State.Catalog
	var b strings.Builder
	for _, id := range cat.ShipOrder {
		def := cat.Ships[id]
		fmt.Fprintf(&b, "%-12s atk %-3d sh %-3d bomb %-3d cost %s, %d turns, shipyard %d",
			id, def.Attack, def.Shield, def.Bombardment, game.FromConfig(def.Cost), def.BuildTime, def.RequiredShipyardLevel)
		if def.Colonizer {
			b.WriteString(", colonizer")
		}
		if len(def.Counters) > 0 {
			fmt.Fprintf(&b, ", counters %s", strings.Join(def.Counters, "/"))
		}
		b.WriteByte('\n')
	}
	return Outcome{Message: strings.TrimRight(b.String(), "\n")}, nil
}

// FleetStatusCommand reports one of the actor's fleets in detail.
type FleetStatusCommand struct {
	Fleet string
}

func (c *FleetStatusCommand) Execute(ctx *Context) (Outcome, error) {
	f, err := resolveOwnFleet(ctx, c.Fleet)
	if err != nil {
		return Outcome{}, err
	}
	s := ctx.State
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s (%s) ===\n", f.Name, f.ID)
	if f.Stationed() {
		fmt.Fprintf(&b, "stationed at %s\n", s.Planets[f.Location].Name)
	} else {
		fmt.Fprintf(&b, "in transit %s -> %s, %d of %d turns remaining\n",
			f.Transit.Origin, f.Transit.Dest, f.Transit.Remaining, f.Transit.Distance)
	}
	b.WriteString("ships:\n")
	for _, kind := range f.Kinds() {
		def := s.Catalog.Ships[kind]
		fmt.Fprintf(&b, "  %-12s x%-4d atk %-3d sh %-3d bomb %d\n",
			kind, f.Ships[kind], def.Attack, def.Shield, def.Bombardment)
	}
	fmt.Fprintf(&b, "bombardment power: %d\n", f.BombardPower(s.Catalog))
	if f.Order == game.OrderBombard {
		b.WriteString("standing order: bombard\n")
	}
	if f.JustArrived {
		b.WriteString("just arrived, holding until next turn\n")
	}
	return Outcome{Message: strings.TrimRight(b.String(), "\n")}, nil
}

// FleetsCommand lists the actor's fleets.
type FleetsCommand struct{}

func (c *FleetsCommand) Execute(ctx *Context) (Outcome, error) {
	fleets := ctx.State.FleetsOf(ctx.Actor)
	if len(fleets) == 0 {
		return Outcome{Message: "no fleets"}, nil
	}
	lines := make([]string, 0, len(fleets))
	for _, f := range fleets {
		lines = append(lines, fleetLine(f))
	}
	return Outcome{Message: strings.Join(lines, "\n")}, nil
}
