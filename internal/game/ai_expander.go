package game

import (
	"fmt"

	"ColonyCommand/internal/config"
)

// buildStep is one rung of the expander's fixed development ladder.
type buildStep struct {
	structure config.StructureID
	level     int
}

// ExpanderStrategy is the baseline AI: grow the economy up a fixed ladder,
// keep a garrison of interceptors, and push arks at neutral planets. Against
// a shielded enemy world it parks ravagers on a standing bombard order and
// colonizes once the shield breaks.
type ExpanderStrategy struct {
	ladder []buildStep
}

func NewExpanderStrategy() *ExpanderStrategy {
	return &ExpanderStrategy{
		ladder: []buildStep{
			{"mineral_extractor", 1},
			{"solar_array", 1},
			{"gas_refinery", 1},
			{"planetary_capital", 2},
			{"orbital_shipyard", 1},
			{"mineral_extractor", 2},
			{"gas_refinery", 2},
			{"storage_depot", 1},
			{"orbital_shipyard", 2},
			{"solar_array", 2},
			{"defense_shield", 1},
			{"storage_depot", 2},
			{"mineral_extractor", 3},
			{"gas_refinery", 3},
		},
	}
}

func (b *ExpanderStrategy) Plan(s *GameState, self PlayerID) []string {
	var lines []string
	budget := s.Settings.MaxAICommandsPerTurn

	for _, p := range s.PlanetsOf(self) {
		if len(lines) >= budget {
			break
		}
		if cmd := b.planConstruction(s, p); cmd != "" {
			lines = append(lines, cmd)
		}
	}
	for _, p := range s.PlanetsOf(self) {
		if len(lines) >= budget {
			break
		}
		if cmd := b.planShipyard(s, self, p); cmd != "" {
			lines = append(lines, cmd)
		}
	}
	for _, f := range s.FleetsOf(self) {
		if len(lines) >= budget {
			break
		}
		if cmd := b.planFleet(s, self, f); cmd != "" {
			lines = append(lines, cmd)
		}
	}

	lines = append(lines, "end")
	return lines
}

// planConstruction picks the first ladder rung the planet is missing and can
// pay for right now.
func (b *ExpanderStrategy) planConstruction(s *GameState, p *Planet) string {
	if s.PendingAt(p.ID) != nil {
		return ""
	}
	for _, step := range b.ladder {
		def, ok := s.Catalog.Structures[step.structure]
		if !ok || p.StructureLevel(step.structure) >= step.level {
			continue
		}
		target := p.StructureLevel(step.structure) + 1
		if !prereqsMet(p, def, target) {
			continue
		}
		if !p.Stock.CanReserve(FromConfig(def.Costs[target-1])) {
			return ""
		}
		return fmt.Sprintf("build %s %s", p.ID, step.structure)
	}
	return ""
}

func prereqsMet(p *Planet, def *config.StructureDef, target int) bool {
	for _, prereq := range def.Prerequisites {
		if p.StructureLevel(prereq.Structure) < prereq.MinLevels[target-1] {
			return false
		}
	}
	return true
}

// planShipyard queues ships when the yard is free capacity-wise: keep a
// defensive wing of interceptors, then an ark while neutral planets remain,
// then ravagers for the offensive.
func (b *ExpanderStrategy) planShipyard(s *GameState, self PlayerID, p *Planet) string {
	yard := p.StructureLevel("orbital_shipyard")
	if yard < 1 {
		return ""
	}
	order := func(ship config.ShipID) string {
		def, ok := s.Catalog.Ships[ship]
		if !ok || yard < def.RequiredShipyardLevel || !p.Stock.CanReserve(FromConfig(def.Cost)) {
			return ""
		}
		return fmt.Sprintf("build_ship %s %s", p.ID, ship)
	}

	if b.countShips(s, self, "interceptor") < 4*s.OwnedPlanetCount(self) {
		return order("interceptor")
	}
	if b.neutralPlanetLeft(s) && b.countShips(s, self, "ark") == 0 {
		return order("ark")
	}
	return order("ravager")
}

func (b *ExpanderStrategy) countShips(s *GameState, self PlayerID, kind config.ShipID) int {
	total := 0
	for _, f := range s.FleetsOf(self) {
		total += f.Ships[kind]
	}
	for _, a := range s.PendingOf(self) {
		if a.Kind == ActionBuildShips && a.Ship == kind {
			total += a.Count
		}
	}
	return total
}

func (b *ExpanderStrategy) neutralPlanetLeft(s *GameState) bool {
	for _, p := range s.Planets {
		if !p.Owned() {
			return true
		}
	}
	return false
}

// planFleet issues at most one order per fleet: settle or besiege where it
// stands, otherwise march toward the nearest objective.
func (b *ExpanderStrategy) planFleet(s *GameState, self PlayerID, f *Fleet) string {
	if !f.Stationed() || f.JustArrived || f.IsEmpty() || f.Order == OrderBombard {
		return ""
	}
	here := s.Planets[f.Location]

	if here.Owner != self && f.HasColonizer(s.Catalog) {
		if !here.Owned() || (here.Shield == 0 && !s.hasEnemyFleets(self, here.ID)) {
			return fmt.Sprintf("fleet colonize %s", f.ID)
		}
	}
	if here.Owned() && here.Owner != self && here.Shield > 0 && f.BombardPower(s.Catalog) > 0 {
		return fmt.Sprintf("fleet bombard %s", f.ID)
	}
	if here.Owner != self {
		// Stranded over a world it cannot take; hold position.
		return ""
	}

	if dest := b.pickTarget(s, self, f); dest != "" {
		return fmt.Sprintf("fleet move %s %s", f.ID, dest)
	}
	return ""
}

// pickTarget chooses a neighboring planet worth the trip: neutral worlds for
// ark fleets, enemy worlds for armed ones.
func (b *ExpanderStrategy) pickTarget(s *GameState, self PlayerID, f *Fleet) PlanetID {
	hasArk := f.HasColonizer(s.Catalog)
	armed := f.BombardPower(s.Catalog) > 0 || f.ShipCount() >= 4

	var fallback PlanetID
	conns := s.Graph.Neighbors(f.Location)
	for _, conn := range conns {
		p := s.Planets[conn.To]
		if hasArk && !p.Owned() {
			return p.ID
		}
		if armed && p.Owned() && p.Owner != self && fallback == "" {
			fallback = p.ID
		}
	}
	return fallback
}
