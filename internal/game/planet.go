package game

import (
	"ColonyCommand/internal/config"
)

type PlanetID string

// Planet is a node in the star graph. Planets are created at setup and never
// destroyed; ownership changes only through conquest.
type Planet struct {
	ID   PlanetID
	Name string

	// Owner is empty while the planet is uncolonized.
	Owner PlayerID

	// Structures maps structure kind to level; absence means level 0.
	Structures map[config.StructureID]int

	Stock Stockpile

	Shield             int
	TurnsSinceAttacked int

	// attacked marks bombardment received since the owner's last pre-turn;
	// it gates the regeneration counter.
	attacked bool
}

func NewPlanet(id PlanetID, name string) *Planet {
	return &Planet{
		ID:         id,
		Name:       name,
		Structures: make(map[config.StructureID]int),
	}
}

func (p *Planet) Owned() bool { return p.Owner != "" }

// StructureLevel returns the level of kind on this planet, 0 if absent.
func (p *Planet) StructureLevel(kind config.StructureID) int {
	return p.Structures[kind]
}

// SetStructureLevel records a completed build or upgrade and refreshes the
// derived storage ceiling and shield maximum.
func (p *Planet) SetStructureLevel(kind config.StructureID, level int, cat *config.Catalog) {
	p.Structures[kind] = level
	p.recalcCapacity(cat)
	if maxShield := p.MaxShield(cat); p.Shield == 0 && maxShield > 0 {
		// A shield coming online starts charged.
		p.Shield = maxShield
	}
}

func (p *Planet) recalcCapacity(cat *config.Catalog) {
	var total Resources
	for kind, level := range p.Structures {
		def, ok := cat.Structures[kind]
		if !ok || level < 1 {
			continue
		}
		total = total.Add(FromConfig(def.Storage[level-1]))
	}
	p.Stock.Capacity = total
}

// ProductionRate sums the per-turn output of every built structure.
func (p *Planet) ProductionRate(cat *config.Catalog) Resources {
	var total Resources
	for kind, level := range p.Structures {
		def, ok := cat.Structures[kind]
		if !ok || level < 1 {
			continue
		}
		total = total.Add(FromConfig(def.Production[level-1]))
	}
	return total
}

// MaxShield derives the shield ceiling from the shield structure's level.
func (p *Planet) MaxShield(cat *config.Catalog) int {
	for kind, level := range p.Structures {
		def, ok := cat.Structures[kind]
		if !ok || level < 1 || len(def.ShieldStrength) == 0 {
			continue
		}
		return def.ShieldStrength[level-1]
	}
	return 0
}

// shieldRegenTurns returns the configured clean-turn threshold for this
// planet's shield structure, falling back to the global setting.
func (p *Planet) shieldRegenTurns(cat *config.Catalog, fallback int) int {
	for kind, level := range p.Structures {
		def, ok := cat.Structures[kind]
		if !ok || level < 1 || len(def.ShieldStrength) == 0 {
			continue
		}
		if def.ShieldRegenTurns > 0 {
			return def.ShieldRegenTurns
		}
	}
	return fallback
}

// TakeBombardment applies damage to the shield, floored at zero, and resets
// the regeneration clock.
func (p *Planet) TakeBombardment(damage int) {
	p.Shield = max(0, p.Shield-damage)
	p.TurnsSinceAttacked = 0
	p.attacked = true
}

// regenTick advances the shield clock during the owner's pre-turn. The
// counter only moves on turns with zero bombardment received; once it
// reaches the threshold the shield recharges to maximum.
func (p *Planet) regenTick(cat *config.Catalog, fallbackTurns int) bool {
	if p.attacked {
		p.attacked = false
		return false
	}
	maxShield := p.MaxShield(cat)
	if maxShield == 0 || p.Shield >= maxShield {
		return false
	}
	p.TurnsSinceAttacked++
	if p.TurnsSinceAttacked >= p.shieldRegenTurns(cat, fallbackTurns) {
		p.Shield = maxShield
		p.TurnsSinceAttacked = 0
		return true
	}
	return false
}

// Colonize founds a colony: owner set, a level-1 capital raised, stores
// filled to the new capacity.
func (p *Planet) Colonize(owner PlayerID, capital config.StructureID, cat *config.Catalog) {
	p.Owner = owner
	p.SetStructureLevel(capital, 1, cat)
	p.Stock.Available = p.Stock.Capacity
	p.Stock.Reserved = Resources{}
}
