package game

import (
	"sort"

	"ColonyCommand/internal/config"
)

// BattleResult records one fleet engagement at a planet.
type BattleResult struct {
	Planet PlanetID             `json:"planet"`
	Winner PlayerID             `json:"winner"`
	Powers map[PlayerID]float64 `json:"powers"`
	// Destroyed lists the fleets wiped out, oldest first.
	Destroyed []FleetID `json:"destroyed"`
}

// BombardResult records one turn of orbital bombardment.
type BombardResult struct {
	Planet       PlanetID `json:"planet"`
	Attacker     PlayerID `json:"attacker"`
	Damage       int      `json:"damage"`
	ShieldAfter  int      `json:"shield_after"`
	ShieldBroken bool     `json:"shield_broken"`
}

// ConquestResult records an ownership transfer.
type ConquestResult struct {
	Planet   PlanetID `json:"planet"`
	NewOwner PlayerID `json:"new_owner"`
	OldOwner PlayerID `json:"old_owner"`
	// Founded is true for colonization of a neutral planet rather than a
	// capture.
	Founded bool `json:"founded"`
}

// fleetPower scores one owner's pooled fleets. Each ship contributes
// count * (attack + shield); a kind whose counter list intersects the enemy
// pool has its contribution multiplied by the configured counter bonus.
func fleetPower(fleets []*Fleet, enemyKinds map[config.ShipID]bool, cat *config.Catalog, counterMult float64) float64 {
	total := 0.0
	for _, f := range fleets {
		for kind, count := range f.Ships {
			def, ok := cat.Ships[kind]
			if !ok {
				continue
			}
			contrib := float64(count) * float64(def.Attack+def.Shield)
			for _, countered := range def.Counters {
				if enemyKinds[countered] {
					contrib *= counterMult
					break
				}
			}
			total += contrib
		}
	}
	return total
}

func shipKinds(fleets []*Fleet) map[config.ShipID]bool {
	kinds := make(map[config.ShipID]bool)
	for _, f := range fleets {
		for kind, count := range f.Ships {
			if count > 0 {
				kinds[kind] = true
			}
		}
	}
	return kinds
}

// resolveBattle fights out one contested planet. All owners' stationed
// fleets pool their power; the strongest pool survives intact and every
// other fleet is destroyed. Ties go to the side owning the oldest fleet
// present, which favors the defender that was there first.
func (s *GameState) resolveBattle(planet PlanetID) *BattleResult {
	fleets := s.FleetsAt(planet)
	byOwner := make(map[PlayerID][]*Fleet)
	for _, f := range fleets {
		if !f.IsEmpty() {
			byOwner[f.Owner] = append(byOwner[f.Owner], f)
		}
	}
	if len(byOwner) < 2 {
		return nil
	}

	owners := make([]PlayerID, 0, len(byOwner))
	for owner := range byOwner {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })

	powers := make(map[PlayerID]float64, len(owners))
	for _, owner := range owners {
		enemy := make(map[config.ShipID]bool)
		for other, group := range byOwner {
			if other == owner {
				continue
			}
			for kind := range shipKinds(group) {
				enemy[kind] = true
			}
		}
		powers[owner] = fleetPower(byOwner[owner], enemy, s.Catalog, s.Settings.CounterMultiplier)
	}

	// Oldest fleet present breaks power ties.
	oldest := func(owner PlayerID) int {
		seq := byOwner[owner][0].Seq
		for _, f := range byOwner[owner][1:] {
			if f.Seq < seq {
				seq = f.Seq
			}
		}
		return seq
	}
	winner := owners[0]
	for _, owner := range owners[1:] {
		if powers[owner] > powers[winner] ||
			(powers[owner] == powers[winner] && oldest(owner) < oldest(winner)) {
			winner = owner
		}
	}

	result := &BattleResult{Planet: planet, Winner: winner, Powers: powers}
	var losers []*Fleet
	for _, owner := range owners {
		if owner == winner {
			continue
		}
		losers = append(losers, byOwner[owner]...)
	}
	sort.Slice(losers, func(i, j int) bool { return losers[i].Seq < losers[j].Seq })
	for _, f := range losers {
		result.Destroyed = append(result.Destroyed, f.ID)
		s.RemoveFleet(f.ID)
	}
	return result
}

// ResolveBattles fights every planet where owner's stationed fleets share
// space with another player's, in planet id order.
func (s *GameState) ResolveBattles(owner PlayerID) []*BattleResult {
	contested := make(map[PlanetID]bool)
	for _, f := range s.FleetsOf(owner) {
		if f.Stationed() {
			contested[f.Location] = true
		}
	}
	planets := make([]PlanetID, 0, len(contested))
	for id := range contested {
		planets = append(planets, id)
	}
	sort.Slice(planets, func(i, j int) bool { return planets[i] < planets[j] })

	var results []*BattleResult
	for _, id := range planets {
		if r := s.resolveBattle(id); r != nil {
			results = append(results, r)
		}
	}
	return results
}

// RunBombardments fires every standing bombard order owner holds over an
// enemy planet. Orders over planets that changed hands or were lost with
// the fleet simply do not fire. Returns bombardments in fleet id order.
func (s *GameState) RunBombardments(owner PlayerID) []*BombardResult {
	var results []*BombardResult
	for _, f := range s.FleetsOf(owner) {
		if f.Order != OrderBombard || !f.Stationed() {
			continue
		}
		planet := s.Planets[f.Location]
		if planet.Owner == owner || !planet.Owned() {
			// Target was captured by us or abandoned; the order lapses.
			f.Order = OrderNone
			continue
		}
		damage := f.BombardPower(s.Catalog)
		if damage == 0 {
			// Nothing left in the fleet that can fire; the order lapses.
			f.Order = OrderNone
			continue
		}
		planet.TakeBombardment(damage)
		results = append(results, &BombardResult{
			Planet:       planet.ID,
			Attacker:     owner,
			Damage:       damage,
			ShieldAfter:  planet.Shield,
			ShieldBroken: planet.Shield == 0,
		})
	}
	return results
}

// CaptureCheck transfers any enemy planet where owner has broken the shield
// and holds an unopposed colonizer fleet. A fleet that docked this same
// pre-turn cannot capture until the owner's next one, so the defender always
// gets a command phase to respond. One colony ship is consumed per capture;
// the standing bombard order on the capturing fleets lapses.
func (s *GameState) CaptureCheck(owner PlayerID) []*ConquestResult {
	var results []*ConquestResult
	for _, f := range s.FleetsOf(owner) {
		if !f.Stationed() || f.JustArrived {
			continue
		}
		planet := s.Planets[f.Location]
		if !planet.Owned() || planet.Owner == owner || planet.Shield > 0 {
			continue
		}
		if s.hasEnemyFleets(owner, planet.ID) {
			continue
		}
		if _, ok := f.ConsumeColonizer(s.Catalog); !ok {
			continue
		}
		old := planet.Owner
		s.TransferPlanet(planet, owner)
		for _, g := range s.FleetsOfAt(owner, planet.ID) {
			g.Order = OrderNone
		}
		results = append(results, &ConquestResult{
			Planet:   planet.ID,
			NewOwner: owner,
			OldOwner: old,
		})
	}
	return results
}

func (s *GameState) hasEnemyFleets(owner PlayerID, planet PlanetID) bool {
	for _, f := range s.FleetsAt(planet) {
		if f.Owner != owner && !f.IsEmpty() {
			return true
		}
	}
	return false
}

// TransferPlanet hands the planet to its conqueror. Structures and stores
// survive the capture; the previous owner's in-flight jobs there are
// scrapped with their reservations refunded into the planet's stock.
func (s *GameState) TransferPlanet(planet *Planet, newOwner PlayerID) {
	old := planet.Owner
	if queue, ok := s.Actions[old]; ok {
		var keep []*PendingAction
		for _, a := range queue {
			if a.Planet == planet.ID {
				planet.Stock.Refund(a.Reserved)
				continue
			}
			keep = append(keep, a)
		}
		s.Actions[old] = keep
	}
	planet.Owner = newOwner
	planet.TurnsSinceAttacked = 0
}
