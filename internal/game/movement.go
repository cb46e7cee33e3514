package game

import "fmt"

// StartMove puts a stationed fleet in transit on the direct edge from its
// current planet to dest. Travel takes the edge distance in turns.
func (s *GameState) StartMove(f *Fleet, dest PlanetID) error {
	if !f.Stationed() {
		return fmt.Errorf("fleet %s is already in transit", f.ID)
	}
	conn, ok := s.Graph.Connection(f.Location, dest)
	if !ok {
		return fmt.Errorf("no route from %s to %s", f.Location, dest)
	}
	f.Transit = &Transit{
		Origin:    f.Location,
		Dest:      dest,
		Distance:  conn.Distance,
		Remaining: conn.Distance,
	}
	f.Location = ""
	f.Order = OrderNone
	return nil
}

// CancelMove turns an in-transit fleet around. The return trip costs exactly
// the distance already covered: a fleet two units into a five-unit edge is
// two units from home.
func (s *GameState) CancelMove(f *Fleet) error {
	if f.Stationed() {
		return fmt.Errorf("fleet %s is not in transit", f.ID)
	}
	t := f.Transit
	covered := t.Distance - t.Remaining
	if covered == 0 {
		// Departed this turn; snap straight back.
		f.Location = t.Origin
		f.Transit = nil
		return nil
	}
	t.Origin, t.Dest = t.Dest, t.Origin
	t.Remaining = covered
	return nil
}

// AdvanceFleets moves every in-transit fleet of owner one distance unit.
// Fleets reaching zero dock at the destination with JustArrived set.
// Arrived fleets are returned oldest first.
func (s *GameState) AdvanceFleets(owner PlayerID) []*Fleet {
	var arrived []*Fleet
	for _, f := range s.FleetsOf(owner) {
		if f.Stationed() {
			continue
		}
		f.Transit.Remaining--
		if f.Transit.Remaining > 0 {
			continue
		}
		f.Location = f.Transit.Dest
		f.Transit = nil
		f.JustArrived = true
		arrived = append(arrived, f)
	}
	return arrived
}
