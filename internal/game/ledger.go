package game

import "fmt"

// Stockpile is one planet's entry in the resource ledger: a storage ceiling
// plus the split between freely spendable and reserved stock.
//
// Invariant after every operation: all components non-negative and
// Available + Reserved <= Capacity, component-wise.
type Stockpile struct {
	Capacity  Resources `json:"capacity"`
	Available Resources `json:"available"`
	Reserved  Resources `json:"reserved"`
}

// InsufficientResourcesError is returned by Reserve when the available pool
// cannot cover a cost. It is a validation-class error: nothing was mutated.
type InsufficientResourcesError struct {
	Planet    string
	Cost      Resources
	Available Resources
}

func (e *InsufficientResourcesError) Error() string {
	return fmt.Sprintf("%s: insufficient resources: need %s, have %s", e.Planet, e.Cost, e.Available)
}

// CanReserve is the dry-run check used by command validation.
func (s *Stockpile) CanReserve(cost Resources) bool {
	return s.Available.Covers(cost)
}

// Reserve moves cost from available to reserved. The move covers all three
// kinds or none; planet names the stockpile for the error message only.
func (s *Stockpile) Reserve(planet string, cost Resources) error {
	if !s.Available.Covers(cost) {
		return &InsufficientResourcesError{Planet: planet, Cost: cost, Available: s.Available}
	}
	s.Available = s.Available.Sub(cost)
	s.Reserved = s.Reserved.Add(cost)
	return nil
}

// Refund moves amount from reserved back to available. Anything that would
// lift available past capacity is discarded; overflow is a defined waste
// outcome, not an error. Returns the wasted remainder.
func (s *Stockpile) Refund(amount Resources) Resources {
	s.Reserved = s.Reserved.Sub(amount)
	headroom := s.Capacity.Sub(s.Available).Sub(s.Reserved)
	credited := amount.CappedAt(headroom)
	s.Available = s.Available.Add(credited)
	return amount.Sub(credited)
}

// Consume burns a completed action's reservation. The amount never returns
// to the available pool.
func (s *Stockpile) Consume(amount Resources) {
	s.Reserved = s.Reserved.Sub(amount)
}

// Produce adds amount to available, clamped so available + reserved stays
// within capacity. Returns what was actually credited.
func (s *Stockpile) Produce(amount Resources) Resources {
	headroom := s.Capacity.Sub(s.Available).Sub(s.Reserved)
	credited := amount.CappedAt(headroom)
	s.Available = s.Available.Add(credited)
	return credited
}
