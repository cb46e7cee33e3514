package game

import (
	"fmt"

	"ColonyCommand/internal/config"
)

// Resources bundles the three stockpile kinds. All engine arithmetic keeps
// every component non-negative.
type Resources struct {
	Minerals int `json:"minerals"`
	Gas      int `json:"gas"`
	Energy   int `json:"energy"`
}

func FromConfig(r config.Resources) Resources {
	return Resources{Minerals: r.Minerals, Gas: r.Gas, Energy: r.Energy}
}

func (r Resources) Add(other Resources) Resources {
	return Resources{
		Minerals: r.Minerals + other.Minerals,
		Gas:      r.Gas + other.Gas,
		Energy:   r.Energy + other.Energy,
	}
}

// Sub clamps every component at zero rather than going negative.
func (r Resources) Sub(other Resources) Resources {
	return Resources{
		Minerals: max(0, r.Minerals-other.Minerals),
		Gas:      max(0, r.Gas-other.Gas),
		Energy:   max(0, r.Energy-other.Energy),
	}
}

// CappedAt limits every component to the matching component of cap.
func (r Resources) CappedAt(cap Resources) Resources {
	return Resources{
		Minerals: min(r.Minerals, cap.Minerals),
		Gas:      min(r.Gas, cap.Gas),
		Energy:   min(r.Energy, cap.Energy),
	}
}

// Covers reports whether r has at least cost in every component.
func (r Resources) Covers(cost Resources) bool {
	return r.Minerals >= cost.Minerals && r.Gas >= cost.Gas && r.Energy >= cost.Energy
}

func (r Resources) IsZero() bool {
	return r == Resources{}
}

func (r Resources) String() string {
	return fmt.Sprintf("%dm/%dg/%de", r.Minerals, r.Gas, r.Energy)
}
