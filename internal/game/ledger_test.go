package game

import (
	"errors"
	"testing"
)

// TestReserveSplitsAvailable verifies a reservation moves stock out of the
// spendable pool without touching capacity.
func TestReserveSplitsAvailable(t *testing.T) {
	stock := Stockpile{
		Capacity:  Resources{Minerals: 100, Gas: 100, Energy: 100},
		Available: Resources{Minerals: 80, Gas: 80, Energy: 80},
	}

	cost := Resources{Minerals: 50, Gas: 20}
	if err := stock.Reserve("vesper_prime", cost); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	if stock.Available != (Resources{Minerals: 30, Gas: 60, Energy: 80}) {
		t.Errorf("available after reserve: %s", stock.Available)
	}
	if stock.Reserved != cost {
		t.Errorf("reserved after reserve: %s", stock.Reserved)
	}
	if stock.Capacity != (Resources{Minerals: 100, Gas: 100, Energy: 100}) {
		t.Errorf("capacity changed by reserve: %s", stock.Capacity)
	}
}

// TestReserveAllOrNothing verifies a cost that exceeds any one component is
// rejected whole, leaving the stockpile untouched.
func TestReserveAllOrNothing(t *testing.T) {
	stock := Stockpile{
		Capacity:  Resources{Minerals: 100, Gas: 100, Energy: 100},
		Available: Resources{Minerals: 80, Gas: 10, Energy: 80},
	}
	before := stock

	err := stock.Reserve("vesper_prime", Resources{Minerals: 50, Gas: 20})
	if err == nil {
		t.Fatal("expected insufficient resources error")
	}
	var insufficient *InsufficientResourcesError
	if !errors.As(err, &insufficient) {
		t.Fatalf("wrong error type: %T", err)
	}
	if stock != before {
		t.Errorf("failed reserve mutated stockpile: %+v", stock)
	}
}

// TestRefundWastesOverflow verifies a refund past the storage ceiling is
// silently discarded rather than overfilling the pool.
func TestRefundWastesOverflow(t *testing.T) {
	stock := Stockpile{
		Capacity:  Resources{Minerals: 100},
		Available: Resources{Minerals: 90},
		Reserved:  Resources{Minerals: 50},
	}

	wasted := stock.Refund(Resources{Minerals: 50})

	if stock.Available.Minerals != 100 {
		t.Errorf("available after refund: %d, want 100", stock.Available.Minerals)
	}
	if stock.Reserved.Minerals != 0 {
		t.Errorf("reserved after refund: %d, want 0", stock.Reserved.Minerals)
	}
	if wasted.Minerals != 40 {
		t.Errorf("wasted: %d, want 40", wasted.Minerals)
	}
}

// TestConsumeBurnsReservation verifies completion spends the reserved stock
// without crediting anything back.
func TestConsumeBurnsReservation(t *testing.T) {
	stock := Stockpile{
		Capacity:  Resources{Minerals: 100},
		Available: Resources{Minerals: 30},
		Reserved:  Resources{Minerals: 50},
	}

	stock.Consume(Resources{Minerals: 50})

	if stock.Reserved.Minerals != 0 {
		t.Errorf("reserved after consume: %d, want 0", stock.Reserved.Minerals)
	}
	if stock.Available.Minerals != 30 {
		t.Errorf("available changed by consume: %d, want 30", stock.Available.Minerals)
	}
}

// TestProduceClampsAtCapacity verifies production cannot push available plus
// reserved past the ceiling, and reports what was actually credited.
func TestProduceClampsAtCapacity(t *testing.T) {
	stock := Stockpile{
		Capacity:  Resources{Minerals: 100, Gas: 50},
		Available: Resources{Minerals: 95, Gas: 10},
		Reserved:  Resources{Gas: 30},
	}

	credited := stock.Produce(Resources{Minerals: 20, Gas: 20})

	if credited != (Resources{Minerals: 5, Gas: 10}) {
		t.Errorf("credited: %s, want 5m/10g/0e", credited)
	}
	if stock.Available != (Resources{Minerals: 100, Gas: 20}) {
		t.Errorf("available after produce: %s", stock.Available)
	}
}
