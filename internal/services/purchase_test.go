package services

import (
	"math"
	"testing"
)

func TestDestinationPurchaseNoWaiverProgram(t *testing.T) {
	p := DestinationPurchase(280, 8.75, 0, 0)

	if want := 280 * 8.75; p.CostUSD != want {
		t.Fatalf("cost = %v, want %v", p.CostUSD, want)
	}
	if p.OrderedGal != 280 || p.FeeUSD != 0 {
		t.Fatalf("ordered=%v fee=%v, want 280 and 0", p.OrderedGal, p.FeeUSD)
	}
}

func TestDestinationPurchaseClearsThreshold(t *testing.T) {
	p := DestinationPurchase(350, 8.75, 300, 750)

	if want := 350 * 8.75; p.CostUSD != want {
		t.Fatalf("cost = %v, want %v", p.CostUSD, want)
	}
	if p.FeeUSD != 0 {
		t.Fatalf("fee = %v, want 0 above threshold", p.FeeUSD)
	}
}

func TestDestinationPurchaseBelowThresholdPicksCheaper(t *testing.T) {
	// 280 gal required, 300 gal threshold, $750 fee at $8.75/gal:
	// paying the fee costs 280*8.75+750 = 3200, topping up costs
	// 300*8.75 = 2625, so the top-up wins.
	p := DestinationPurchase(280, 8.75, 300, 750)

	want := math.Min(280*8.75+750, 300*8.75)
	if p.CostUSD != want {
		t.Fatalf("cost = %v, want %v", p.CostUSD, want)
	}
	if p.OrderedGal != 300 {
		t.Fatalf("ordered = %v, want top-up to 300", p.OrderedGal)
	}
	if p.FeeUSD != 0 {
		t.Fatalf("fee = %v, want 0 when topping up", p.FeeUSD)
	}
}

func TestDestinationPurchasePaysSmallFee(t *testing.T) {
	// A $100 fee is cheaper than buying 200 extra gallons.
	p := DestinationPurchase(100, 8.00, 300, 100)

	if want := 100*8.00 + 100; p.CostUSD != want {
		t.Fatalf("cost = %v, want %v", p.CostUSD, want)
	}
	if p.OrderedGal != 100 {
		t.Fatalf("ordered = %v, want exactly the requirement", p.OrderedGal)
	}
	if p.FeeUSD != 100 {
		t.Fatalf("fee = %v, want 100", p.FeeUSD)
	}
}

func TestDestinationPurchaseZeroRequirement(t *testing.T) {
	p := DestinationPurchase(0, 8.75, 300, 750)

	if p.CostUSD != 0 || p.OrderedGal != 0 || p.FeeUSD != 0 {
		t.Fatalf("no uplift should cost nothing, got %+v", p)
	}

	if got := DestinationCost(-50, 8.75, 300, 750); got != 0 {
		t.Fatalf("negative requirement: got %v, want 0", got)
	}
}
