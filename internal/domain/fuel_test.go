package domain

import "testing"

func TestFuelDensityStandardTemp(t *testing.T) {
	if got := FuelDensityPPG(15); !almostEqual(got, 6.7, 1e-9) {
		t.Fatalf("FuelDensityPPG(15) = %v, want 6.7", got)
	}
}

func TestFuelDensityBounds(t *testing.T) {
	temps := []float64{-1000, -60, -40, 0, 15, 30, 50, 1000}

	for _, temp := range temps {
		ppg := FuelDensityPPG(temp)
		if ppg < 6.4 || ppg > 7.1 {
			t.Errorf("FuelDensityPPG(%v) = %v, outside [6.4, 7.1]", temp, ppg)
		}
	}

	// Extremes must hit the clamps exactly.
	if got := FuelDensityPPG(1000); got != 6.4 {
		t.Errorf("hot clamp: got %v, want 6.4", got)
	}
	if got := FuelDensityPPG(-1000); got != 7.1 {
		t.Errorf("cold clamp: got %v, want 7.1", got)
	}
}

func TestFuelDensityColderIsDenser(t *testing.T) {
	if FuelDensityPPG(-20) <= FuelDensityPPG(35) {
		t.Fatal("expected colder fuel to be denser")
	}
}

func TestLbsGallonsRoundTrip(t *testing.T) {
	ppg := FuelDensityPPG(15)
	gal := LbsToGallons(2010, ppg)
	if got := GallonsToLbs(gal, ppg); !almostEqual(got, 2010, 1e-9) {
		t.Fatalf("round trip = %v, want 2010", got)
	}
}

func TestLbsToGallonsZeroDensity(t *testing.T) {
	if got := LbsToGallons(1000, 0); got != 0 {
		t.Fatalf("zero density: got %v, want 0", got)
	}
}
