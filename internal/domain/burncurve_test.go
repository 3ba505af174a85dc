package domain

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestInterpolateZeroAndNegative(t *testing.T) {
	for _, typ := range AircraftTypes() {
		curve, ok := BurnCurveFor(typ)
		if !ok {
			t.Fatalf("no curve for %s", typ)
		}

		if got := curve.Interpolate(0); got != 0 {
			t.Errorf("%s: Interpolate(0) = %v, want 0", typ, got)
		}
		if got := curve.Interpolate(-500); got != 0 {
			t.Errorf("%s: Interpolate(-500) = %v, want 0", typ, got)
		}
	}
}

func TestInterpolateMonotonicOnSamples(t *testing.T) {
	for _, typ := range AircraftTypes() {
		curve, _ := BurnCurveFor(typ)

		prev := 0.0
		for _, p := range curve {
			got := curve.Interpolate(p.ExtraLbs)
			if !almostEqual(got, p.BurnLbs, 1e-9) {
				t.Errorf("%s: Interpolate(%v) = %v, want sample %v", typ, p.ExtraLbs, got, p.BurnLbs)
			}
			if got < prev {
				t.Errorf("%s: burn decreased at %v lbs: %v < %v", typ, p.ExtraLbs, got, prev)
			}
			prev = got
		}
	}
}

func TestInterpolateBelowFirstPoint(t *testing.T) {
	curve, _ := BurnCurveFor(CE750)

	// First sample is (500, 18); halfway should scale from the origin.
	if got := curve.Interpolate(250); !almostEqual(got, 9, 1e-9) {
		t.Fatalf("Interpolate(250) = %v, want 9", got)
	}
}

func TestInterpolateBetweenPoints(t *testing.T) {
	curve, _ := BurnCurveFor(CE750)

	// Between (2000, 84) and (3000, 140).
	if got := curve.Interpolate(2500); !almostEqual(got, 112, 1e-9) {
		t.Fatalf("Interpolate(2500) = %v, want 112", got)
	}
}

func TestInterpolateExtrapolatesAboveLastPoint(t *testing.T) {
	curve, _ := BurnCurveFor(CE750)

	// Last segment (4000, 204) -> (5000, 276): slope 0.072 per lb.
	if got := curve.Interpolate(6000); !almostEqual(got, 348, 1e-9) {
		t.Fatalf("Interpolate(6000) = %v, want 348", got)
	}

	// No clamping: pathologically large inputs still answer.
	if got := curve.Interpolate(500000); got <= 0 || math.IsNaN(got) {
		t.Fatalf("Interpolate(500000) = %v, want a large positive value", got)
	}
}

func TestAddedBurnScalesWithFlightTime(t *testing.T) {
	curve, _ := BurnCurveFor(CE750)

	base := curve.Interpolate(2000)
	if got := curve.AddedBurn(2000, 2.0); !almostEqual(got, base, 1e-9) {
		t.Fatalf("AddedBurn at 2h = %v, want baseline %v", got, base)
	}
	if got := curve.AddedBurn(2000, 1.0); !almostEqual(got, base/2, 1e-9) {
		t.Fatalf("AddedBurn at 1h = %v, want %v", got, base/2)
	}
	if got := curve.AddedBurn(2000, 3.0); !almostEqual(got, base*1.5, 1e-9) {
		t.Fatalf("AddedBurn at 3h = %v, want %v", got, base*1.5)
	}
}

func TestAddedBurnDegenerateInputs(t *testing.T) {
	curve, _ := BurnCurveFor(CL350)

	if got := curve.AddedBurn(0, 2); got != 0 {
		t.Errorf("zero extra: got %v, want 0", got)
	}
	if got := curve.AddedBurn(-100, 2); got != 0 {
		t.Errorf("negative extra: got %v, want 0", got)
	}
	if got := curve.AddedBurn(2000, 0); got != 0 {
		t.Errorf("zero flight time: got %v, want 0", got)
	}
	if got := curve.AddedBurn(2000, -1); got != 0 {
		t.Errorf("negative flight time: got %v, want 0", got)
	}
}

func TestInterpolateEmptyCurvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty curve")
		}
	}()

	BurnCurve{}.Interpolate(1000)
}
