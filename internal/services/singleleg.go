package services

import (
	"fmt"

	"tanker-plan-service/internal/domain"
)

const (
	// Feasibility scan granularity for the landing-weight ceiling.
	feasibilityStepLbs = 50.0

	// Optimum search granularity. Coarser than the feasibility scan;
	// a tunable precision/runtime trade, not a correctness parameter.
	optimumStepLbs = 100.0

	// Numeric tolerance on the landing-fuel comparison.
	landingFuelTolLbs = 0.001

	// Hard scan ceiling. Only reachable with a degenerate curve whose
	// slope is >= 1, where landing fuel stops growing with tanker-out.
	maxScanLbs = 100000.0
)

// legState bundles the quantities every single-leg computation derives
// from its inputs before searching anything.
type legState struct {
	curve          domain.BurnCurve
	ppg            float64
	plannedArrival float64
	maxLanding     float64
}

func newLegState(in domain.SingleLegInputs) (legState, error) {
	curve, ok := domain.BurnCurveFor(in.Aircraft)
	if !ok {
		return legState{}, fmt.Errorf("single leg: no burn curve defined for aircraft type %q", in.Aircraft)
	}

	return legState{
		curve:          curve,
		ppg:            domain.FuelDensityPPG(in.FuelTempC),
		plannedArrival: in.StartFuelLbs - in.FuelToDestinationLbs - in.ArrivalBufferLbs,
		maxLanding:     in.MaxLandingWeightLbs - in.ZeroFuelWeightLbs,
	}, nil
}

// landingFuel returns arrival fuel for a candidate tanker-out: planned
// arrival plus what survives the burn penalty.
func (s legState) landingFuel(in domain.SingleLegInputs, outLbs float64) float64 {
	return s.plannedArrival + outLbs - s.curve.AddedBurn(outLbs, in.FlightTimeHours)
}

// destinationRequiredGal is the fuel that must be bought at the
// destination to reach the next leg's start fuel plus buffer, given
// the landing fuel. Never negative: surplus fuel is simply not bought.
func (s legState) destinationRequiredGal(in domain.SingleLegInputs, landingLbs float64) float64 {
	needLbs := in.NextLegStartFuelLbs + in.NextLegBufferLbs - landingLbs
	if needLbs <= 0 {
		return 0
	}
	return domain.LbsToGallons(needLbs, s.ppg)
}

// netSavings compares buying fuel at the destination with zero
// tankering against tankering outLbs: baseline destination cost minus
// this candidate's destination cost and the departure-side cost of the
// extra fuel.
func (s legState) netSavings(in domain.SingleLegInputs, outLbs float64) float64 {
	baseCost := DestinationCost(s.destinationRequiredGal(in, s.plannedArrival), in.NextLegFuelPriceUSD, in.FeeWaiverGal, in.FeeWaiverUSD)
	candCost := DestinationCost(s.destinationRequiredGal(in, s.landingFuel(in, outLbs)), in.NextLegFuelPriceUSD, in.FeeWaiverGal, in.FeeWaiverUSD)
	departCost := domain.LbsToGallons(outLbs, s.ppg) * in.DepartureFuelPriceUSD
	return baseCost - candCost - departCost
}

// MaxFeasibleTankerOut scans candidate tanker-out quantities upward in
// 50 lb steps and returns the last one whose landing fuel respects the
// max-landing-weight ceiling. The burn curve is piecewise and not
// analytically invertible, so this is an exhaustive forward scan
// rather than a closed-form solve.
func MaxFeasibleTankerOut(in domain.SingleLegInputs) (float64, error) {
	s, err := newLegState(in)
	if err != nil {
		return 0, err
	}
	return s.maxFeasibleOut(in), nil
}

func (s legState) maxFeasibleOut(in domain.SingleLegInputs) float64 {
	last := 0.0
	for out := feasibilityStepLbs; out <= maxScanLbs; out += feasibilityStepLbs {
		if s.landingFuel(in, out) > s.maxLanding+landingFuelTolLbs {
			break
		}
		last = out
	}
	return last
}

// OptimumTankerOut returns the profit-maximizing tanker-out quantity
// for one leg. When the destination price does not exceed the
// departure price tankering cannot save money and the answer is
// exactly zero. Ties keep the smallest candidate: the scan runs in
// ascending order and only strictly greater savings replace the
// current best.
func OptimumTankerOut(in domain.SingleLegInputs) (float64, error) {
	s, err := newLegState(in)
	if err != nil {
		return 0, err
	}

	if in.NextLegFuelPriceUSD <= in.DepartureFuelPriceUSD {
		return 0, nil
	}

	ceiling := s.maxFeasibleOut(in)

	bestOut := 0.0
	bestNet := 0.0
	for out := optimumStepLbs; out <= ceiling; out += optimumStepLbs {
		if net := s.netSavings(in, out); net > bestNet {
			bestNet = net
			bestOut = out
		}
	}
	return bestOut, nil
}

// ComputeSingleLeg assembles the full result for one leg. With a nil
// manualTankerOut the optimum is planned; otherwise the caller's value
// is used as-is, never auto-corrected to a feasible quantity. Weight
// and fee-waiver violations come back as flags on the result, not as
// errors.
func ComputeSingleLeg(in domain.SingleLegInputs, manualTankerOut *float64) (domain.SingleLegResult, error) {
	s, err := newLegState(in)
	if err != nil {
		return domain.SingleLegResult{}, err
	}

	var out float64
	if manualTankerOut != nil {
		out = *manualTankerOut
	} else {
		out, err = OptimumTankerOut(in)
		if err != nil {
			return domain.SingleLegResult{}, err
		}
	}

	addedBurn := s.curve.AddedBurn(out, in.FlightTimeHours)
	tankerIn := out - addedBurn
	landing := s.plannedArrival + tankerIn

	baseGal := s.destinationRequiredGal(in, s.plannedArrival)
	candGal := s.destinationRequiredGal(in, landing)

	basePurchase := DestinationPurchase(baseGal, in.NextLegFuelPriceUSD, in.FeeWaiverGal, in.FeeWaiverUSD)
	candPurchase := DestinationPurchase(candGal, in.NextLegFuelPriceUSD, in.FeeWaiverGal, in.FeeWaiverUSD)

	// Fee-related cost beyond buying the required quantity at list
	// price: the fee itself, or the top-up excess.
	baseFeeCost := basePurchase.CostUSD - baseGal*in.NextLegFuelPriceUSD
	candFeeCost := candPurchase.CostUSD - candGal*in.NextLegFuelPriceUSD

	// Decomposition: net = tankerSavings - carryCost - feeImpact.
	// Tanker savings is the arbitrage on delivered fuel, carry cost
	// prices the added burn at the departure rate, and fee impact is
	// the fee-cost delta against the zero-tanker baseline.
	tankerSavings := (baseGal-candGal)*in.NextLegFuelPriceUSD - domain.LbsToGallons(tankerIn, s.ppg)*in.DepartureFuelPriceUSD
	carryCost := domain.LbsToGallons(addedBurn, s.ppg) * in.DepartureFuelPriceUSD
	feeImpact := candFeeCost - baseFeeCost

	waiverConfigured := in.FeeWaiverGal > 0 && in.FeeWaiverUSD > 0

	orderLbs := in.StartFuelLbs + out - in.LastLegShutdownFuelLbs

	return domain.SingleLegResult{
		TankerOutLbs: out,
		TankerInLbs:  tankerIn,
		AddedBurnLbs: addedBurn,

		NetSavingsUSD:    tankerSavings - carryCost - feeImpact,
		TankerSavingsUSD: tankerSavings,
		CarryCostUSD:     carryCost,
		FeeImpactUSD:     feeImpact,

		LosesFeeWaiver:          waiverConfigured && baseGal >= in.FeeWaiverGal && candGal < in.FeeWaiverGal,
		ExceedsMaxLandingWeight: landing > s.maxLanding+landingFuelTolLbs,

		LandingFuelLbs:    landing,
		MaxLandingFuelLbs: s.maxLanding,

		FuelToOrderLbs: orderLbs,
		FuelToOrderGal: domain.LbsToGallons(orderLbs, s.ppg),

		DensityPPG:            s.ppg,
		PlannedArrivalFuelLbs: s.plannedArrival,
	}, nil
}
