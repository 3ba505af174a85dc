package services

import (
	"math"

	"tanker-plan-service/internal/domain"
)

// DefaultStepLbs is the multi-leg discretization step. Finer steps
// trade runtime for precision.
const DefaultStepLbs = 100.0

// legBounds precomputes the per-leg quantities the DP needs.
type legBounds struct {
	plannedArrival float64
	maxLanding     float64

	// carry is the fraction of tankered fuel lost to burn by this
	// leg's destination (linear in flight time, unlike the single-leg
	// burn curves).
	carry float64

	// maxOutSteps bounds the tanker-out decision so that, after carry
	// loss, arrival fuel still respects the landing ceiling. -1 marks
	// a leg that busts the ceiling even with zero tankering.
	maxOutSteps int

	// maxInSteps bounds the arrival-extra state leaving this leg.
	maxInSteps int
}

// OptimizeMultiLeg jointly optimizes tanker-out decisions across an
// ordered sequence of legs, minimizing total trip cost (fuel plus
// fees). Extra fuel bought at one leg arrives, minus the linear carry
// loss, as extra fuel at the next; it can be burned or carried
// forward, never dumped.
//
// stepLbs <= 0 selects DefaultStepLbs. The return is nil when the
// route is empty or no combination of decisions satisfies every leg's
// landing-weight ceiling; infeasibility is an expected outcome, not an
// error.
func OptimizeMultiLeg(route domain.Route, stepLbs float64) *domain.MultiLegPlan {
	n := len(route.Legs)
	if n == 0 {
		return nil
	}
	if stepLbs <= 0 {
		stepLbs = DefaultStepLbs
	}

	ppg := domain.FuelDensityPPG(route.FuelTempC)

	bounds := make([]legBounds, n)
	for i, leg := range route.Legs {
		b := legBounds{
			plannedArrival: route.PlannedArrivalFuel(leg),
			maxLanding:     leg.MaxLandingFuel(),
			carry:          route.CarryCostPctPerHour / 100 * leg.FlightTimeHours,
		}

		maxIn := b.maxLanding - b.plannedArrival
		switch {
		case maxIn < 0:
			// Over the ceiling before any tankering: no valid state.
			b.maxOutSteps = -1
			b.maxInSteps = -1
		case b.carry >= 1:
			// Everything tankered burns off before arrival.
			b.maxOutSteps = 0
			b.maxInSteps = int(maxIn / stepLbs)
		default:
			b.maxOutSteps = int(maxIn / (1 - b.carry) / stepLbs)
			b.maxInSteps = int(maxIn / stepLbs)
		}
		bounds[i] = b
	}

	// State at boundary i is the arrival extra beyond leg i-1's
	// planned arrival, as an integer multiple of the step. The root
	// boundary has the single zero state.
	stateCount := make([]int, n+1)
	stateCount[0] = 1
	for i := 1; i <= n; i++ {
		stateCount[i] = bounds[i-1].maxInSteps + 1 // zero when maxInSteps is -1
	}

	// dp[i][a] is the minimum cost of funding legs i..n-1 when
	// arriving at leg i's departure with extra state a; choice[i][a]
	// records the tanker-out state that achieves it. Unreached cells
	// stay at +Inf, the infeasible sentinel.
	dp := make([][]float64, n+1)
	choice := make([][]int, n)

	dp[n] = make([]float64, stateCount[n])

	for i := n - 1; i >= 0; i-- {
		dp[i] = make([]float64, stateCount[i])
		choice[i] = make([]int, stateCount[i])
		for a := range dp[i] {
			dp[i][a] = math.Inf(1)
			choice[i][a] = -1
		}

		leg := route.Legs[i]
		b := bounds[i]

		shutdownBase := route.ShutdownFuelLbs
		if i > 0 {
			shutdownBase = bounds[i-1].plannedArrival
		}

		for a := 0; a < stateCount[i]; a++ {
			shutdown := shutdownBase + float64(a)*stepLbs

			// The inner scan is exhaustive on purpose: convexity of
			// the cost in the out state is not established, so no
			// early exit or ternary search.
			for o := 0; o <= b.maxOutSteps; o++ {
				purchaseLbs := leg.RequiredStartFuelLbs + float64(o)*stepLbs - shutdown
				if purchaseLbs < 0 {
					// Departing this light would mean dumping fuel.
					continue
				}

				next := int(math.Round(float64(o) * stepLbs * (1 - b.carry) / stepLbs))
				if next >= stateCount[i+1] {
					continue
				}

				future := dp[i+1][next]
				if math.IsInf(future, 1) {
					continue
				}

				cost := DestinationCost(domain.LbsToGallons(purchaseLbs, ppg), leg.FuelPricePerGalUSD, leg.FeeWaiverGal, leg.FeeWaiverUSD) + future
				if cost < dp[i][a] {
					dp[i][a] = cost
					choice[i][a] = o
				}
			}
		}
	}

	if math.IsInf(dp[0][0], 1) {
		return nil
	}

	// Forward walk over the recorded choices to emit the concrete
	// per-leg figures and route totals.
	plan := &domain.MultiLegPlan{Legs: make([]domain.LegPlan, 0, n)}
	a := 0
	for i, leg := range route.Legs {
		b := bounds[i]
		o := choice[i][a]

		shutdown := route.ShutdownFuelLbs
		if i > 0 {
			shutdown = bounds[i-1].plannedArrival + float64(a)*stepLbs
		}

		outLbs := float64(o) * stepLbs
		inLbs := outLbs * (1 - b.carry)
		purchaseLbs := leg.RequiredStartFuelLbs + outLbs - shutdown
		if purchaseLbs < 0 {
			purchaseLbs = 0
		}

		purchase := DestinationPurchase(domain.LbsToGallons(purchaseLbs, ppg), leg.FuelPricePerGalUSD, leg.FeeWaiverGal, leg.FeeWaiverUSD)

		plan.Legs = append(plan.Legs, domain.LegPlan{
			From: leg.From,
			To:   leg.To,

			TankerOutLbs: outLbs,
			TankerInLbs:  inLbs,

			FuelToOrderLbs: domain.GallonsToLbs(purchase.OrderedGal, ppg),
			FuelToOrderGal: purchase.OrderedGal,

			LandingFuelLbs: b.plannedArrival + inLbs,

			FuelCostUSD: purchase.CostUSD - purchase.FeeUSD,
			FeePaidUSD:  purchase.FeeUSD,
		})

		plan.TotalFuelCostUSD += purchase.CostUSD - purchase.FeeUSD
		plan.TotalFeesUSD += purchase.FeeUSD
		plan.TotalCostUSD += purchase.CostUSD

		a = int(math.Round(float64(o) * stepLbs * (1 - b.carry) / stepLbs))
	}

	return plan
}
