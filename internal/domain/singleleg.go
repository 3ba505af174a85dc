package domain

// SingleLegInputs carries everything the single-leg planner needs to
// evaluate one flight. All quantities are plain numbers with no
// cross-field validation; physically inconsistent values produce
// whatever follows algebraically, and constraint violations are
// reported on the result rather than rejected here.
//
// Fuel quantities are pounds, prices are USD per gallon, the fee
// waiver threshold is gallons.
type SingleLegInputs struct {
	Aircraft AircraftType

	LastLegShutdownFuelLbs float64
	StartFuelLbs           float64
	FuelToDestinationLbs   float64
	FlightTimeHours        float64

	MaxLandingWeightLbs float64
	ZeroFuelWeightLbs   float64

	NextLegStartFuelLbs float64

	FeeWaiverGal float64
	FeeWaiverUSD float64

	DepartureFuelPriceUSD float64
	NextLegFuelPriceUSD   float64

	FuelTempC        float64
	ArrivalBufferLbs float64
	NextLegBufferLbs float64
}

// SingleLegResult is the fully derived plan for one leg. It is
// disposable planning data: recomputed from scratch on every input
// change and never mutated in place.
//
// ExceedsMaxLandingWeight and LosesFeeWaiver are informational; the
// computation always completes and the caller decides how to react.
type SingleLegResult struct {
	TankerOutLbs float64
	TankerInLbs  float64
	AddedBurnLbs float64

	NetSavingsUSD    float64
	TankerSavingsUSD float64
	CarryCostUSD     float64
	FeeImpactUSD     float64

	LosesFeeWaiver          bool
	ExceedsMaxLandingWeight bool

	LandingFuelLbs    float64
	MaxLandingFuelLbs float64

	FuelToOrderLbs float64
	FuelToOrderGal float64

	DensityPPG            float64
	PlannedArrivalFuelLbs float64
}
