package domain

// Leg is one ordered step of a multi-leg route. From and To are free
// text idents; they are not validated against an airport registry.
type Leg struct {
	From string
	To   string

	RequiredStartFuelLbs float64
	FuelToDestinationLbs float64
	FlightTimeHours      float64

	MaxLandingWeightLbs float64
	ZeroFuelWeightLbs   float64

	FuelPricePerGalUSD float64
	FeeWaiverGal       float64
	FeeWaiverUSD       float64
}

// Route is an ordered sequence of legs plus route-wide settings. Legs
// are processed strictly in slice order: the fuel entering leg i is
// the planned arrival fuel of leg i-1 plus whatever extra was carried
// over.
type Route struct {
	// Fuel in the tanks before the first leg's uplift.
	ShutdownFuelLbs float64

	// Linear percentage of tankered fuel lost per flight hour. This is
	// the multi-leg carry model, distinct from the per-aircraft burn
	// curves used by the single-leg planner.
	CarryCostPctPerHour float64

	FuelTempC        float64
	ArrivalBufferLbs float64

	Legs []Leg
}

// PlannedArrivalFuel returns the arrival fuel for one leg before any
// carried-in extra: required start fuel minus burn minus the route's
// arrival buffer. Not clamped; a negative value signals inputs that
// do not close.
func (r Route) PlannedArrivalFuel(leg Leg) float64 {
	return leg.RequiredStartFuelLbs - leg.FuelToDestinationLbs - r.ArrivalBufferLbs
}

// MaxLandingFuel returns the landing-fuel ceiling for a leg.
func (l Leg) MaxLandingFuel() float64 {
	return l.MaxLandingWeightLbs - l.ZeroFuelWeightLbs
}

// LegPlan is the per-leg slice of a multi-leg plan.
type LegPlan struct {
	From string
	To   string

	TankerOutLbs float64
	TankerInLbs  float64

	FuelToOrderLbs float64
	FuelToOrderGal float64

	LandingFuelLbs float64

	FuelCostUSD float64
	FeePaidUSD  float64
}

// MultiLegPlan is the jointly optimized tankering plan for a whole
// route. It is produced atomically: there is no partial plan, and an
// infeasible route yields no plan at all (a nil *MultiLegPlan).
type MultiLegPlan struct {
	Legs []LegPlan

	TotalFuelCostUSD float64
	TotalFeesUSD     float64
	TotalCostUSD     float64
}
