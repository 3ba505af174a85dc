package dto

// SingleLegRequest mirrors domain.SingleLegInputs plus an optional
// manual tanker-out override. A nil override means "plan the optimum";
// a present override is used as-is, even if infeasible.
type SingleLegRequest struct {
	Aircraft string `json:"aircraft"`

	LastLegShutdownFuelLbs float64 `json:"last_leg_shutdown_fuel_lbs"`
	StartFuelLbs           float64 `json:"start_fuel_lbs"`
	FuelToDestinationLbs   float64 `json:"fuel_to_destination_lbs"`
	FlightTimeHours        float64 `json:"flight_time_hours"`

	MaxLandingWeightLbs float64 `json:"max_landing_weight_lbs"`
	ZeroFuelWeightLbs   float64 `json:"zero_fuel_weight_lbs"`

	NextLegStartFuelLbs float64 `json:"next_leg_start_fuel_lbs"`

	FeeWaiverGal float64 `json:"fee_waiver_gal"`
	FeeWaiverUSD float64 `json:"fee_waiver_usd"`

	DepartureFuelPriceUSD float64 `json:"departure_fuel_price_usd"`
	NextLegFuelPriceUSD   float64 `json:"next_leg_fuel_price_usd"`

	FuelTempC        float64 `json:"fuel_temp_c"`
	ArrivalBufferLbs float64 `json:"arrival_buffer_lbs"`
	NextLegBufferLbs float64 `json:"next_leg_buffer_lbs"`

	ManualTankerOutLbs *float64 `json:"manual_tanker_out_lbs"`
}

type SingleLegResponse struct {
	TankerOutLbs float64 `json:"tanker_out_lbs"`
	TankerInLbs  float64 `json:"tanker_in_lbs"`
	AddedBurnLbs float64 `json:"added_burn_lbs"`

	NetSavingsUSD    float64 `json:"net_savings_usd"`
	TankerSavingsUSD float64 `json:"tanker_savings_usd"`
	CarryCostUSD     float64 `json:"carry_cost_usd"`
	FeeImpactUSD     float64 `json:"fee_impact_usd"`

	LosesFeeWaiver          bool `json:"loses_fee_waiver"`
	ExceedsMaxLandingWeight bool `json:"exceeds_max_landing_weight"`

	LandingFuelLbs    float64 `json:"landing_fuel_lbs"`
	MaxLandingFuelLbs float64 `json:"max_landing_fuel_lbs"`

	FuelToOrderLbs float64 `json:"fuel_to_order_lbs"`
	FuelToOrderGal float64 `json:"fuel_to_order_gal"`

	DensityPPG            float64 `json:"density_ppg"`
	PlannedArrivalFuelLbs float64 `json:"planned_arrival_fuel_lbs"`
}

// LimitsResponse carries the standalone advisory figures for a leg.
type LimitsResponse struct {
	OptimumTankerOutLbs float64 `json:"optimum_tanker_out_lbs"`
	MaxTankerOutLbs     float64 `json:"max_tanker_out_lbs"`
}

// RouteLegRequest is one leg of a multi-leg plan request. Price and
// fee-waiver fields may be omitted; a zero fuel price means "look the
// departure airport up in the fuel-price table".
type RouteLegRequest struct {
	From string `json:"from"`
	To   string `json:"to"`

	RequiredStartFuelLbs float64 `json:"required_start_fuel_lbs"`
	FuelToDestinationLbs float64 `json:"fuel_to_destination_lbs"`
	FlightTimeHours      float64 `json:"flight_time_hours"`

	MaxLandingWeightLbs float64 `json:"max_landing_weight_lbs"`
	ZeroFuelWeightLbs   float64 `json:"zero_fuel_weight_lbs"`

	FuelPricePerGalUSD float64 `json:"fuel_price_per_gal_usd"`
	FeeWaiverGal       float64 `json:"fee_waiver_gal"`
	FeeWaiverUSD       float64 `json:"fee_waiver_usd"`
}

type RouteRequest struct {
	ShutdownFuelLbs     float64 `json:"shutdown_fuel_lbs"`
	CarryCostPctPerHour float64 `json:"carry_cost_pct_per_hour"`
	FuelTempC           float64 `json:"fuel_temp_c"`
	ArrivalBufferLbs    float64 `json:"arrival_buffer_lbs"`

	StepLbs float64 `json:"step_lbs"`

	Legs []RouteLegRequest `json:"legs"`
}

type RouteLegResponse struct {
	From string `json:"from"`
	To   string `json:"to"`

	TankerOutLbs float64 `json:"tanker_out_lbs"`
	TankerInLbs  float64 `json:"tanker_in_lbs"`

	FuelToOrderLbs float64 `json:"fuel_to_order_lbs"`
	FuelToOrderGal float64 `json:"fuel_to_order_gal"`

	LandingFuelLbs float64 `json:"landing_fuel_lbs"`

	FuelCostUSD float64 `json:"fuel_cost_usd"`
	FeePaidUSD  float64 `json:"fee_paid_usd"`
}

// RouteResponse reports the whole-route plan, or feasible=false with
// no legs when no combination of decisions satisfies the constraints.
type RouteResponse struct {
	Feasible bool               `json:"feasible"`
	Legs     []RouteLegResponse `json:"legs,omitempty"`

	TotalFuelCostUSD float64 `json:"total_fuel_cost_usd"`
	TotalFeesUSD     float64 `json:"total_fees_usd"`
	TotalCostUSD     float64 `json:"total_cost_usd"`
}
