package dto

type AirportPriceResponse struct {
	Airport        string  `json:"airport"`
	PricePerGalUSD float64 `json:"price_per_gal_usd"`
	FeeWaiverGal   float64 `json:"fee_waiver_gal"`
	FeeWaiverUSD   float64 `json:"fee_waiver_usd"`
}

type ListPricesResponse struct {
	Prices []AirportPriceResponse `json:"prices"`
}

type BurnPointResponse struct {
	ExtraLbs float64 `json:"extra_lbs"`
	BurnLbs  float64 `json:"burn_lbs"`
}

type AircraftResponse struct {
	Type  string              `json:"type"`
	Curve []BurnPointResponse `json:"curve"`
}

type ListAircraftResponse struct {
	Aircraft []AircraftResponse `json:"aircraft"`
}
