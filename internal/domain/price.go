package domain

// AirportPrice is a fuel vendor quote for one airport: unit price and
// the vendor's fee-waiver program (zero threshold or zero amount means
// no program).
type AirportPrice struct {
	Airport        string
	PricePerGalUSD float64
	FeeWaiverGal   float64
	FeeWaiverUSD   float64
}
