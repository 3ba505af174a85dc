package domain

// Jet-A density bounds in pounds per gallon. Temperature inputs far
// outside the physical range still yield a plausible density.
const (
	minDensityPPG = 6.4
	maxDensityPPG = 7.1
)

// FuelDensityPPG returns temperature-adjusted fuel density in pounds
// per gallon, clamped to [6.4, 7.1].
func FuelDensityPPG(tempC float64) float64 {
	ppg := 6.7 * (1 - 0.0008*(tempC-15))
	if ppg < minDensityPPG {
		return minDensityPPG
	}
	if ppg > maxDensityPPG {
		return maxDensityPPG
	}
	return ppg
}

// LbsToGallons converts a fuel quantity at the given density.
func LbsToGallons(lbs, ppg float64) float64 {
	if ppg <= 0 {
		return 0
	}
	return lbs / ppg
}

// GallonsToLbs converts a fuel quantity at the given density.
func GallonsToLbs(gal, ppg float64) float64 {
	return gal * ppg
}
