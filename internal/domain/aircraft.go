package domain

// AircraftType identifies an aircraft type with a defined burn curve.
// The set of supported types is closed: adding a type means adding a
// curve to burnCurves below.
type AircraftType string

const (
	CE750 AircraftType = "CE-750"
	CE680 AircraftType = "CE-680"
	CL350 AircraftType = "CL-350"
	G280  AircraftType = "G-280"
	BE350 AircraftType = "BE-350"
)

// Added-burn sample tables per aircraft type, defined for a 2-hour
// baseline leg. These are simplified empirical approximations, not
// flight-manual data. Points must be sorted ascending by extra fuel
// with non-decreasing burn.
var burnCurves = map[AircraftType]BurnCurve{
	CE750: {
		{ExtraLbs: 500, BurnLbs: 18},
		{ExtraLbs: 1000, BurnLbs: 38},
		{ExtraLbs: 1500, BurnLbs: 60},
		{ExtraLbs: 2000, BurnLbs: 84},
		{ExtraLbs: 3000, BurnLbs: 140},
		{ExtraLbs: 4000, BurnLbs: 204},
		{ExtraLbs: 5000, BurnLbs: 276},
	},
	CE680: {
		{ExtraLbs: 500, BurnLbs: 16},
		{ExtraLbs: 1000, BurnLbs: 34},
		{ExtraLbs: 1500, BurnLbs: 54},
		{ExtraLbs: 2000, BurnLbs: 76},
		{ExtraLbs: 3000, BurnLbs: 126},
		{ExtraLbs: 4000, BurnLbs: 184},
	},
	CL350: {
		{ExtraLbs: 500, BurnLbs: 15},
		{ExtraLbs: 1000, BurnLbs: 32},
		{ExtraLbs: 2000, BurnLbs: 70},
		{ExtraLbs: 3000, BurnLbs: 114},
		{ExtraLbs: 4000, BurnLbs: 166},
	},
	G280: {
		{ExtraLbs: 500, BurnLbs: 14},
		{ExtraLbs: 1000, BurnLbs: 30},
		{ExtraLbs: 2000, BurnLbs: 64},
		{ExtraLbs: 3000, BurnLbs: 102},
		{ExtraLbs: 4000, BurnLbs: 146},
		{ExtraLbs: 5000, BurnLbs: 196},
	},
	// Turboprop penalty is close to linear over its useful range.
	BE350: {
		{ExtraLbs: 1000, BurnLbs: 40},
		{ExtraLbs: 2000, BurnLbs: 80},
		{ExtraLbs: 3000, BurnLbs: 120},
		{ExtraLbs: 4000, BurnLbs: 160},
		{ExtraLbs: 5000, BurnLbs: 200},
	},
}

// BurnCurveFor returns the burn curve for an aircraft type.
// The second return is false for unknown types.
func BurnCurveFor(t AircraftType) (BurnCurve, bool) {
	c, ok := burnCurves[t]
	return c, ok
}

// AircraftTypes returns the supported aircraft types in stable order.
func AircraftTypes() []AircraftType {
	return []AircraftType{CE750, CE680, CL350, G280, BE350}
}
