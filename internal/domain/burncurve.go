package domain

// A single sample of the added-burn model: carrying ExtraLbs of fuel
// beyond the leg requirement costs BurnLbs of additional burn over a
// 2-hour baseline leg.
type BurnPoint struct {
	ExtraLbs float64
	BurnLbs  float64
}

// BurnCurve is an ordered sequence of added-burn samples for one
// aircraft type, sorted ascending by extra fuel. Curves are immutable
// planning data defined at compile time.
type BurnCurve []BurnPoint

// Baseline leg duration the curve samples are defined for.
const burnCurveBaselineHours = 2.0

// Interpolate returns the added burn for carrying extraLbs over the
// 2-hour baseline leg. Below the first sample burn scales linearly
// from the origin; between samples it is piecewise linear; above the
// last sample it extrapolates using the slope of the last segment, so
// arbitrarily large inputs still produce an answer.
//
// Interpolate panics on an empty curve: that indicates a missing
// aircraft-type definition, not bad user input.
func (c BurnCurve) Interpolate(extraLbs float64) float64 {
	if len(c) == 0 {
		panic("burn curve: no sample points defined")
	}

	if extraLbs <= 0 {
		return 0
	}

	first := c[0]
	if extraLbs <= first.ExtraLbs {
		if first.ExtraLbs <= 0 {
			return first.BurnLbs
		}
		return extraLbs * first.BurnLbs / first.ExtraLbs
	}

	for i := 1; i < len(c); i++ {
		if extraLbs <= c[i].ExtraLbs {
			return lerp(c[i-1], c[i], extraLbs)
		}
	}

	if len(c) == 1 {
		// Single-point curve: keep the origin slope past the point.
		return extraLbs * first.BurnLbs / first.ExtraLbs
	}

	// Past the last sample: extend the final segment's slope.
	return lerp(c[len(c)-2], c[len(c)-1], extraLbs)
}

// AddedBurn scales the baseline interpolation by actual flight time,
// reflecting that the penalty is roughly proportional to how long the
// extra weight is carried. Zero or negative flight time means no
// penalty.
func (c BurnCurve) AddedBurn(extraLbs, flightHours float64) float64 {
	if extraLbs <= 0 || flightHours <= 0 {
		return 0
	}
	return c.Interpolate(extraLbs) * flightHours / burnCurveBaselineHours
}

func lerp(a, b BurnPoint, x float64) float64 {
	if b.ExtraLbs == a.ExtraLbs {
		return b.BurnLbs
	}
	t := (x - a.ExtraLbs) / (b.ExtraLbs - a.ExtraLbs)
	return a.BurnLbs + t*(b.BurnLbs-a.BurnLbs)
}
