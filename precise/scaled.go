package precise

import (
	"math"

	"gopkg.in/inf.v0"
)

// DefaultTolerance bounds how far a rescaled value may sit from the
// nearest integer before another decimal digit is required.
const DefaultTolerance = 0.000001

// ScaledInteger rescales v by growing powers of ten until it rounds to
// an integer within tolerance, returning that integer and the decimal
// scale (always <= 0) that undoes the rescaling. A tolerance of 0
// selects DefaultTolerance. Magnitudes of 2^63 and above saturate to
// math.MaxInt64/math.MinInt64; non-finite values map to (0, 0).
//
// Each iteration recomputes the scaled value from v instead of
// multiplying an accumulator, so rounding error does not compound
// across iterations.
func ScaledInteger(v float64, tolerance float64) (int64, int) {
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, 0
	}
	scaled := v
	scale := 0
	multiplier := 10.0
	for {
		rounded := math.Round(scaled)
		if math.Abs(rounded-scaled) <= tolerance {
			// magnitudes of 2^63 and above do not fit an int64; saturate
			// deterministically rather than leave the conversion to the
			// platform
			if rounded >= 1<<63 {
				return math.MaxInt64, -scale
			}
			if rounded < -(1 << 63) {
				return math.MinInt64, -scale
			}
			return int64(rounded), -scale
		}
		scale++
		scaled = v * multiplier
		multiplier *= 10
	}
}

// FromScaledFloat lifts v to an exact decimal via ScaledInteger. Values
// needing more than about 15 significant digits are truncated to the
// tolerance. Magnitudes of 2^63 and above do not fit ScaledInteger's
// significand; they are always integral at that size, so they take the
// exact decimal conversion instead.
func FromScaledFloat(v float64, tolerance float64) Number {
	if v >= 1<<63 || v < -(1<<63) {
		return FromFloat(v)
	}
	value, scale := ScaledInteger(v, tolerance)
	return Number{
		Value:            inf.NewDec(value, inf.Scale(-scale)),
		FractionalDigits: fractionalDigits(scale),
	}
}
