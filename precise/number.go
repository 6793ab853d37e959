// Package precise lifts binary floating-point values to exact decimal
// representations so that downstream arithmetic does not inherit binary
// rounding error.
package precise

import (
	"strconv"

	"gopkg.in/inf.v0"
)

// Number is an exact decimal value together with the digit bookkeeping
// tracked for each numeric argument. IntegerDigits is left 0 here; the
// caller derives it when it has the full argument in hand.
type Number struct {
	Value            *inf.Dec
	IntegerDigits    int
	FractionalDigits int
}

// Float64 converts the decimal value back to the nearest binary
// floating-point value.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(n.Value.String(), 64)
}

func fractionalDigits(scale int) int {
	if scale < 0 {
		return -scale
	}
	return 0
}
