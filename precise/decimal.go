package precise

import (
	"strconv"

	"gopkg.in/inf.v0"
)

// FromFloat lifts v to the exact decimal denoted by the shortest decimal
// string that converts back to v. Unlike FromScaledFloat it never
// truncates, but binary fractions with no short decimal form can need
// many fractional digits. v must be finite; non-finite values are
// rejected by the scanner seam before lifting.
func FromFloat(v float64) Number {
	d, ok := new(inf.Dec).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		d = new(inf.Dec)
	}
	return Number{
		Value:            d,
		FractionalDigits: fractionalDigits(-int(d.Scale())),
	}
}
