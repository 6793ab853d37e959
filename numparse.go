// Package numparse turns numeric command-line argument tokens into
// exact decimal values suitable for repeated stepping without
// accumulating rounding error. It currently understands hexadecimal
// floating-point literals; callers fall back to their decimal parser for
// everything else.
package numparse

import (
	"math"

	"github.com/pkg/errors"

	"github.com/seqkit/numparse/hexfloat"
	"github.com/seqkit/numparse/precise"
)

// ParseHexadecimalFloat parses a hexadecimal floating-point literal such
// as "-0x1.8p+2" and lifts it to an exact decimal via the scaled-integer
// conversion. The tolerance is forwarded to the lifter; 0 selects
// precise.DefaultTolerance. Malformed literals, and literals whose
// exponent overflows a float64, fail with hexfloat.ErrSyntax as the
// cause.
func ParseHexadecimalFloat(text string, tolerance float64) (precise.Number, error) {
	v, err := parseFinite(text)
	if err != nil {
		return precise.Number{}, err
	}
	return precise.FromScaledFloat(v, tolerance), nil
}

// ParseHexadecimalFloatExact is ParseHexadecimalFloat with the exact
// shortest-decimal conversion in place of the scaled-integer one.
func ParseHexadecimalFloatExact(text string) (precise.Number, error) {
	v, err := parseFinite(text)
	if err != nil {
		return precise.Number{}, err
	}
	return precise.FromFloat(v), nil
}

func parseFinite(text string) (float64, error) {
	v, err := hexfloat.Parse(text)
	if err == nil && math.IsInf(v, 0) {
		err = hexfloat.ErrSyntax
	}
	if err != nil {
		return 0, errors.Wrapf(err, "invalid float argument: %q", text)
	}
	return v, nil
}
