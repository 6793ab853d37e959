package precise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledInteger(t *testing.T) {
	for _, tt := range []struct {
		input float64
		value int64
		scale int
	}{
		{0.0, 0, 0},
		{0.5, 5, -1},
		{1.5, 15, -1},
		{-0.5, -5, -1},
		{-1.5, -15, -1},
		{0.375, 375, -3},
		{1.375, 1375, -3},
		{1.372, 1372, -3},
		{1.378, 1378, -3},
		{1.0, 1, 0},
		{10.0, 10, 0},
		{123.12345678, 12312345678, -8},
		{-123.12345678, -12312345678, -8},
		{-334.22923, -33422923, -5},
		{1000.00001, 100000001, -5},
		{4334.123456788, 4334123456788, -9},
		// truncated beyond ~15 significant digits
		{123456789.123456789, 1234567891234568, -7},
		{-123456789.123456789, -1234567891234568, -7},
	} {
		value, scale := ScaledInteger(tt.input, 0)
		assert.Equal(t, tt.value, value, tt.input)
		assert.Equal(t, tt.scale, scale, tt.input)
	}
}

func TestScaledInteger_Tolerance(t *testing.T) {
	// a loose tolerance stops rescaling early
	value, scale := ScaledInteger(1.375, 0.5)
	assert.Equal(t, int64(1), value)
	assert.Equal(t, 0, scale)

	// a tight one keeps the digits the default would drop
	value, scale = ScaledInteger(0.1234567, 1e-9)
	assert.Equal(t, int64(1234567), value)
	assert.Equal(t, -7, scale)
}

func TestScaledInteger_Saturation(t *testing.T) {
	value, scale := ScaledInteger(1e19, 0)
	assert.Equal(t, int64(math.MaxInt64), value)
	assert.Equal(t, 0, scale)

	value, scale = ScaledInteger(-1e19, 0)
	assert.Equal(t, int64(math.MinInt64), value)
	assert.Equal(t, 0, scale)

	// -2^63 is the last magnitude that still fits
	value, scale = ScaledInteger(math.Ldexp(-1, 63), 0)
	assert.Equal(t, int64(math.MinInt64), value)
	assert.Equal(t, 0, scale)
}

func TestScaledInteger_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		value, scale := ScaledInteger(v, 0)
		assert.Equal(t, int64(0), value, v)
		assert.Equal(t, 0, scale, v)
	}
}

func TestFromScaledFloat(t *testing.T) {
	n := FromScaledFloat(-334.22923, 0)
	assert.Equal(t, "-334.22923", n.Value.String())
	assert.Equal(t, 5, n.FractionalDigits)
	assert.Equal(t, 0, n.IntegerDigits)

	n = FromScaledFloat(16.0, 0)
	assert.Equal(t, "16", n.Value.String())
	assert.Equal(t, 0, n.FractionalDigits)
}

// magnitudes beyond int64 must keep their value and sign
func TestFromScaledFloat_LargeMagnitude(t *testing.T) {
	for _, input := range []float64{
		math.Ldexp(1, 63),
		math.Ldexp(1, 64),
		math.Ldexp(-1, 64),
	} {
		n := FromScaledFloat(input, 0)
		v, err := n.Float64()
		assert.NoError(t, err, input)
		assert.Equal(t, input, v, input)
		assert.Equal(t, 0, n.FractionalDigits, input)
	}

	// shortest decimal form that converts back to 2^64
	n := FromScaledFloat(math.Ldexp(1, 64), 0)
	assert.Equal(t, "18446744073709552000", n.Value.String())
}
