package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{in: "0", want: 0},
		{in: "10", want: 1000},
		{in: "10.5", want: 1050},
		{in: "77.20", want: 7720},
		{in: "0.01", want: 1},
		{in: "19.999", want: 2000},
		{in: "0.105", want: 11},
		{in: "-3.25", want: -325},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ToMinorUnits(decimal.RequireFromString(tc.in)))
		})
	}
}

func TestToMajorUnits(t *testing.T) {
	assert.True(t, ToMajorUnits(1050).Equal(decimal.RequireFromString("10.50")))
	assert.True(t, ToMajorUnits(0).Equal(decimal.Zero))
	assert.Equal(t, "0.01", ToMajorUnits(1).StringFixed(2))
}

func TestRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12345, 999999999} {
		assert.Equal(t, cents, ToMinorUnits(ToMajorUnits(cents)))
	}
}

func TestFromString(t *testing.T) {
	d, err := FromString("12.34")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), ToMinorUnits(d))

	_, err = FromString("abc")
	assert.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestRequireNonNegative(t *testing.T) {
	assert.NoError(t, RequireNonNegative(0))
	assert.NoError(t, RequireNonNegative(10))
	assert.ErrorIs(t, RequireNonNegative(-1), ErrInvalidAmount)
}
