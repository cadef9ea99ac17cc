package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"1000000", 1_000_000},
		{"1,000,000", 1_000_000},
		{"₩1,000,000원", 1_000_000},
		{"$ 2,500", 2500},
		{"12.50", 1250}, // the dot is not a digit
		{"", 0},
		{"abc", 0},
		{"-500", 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.raw), "ParseAmount(%q)", tt.raw)
	}
}

func TestParsePeriods(t *testing.T) {
	assert.Equal(t, 10.0, ParsePeriods("10"))
	assert.Equal(t, 10.0, ParsePeriods("10년"))
	assert.Equal(t, 25.0, ParsePeriods("2.5"))
	assert.Equal(t, 0.0, ParsePeriods("years"))
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"5", 5},
		{"3.75", 3.75},
		{" 7.5% ", 7.5},
		{"1,000", 1000},
		{"", 0},
		{"five", 0},
		{"-2", -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRate(tt.raw), "ParseRate(%q)", tt.raw)
	}
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "1234", StripNonDigits("1a2b3c4"))
	assert.Equal(t, "", StripNonDigits("١٢٣")) // non-ASCII digits are dropped
}

func TestFields_Ready(t *testing.T) {
	assert.True(t, Parse("1,000,000", "5", "10").Ready())
	assert.False(t, Parse("", "5", "10").Ready())
	assert.False(t, Parse("1000", "0", "10").Ready())
	assert.False(t, Parse("1000", "-1", "10").Ready())
	assert.False(t, Parse("1000", "5", "").Ready())
}

func TestFields_Input(t *testing.T) {
	f := Fields{Principal: 1000, AnnualRatePercent: 5, Periods: 3.7}
	in, err := f.Input()
	require.NoError(t, err)
	assert.Equal(t, 3, in.Periods)
	assert.Equal(t, 1000.0, in.Principal)
}
