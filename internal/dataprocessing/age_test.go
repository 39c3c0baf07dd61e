package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeksToMonthsRoundTrip(t *testing.T) {
	for _, months := range []float64{0, 0.5, 1, 6, 24, 240} {
		assert.InDelta(t, months, WeeksToMonths(MonthsToWeeks(months)), 1e-9)
	}
}

func TestResolveAgeBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		unit  string
	}{
		{name: "just under two is years", value: 1.999, unit: "years"},
		{name: "two is weeks", value: 2.0, unit: "weeks"},
		{name: "just under fifty-two is weeks", value: 51.999, unit: "weeks"},
		{name: "fifty-two is months", value: 52.0, unit: "months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := ResolveAge(tt.value)
			switch tt.unit {
			case "years":
				assert.Equal(t, tt.value, age.Years)
				assert.InDelta(t, tt.value*WeeksPerYear, age.Weeks, 1e-9)
				assert.InDelta(t, tt.value*MonthsPerYear, age.Months, 1e-9)
			case "weeks":
				assert.Equal(t, tt.value, age.Weeks)
				assert.InDelta(t, tt.value/WeeksPerYear, age.Years, 1e-9)
				assert.InDelta(t, tt.value/WeeksPerMonth, age.Months, 1e-9)
			case "months":
				assert.Equal(t, tt.value, age.Months)
				assert.InDelta(t, tt.value/MonthsPerYear, age.Years, 1e-9)
				assert.InDelta(t, tt.value*WeeksPerMonth, age.Weeks, 1e-9)
			}
		})
	}
}

// The month conversion must stay derived from the year constant; two
// disagreeing literals for the same conversion is the failure mode this
// guards against.
func TestConversionConstantsConsistent(t *testing.T) {
	assert.Equal(t, WeeksPerYear/MonthsPerYear, WeeksPerMonth)
}
