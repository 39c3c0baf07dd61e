package dataprocessing

// One authoritative set of age conversion constants. The month conversion
// is derived from the year constant so the two never disagree.
const (
	WeeksPerYear  = 52.1775
	MonthsPerYear = 12
	WeeksPerMonth = WeeksPerYear / MonthsPerYear
)

// Age carries the same age expressed in all three units.
type Age struct {
	Years  float64
	Weeks  float64
	Months float64
}

// WeeksToMonths converts an explicit weeks value to months.
func WeeksToMonths(weeks float64) float64 {
	return weeks / WeeksPerMonth
}

// MonthsToWeeks converts an explicit months value to weeks.
func MonthsToWeeks(months float64) float64 {
	return months * WeeksPerMonth
}

// ResolveAge interprets a unitless age scalar and back-fills the other two
// units from whichever was chosen as ground truth: values below 2 are
// years, values in [2, 52) are weeks, anything else is months.
//
// The thresholds are inherently ambiguous (an age of exactly 2 years and
// an age of 2 weeks are indistinguishable by magnitude) and are only used
// for sources that declare no unit. Do not tighten them without new
// information about the source data.
func ResolveAge(v float64) Age {
	switch {
	case v < 2:
		return Age{Years: v, Weeks: v * WeeksPerYear, Months: v * MonthsPerYear}
	case v < 52:
		return Age{Years: v / WeeksPerYear, Weeks: v, Months: v / WeeksPerMonth}
	default:
		return Age{Years: v / MonthsPerYear, Weeks: v * WeeksPerMonth, Months: v}
	}
}
