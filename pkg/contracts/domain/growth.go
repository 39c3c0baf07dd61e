package domain

// Measurement identifies a growth-chart measurement type. Family A sources
// use the short chart codes (wfa, lhfa, ...) that also name the output files;
// family B sources resolve to the broader descriptive names.
type Measurement string

const (
	// Family A chart codes
	MeasurementWeightForAge       Measurement = "wfa"
	MeasurementLengthHeightForAge Measurement = "lhfa"
	MeasurementHeightForAge       Measurement = "hfa"
	MeasurementBMIForAge          Measurement = "bmifa"
	MeasurementHeadCircForAge     Measurement = "hcfa"
	MeasurementArmCircForAge      Measurement = "acfa"
	MeasurementSubscapularForAge  Measurement = "ssfa"
	MeasurementTricepsForAge      Measurement = "tsfa"
	MeasurementWeightForLength    Measurement = "wfl"
	MeasurementWeightForHeight    Measurement = "wfh"

	// Family B descriptive names
	MeasurementHeight   Measurement = "height"
	MeasurementWeight   Measurement = "weight"
	MeasurementBMI      Measurement = "bmi"
	MeasurementHeadCirc Measurement = "head_circumference"

	MeasurementUnknown Measurement = "unknown"
)

// LengthBased reports whether the measurement uses a body length/height
// value as its x-axis instead of age.
func (m Measurement) LengthBased() bool {
	return m == MeasurementWeightForLength || m == MeasurementWeightForHeight
}

// Gender identifies the gender of a growth reference series.
type Gender string

const (
	GenderBoys  Gender = "boys"
	GenderGirls Gender = "girls"
	// GenderUnset marks tables whose gender is carried per-row (a Sex
	// column) and resolved later by the gender splitter.
	GenderUnset Gender = ""
)

// Token returns the male/female token used by gender-qualified column
// names in statistical sources.
func (g Gender) Token() string {
	switch g {
	case GenderBoys:
		return "male"
	case GenderGirls:
		return "female"
	default:
		return ""
	}
}

// Sex codes used by CDC-style per-row gender encoding.
const (
	SexCodeBoys  = 1
	SexCodeGirls = 2
)

// Age range tags recognized in statistical source filenames.
const (
	AgeRange0To36Months = "0-36_months"
	AgeRange2To20Years  = "2-20_years"
)

// SourceContext holds the facts inferred about one table before its rows
// are processed. It is derived once per table and not mutated afterwards.
type SourceContext struct {
	Source      string      `json:"source"`
	Measurement Measurement `json:"measurement"`
	Gender      Gender      `json:"gender,omitempty"`
	AgeRange    string      `json:"age_range,omitempty"`
}

// CanonicalRow is one normalized LMS record extracted from a statistical
// source. M is always set; L and S are nil when the source does not carry
// them. All three age representations are filled from whichever unit the
// source expressed the age in.
type CanonicalRow struct {
	Source      string
	Measurement Measurement
	Gender      Gender
	AgeRange    string
	AgeYears    float64
	AgeWeeks    float64
	AgeMonths   float64
	L           *float64
	M           float64
	S           *float64
}
