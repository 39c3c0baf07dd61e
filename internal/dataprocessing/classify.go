package dataprocessing

import (
	"strings"

	"growthref/pkg/contracts/domain"
)

// Classification is the result of inspecting a file stem. Zero-valued
// fields mean the corresponding pattern did not match.
type Classification struct {
	Measurement domain.Measurement
	Gender      domain.Gender
	AgeRange    string
}

// measurementRule maps a stem substring to a measurement. As with header
// rules, evaluation order is significant and the first match wins.
type measurementRule struct {
	substr      string
	measurement domain.Measurement
}

// WHO chart files are named by measurement code plus gender, e.g.
// "wfa-boys-zscore-0-5.csv".
var whoMeasurements = []measurementRule{
	{"bmi", domain.MeasurementBMIForAge},
	{"lhfa", domain.MeasurementLengthHeightForAge},
	{"wfa", domain.MeasurementWeightForAge},
	{"hcfa", domain.MeasurementHeadCircForAge},
	{"acfa", domain.MeasurementArmCircForAge},
	{"ssfa", domain.MeasurementSubscapularForAge},
	{"tsfa", domain.MeasurementTricepsForAge},
	{"wfl", domain.MeasurementWeightForLength},
	{"wfh", domain.MeasurementWeightForHeight},
}

// CDC data files are named by their historical dataset codes, e.g.
// "wtageinf.csv" (weight-for-age, infant). Gender is carried per-row.
var cdcMeasurements = []measurementRule{
	{"wtageinf", domain.MeasurementWeightForAge},
	{"wtage", domain.MeasurementWeightForAge},
	{"lenageinf", domain.MeasurementLengthHeightForAge},
	{"statage", domain.MeasurementHeightForAge},
	{"hcageinf", domain.MeasurementHeadCircForAge},
	{"wtleninf", domain.MeasurementWeightForLength},
	{"wtstat", domain.MeasurementWeightForHeight},
	{"bmiage", domain.MeasurementBMIForAge},
}

// Statistical (LMS) sources use looser naming, so their vocabulary tests
// broader substrings. The full words come before the abbreviations: "ht"
// is a substring of "weight", so testing it earlier would shadow the
// weight rule completely.
var statMeasurements = []measurementRule{
	{"height", domain.MeasurementHeight},
	{"weight", domain.MeasurementWeight},
	{"ht", domain.MeasurementHeight},
	{"wt", domain.MeasurementWeight},
	{"len", domain.MeasurementHeight},
	{"bmi", domain.MeasurementBMI},
	{"hc", domain.MeasurementHeadCirc},
	{"head", domain.MeasurementHeadCirc},
	{"ofc", domain.MeasurementHeadCirc},
}

func matchMeasurement(stem string, rules []measurementRule) domain.Measurement {
	for _, r := range rules {
		if strings.Contains(stem, r.substr) {
			return r.measurement
		}
	}
	return ""
}

func matchGender(stem, boys, girls string) domain.Gender {
	// "female" contains "male", so the female test has to run first.
	switch {
	case strings.Contains(stem, girls) || strings.Contains(stem, "female"):
		return domain.GenderGirls
	case strings.Contains(stem, boys) || strings.Contains(stem, "male"):
		return domain.GenderBoys
	default:
		return domain.GenderUnset
	}
}

// ClassifyWHOStem infers measurement and gender from a WHO file stem.
// Both must resolve for the file to be processable.
func ClassifyWHOStem(stem string) Classification {
	stem = strings.ToLower(stem)
	return Classification{
		Measurement: matchMeasurement(stem, whoMeasurements),
		Gender:      matchGender(stem, "boys", "girls"),
	}
}

// ClassifyCDCStem infers the measurement from a CDC file stem. Gender is
// never filename-determined for CDC files; the splitter resolves it from
// the Sex column.
func ClassifyCDCStem(stem string) Classification {
	return Classification{
		Measurement: matchMeasurement(strings.ToLower(stem), cdcMeasurements),
	}
}

// ClassifyStatStem infers measurement, gender and age range for a
// statistical source file. Unlike the simple families, a statistical file
// with no measurement match is still processed as MeasurementUnknown.
func ClassifyStatStem(stem string) Classification {
	stem = strings.ToLower(stem)
	c := Classification{
		Measurement: matchMeasurement(stem, statMeasurements),
		Gender:      matchGender(stem, "boy", "girl"),
	}
	if c.Measurement == "" {
		c.Measurement = domain.MeasurementUnknown
	}
	switch {
	case strings.Contains(stem, "0-36") || strings.Contains(stem, "0_36"):
		c.AgeRange = domain.AgeRange0To36Months
	case strings.Contains(stem, "2-20") || strings.Contains(stem, "2_20"):
		c.AgeRange = domain.AgeRange2To20Years
	}
	return c
}
