package dataprocessing

import (
	"regexp"
	"strings"
)

// headerRule maps a pattern in a lower-cased column label to its canonical
// token. Rules are evaluated in order and the first match wins, so the
// relative order below is significant: a label containing both "age" and
// "month" resolves via whichever rule appears earlier.
type headerRule struct {
	pattern string
	exact   bool // match the whole label, not a substring
	token   string
}

var headerRules = []headerRule{
	{pattern: "week/month", token: "age_weeks"},
	{pattern: "years", token: "age_years"},
	{pattern: "age", exact: true, token: "age_years"},
	{pattern: "week", token: "age_weeks"},
	{pattern: "month", token: "age_months"},
	{pattern: "skeletal age", token: "skeletal_age"},
	{pattern: "ht. (inches)", token: "height_inches"},
	{pattern: "mature height", token: "mature_height_pct"},
	{pattern: "chart", token: "reference"},
}

var (
	nonWordChars  = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	repeatedScore = regexp.MustCompile(`_+`)
)

// NormalizeHeader maps a raw column label to its canonical token. Labels
// matching no rule fall back to a sanitized lower-cased form. The function
// is total: every input produces some token.
func NormalizeHeader(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	for _, r := range headerRules {
		if r.exact {
			if lower == r.pattern {
				return r.token
			}
			continue
		}
		if strings.Contains(lower, r.pattern) {
			return r.token
		}
	}
	return sanitizeHeader(lower)
}

// sanitizeHeader turns an arbitrary label into a lower_snake token.
func sanitizeHeader(label string) string {
	s := nonWordChars.ReplaceAllString(label, "_")
	s = repeatedScore.ReplaceAllString(s, "_")
	return strings.ToLower(strings.Trim(s, "_"))
}

// NormalizeHeaders applies NormalizeHeader to every column of the table in
// place and returns the table for chaining.
func NormalizeHeaders(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = NormalizeHeader(c)
	}
	return out
}
