package textutil

import (
	"regexp"
	"strings"
)

const numberPattern = `\d+\.?\d*`

// units recognized in measurements, longest-prefix first so "fl oz" wins
// over "oz".
var units = []string{"units", "fl oz", "oz", "g", "ml", "lb", "kg", "gal", "cc"}

type unitPattern struct {
	unit string
	re   *regexp.Regexp
}

var (
	measurePatterns   []unitPattern
	dimensionPatterns []*regexp.Regexp
)

func init() {
	for _, unit := range units {
		measurePatterns = append(measurePatterns, unitPattern{
			unit: unit,
			re:   regexp.MustCompile(numberPattern + ` ?` + unit + `\b`),
		})
		dimensionPatterns = append(dimensionPatterns, regexp.MustCompile(
			numberPattern+unit+` ?[xX/] ?`+numberPattern+unit))
	}
}

// ExtractMeasurements pulls unit measurements (e.g. "5 oz", "2.5 ml") out of
// s and returns the remaining text together with the measurements found, each
// normalized to "<number> <unit>". Strings already carrying bracketed
// measurements are returned as-is, and numbers that are part of a dimension
// expression ("2x8 oz") are left in place.
func ExtractMeasurements(s string) (string, []string) {
	if s == "" || strings.ContainsAny(s, "[]") {
		return s, nil
	}

	var measurements []string
	for _, p := range measurePatterns {
		locs := p.re.FindAllStringIndex(s, -1)
		if len(locs) == 0 {
			continue
		}
		var b strings.Builder
		prev := 0
		for _, loc := range locs {
			if adjoinsDimensionSymbol(s, loc[0], loc[1]) {
				b.WriteString(s[prev:loc[1]])
				prev = loc[1]
				continue
			}
			measurements = append(measurements, normalizeMeasurement(s[loc[0]:loc[1]], p.unit))
			b.WriteString(s[prev:loc[0]])
			prev = loc[1]
		}
		b.WriteString(s[prev:])
		s = b.String()
	}

	s = strings.NewReplacer("(", "", ")", "").Replace(s)
	return strings.TrimSpace(s), measurements
}

// ExtractDimensions returns dimension expressions such as "5g x 10g" found
// in s, without modifying it.
func ExtractDimensions(s string) []string {
	if s == "" {
		return nil
	}
	var dims []string
	for _, re := range dimensionPatterns {
		dims = append(dims, re.FindAllString(s, -1)...)
	}
	return dims
}

// adjoinsDimensionSymbol reports whether the match at [start,end) touches a
// dimension symbol, meaning it belongs to an expression like "2x8 oz".
func adjoinsDimensionSymbol(s string, start, end int) bool {
	if start > 0 && isDimensionSymbol(s[start-1]) {
		return true
	}
	if end < len(s) && isDimensionSymbol(s[end]) {
		return true
	}
	return false
}

func isDimensionSymbol(c byte) bool {
	return c == 'x' || c == 'X' || c == '/'
}

// normalizeMeasurement ensures a single space between the number and unit.
func normalizeMeasurement(m, unit string) string {
	m = strings.TrimSpace(m)
	number := strings.TrimSpace(strings.TrimSuffix(m, unit))
	return number + " " + unit
}
