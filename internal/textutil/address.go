package textutil

import (
	"fmt"
	"regexp"
	"strings"
)

// Address is the structured result of ParseAddress.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
	Phone  string
}

var stateAbbrevs = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN", "IA",
	"KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT",
	"VA", "WA", "WV", "WI", "WY",
}

var stateFullNames = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut", "Delaware",
	"Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky",
	"Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico",
	"New York", "North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon", "Pennsylvania",
	"Rhode Island", "South Carolina", "South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

var streetSuffixList = []string{
	"Rd", "Road", "St", "Street", "Ave", "Avenue", "Blvd", "Boulevard", "Ln", "Lane",
	"Dr", "Drive", "Ct", "Court", "Pl", "Place", "Sq", "Square", "Terrace", "Hwy",
	"Pkwy", "Parkway", "Cir", "Circle", "Way", "Ste", "Suite", "PO Box",
}

var (
	countryPattern = regexp.MustCompile(`(?i)\b(United States|USA)\b`)
	// Optional +1 country code or opening parenthesis, then area code and
	// two digit groups with loose separators.
	phonePattern        = regexp.MustCompile(`(\+?1[-.\s]?|\()?(\d{3})[-.\s)]*(\d{3})[-.\s]*(\d{4})`)
	zipPattern          = regexp.MustCompile(`(\d{5})(-\d{4})?\b`)
	statePattern        = regexp.MustCompile(`(?i)\b(` + strings.Join(append(append([]string{}, stateAbbrevs...), stateFullNames...), "|") + `)\b`)
	suitePattern        = regexp.MustCompile(`(?i)(Suite|Ste|Unit|#)\s*[A-Z\d]+`)
	streetSuffixPattern = regexp.MustCompile(`\b(?:Rd|Road|St|Street|Ave|Avenue|Blvd|Boulevard|Ln|Lane|Dr|Drive|Ct|Court|Pl|Place|Sq|Square|Terrace|Hwy|Pkwy|Parkway|Cir|Circle|Way|Ste|Suite|(PO Box[\s#]*\d+))\.*\b`)
)

// ParseAddress decomposes a single-line US address into street, city, state,
// ZIP and phone number. Fields that cannot be located come back empty.
func ParseAddress(address string) Address {
	address = strings.TrimSpace(countryPattern.ReplaceAllString(address, ""))
	address, phone := ExtractPhone(address)
	address, zip := ExtractZip(address)
	address, state := ExtractState(address)
	address, city := ExtractCity(address, nil)
	return Address{
		Street: strings.TrimSpace(address),
		City:   city,
		State:  state,
		Zip:    zip,
		Phone:  phone,
	}
}

// ExtractPhone removes the first phone number found in text and returns the
// remaining text and the number formatted as 999-999-9999.
func ExtractPhone(text string) (string, string) {
	var phone string
	if m := phonePattern.FindStringSubmatch(text); m != nil {
		phone = fmt.Sprintf("%s-%s-%s", m[2], m[3], m[4])
	}
	text = strings.TrimSpace(phonePattern.ReplaceAllString(text, ""))
	return text, phone
}

// ExtractZip removes the first ZIP code (5 digits with optional +4) and
// returns the remaining text and the code.
func ExtractZip(text string) (string, string) {
	zip := zipPattern.FindString(text)
	text = strings.TrimSpace(zipPattern.ReplaceAllString(text, ""))
	return text, zip
}

// ExtractState removes the rightmost US state (abbreviation or full name)
// and returns the remaining text and the state as written. The rightmost
// match is used because street names can shadow abbreviations ("Ct").
func ExtractState(text string) (string, string) {
	matches := statePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, ""
	}
	last := matches[len(matches)-1]
	state := text[last[2]:last[3]]
	text = strings.TrimRight(text[:last[0]], " ") + strings.TrimLeft(text[last[1]:], " ")
	return text, state
}

// ExtractCity removes the city from text and returns the remaining text and
// the city. The city is assumed to follow a suite/unit marker or a street
// suffix; a comma-separated fallback is used otherwise. A list of known
// cities, when given, refines the match.
func ExtractCity(text string, knownCities []string) (string, string) {
	var city string

	if loc := suitePattern.FindStringIndex(text); loc != nil {
		city = firstSegment(text[loc[1]:])
	} else if loc := streetSuffixPattern.FindStringIndex(text); loc != nil {
		candidate := firstSegment(text[loc[1]:])
		if candidate != "" && !isStreetSuffix(strings.Fields(candidate)[0]) {
			city = candidate
		}
	}
	if city == "" {
		parts := strings.Split(text, ",")
		if len(parts) > 1 {
			city = strings.Trim(parts[len(parts)-2], ". ")
		}
	}

	if city != "" && len(knownCities) > 0 {
		var quoted []string
		for _, known := range knownCities {
			quoted = append(quoted, regexp.QuoteMeta(known))
		}
		re := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
		if m := re.FindStringSubmatch(city); m != nil {
			city = m[1]
		}
	}

	if city != "" {
		re := regexp.MustCompile(regexp.QuoteMeta(city))
		text = strings.Trim(re.ReplaceAllString(text, ""), ", ")
	}
	return text, city
}

// firstSegment trims separators and returns the text up to the next comma.
func firstSegment(s string) string {
	s = strings.Trim(s, "., ")
	return strings.TrimSpace(strings.Split(s, ",")[0])
}

func isStreetSuffix(word string) bool {
	for _, suffix := range streetSuffixList {
		if word == suffix {
			return true
		}
	}
	return false
}
