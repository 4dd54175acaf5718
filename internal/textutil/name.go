package textutil

import (
	"regexp"
	"strings"
)

// credentialSuffixes are trailing titles stripped from a full name, longest
// variants first so e.g. "PA-C" is not truncated to "PA".
const credentialSuffixes = `MSPA|BSN|FNP-C|LME|DOO|PA-C|MSN-RN|RN|NP|CRNA|FNP|PA|NMD|MD|DO|LE|CMA|OM`

var (
	nameSuffixPattern = regexp.MustCompile(`(?i)(,?\s*(` + credentialSuffixes + `))$`)
	namePrefixPattern = regexp.MustCompile(`(?i)\bDr\.*\s+`)
)

// SplitName breaks a full name into first name, last name and any trailing
// credential title. "Attn:" and "Dr." prefixes are dropped; everything after
// the first word (minus the credential) becomes the last name.
func SplitName(fullname string) (first, last, title string) {
	fullname = strings.TrimSpace(strings.TrimPrefix(fullname, "Attn:"))
	fullname = strings.TrimSpace(namePrefixPattern.ReplaceAllString(fullname, ""))

	if m := nameSuffixPattern.FindStringSubmatch(fullname); m != nil {
		title = strings.ToUpper(strings.Trim(m[1], ", "))
		fullname = strings.TrimSpace(nameSuffixPattern.ReplaceAllString(fullname, ""))
	}

	parts := strings.Fields(fullname)
	if len(parts) == 0 {
		return "", "", title
	}
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last, title
}
