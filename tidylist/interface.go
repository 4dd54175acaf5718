package tidylist

import (
	"github.com/sokinpui/tidylist/internal/fileio"
	"github.com/sokinpui/tidylist/internal/parser"
	"github.com/sokinpui/tidylist/internal/textutil"
)

// Options controls Clean when tidylist is used as a library.
type Options = parser.Options

// Equivalent reports whether two strings are alphanumerically equivalent:
// equal after stripping brackets, parentheses and whitespace under full
// Unicode case folding.
func Equivalent(a, b string) bool {
	return textutil.EquivalentAlphanumeric(a, b)
}

// Clean trims entries, drops blanks and applies the configured pipeline,
// returning the cleaned list and the dropped duplicates.
func Clean(lines []string, opts Options) (cleaned, dropped []string) {
	return parser.Clean(lines, opts)
}

// ReadLines reads a file into its ordered, trimmed, non-blank lines.
func ReadLines(path string) ([]string, error) {
	return fileio.ReadLines(path)
}

// WriteLines writes items to path, one per line, truncating existing content.
func WriteLines(path string, items []string) error {
	return fileio.WriteLines(path, items)
}

// Address is a structured US address. See ParseAddress.
type Address = textutil.Address

// ParseAddress decomposes a single-line US address into street, city, state,
// ZIP and phone number.
func ParseAddress(s string) Address {
	return textutil.ParseAddress(s)
}

// SplitName breaks a full name into first name, last name and any trailing
// credential title.
func SplitName(fullname string) (first, last, title string) {
	return textutil.SplitName(fullname)
}

// ExtractMeasurements pulls unit measurements out of s, returning the
// remaining text and the measurements found.
func ExtractMeasurements(s string) (string, []string) {
	return textutil.ExtractMeasurements(s)
}

// ExtractDimensions returns dimension expressions such as "5g x 10g" found
// in s.
func ExtractDimensions(s string) []string {
	return textutil.ExtractDimensions(s)
}

// ExtractLeaf returns the segment of s after the last occurrence of
// delimiter.
func ExtractLeaf(s, delimiter string) string {
	return textutil.ExtractLeaf(s, delimiter)
}

// FindFiles walks root and returns the files matching the extension and
// exclusion filters.
func FindFiles(root string, exts, excludeKeywords []string) ([]string, error) {
	return fileio.FindFiles(root, exts, excludeKeywords)
}

// Subdirectories returns the names of the immediate subdirectories of dir.
func Subdirectories(dir string) ([]string, error) {
	return fileio.Subdirectories(dir)
}

// ConvertDelimited converts between .csv and .tsv files.
func ConvertDelimited(src, dst string) error {
	return fileio.ConvertDelimited(src, dst)
}
