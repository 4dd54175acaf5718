package textutil

import "testing"

func TestEquivalentAlphanumeric(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", "acme", "acme", true},
		{"brackets and spaces stripped", "  (a) ", "a", true},
		{"ascii case", "Acme Corp", "ACME CORP", true},
		{"brackets vs plain", "[Acme Corp]", "acmecorp", true},
		{"different words", "Acme Corp", "Acme Corporation", false},
		{"both empty", "", "", true},
		{"empty vs brackets only", "", "[() ]", true},
		{"full casefold sharp s", "Straße", "STRASSE", true},
		{"internal whitespace", "a b\tc", "abc", true},
		{"non-breaking space", "a b", "ab", true},
		{"en space", "a b", "ab", true},
		{"ideographic space", "a　b", "AB", true},
		{"digits differ", "item 1", "item 2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EquivalentAlphanumeric(tt.a, tt.b); got != tt.want {
				t.Errorf("EquivalentAlphanumeric(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equivalence is symmetric.
			if got := EquivalentAlphanumeric(tt.b, tt.a); got != tt.want {
				t.Errorf("EquivalentAlphanumeric(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestExtractLeaf(t *testing.T) {
	tests := []struct {
		s, delimiter, want string
	}{
		{"a:b:c", ":", "c"},
		{"no delimiter", ":", "no delimiter"},
		{"trailing:", ":", ""},
		{"a::b", "::", "b"},
	}

	for _, tt := range tests {
		if got := ExtractLeaf(tt.s, tt.delimiter); got != tt.want {
			t.Errorf("ExtractLeaf(%q, %q) = %q, want %q", tt.s, tt.delimiter, got, tt.want)
		}
	}
}
