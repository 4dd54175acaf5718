package source

import (
	"strings"
	"testing"
)

func TestReadPiped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain list", "a\nb\n", "a\nb\n"},
		{"empty input", "", ""},
		{"whitespace only input", " \n\t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readPiped(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("readPiped failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("readPiped = %q, want %q", got, tt.want)
			}
		})
	}
}
