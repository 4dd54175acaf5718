package textutil

import "testing"

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Address
	}{
		{
			name: "full address with phone",
			in:   "123 Main St Suite 100 Springfield IL 62704 (555) 123-4567",
			want: Address{
				Street: "123 Main St Suite 100",
				City:   "Springfield",
				State:  "IL",
				Zip:    "62704",
				Phone:  "555-123-4567",
			},
		},
		{
			name: "no phone",
			in:   "456 Oak Ave Portland OR 97205",
			want: Address{
				Street: "456 Oak Ave",
				City:   "Portland",
				State:  "OR",
				Zip:    "97205",
			},
		},
		{
			name: "country stripped",
			in:   "456 Oak Ave Portland OR 97205 USA",
			want: Address{
				Street: "456 Oak Ave",
				City:   "Portland",
				State:  "OR",
				Zip:    "97205",
			},
		},
		{
			name: "empty",
			in:   "",
			want: Address{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAddress(tt.in); got != tt.want {
				t.Errorf("ParseAddress(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		in        string
		wantText  string
		wantPhone string
	}{
		{"+1 555-123-4567 after hours", "after hours", "555-123-4567"},
		{"(555) 123 4567", "", "555-123-4567"},
		{"555.123.4567", "", "555-123-4567"},
		{"no phone here", "no phone here", ""},
	}

	for _, tt := range tests {
		text, phone := ExtractPhone(tt.in)
		if text != tt.wantText || phone != tt.wantPhone {
			t.Errorf("ExtractPhone(%q) = (%q, %q), want (%q, %q)",
				tt.in, text, phone, tt.wantText, tt.wantPhone)
		}
	}
}

func TestExtractState(t *testing.T) {
	// The rightmost state wins so street words like "Ct" do not shadow it.
	text, state := ExtractState("100 Marigold Ct Denver CO")
	if state != "CO" {
		t.Fatalf("state = %q, want CO", state)
	}
	if text != "100 Marigold Ct Denver" {
		t.Errorf("text = %q, want %q", text, "100 Marigold Ct Denver")
	}
}

func TestExtractZip(t *testing.T) {
	text, zip := ExtractZip("Portland OR 97205-1234")
	if zip != "97205-1234" {
		t.Errorf("zip = %q, want 97205-1234", zip)
	}
	if text != "Portland OR" {
		t.Errorf("text = %q, want %q", text, "Portland OR")
	}
}

func TestExtractCityKnownCities(t *testing.T) {
	_, city := ExtractCity("12 Elm St Saint Paul", []string{"Saint Paul"})
	if city != "Saint Paul" {
		t.Errorf("city = %q, want %q", city, "Saint Paul")
	}
}
