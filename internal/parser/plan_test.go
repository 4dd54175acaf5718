package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name        string
		in          []string
		opts        Options
		want        []string
		wantDropped []string
	}{
		{
			name: "trim and drop blanks",
			in:   []string{" a ", "", "  ", "b"},
			want: []string{"a", "b"},
		},
		{
			name:        "dedupe by equivalence",
			in:          []string{"Acme Corp", "[acme corp]", "Beta"},
			opts:        Options{Dedupe: true},
			want:        []string{"Acme Corp", "Beta"},
			wantDropped: []string{"[acme corp]"},
		},
		{
			name: "duplicates kept without dedupe",
			in:   []string{"Acme Corp", "[acme corp]"},
			want: []string{"Acme Corp", "[acme corp]"},
		},
		{
			name: "measure extraction",
			in:   []string{"Soap 5 oz"},
			opts: Options{Measure: true},
			want: []string{"Soap [5 oz]"},
		},
		{
			name: "sort is case folded",
			in:   []string{"banana", "Apple"},
			opts: Options{Sort: true},
			want: []string{"Apple", "banana"},
		},
		{
			name:        "measure then dedupe",
			in:          []string{"Soap [5 oz]", "Soap 5 oz"},
			opts:        Options{Dedupe: true, Measure: true},
			want:        []string{"Soap [5 oz]"},
			wantDropped: []string{"Soap [5 oz]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := Clean(tt.in, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("cleaned = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(dropped, tt.wantDropped) {
				t.Errorf("dropped = %v, want %v", dropped, tt.wantDropped)
			}
		})
	}
}

func TestCreatePlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vendors.txt")
	content := "Acme Corp\n\n[acme corp]\n Beta \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	plan, err := CreatePlan([]string{path}, Options{Dedupe: true})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}
	if len(plan) != 1 {
		t.Fatalf("expected 1 change, got %d", len(plan))
	}

	change := plan[0]
	if !reflect.DeepEqual(change.Before, []string{"Acme Corp", "[acme corp]", "Beta"}) {
		t.Errorf("before = %v", change.Before)
	}
	if !reflect.DeepEqual(change.After, []string{"Acme Corp", "Beta"}) {
		t.Errorf("after = %v", change.After)
	}
	if !reflect.DeepEqual(change.Dropped, []string{"[acme corp]"}) {
		t.Errorf("dropped = %v", change.Dropped)
	}
	if !change.Changed() {
		t.Error("expected the change to be flagged as modifying the file")
	}
}

func TestCreatePlanMissingFile(t *testing.T) {
	_, err := CreatePlan([]string{filepath.Join(t.TempDir(), "missing.txt")}, Options{})
	if err == nil {
		t.Fatal("expected an error for a missing input")
	}
}

func TestCreatePlanMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	content := "# Vendors\n\n- Acme Corp\n- acmecorp\n\nprose in between\n\n1. Beta\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	plan, err := CreatePlan([]string{path}, Options{Dedupe: true})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}
	if !reflect.DeepEqual(plan[0].After, []string{"Acme Corp", "Beta"}) {
		t.Errorf("after = %v, want [Acme Corp Beta]", plan[0].After)
	}
}
