// Package parser turns raw list inputs (plain line files, markdown lists,
// piped text) into cleaned entry lists and per-file change plans.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sokinpui/tidylist/internal/fileio"
	"github.com/sokinpui/tidylist/internal/textutil"
	"github.com/sokinpui/tidylist/model"
)

// Options controls the cleaning pipeline.
type Options struct {
	// Dedupe drops entries that are alphanumerically equivalent to an
	// earlier entry.
	Dedupe bool
	// Measure pulls unit measurements out of each entry and re-appends them
	// in square brackets ("Soap 5 oz" -> "Soap [5 oz]").
	Measure bool
	// Sort orders the result by case-folded comparison.
	Sort bool
}

// Clean applies the pipeline to a list of entries and returns the cleaned
// list together with the entries dropped as duplicates. Entries are trimmed
// and blanks removed regardless of options.
func Clean(lines []string, opts Options) (cleaned, dropped []string) {
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if opts.Measure {
			rest, measurements := textutil.ExtractMeasurements(line)
			if len(measurements) > 0 && rest != "" {
				line = rest + " [" + strings.Join(measurements, ", ") + "]"
			}
		}
		entries = append(entries, line)
	}

	if opts.Dedupe {
		seen := make(map[string]struct{}, len(entries))
		kept := make([]string, 0, len(entries))
		for _, entry := range entries {
			key := textutil.Canonical(entry)
			if _, dup := seen[key]; dup {
				dropped = append(dropped, entry)
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, entry)
		}
		entries = kept
	}

	if opts.Sort {
		keys := make(map[string]string, len(entries))
		for _, entry := range entries {
			keys[entry] = textutil.Canonical(entry)
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return keys[entries[i]] < keys[entries[j]]
		})
	}

	return entries, dropped
}

// CreatePlan reads each input file and computes its cleaned form. Markdown
// files contribute their list items; everything else is read line by line.
func CreatePlan(paths []string, opts Options) ([]model.ListChange, error) {
	changes := make([]model.ListChange, 0, len(paths))
	for _, path := range paths {
		before, err := ReadEntries(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		after, dropped := Clean(before, opts)
		changes = append(changes, model.ListChange{
			Path:    path,
			Before:  before,
			After:   after,
			Dropped: dropped,
		})
	}
	return changes, nil
}

// ReadEntries loads the raw entries of one input file.
func ReadEntries(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ListItems(data)
	}
	return fileio.ReadLines(path)
}
