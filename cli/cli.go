package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Output         string
	Measure        bool
	Sort           bool
	KeepDuplicates bool
	Convert        bool
	Undo           bool
	Redo           bool
	NoAnimation    bool
	Extensions     []string
	Paths          []string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.Output, "output", "o", "", "Write the cleaned list to this path instead of rewriting the input in place (single input only).")
	pflag.BoolVarP(&cfg.Measure, "measure", "m", false, "Pull unit measurements out of entries and re-append them in brackets (e.g. 'Soap 5 oz' -> 'Soap [5 oz]').")
	pflag.BoolVarP(&cfg.Sort, "sort", "s", false, "Sort entries by case-folded comparison.")
	pflag.BoolVarP(&cfg.KeepDuplicates, "keep-duplicates", "k", false, "Keep entries that are alphanumerically equivalent to an earlier entry.")
	pflag.BoolVar(&cfg.Convert, "convert", false, "Convert between .csv and .tsv: tidylist --convert SRC DST.")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the spinner and render plain summaries.")
	pflag.StringSliceVarP(&cfg.Extensions, "extension", "e", []string{}, "Extensions collected when an argument is a directory (default: txt, list, md).")

	// Mutually exclusive history group
	pflag.BoolVarP(&cfg.Undo, "undo", "u", false, "Undo the last in-place rewrite.")
	pflag.BoolVarP(&cfg.Redo, "redo", "r", false, "Redo the last undone rewrite.")

	pflag.Usage = func() {
		fmt.Println("Usage: tidylist [flags] [path ...]")
		fmt.Println("\nClean newline-delimited lists: trim entries, drop blanks and duplicates.")
		fmt.Println("Without paths, reads from stdin (pipe) or the clipboard and prints to stdout.")
		fmt.Println("\nExample: tidylist -m -s vendors.txt")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()
	cfg.Paths = pflag.Args()

	// Validate mutually exclusive flags
	if cfg.Undo && cfg.Redo {
		return nil, fmt.Errorf("error: --undo and --redo are mutually exclusive")
	}
	if cfg.Convert && len(cfg.Paths) != 2 {
		return nil, fmt.Errorf("error: --convert takes exactly two paths (source and destination)")
	}
	if cfg.Output != "" && len(cfg.Paths) != 1 {
		return nil, fmt.Errorf("error: --output requires exactly one input path")
	}

	// Normalize extensions
	for i, ext := range cfg.Extensions {
		if len(ext) > 0 && ext[0] != '.' {
			cfg.Extensions[i] = "." + ext
		}
	}

	return cfg, nil
}
