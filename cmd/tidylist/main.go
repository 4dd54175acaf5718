package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sokinpui/tidylist/cli"
	"github.com/sokinpui/tidylist/internal/tui"
	"github.com/sokinpui/tidylist/internal/ui"
	"github.com/sokinpui/tidylist/model"
	"github.com/sokinpui/tidylist/tidylist"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app, err := tidylist.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// Modes that print to stdout, plus --no-animation, skip the TUI.
	streaming := len(cfg.Paths) == 0 && !cfg.Undo && !cfg.Redo
	if streaming || cfg.Convert || cfg.NoAnimation {
		summary, err := app.Execute()
		if err != nil {
			if e, ok := err.(*tidylist.DetailedError); ok {
				fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		renderPlain(cfg, summary, streaming)
		return
	}

	m := tui.New(app)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// renderPlain reports results through colored stderr output instead of the
// TUI.
func renderPlain(cfg *cli.Config, summary model.Summary, streaming bool) {
	switch {
	case cfg.Undo:
		ui.PrintUndoSummary(summary.Cleaned, summary.Failed)
	case cfg.Redo:
		ui.PrintRedoSummary(summary.Cleaned, summary.Failed)
	case streaming || cfg.Convert:
		if summary.Message != "" {
			ui.Info(summary.Message)
		}
	default:
		ui.PrintCleanSummary(summary.Cleaned, summary.Unchanged, summary.Failed, summary.Dropped)
	}
}
