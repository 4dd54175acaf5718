package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// --- Grouped output ---

const groupTimeFormat = "2006-01-02 15:04:05"

// Group prints a timestamped label followed by its items, one per indented
// line, to stderr.
func Group(label string, items []string) {
	Info("(%s) %s", time.Now().Format(groupTimeFormat), label)
	for _, item := range items {
		fmt.Fprintf(os.Stderr, "\t%s\n", item)
	}
}

// AppendGroup appends the same grouped layout to the log file at path,
// creating the file when needed.
func AppendGroup(path, label string, items []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "(%s) %s\n", time.Now().Format(groupTimeFormat), label); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(f, "\t%s\n", item); err != nil {
			return err
		}
	}
	return nil
}

// --- Summaries ---

func PrintCleanSummary(cleaned, unchanged, failed []string, dropped int) {
	Header("\n--- Clean Summary ---")

	if len(cleaned) == 0 && len(unchanged) == 0 && len(failed) == 0 {
		Info("No files were processed.")
		return
	}

	if len(cleaned) > 0 {
		Success("Rewrote %d file(s):", len(cleaned))
		for _, f := range cleaned {
			Path("- %s", f)
		}
	}
	if len(unchanged) > 0 {
		Info("Already clean: %d file(s):", len(unchanged))
		for _, f := range unchanged {
			Path("- %s", f)
		}
	}
	if len(failed) > 0 {
		Error("Failed to process %d file(s):", len(failed))
		for _, f := range failed {
			Path("- %s", f)
		}
	}
	if dropped == 1 {
		Info("Dropped 1 duplicate entry.")
	} else if dropped > 1 {
		Info("Dropped %d duplicate entries.", dropped)
	}
}

func PrintUndoSummary(restored, failed []string) {
	Header("\n--- Undo Summary ---")
	if len(restored) > 0 {
		Success("Successfully restored %d file(s):", len(restored))
		for _, f := range restored {
			Path("- %s", f)
		}
	}
	if len(failed) > 0 {
		Error("Failed to restore %d file(s):", len(failed))
		for _, f := range failed {
			Path("- %s", f)
		}
	}
}

func PrintRedoSummary(redone, failed []string) {
	Header("\n--- Redo Summary ---")
	if len(redone) > 0 {
		Success("Successfully redid %d file(s):", len(redone))
		for _, f := range redone {
			Path("- %s", f)
		}
	}
	if len(failed) > 0 {
		Error("Failed to redo %d file(s):", len(failed))
		for _, f := range failed {
			Path("- %s", f)
		}
	}
}
