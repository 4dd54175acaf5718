// Package tidylist orchestrates list cleaning: it expands inputs, plans the
// per-file rewrites, applies them with undo/redo history and exposes the
// cleaning primitives as a library.
package tidylist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/sokinpui/tidylist/cli"
	"github.com/sokinpui/tidylist/internal/config"
	"github.com/sokinpui/tidylist/internal/fileio"
	"github.com/sokinpui/tidylist/internal/parser"
	"github.com/sokinpui/tidylist/internal/source"
	"github.com/sokinpui/tidylist/internal/state"
	"github.com/sokinpui/tidylist/internal/ui"
	"github.com/sokinpui/tidylist/model"
)

// App orchestrates the entire application logic.
type App struct {
	cfg            *cli.Config
	env            *config.Config
	stateManager   *state.Manager
	sourceProvider *source.Provider
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	stateManager, err := state.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize state manager: %w", err)
	}

	return &App{
		cfg:            cfg,
		env:            config.Load(),
		stateManager:   stateManager,
		sourceProvider: source.New(),
	}, nil
}

// Execute runs the operation selected by the parsed flags.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	switch {
	case a.cfg.Undo:
		return a.undoLastOperation()
	case a.cfg.Redo:
		return a.redoLastOperation()
	case a.cfg.Convert:
		return a.convertFile()
	case len(a.cfg.Paths) == 0:
		return a.cleanStream()
	default:
		return a.cleanFiles()
	}
}

func (a *App) options() parser.Options {
	return parser.Options{
		Dedupe:  !a.cfg.KeepDuplicates,
		Measure: a.cfg.Measure,
		Sort:    a.cfg.Sort,
	}
}

// cleanStream cleans content from stdin or the clipboard and prints the
// result to stdout.
func (a *App) cleanStream() (model.Summary, error) {
	content, err := a.sourceProvider.GetContent()
	if err != nil {
		return model.Summary{}, err
	}
	if content == "" {
		return model.Summary{Message: "Source is empty. Nothing to process."}, nil
	}

	cleaned, dropped := parser.Clean(strings.Split(content, "\n"), a.options())
	for _, entry := range cleaned {
		fmt.Println(entry)
	}
	return model.Summary{
		Dropped: len(dropped),
		Message: fmt.Sprintf("Cleaned %d entries, dropped %d.", len(cleaned), len(dropped)),
	}, nil
}

// cleanFiles plans and applies rewrites for the file and directory arguments.
func (a *App) cleanFiles() (model.Summary, error) {
	inputs, err := a.expandInputs()
	if err != nil {
		return model.Summary{}, err
	}
	if len(inputs) == 0 {
		return model.Summary{Message: "No list files found. Nothing to do."}, nil
	}

	plan, err := parser.CreatePlan(inputs, a.options())
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to create execution plan: %w", err)
	}

	var summary model.Summary
	var ops []state.Operation
	for _, change := range plan {
		target := change.Path
		inPlace := a.cfg.Output == ""
		if !inPlace {
			target = a.cfg.Output
		}

		if inPlace && !change.Changed() {
			summary.Unchanged = append(summary.Unchanged, target)
			continue
		}
		if !a.env.Overwrite && fileExists(target) {
			ui.Warning("Refusing to overwrite %s (TIDYLIST_OVERWRITE=false).", target)
			summary.Failed = append(summary.Failed, target)
			continue
		}

		op, err := a.writeList(target, change.After)
		if err != nil {
			ui.Warning("Could not write %s: %v", target, err)
			summary.Failed = append(summary.Failed, target)
			continue
		}
		ops = append(ops, op)
		summary.Cleaned = append(summary.Cleaned, target)
		summary.Dropped += len(change.Dropped)

		a.reportDropped(change)
	}

	if err := a.stateManager.Record(ops); err != nil {
		ui.Warning("Could not record history: %v", err)
	}
	return summary, nil
}

// writeList snapshots both sides of the rewrite and writes the new content.
func (a *App) writeList(target string, items []string) (state.Operation, error) {
	oldHash, err := a.stateManager.StashFile(target)
	if err != nil {
		return state.Operation{}, err
	}
	newHash, err := a.stateManager.Stash(listBytes(items))
	if err != nil {
		return state.Operation{}, err
	}
	if err := fileio.WriteLines(target, items); err != nil {
		return state.Operation{}, err
	}

	action := "modify"
	if oldHash == state.NoHash {
		action = "create"
	}
	return state.Operation{
		Path:    target,
		Action:  action,
		OldHash: oldHash,
		NewHash: newHash,
	}, nil
}

// reportDropped echoes dropped duplicates when verbose and appends them to
// the group log when one is configured.
func (a *App) reportDropped(change model.ListChange) {
	if len(change.Dropped) == 0 {
		return
	}
	label := fmt.Sprintf("dropped from %s", change.Path)
	if a.env.Verbose {
		ui.Group(label, change.Dropped)
	}
	if a.env.LogPath != "" {
		if err := ui.AppendGroup(a.env.LogPath, label, change.Dropped); err != nil {
			ui.Warning("Could not append to log %s: %v", a.env.LogPath, err)
		}
	}
}

// expandInputs resolves directory arguments into the list files beneath them.
func (a *App) expandInputs() ([]string, error) {
	exts := a.cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".txt", ".list", ".md"}
	}

	var inputs []string
	for _, path := range a.cfg.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			inputs = append(inputs, path)
			continue
		}
		files, err := fileio.FindFiles(path, exts, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", path, err)
		}
		inputs = append(inputs, files...)
	}
	return inputs, nil
}

// convertFile converts between delimited formats (.csv/.tsv).
func (a *App) convertFile() (model.Summary, error) {
	src, dst := a.cfg.Paths[0], a.cfg.Paths[1]
	src, err := fileio.ValidateExtension(src, filepath.Ext(src))
	if err != nil {
		return model.Summary{}, err
	}
	if err := fileio.ConvertDelimited(src, dst); err != nil {
		return model.Summary{}, err
	}
	return model.Summary{
		Cleaned: []string{dst},
		Message: fmt.Sprintf("Converted %s -> %s.", src, dst),
	}, nil
}

// undoLastOperation restores the pre-write snapshots of the last run.
func (a *App) undoLastOperation() (model.Summary, error) {
	ops := a.stateManager.OperationsToUndo()
	if len(ops) == 0 {
		return model.Summary{Message: "Nothing to undo."}, nil
	}

	var summary model.Summary
	summary.Message = "Undid last rewrite."
	for _, op := range ops {
		if err := a.revertOperation(op); err != nil {
			ui.Warning("Could not restore %s: %v", op.Path, err)
			summary.Failed = append(summary.Failed, op.Path)
			continue
		}
		summary.Cleaned = append(summary.Cleaned, op.Path)
	}
	return summary, nil
}

// redoLastOperation re-applies the snapshots of the last undone run.
func (a *App) redoLastOperation() (model.Summary, error) {
	ops := a.stateManager.OperationsToRedo()
	if len(ops) == 0 {
		return model.Summary{Message: "Nothing to redo."}, nil
	}

	var summary model.Summary
	summary.Message = "Redid last undone rewrite."
	for _, op := range ops {
		if err := a.applyOperation(op); err != nil {
			ui.Warning("Could not redo %s: %v", op.Path, err)
			summary.Failed = append(summary.Failed, op.Path)
			continue
		}
		summary.Cleaned = append(summary.Cleaned, op.Path)
	}
	return summary, nil
}

// revertOperation puts back the old content of one recorded write. The file
// must still hold the recorded new content; otherwise it is left alone.
func (a *App) revertOperation(op state.Operation) error {
	current, err := fileio.FileSHA256(op.Path)
	if err != nil {
		return err
	}
	if current != op.NewHash {
		return fmt.Errorf("content changed since rewrite")
	}
	if op.OldHash == state.NoHash {
		return os.Remove(op.Path)
	}
	data, err := a.stateManager.Snapshot(op.OldHash)
	if err != nil {
		return err
	}
	return os.WriteFile(op.Path, data, 0644)
}

// applyOperation re-applies the new content of one recorded write.
func (a *App) applyOperation(op state.Operation) error {
	if op.OldHash != state.NoHash {
		current, err := fileio.FileSHA256(op.Path)
		if err != nil {
			return err
		}
		if current != op.OldHash {
			return fmt.Errorf("content changed since undo")
		}
	} else if fileExists(op.Path) {
		return fmt.Errorf("file reappeared since undo")
	}
	data, err := a.stateManager.Snapshot(op.NewHash)
	if err != nil {
		return err
	}
	return os.WriteFile(op.Path, data, 0644)
}

// listBytes renders items the way WriteLines stores them, one per line.
func listBytes(items []string) []byte {
	var b bytes.Buffer
	for _, item := range items {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
