// Package state records every in-place list rewrite so it can be undone and
// redone. Pre- and post-write file contents are kept as content-addressed
// snapshots in a trash directory next to the state file.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	stateDirName  = ".tidylist"
	stateFileName = "state.tidylist"
	trashDirName  = "trash"

	// NoHash marks the old side of a create operation: there was no file.
	NoHash = "-"
)

// Operation represents a single recorded file write.
type Operation struct {
	Path    string
	Action  string // "create" or "modify"
	OldHash string // snapshot hash before the write; NoHash for creates
	NewHash string // snapshot hash after the write
}

// HistoryEntry represents one complete run of the tool.
type HistoryEntry struct {
	Timestamp  int64
	Operations []Operation
}

// State represents the entire state file.
type State struct {
	History      []HistoryEntry
	CurrentIndex int
}

// Manager handles the lifecycle of the state file and its snapshots.
type Manager struct {
	statePath string
	state     *State
	StateDir  string
}

// findGitRoot finds the root of the git repository.
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// New creates and loads a state manager rooted at the git root, falling back
// to the working directory.
func New() (*Manager, error) {
	rootDir, err := findGitRoot()
	if err != nil {
		rootDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
	}

	stateDir := filepath.Join(rootDir, stateDirName)
	if err := os.MkdirAll(filepath.Join(stateDir, trashDirName), 0755); err != nil {
		return nil, fmt.Errorf("could not create state directory: %w", err)
	}
	m := &Manager{
		statePath: filepath.Join(stateDir, stateFileName),
		StateDir:  stateDir,
	}
	if err := m.load(); err != nil {
		m.state = &State{CurrentIndex: -1, History: []HistoryEntry{}}
	}
	return m, nil
}

func (m *Manager) load() error {
	data, err := os.ReadFile(m.statePath)
	if err != nil {
		if os.IsNotExist(err) {
			m.state = &State{CurrentIndex: -1, History: []HistoryEntry{}}
			return nil
		}
		return err
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	blocks := strings.Split(content, "\n\n")

	if len(blocks) == 0 || blocks[0] == "" {
		m.state = &State{CurrentIndex: -1, History: []HistoryEntry{}}
		return nil
	}

	// First block is the current index.
	index, err := strconv.Atoi(strings.TrimSpace(blocks[0]))
	if err != nil {
		return fmt.Errorf("invalid state file: could not parse current index: %w", err)
	}

	m.state = &State{CurrentIndex: index, History: []HistoryEntry{}}

	for _, block := range blocks[1:] {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")

		ts, err := strconv.ParseInt(lines[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid state file: could not parse timestamp from '%s': %w", lines[0], err)
		}

		entry := HistoryEntry{Timestamp: ts}
		opLines := lines[1:]
		if len(opLines)%4 != 0 {
			return fmt.Errorf("invalid state file: incomplete operation record")
		}
		for i := 0; i < len(opLines); i += 4 {
			entry.Operations = append(entry.Operations, Operation{
				Action:  opLines[i],
				Path:    opLines[i+1],
				OldHash: opLines[i+2],
				NewHash: opLines[i+3],
			})
		}
		m.state.History = append(m.state.History, entry)
	}

	return nil
}

func (m *Manager) save() error {
	blocks := []string{strconv.Itoa(m.state.CurrentIndex)}

	for _, entry := range m.state.History {
		lines := []string{strconv.FormatInt(entry.Timestamp, 10)}
		for _, op := range entry.Operations {
			lines = append(lines, op.Action, op.Path, op.OldHash, op.NewHash)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	content := strings.Join(blocks, "\n\n")
	return os.WriteFile(m.statePath, []byte(content), 0644)
}

// Stash stores data as a content-addressed snapshot and returns its hash.
// Identical content shares one snapshot file.
func (m *Manager) Stash(data []byte) (string, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	path := m.snapshotPath(hash)
	if _, err := os.Stat(path); err == nil {
		return hash, nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("could not write snapshot: %w", err)
	}
	return hash, nil
}

// StashFile snapshots the current content of path. A missing file yields
// NoHash, marking a create.
func (m *Manager) StashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NoHash, nil
	}
	if err != nil {
		return "", err
	}
	return m.Stash(data)
}

// Snapshot returns the content stored under hash.
func (m *Manager) Snapshot(hash string) ([]byte, error) {
	return os.ReadFile(m.snapshotPath(hash))
}

func (m *Manager) snapshotPath(hash string) string {
	return filepath.Join(m.StateDir, trashDirName, hash+".snap")
}

// Record adds a new set of operations to the history, discarding any redo
// tail beyond the current index.
func (m *Manager) Record(operations []Operation) error {
	if len(operations) == 0 {
		return nil
	}
	if m.state.CurrentIndex < len(m.state.History)-1 {
		m.state.History = m.state.History[:m.state.CurrentIndex+1]
	}

	m.state.History = append(m.state.History, HistoryEntry{
		Timestamp:  time.Now().UTC().Unix(),
		Operations: operations,
	})
	m.state.CurrentIndex++
	return m.save()
}

// OperationsToUndo gets the last operations and moves the history pointer.
func (m *Manager) OperationsToUndo() []Operation {
	if m.state.CurrentIndex < 0 {
		return nil
	}
	ops := m.state.History[m.state.CurrentIndex].Operations
	m.state.CurrentIndex--
	_ = m.save()
	return ops
}

// OperationsToRedo gets the next operations and moves the history pointer.
func (m *Manager) OperationsToRedo() []Operation {
	nextIndex := m.state.CurrentIndex + 1
	if nextIndex >= len(m.state.History) {
		return nil
	}
	m.state.CurrentIndex = nextIndex
	ops := m.state.History[m.state.CurrentIndex].Operations
	_ = m.save()
	return ops
}
