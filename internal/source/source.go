// Package source resolves the raw list text for streaming mode: a pipe on
// stdin wins, otherwise the system clipboard is read.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/sokinpui/tidylist/internal/ui"
)

// Provider yields the list content when no file arguments are given.
type Provider struct{}

// New creates a new Provider.
func New() *Provider {
	return &Provider{}
}

// GetContent returns the piped stdin content when stdin is not a terminal,
// otherwise the clipboard content. Blank input comes back as an empty
// string, not an error.
func (p *Provider) GetContent() (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		return readPiped(os.Stdin)
	}

	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		ui.Warning("Clipboard is empty. Nothing to process.")
		return "", nil
	}
	return content, nil
}

// readPiped drains r and normalizes blank input to the empty string.
func readPiped(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return "", nil
	}
	return string(content), nil
}
