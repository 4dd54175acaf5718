// Package fileio provides the file primitives behind list cleaning: line
// list read/write, file discovery and delimited-format conversion. I/O
// errors are returned to the caller untouched; nothing is retried or logged
// here.
package fileio

import (
	"bufio"
	"os"
	"strings"
)

// ReadLines reads the file at path and returns its non-blank lines, each
// trimmed of surrounding whitespace, in file order. The whole file is read
// at once: lines are not bounded by a scanner token limit.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes items to path, one per line with a trailing newline,
// truncating any existing content. Items are written verbatim. An empty
// list produces an empty file.
func WriteLines(path string, items []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, item := range items {
		if _, err := w.WriteString(item); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
