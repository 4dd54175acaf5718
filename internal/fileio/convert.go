package fileio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// delimiterFor maps a .csv/.tsv extension to its field delimiter.
func delimiterFor(path string) (rune, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ',', nil
	case ".tsv":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimited format: %s (want .csv or .tsv)", path)
}

// ConvertDelimited rewrites the delimited file at src into dst, converting
// between comma- and tab-separated values. The direction is taken from the
// two file extensions.
func ConvertDelimited(src, dst string) error {
	srcDelim, err := delimiterFor(src)
	if err != nil {
		return err
	}
	dstDelim, err := delimiterFor(dst)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	reader := csv.NewReader(in)
	reader.Comma = srcDelim
	reader.FieldsPerRecord = -1 // ragged rows pass through unchanged
	writer := csv.NewWriter(out)
	writer.Comma = dstDelim

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", src, err)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
