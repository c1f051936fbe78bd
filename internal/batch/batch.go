// Package batch reads lyric files for per-line batch analysis.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines reads a lyric file and returns its lines in order, blank lines
// included. The analyzer decides which lines to skip, so line-numbering
// policy stays in one place.
func ReadLines(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	// A trailing newline produces one empty trailing element; drop it so
	// line counts match what an editor shows.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines, nil
}
