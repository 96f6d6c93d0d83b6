package tedjoin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDataset reads path as a plain-text, one-bracket-notation-tree-per-line
// file, skipping blank lines, and returns the parsed trees already indexed
// against dict (so the returned slice is ready to pass to ExecuteJoin).
func LoadDataset(path string, dict *LabelDict) ([]*TreeIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tedjoin: opening dataset %s: %w", path, err)
	}
	defer f.Close()

	return ParseDataset(f, dict)
}

// ParseDataset is LoadDataset's core, taking any reader so tests and callers
// that already have the data in memory don't need a file on disk.
func ParseDataset(r io.Reader, dict *LabelDict) ([]*TreeIndex, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	var trees []*TreeIndex
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		raw, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("tedjoin: dataset line %d: %w", lineNo, err)
		}
		trees = append(trees, IndexTree(raw, dict))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tedjoin: reading dataset: %w", err)
	}
	return trees, nil
}
