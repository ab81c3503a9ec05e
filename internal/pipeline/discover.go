// Package pipeline turns a directory of PDFs into print-ready batches for
// manual duplex printing: per-file cleanup, global merge, fixed-size
// batching, and a two-pass reorder.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Filter decides whether a discovered file name is eligible as pipeline
// input.
type Filter func(name string) bool

// outputPattern matches previously generated batch files so reruns never
// consume their own output.
var outputPattern = regexp.MustCompile(`(?i)^Batch_\d+\.pdf$`)

// DefaultFilter keeps .pdf files that are neither generated batch output
// nor on the deny list. Matching is case-insensitive.
func DefaultFilter(deny []string) Filter {
	denied := make(map[string]struct{}, len(deny))
	for _, name := range deny {
		denied[strings.ToLower(name)] = struct{}{}
	}

	return func(name string) bool {
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".pdf") {
			return false
		}
		if outputPattern.MatchString(name) {
			return false
		}
		if _, ok := denied[lower]; ok {
			return false
		}
		return true
	}
}

// Discover lists eligible PDF paths in dir, sorted by file name.
func Discover(dir string, keep Filter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if keep(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}
