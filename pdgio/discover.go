package pdgio

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands a set of doublestar glob patterns (e.g. "testdata/**/*.pdg.yaml")
// rooted at root into a deduplicated, sorted list of file paths, for batch
// alignment runs over a directory of PDG documents.
func Discover(root string, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		full := filepath.Join(root, pattern)
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, fmt.Errorf("pdgio: glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}
