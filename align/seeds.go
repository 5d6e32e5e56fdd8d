package align

import (
	"math"
	"sort"

	"github.com/graalign/graalign/cost"
)

// FindSeeds returns every pair achieving the minimum value in the
// filtered pdg-cost map, sorted by (u-index, v-index) for a deterministic
// iteration order downstream. An empty filtered map (every pair dropped
// by the class-mismatch threshold) yields no seeds.
func FindSeeds(filtered cost.FilteredMap) []cost.Pair {
	if len(filtered) == 0 {
		return nil
	}

	min := math.Inf(1)
	for _, c := range filtered {
		if c < min {
			min = c
		}
	}

	seeds := make([]cost.Pair, 0)
	for p, c := range filtered {
		if c == min {
			seeds = append(seeds, p)
		}
	}
	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].U.Index() != seeds[j].U.Index() {
			return seeds[i].U.Index() < seeds[j].U.Index()
		}
		return seeds[i].V.Index() < seeds[j].V.Index()
	})
	return seeds
}
