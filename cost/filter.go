package cost

import "github.com/graalign/graalign/pdg"

// Pair identifies a (u,v) cost-map entry by vertex identity.
type Pair struct {
	U, V *pdg.Vertex
}

// FilteredMap is the sparse pdg_cost map with pairs at or above
// FilterThreshold(alpha) removed: entries that correspond to class-value
// mismatches too severe for any neighborhood contribution to rescue. It
// is what seed-finding and the aligner consume; the dense Matrix is kept
// around only for building it and for reporting.
type FilteredMap map[Pair]float64

// Filter builds the sparse, thresholded pdg-cost map from a dense pdg-cost
// Matrix.
func Filter(pdgCost *Matrix, v1s, v2s []*pdg.Vertex, alpha float64) FilteredMap {
	threshold := FilterThreshold(alpha)
	out := make(FilteredMap)
	for i, u := range v1s {
		for j, v := range v2s {
			c := pdgCost.At(i, j)
			if c < threshold {
				out[Pair{U: u, V: v}] = c
			}
		}
	}
	return out
}
