package cost

import (
	"github.com/graalign/graalign/internal/constants"
	"github.com/graalign/graalign/pdg"
)

// PDGCost blends pair_cost with a neighborhood term:
//
//	pdg_cost(u,v) = alpha*pair_cost(u,v) + (1-alpha)*neighborhood_cost(u,v)
//
// neighborhood_cost(u,v) is the mean pair_cost over the best one-to-one
// matching of N(u) with N(v), solved exactly via the Hungarian algorithm
// rather than a naive average over every neighbor pair — see DESIGN.md
// for why. When either neighbor set is empty there is nothing to match
// against, so neighborhood_cost falls back to pair_cost(u,v) itself,
// leaving pdg_cost unchanged for isolated vertices rather than granting
// them an artificial discount.
func PDGCost(v1s, v2s []*pdg.Vertex, view1, view2 pdg.UndirectedView, pairCost *Matrix, alpha float64) *Matrix {
	out := NewMatrix(len(v1s), len(v2s))
	for i, u := range v1s {
		neighborsU := view1.Neighbors(u)
		for j, v := range v2s {
			neighborsV := view2.Neighbors(v)
			nc := neighborhoodCost(neighborsU, neighborsV, pairCost, i, j)
			pc := pairCost.At(i, j)
			out.Set(i, j, pc+(1-alpha)*(nc-pc))
		}
	}
	return out
}

func neighborhoodCost(neighborsU, neighborsV []*pdg.Vertex, pairCost *Matrix, fallbackI, fallbackJ int) float64 {
	if len(neighborsU) == 0 || len(neighborsV) == 0 {
		return pairCost.At(fallbackI, fallbackJ)
	}

	rows, cols := neighborsU, neighborsV
	swapped := false
	if len(rows) > len(cols) {
		rows, cols = cols, rows
		swapped = true
	}

	matrix := make([][]float64, len(rows))
	for a, ra := range rows {
		matrix[a] = make([]float64, len(cols))
		for b, cb := range cols {
			if swapped {
				matrix[a][b] = pairCost.At(cb.Index(), ra.Index())
			} else {
				matrix[a][b] = pairCost.At(ra.Index(), cb.Index())
			}
		}
	}

	total := bestMatchingTotal(matrix)
	return total / float64(len(rows))
}

// FilterThreshold is (1-alpha)*MAX_PENALTY, the pdg_cost ceiling above
// which a pair is dropped as unalignable.
func FilterThreshold(alpha float64) float64 {
	return (1 - alpha) * constants.MaxPenalty
}
