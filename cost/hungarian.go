package cost

import "math"

// bestMatchingTotal solves the rectangular linear assignment problem
// (Kuhn-Munkres / Hungarian algorithm) over an n x m cost matrix with
// n <= m, returning the minimum total cost of matching every row to a
// distinct column. It is the O(n^2 m) shortest-augmenting-path formulation
// (as in e.g. the classic e-maxx writeup), using row/column potentials.
//
// cost must be rectangular with len(cost) <= len(cost[0]) for every row
// (callers arrange rows to be the smaller side).
func bestMatchingTotal(cost [][]float64) float64 {
	n := len(cost)
	if n == 0 {
		return 0
	}
	m := len(cost[0])

	const inf = math.MaxFloat64 / 4

	u := make([]float64, n+1)
	v := make([]float64, m+1)
	p := make([]int, m+1)    // p[j] = 1-indexed row currently matched to column j
	way := make([]int, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, m+1)
		used := make([]bool, m+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	total := 0.0
	for j := 1; j <= m; j++ {
		if p[j] != 0 {
			total += cost[p[j]-1][j-1]
		}
	}
	return total
}
