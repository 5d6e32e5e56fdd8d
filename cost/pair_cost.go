package cost

import "github.com/graalign/graalign/pdg"

// PairCost materializes pair_cost(u,v) = (1-sigma)*vertex_penalty(u,v) +
// sigma*signature_distance(u,v) for every (u,v) in v1s x v2s.
// Rows follow v1s's order (and index), columns v2s's — matching each
// vertex's pdg.Vertex.Index() within its own graph, so callers can look up
// a pair by vertex index without a side table.
func PairCost(v1s, v2s []*pdg.Vertex, sigs1, sigs2 map[*pdg.Vertex][]int, weights []float64, sigma float64) (*Matrix, error) {
	m := NewMatrix(len(v1s), len(v2s))
	for i, u := range v1s {
		for j, v := range v2s {
			penalty := VertexPenalty(u, v)
			dist, err := SignatureDistance(u, v, sigs1, sigs2, weights)
			if err != nil {
				return nil, err
			}
			m.Set(i, j, (1-sigma)*penalty+sigma*dist)
		}
	}
	return m, nil
}
