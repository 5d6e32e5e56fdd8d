package cost

import (
	"fmt"

	"github.com/graalign/graalign/pdg"
	"github.com/graalign/graalign/signature"
)

// SignatureDistance looks up u's and v's signature vectors and delegates
// to signature.Distance. sigs1 and sigs2 must each contain an
// entry for every vertex of their respective graph; weights may be nil.
func SignatureDistance(u, v *pdg.Vertex, sigs1, sigs2 map[*pdg.Vertex][]int, weights []float64) (float64, error) {
	su, ok := sigs1[u]
	if !ok {
		return 0, fmt.Errorf("cost: no signature vector for vertex %s", u.ID())
	}
	sv, ok := sigs2[v]
	if !ok {
		return 0, fmt.Errorf("cost: no signature vector for vertex %s", v.ID())
	}
	return signature.Distance(su, sv, weights)
}
