package cost

import (
	"github.com/graalign/graalign/internal/constants"
	"github.com/graalign/graalign/pdg"
)

// VertexPenalty accumulates four rules over a vertex pair: class-value
// mismatch dominates with MAX_PENALTY, a DECL/ASSIGN pair is softened by
// PENALTY_CONSTANT, one-sided subtype excess is penalized quadratically,
// and two-sided subtype differences are penalized by an all-pairs
// subtype-penalty sum. It is symmetric in u and v and returns 0 for u == v
// (identical type, identical subtypes).
//
// The DECL/ASSIGN softening applies symmetrically: {DECL,ASSIGN} in
// either order counts, since declarations with initializers and plain
// assignments are often structurally interchangeable.
func VertexPenalty(u, v *pdg.Vertex) float64 {
	penalty := 0.0
	if u.Type().ClassValue() != v.Type().ClassValue() {
		penalty += constants.MaxPenalty
	} else if isDeclAssignPair(u, v) {
		penalty += constants.PenaltyConstant
	}

	a := pdg.SubtypeDiff(u, v)
	b := pdg.SubtypeDiff(v, u)

	if len(a) == 0 || len(b) == 0 {
		n := len(a)
		if len(b) > n {
			n = len(b)
		}
		penalty += float64(n*n) * constants.PenaltyConstant
	}

	for _, sa := range a {
		for _, sb := range b {
			penalty += pdg.SubtypePenalty(sa, sb)
		}
	}

	return penalty
}

func isDeclAssignPair(u, v *pdg.Vertex) bool {
	return (u.Type() == pdg.DECL && v.Type() == pdg.ASSIGN) ||
		(u.Type() == pdg.ASSIGN && v.Type() == pdg.DECL)
}
