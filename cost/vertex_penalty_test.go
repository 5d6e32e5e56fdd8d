package cost_test

import (
	"testing"

	"github.com/graalign/graalign/cost"
	"github.com/graalign/graalign/internal/constants"
	"github.com/graalign/graalign/pdg"
	"github.com/stretchr/testify/assert"
)

func TestVertexPenalty_IdentityIsZero(t *testing.T) {
	v := pdg.NewVertex("a", pdg.CTRL, pdg.Subtype{Name: "has-condition", Penalty: 1})
	assert.Equal(t, 0.0, cost.VertexPenalty(v, v))
}

func TestVertexPenalty_IsSymmetric(t *testing.T) {
	a := pdg.NewVertex("a", pdg.CTRL, pdg.Subtype{Name: "has-condition", Penalty: 1})
	b := pdg.NewVertex("b", pdg.CTRL, pdg.Subtype{Name: "has-else-branch", Penalty: 2})
	assert.Equal(t, cost.VertexPenalty(a, b), cost.VertexPenalty(b, a))
}

func TestVertexPenalty_ClassMismatchIsMaxPenalty(t *testing.T) {
	decl := pdg.NewVertex("a", pdg.DECL)
	call := pdg.NewVertex("b", pdg.CALL)
	assert.GreaterOrEqual(t, cost.VertexPenalty(decl, call), constants.MaxPenalty)
}

func TestVertexPenalty_DeclAssignSoftening(t *testing.T) {
	decl := pdg.NewVertex("a", pdg.DECL, pdg.Subtype{Name: "typed", Penalty: 1})
	assign := pdg.NewVertex("b", pdg.ASSIGN, pdg.Subtype{Name: "typed", Penalty: 1})
	assert.Equal(t, constants.PenaltyConstant, cost.VertexPenalty(decl, assign))
	assert.Equal(t, cost.VertexPenalty(decl, assign), cost.VertexPenalty(assign, decl))
}

func TestVertexPenalty_OneSidedSubtypeExcessIsQuadratic(t *testing.T) {
	a := pdg.NewVertex("a", pdg.CTRL,
		pdg.Subtype{Name: "has-condition", Penalty: 1},
		pdg.Subtype{Name: "has-else-branch", Penalty: 1},
	)
	b := pdg.NewVertex("b", pdg.CTRL)
	// A = {has-condition, has-else-branch}, B = {} -> max(2,0)^2 = 4.
	assert.Equal(t, 4.0, cost.VertexPenalty(a, b))
}

func TestVertexPenalty_TwoSidedDiffUsesSubtypePenaltySum(t *testing.T) {
	a := pdg.NewVertex("a", pdg.CTRL, pdg.Subtype{Name: "has-condition", Penalty: 2})
	b := pdg.NewVertex("b", pdg.CTRL, pdg.Subtype{Name: "has-else-branch", Penalty: 4})
	// A={has-condition(2)}, B={has-else-branch(4)}, both non-empty: skip
	// the quadratic term, sum subtype_penalty(a,b) over the single pair.
	assert.Equal(t, 3.0, cost.VertexPenalty(a, b))
}
