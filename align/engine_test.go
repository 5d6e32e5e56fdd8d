package align_test

import (
	"context"
	"testing"

	"github.com/graalign/graalign/align"
	"github.com/graalign/graalign/cost"
	"github.com/graalign/graalign/pdg"
	"github.com/graalign/graalign/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantProvider hands out identical signature vectors to every vertex,
// so tests can isolate vertex-penalty and structural-branching behavior
// from the graphlet counter.
func constantProvider(vec []int) signature.ProviderFunc {
	return func(g pdg.UndirectedView) (map[*pdg.Vertex][]int, error) {
		out := make(map[*pdg.Vertex][]int)
		for _, v := range g.Vertices() {
			out[v] = vec
		}
		return out, nil
	}
}

func twinGraph(t *testing.T) *pdg.Graph {
	t.Helper()
	g, err := pdg.NewBuilder().
		Vertex("a", pdg.DECL).
		Vertex("b", pdg.DECL).
		Edge("a", "b").
		Build()
	require.NoError(t, err)
	return g
}

func TestEngine_TwinGraphsProduceBothRotations(t *testing.T) {
	g1 := twinGraph(t)
	g2 := twinGraph(t)
	a1, b1 := g1.Vertices()[0], g1.Vertices()[1]
	a2, b2 := g2.Vertices()[0], g2.Vertices()[1]

	e := align.NewEngine(constantProvider([]int{1, 1}))
	result, err := e.Execute(context.Background(), g1, g2)
	require.NoError(t, err)
	require.NotEmpty(t, result.Alignments, "every vertex pair ties at cost 0, so every pair is a seed")

	straight := align.Alignment{{U: a1, V: a2}, {U: b1, V: b2}}
	crossed := align.Alignment{{U: a1, V: b2}, {U: b1, V: a2}}
	var sawStraight, sawCrossed bool
	for _, alignments := range result.Alignments {
		for _, a := range alignments {
			if alignmentsEqual(a, straight) {
				sawStraight = true
			}
			if alignmentsEqual(a, crossed) {
				sawCrossed = true
			}
		}
	}
	assert.True(t, sawStraight, "the non-crossing rotation must be reachable")
	assert.True(t, sawCrossed, "the crossing rotation must be reachable")
}

func TestEngine_ClassMismatchYieldsNoAlignments(t *testing.T) {
	g1, err := pdg.NewBuilder().Vertex("u", pdg.DECL).Build()
	require.NoError(t, err)
	g2, err := pdg.NewBuilder().Vertex("v", pdg.CALL).Build()
	require.NoError(t, err)

	e := align.NewEngine(constantProvider([]int{0}))
	result, err := e.Execute(context.Background(), g1, g2)
	require.NoError(t, err)
	assert.Empty(t, result.Alignments)
}

func TestEngine_DeclAssignNearMatchProducesSingleAlignment(t *testing.T) {
	g1, err := pdg.NewBuilder().Vertex("u", pdg.DECL, pdg.Subtype{Name: "typed", Penalty: 1}).Build()
	require.NoError(t, err)
	g2, err := pdg.NewBuilder().Vertex("v", pdg.ASSIGN, pdg.Subtype{Name: "typed", Penalty: 1}).Build()
	require.NoError(t, err)

	e := align.NewEngine(constantProvider([]int{2, 2}))
	result, err := e.Execute(context.Background(), g1, g2)
	require.NoError(t, err)

	require.Len(t, result.Alignments, 1)
	for seed, alignments := range result.Alignments {
		assert.Equal(t, "u", seed.U.ID())
		assert.Equal(t, "v", seed.V.ID())
		require.Len(t, alignments, 1)
		assert.Equal(t, align.Alignment{{U: g1.Vertices()[0], V: g2.Vertices()[0]}}, alignments[0])
	}
}

func TestEngine_TriangleOnTriangleTiesEveryPairAndBranchesPerSeed(t *testing.T) {
	buildTriangle := func() *pdg.Graph {
		g, err := pdg.NewBuilder().
			Vertex("a", pdg.CTRL).
			Vertex("b", pdg.CTRL).
			Vertex("c", pdg.CTRL).
			Edge("a", "b").
			Edge("b", "c").
			Edge("c", "a").
			Build()
		require.NoError(t, err)
		return g
	}
	g1 := buildTriangle()
	g2 := buildTriangle()

	e := align.NewEngine(constantProvider([]int{1}))
	result, err := e.Execute(context.Background(), g1, g2)
	require.NoError(t, err)

	// A fully symmetric triangle-on-triangle ties every one of the 9
	// cross pairs at pdg_cost 0, so every pair becomes its own seed; each
	// seed's expansion resolves the other two positions in the only two
	// ways consistent with its own fixed pairing.
	require.Len(t, result.Alignments, 9)
	for seed, alignments := range result.Alignments {
		assert.Lenf(t, alignments, 2, "seed %v should admit exactly two completions", seed)
		for _, a := range alignments {
			require.Len(t, a, 3)
			assert.Equal(t, seed, cost.Pair{U: a[0].U, V: a[0].V}, "alignment must start with its seed")
		}
	}
}

func TestEngine_IdentityGraphAdmitsIdentityAlignment(t *testing.T) {
	g, err := pdg.NewBuilder().
		Vertex("a", pdg.CTRL).
		Vertex("b", pdg.CALL).
		Edge("a", "b").
		Build()
	require.NoError(t, err)

	e := align.NewEngine(signature.NewGraphletProvider())
	result, err := e.Execute(context.Background(), g, g)
	require.NoError(t, err)

	identity := align.Alignment{
		{U: g.Vertices()[0], V: g.Vertices()[0]},
		{U: g.Vertices()[1], V: g.Vertices()[1]},
	}
	found := false
	for _, alignments := range result.Alignments {
		for _, a := range alignments {
			if alignmentsEqual(a, identity) {
				found = true
			}
		}
	}
	assert.True(t, found, "identity alignment must be reachable when aligning a graph against itself")
	assert.Equal(t, 0.0, result.PairCost.At(0, 0))
	assert.Equal(t, 0.0, result.PairCost.At(1, 1))
}

func alignmentsEqual(a, b align.Alignment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEngine_SigmaZeroEqualsVertexPenaltyOnDiagonal(t *testing.T) {
	g1, err := pdg.NewBuilder().Vertex("u", pdg.DECL).Build()
	require.NoError(t, err)
	g2, err := pdg.NewBuilder().Vertex("v", pdg.ASSIGN).Build()
	require.NoError(t, err)

	e := align.NewEngine(constantProvider([]int{9}), align.WithSignatureSimilarityContribution(0))
	result, err := e.Execute(context.Background(), g1, g2)
	require.NoError(t, err)

	assert.Equal(t, cost.VertexPenalty(g1.Vertices()[0], g2.Vertices()[0]), result.PairCost.At(0, 0))
}

func TestEngine_RejectsEmptyGraph(t *testing.T) {
	g1, err := pdg.NewBuilder().Build()
	require.NoError(t, err)
	g2, err := pdg.NewBuilder().Vertex("v", pdg.CTRL).Build()
	require.NoError(t, err)

	e := align.NewEngine(constantProvider([]int{1}))
	_, err = e.Execute(context.Background(), g1, g2)
	assert.Error(t, err)
}

func TestEngine_RejectsOutOfRangeParameters(t *testing.T) {
	g1, err := pdg.NewBuilder().Vertex("u", pdg.CTRL).Build()
	require.NoError(t, err)
	g2, err := pdg.NewBuilder().Vertex("v", pdg.CTRL).Build()
	require.NoError(t, err)

	e := align.NewEngine(constantProvider([]int{1}), align.WithOriginalCostContribution(1.5))
	_, err = e.Execute(context.Background(), g1, g2)
	assert.Error(t, err)
}
