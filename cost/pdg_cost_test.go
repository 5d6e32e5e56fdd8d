package cost_test

import (
	"testing"

	"github.com/graalign/graalign/cost"
	"github.com/graalign/graalign/pdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPDGCost_NeighborhoodCostUsesBestMatchingNotNaiveAverage pins
// neighborhood_cost to the mean over the best one-to-one matching of
// neighbors, not the average over every neighbor pair.
func TestPDGCost_NeighborhoodCostUsesBestMatchingNotNaiveAverage(t *testing.T) {
	g1, err := pdg.NewBuilder().
		Vertex("u", pdg.CTRL).
		Vertex("u1", pdg.CTRL).
		Vertex("u2", pdg.CTRL).
		Edge("u", "u1").
		Edge("u", "u2").
		Build()
	require.NoError(t, err)

	g2, err := pdg.NewBuilder().
		Vertex("v", pdg.CTRL).
		Vertex("v1", pdg.CTRL).
		Vertex("v2", pdg.CTRL).
		Edge("v", "v1").
		Edge("v", "v2").
		Build()
	require.NoError(t, err)

	v1s := g1.Vertices()
	v2s := g2.Vertices()

	pairCost := cost.NewMatrix(3, 3)
	pairCost.Set(0, 0, 0.5) // u,v itself
	pairCost.Set(1, 1, 0.1) // u1,v1
	pairCost.Set(1, 2, 0.9) // u1,v2
	pairCost.Set(2, 1, 0.9) // u2,v1
	pairCost.Set(2, 2, 0.1) // u2,v2

	alpha := 0.6
	pdgCost := cost.PDGCost(v1s, v2s, g1.UndirectedWithoutLoops(), g2.UndirectedWithoutLoops(), pairCost, alpha)

	// best matching: (u1,v1)+(u2,v2) = 0.1+0.1, mean 0.1.
	// naive average over all 4 pairs would be 0.5.
	wantBestMatching := alpha*0.5 + (1-alpha)*0.1
	wantNaiveAverage := alpha*0.5 + (1-alpha)*0.5

	got := pdgCost.At(0, 0)
	assert.InDelta(t, wantBestMatching, got, 1e-9)
	assert.NotEqual(t, wantNaiveAverage, got)
}

func TestPDGCost_IsolatedVertexFallsBackToPairCost(t *testing.T) {
	g1, err := pdg.NewBuilder().Vertex("u", pdg.CTRL).Build()
	require.NoError(t, err)
	g2, err := pdg.NewBuilder().Vertex("v", pdg.CTRL).Build()
	require.NoError(t, err)

	pairCost := cost.NewMatrix(1, 1)
	pairCost.Set(0, 0, 0.42)

	pdgCost := cost.PDGCost(g1.Vertices(), g2.Vertices(), g1.UndirectedWithoutLoops(), g2.UndirectedWithoutLoops(), pairCost, 0.6)
	assert.Equal(t, 0.42, pdgCost.At(0, 0))
}

func TestFilterThreshold_ScalesWithAlpha(t *testing.T) {
	assert.Greater(t, cost.FilterThreshold(0.0), cost.FilterThreshold(1.0))
	assert.Equal(t, 0.0, cost.FilterThreshold(1.0))
}

func TestFilter_DropsPairsAtOrAboveThreshold(t *testing.T) {
	decl := pdg.NewVertex("a", pdg.DECL)
	call := pdg.NewVertex("b", pdg.CALL)

	m := cost.NewMatrix(1, 1)
	m.Set(0, 0, cost.FilterThreshold(0.6)) // exactly at threshold: dropped

	filtered := cost.Filter(m, []*pdg.Vertex{decl}, []*pdg.Vertex{call}, 0.6)
	assert.Empty(t, filtered)
}

func TestFilter_KeepsPairsBelowThreshold(t *testing.T) {
	a := pdg.NewVertex("a", pdg.CTRL)
	b := pdg.NewVertex("b", pdg.CTRL)

	m := cost.NewMatrix(1, 1)
	m.Set(0, 0, 0.05)

	filtered := cost.Filter(m, []*pdg.Vertex{a}, []*pdg.Vertex{b}, 0.6)
	assert.Contains(t, filtered, cost.Pair{U: a, V: b})
	assert.Equal(t, 0.05, filtered[cost.Pair{U: a, V: b}])
}
