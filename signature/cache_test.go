package signature_test

import (
	"testing"

	"github.com/graalign/graalign/pdg"
	"github.com/graalign/graalign/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachingProvider_ComputesOnceThenReuses(t *testing.T) {
	g := buildTriangle(t)
	calls := 0
	inner := signature.ProviderFunc(func(view pdg.UndirectedView) (map[*pdg.Vertex][]int, error) {
		calls++
		return signature.NewGraphletProvider().Signatures(view)
	})
	cached := signature.NewCachingProvider(inner)

	first, err := cached.Signatures(g.UndirectedWithoutLoops())
	require.NoError(t, err)
	second, err := cached.Signatures(g.UndirectedWithoutLoops())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestCachingProvider_EmptyGraphShortCircuits(t *testing.T) {
	g, err := pdg.NewBuilder().Build()
	require.NoError(t, err)
	cached := signature.NewCachingProvider(signature.NewGraphletProvider())
	sigs, err := cached.Signatures(g.UndirectedWithoutLoops())
	require.NoError(t, err)
	assert.Empty(t, sigs)
}
