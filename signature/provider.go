// Package signature implements the structural "signature" side of the
// alignment cost model: the Provider contract external orbit counters must
// satisfy, a normalized signature distance, and a reference
// graphlet-degree-vector Provider for callers that don't wire in their own
// orbit counter.
package signature

import (
	"fmt"

	"github.com/graalign/graalign/pdg"
)

// Provider computes a fixed-length, non-negative-integer signature vector
// per vertex of an undirected graph. The core calls Signatures at most
// once per graph per Engine.Execute call; a Provider need not itself
// cache across calls (see CachingProvider for a decorator that does).
type Provider interface {
	Signatures(g pdg.UndirectedView) (map[*pdg.Vertex][]int, error)
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(g pdg.UndirectedView) (map[*pdg.Vertex][]int, error)

// Signatures implements Provider.
func (f ProviderFunc) Signatures(g pdg.UndirectedView) (map[*pdg.Vertex][]int, error) {
	return f(g)
}

// ValidateVectors checks the provider-contract invariants the core relies
// on: every vertex has a vector, all vectors share one length, and every
// entry is a non-negative finite integer. It does not belong to the
// Provider interface itself (a provider need not self-validate) but is the
// boundary check callers should run once per graph.
func ValidateVectors(vertices []*pdg.Vertex, sigs map[*pdg.Vertex][]int) error {
	length := -1
	for _, v := range vertices {
		vec, ok := sigs[v]
		if !ok {
			return fmt.Errorf("signature: missing vector for vertex %s", v.ID())
		}
		if length == -1 {
			length = len(vec)
		} else if len(vec) != length {
			return fmt.Errorf("signature: vector length mismatch for vertex %s: got %d, want %d", v.ID(), len(vec), length)
		}
		for _, x := range vec {
			if x < 0 {
				return fmt.Errorf("signature: negative signature entry %d for vertex %s", x, v.ID())
			}
		}
	}
	return nil
}
