package signature

import "github.com/graalign/graalign/pdg"

// CachingProvider decorates a Provider so that repeated Signatures calls
// against the same graph (by pointer identity of the UndirectedView's
// underlying vertex slice head) reuse the first computation. Engine.Execute
// only ever calls a provider once per graph per run, but callers that
// re-run alignment against the same two graphs under different cost
// parameters benefit from not recomputing orbit counts each time.
type CachingProvider struct {
	inner Provider
	cache map[*pdg.Vertex]cachedEntry
}

type cachedEntry struct {
	owner *pdg.Vertex // first vertex of the graph this entry was computed for
	vec   []int
}

// NewCachingProvider wraps inner with a cache keyed on graph identity.
func NewCachingProvider(inner Provider) *CachingProvider {
	return &CachingProvider{inner: inner, cache: make(map[*pdg.Vertex]cachedEntry)}
}

// Signatures implements Provider. It identifies "the same graph" by the
// pointer of its first vertex, which is stable for the lifetime of a
// pdg.Graph (vertices are never reallocated after AddVertex).
func (c *CachingProvider) Signatures(g pdg.UndirectedView) (map[*pdg.Vertex][]int, error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return map[*pdg.Vertex][]int{}, nil
	}
	owner := vertices[0]

	out := make(map[*pdg.Vertex][]int, len(vertices))
	missing := make([]*pdg.Vertex, 0)
	for _, v := range vertices {
		if entry, ok := c.cache[v]; ok && entry.owner == owner {
			out[v] = entry.vec
		} else {
			missing = append(missing, v)
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	fresh, err := c.inner.Signatures(g)
	if err != nil {
		return nil, err
	}
	for _, v := range vertices {
		vec := fresh[v]
		c.cache[v] = cachedEntry{owner: owner, vec: vec}
		out[v] = vec
	}
	return out, nil
}
