package signature

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/graalign/graalign/internal/constants"
	"github.com/graalign/graalign/pdg"
)

// orbitKey identifies one of the automorphism orbits of the connected
// graphlets on 2..4 vertices. size is the graphlet order, internalDegree is
// the degree of the vertex being classified within the induced subgraph,
// totalEdges is the induced subgraph's edge count, and sumSqDeg is the sum
// of squared internal degrees over the whole induced subgraph — enough
// jointly to separate all 9 non-isomorphic connected graphlets on <=4
// vertices into their 15 orbits (Pržulj 2004).
type orbitKey struct {
	size, internalDegree, totalEdges, sumSqDeg int
}

// canonicalOrbits is the fixed, sorted universe of orbit keys for
// graphlets up to size 4. Its length is constants.DefaultSignatureVectorLength;
// index assignment is stable across calls and across processes.
var canonicalOrbits = []orbitKey{
	{2, 1, 1, 2},   // single edge
	{3, 1, 2, 6},   // path-of-3 endpoint
	{3, 2, 2, 6},   // path-of-3 middle
	{3, 2, 3, 12},  // triangle
	{4, 1, 3, 10},  // path-of-4 endpoint
	{4, 1, 3, 12},  // star leaf
	{4, 2, 3, 10},  // path-of-4 middle
	{4, 3, 3, 12},  // star center
	{4, 1, 4, 18},  // paw pendant
	{4, 2, 4, 16},  // 4-cycle
	{4, 2, 4, 18},  // paw base
	{4, 3, 4, 18},  // paw hub
	{4, 2, 5, 26},  // diamond rim
	{4, 3, 5, 26},  // diamond hub
	{4, 3, 6, 36},  // K4
}

func init() {
	if len(canonicalOrbits) != constants.DefaultSignatureVectorLength {
		panic(fmt.Sprintf("signature: canonicalOrbits has %d entries, want %d", len(canonicalOrbits), constants.DefaultSignatureVectorLength))
	}
}

func orbitIndex(k orbitKey) (int, bool) {
	for i, c := range canonicalOrbits {
		if c == k {
			return i, true
		}
	}
	return -1, false
}

// GraphletProvider is a reference, non-black-box signature Provider. For
// every vertex it counts, across every connected induced subgraph of size
// 2..MaxSize containing that vertex, how many times the vertex falls into
// each of the 15 graphlet orbits — the graphlet degree vector of
// Milenković & Pržulj (2008), truncated to graphlets of size <=4 rather
// than the conventional 73-orbit table to keep enumeration tractable on
// PDG-sized graphs; any fixed-length, bounded, symmetric distance is a
// valid substitute for callers that wire in their own Provider.
//
// Enumeration cost grows combinatorially with vertex degree, so
// PerVertexLimit caps how many size-k subgraphs are collected per vertex
// per size; once hit, the vector is a (documented, deterministic) partial
// count rather than an exhaustive one.
type GraphletProvider struct {
	MaxSize        int
	PerVertexLimit int
}

// NewGraphletProvider builds a GraphletProvider using the package defaults
// (graphlets up to size 4, 500 subgraphs per vertex per size).
func NewGraphletProvider() *GraphletProvider {
	return &GraphletProvider{
		MaxSize:        constants.DefaultGraphletMaxSize,
		PerVertexLimit: 500,
	}
}

// Signatures implements Provider.
func (p *GraphletProvider) Signatures(g pdg.UndirectedView) (map[*pdg.Vertex][]int, error) {
	vertices := g.Vertices()
	out := make(map[*pdg.Vertex][]int, len(vertices))
	for _, v := range vertices {
		out[v] = make([]int, constants.DefaultSignatureVectorLength)
	}

	for _, v := range vertices {
		vec := out[v]
		for k := 2; k <= p.MaxSize; k++ {
			subgraphs := connectedKSubgraphsContaining(g, v, k, p.PerVertexLimit)
			for _, s := range subgraphs {
				edges, degree := inducedStats(s, g)
				sumSq := 0
				for _, d := range degree {
					sumSq += d * d
				}
				key := orbitKey{size: k, internalDegree: degree[v], totalEdges: edges, sumSqDeg: sumSq}
				idx, ok := orbitIndex(key)
				if !ok {
					continue
				}
				vec[idx]++
			}
		}
	}
	return out, nil
}

// connectedKSubgraphsContaining enumerates distinct connected vertex sets
// of exactly size k that contain v, by recursively extending a frontier of
// reachable-but-unincluded neighbors. Enumeration order can revisit the
// same final set from different insertion paths; a seen-set of sorted
// vertex indices dedups them. limit bounds the total sets returned.
func connectedKSubgraphsContaining(g pdg.UndirectedView, v *pdg.Vertex, k int, limit int) [][]*pdg.Vertex {
	seen := make(map[string]bool)
	var out [][]*pdg.Vertex

	var rec func(set []*pdg.Vertex, inSet map[*pdg.Vertex]bool, frontier []*pdg.Vertex)
	rec = func(set []*pdg.Vertex, inSet map[*pdg.Vertex]bool, frontier []*pdg.Vertex) {
		if len(out) >= limit {
			return
		}
		if len(set) == k {
			key := subgraphKey(set)
			if !seen[key] {
				seen[key] = true
				cp := make([]*pdg.Vertex, len(set))
				copy(cp, set)
				out = append(out, cp)
			}
			return
		}
		for i, w := range frontier {
			if len(out) >= limit {
				return
			}
			newSet := append(append([]*pdg.Vertex(nil), set...), w)
			newInSet := make(map[*pdg.Vertex]bool, len(inSet)+1)
			for u := range inSet {
				newInSet[u] = true
			}
			newInSet[w] = true

			newFrontier := append([]*pdg.Vertex(nil), frontier[i+1:]...)
			for _, n := range g.Neighbors(w) {
				if !newInSet[n] && !containsVertex(newFrontier, n) {
					newFrontier = append(newFrontier, n)
				}
			}
			rec(newSet, newInSet, newFrontier)
		}
	}

	initInSet := map[*pdg.Vertex]bool{v: true}
	rec([]*pdg.Vertex{v}, initInSet, g.Neighbors(v))
	return out
}

func containsVertex(list []*pdg.Vertex, v *pdg.Vertex) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func subgraphKey(set []*pdg.Vertex) string {
	indices := make([]int, len(set))
	for i, v := range set {
		indices[i] = v.Index()
	}
	sort.Ints(indices)
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

// inducedStats computes the induced-subgraph edge count and per-vertex
// internal degree for a vertex set.
func inducedStats(set []*pdg.Vertex, g pdg.UndirectedView) (int, map[*pdg.Vertex]int) {
	inSet := make(map[*pdg.Vertex]bool, len(set))
	for _, v := range set {
		inSet[v] = true
	}
	degree := make(map[*pdg.Vertex]int, len(set))
	edgeSum := 0
	for _, v := range set {
		for _, n := range g.Neighbors(v) {
			if inSet[n] {
				degree[v]++
			}
		}
		edgeSum += degree[v]
	}
	return edgeSum / 2, degree
}
