package pdg

import (
	"fmt"
	"sort"
)

// DirectedView exposes a graph's raw directed multigraph, self-loops
// included. It is used only for vertex enumeration; the aligner never
// walks it for neighbors.
type DirectedView interface {
	Vertices() []*Vertex
}

// UndirectedView exposes the undirected, self-loop-free projection of a
// graph that the aligner and signature provider consume.
type UndirectedView interface {
	Vertices() []*Vertex
	Neighbors(v *Vertex) []*Vertex
}

// Graph is a directed multigraph representation of a program dependence
// graph. It owns an arena of vertices; Vertex.Index() indexes into that
// arena, which backs the dense cost.Matrix representation.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge

	// undirected adjacency, self-loops excluded, deduplicated.
	undirectedAdj map[*Vertex]map[*Vertex]struct{}
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{undirectedAdj: make(map[*Vertex]map[*Vertex]struct{})}
}

// AddVertex attaches v to the graph's arena and returns its index. Adding
// the same vertex twice is a programmer error and panics.
func (g *Graph) AddVertex(v *Vertex) int {
	if v.attached {
		panic(fmt.Sprintf("pdg: vertex %s already added to graph", v.id))
	}
	v.index = len(g.vertices)
	v.attached = true
	g.vertices = append(g.vertices, v)
	if _, ok := g.undirectedAdj[v]; !ok {
		g.undirectedAdj[v] = make(map[*Vertex]struct{})
	}
	return v.index
}

// AddEdge records a directed edge from -> to. Self-loops are kept in the
// directed view but never appear in the undirected view.
func (g *Graph) AddEdge(from, to *Vertex) {
	g.edges = append(g.edges, &Edge{From: from, To: to})
	if from == to {
		return
	}
	g.undirectedAdj[from][to] = struct{}{}
	g.undirectedAdj[to][from] = struct{}{}
}

// Vertices returns the graph's vertices in arena order.
func (g *Graph) Vertices() []*Vertex {
	return g.vertices
}

// Edges returns the graph's directed edges, self-loops included.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

type directedView struct{ g *Graph }

func (d directedView) Vertices() []*Vertex { return d.g.vertices }

// DefaultGraph returns the directed view (self-loops included), used only
// for vertex enumeration per the PDG provider contract.
func (g *Graph) DefaultGraph() DirectedView {
	return directedView{g}
}

type undirectedView struct{ g *Graph }

func (u undirectedView) Vertices() []*Vertex { return u.g.vertices }

func (u undirectedView) Neighbors(v *Vertex) []*Vertex {
	adj := u.g.undirectedAdj[v]
	out := make([]*Vertex, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	return out
}

// UndirectedWithoutLoops returns the undirected, self-loop-free view the
// aligner and signature provider consume.
func (g *Graph) UndirectedWithoutLoops() UndirectedView {
	return undirectedView{g}
}
