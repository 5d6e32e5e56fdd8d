// Package pdg defines the program dependence graph types the alignment
// engine operates on: vertices, edges, vertex types/subtypes, and the two
// views a graph exposes (a directed multigraph with self-loops, and an
// undirected view without self-loops).
//
// Vertex identity is reference (pointer) identity, never a structural or
// textual key: two distinct program points with identical labels must
// never compare equal.
package pdg

import "fmt"

// VertexType is the closed set of PDG vertex kinds. Each type carries an
// integer class value; vertices with different class values can never be
// aligned to each other (see cost.VertexPenalty).
type VertexType int

const (
	// DECL marks a variable or field declaration.
	DECL VertexType = iota
	// ASSIGN marks an assignment statement.
	ASSIGN
	// CTRL marks a control-flow construct (if/while/for/switch).
	CTRL
	// CALL marks a function or method call.
	CALL
	// RETURN marks a return statement.
	RETURN
	// BREAK marks a break statement.
	BREAK
	// CONTINUE marks a continue statement.
	CONTINUE
	// CONN marks a connector/synthetic vertex introduced by PDG construction.
	CONN
)

// classValues maps each VertexType to its alignment class. DECL and ASSIGN
// intentionally share class 1: declarations with initializers and plain
// assignments are considered structurally "near" each other.
var classValues = map[VertexType]int{
	DECL:     1,
	ASSIGN:   1,
	CTRL:     2,
	CALL:     3,
	RETURN:   4,
	BREAK:    5,
	CONTINUE: 6,
	CONN:     7,
}

// ClassValue returns the alignment class for a vertex type.
func (t VertexType) ClassValue() int {
	return classValues[t]
}

var typeNames = map[VertexType]string{
	DECL:     "DECL",
	ASSIGN:   "ASSIGN",
	CTRL:     "CTRL",
	CALL:     "CALL",
	RETURN:   "RETURN",
	BREAK:    "BREAK",
	CONTINUE: "CONTINUE",
	CONN:     "CONN",
}

// String implements fmt.Stringer.
func (t VertexType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("VertexType(%d)", int(t))
}

// ParseVertexType parses a vertex type name (e.g. from a pdgio document).
func ParseVertexType(s string) (VertexType, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("pdg: unknown vertex type %q", s)
}

// Subtype is a syntactic refinement of a vertex (e.g. "has-condition",
// "has-else-branch"). Each subtype carries an intrinsic mismatch penalty
// used when comparing subtype pairs that appear on only one side.
type Subtype struct {
	Name    string
	Penalty float64
}

// SubtypePenalty returns the intrinsic penalty for aligning subtype a
// against subtype b when they appear on opposite sides of a comparison.
// The reference model treats this as symmetric and equal to the average
// of the two subtypes' intrinsic penalties; a provider-specific subtype
// catalog may override this by wrapping Vertex.Subtypes with richer
// Subtype values.
func SubtypePenalty(a, b Subtype) float64 {
	return (a.Penalty + b.Penalty) / 2
}

// Vertex is a single PDG vertex. Identity is reference identity: two
// Vertex values are the same vertex iff they are the same pointer.
type Vertex struct {
	// id is a debug-only label; it plays no role in equality or hashing.
	id       string
	vtype    VertexType
	subtypes map[string]Subtype
	index    int  // position in the owning Graph's vertex arena
	attached bool // true once added to a Graph's arena
}

// NewVertex creates a detached vertex; use Builder to attach it to a Graph.
func NewVertex(id string, vtype VertexType, subtypes ...Subtype) *Vertex {
	v := &Vertex{id: id, vtype: vtype, subtypes: make(map[string]Subtype, len(subtypes))}
	for _, s := range subtypes {
		v.subtypes[s.Name] = s
	}
	return v
}

// ID returns the vertex's debug label.
func (v *Vertex) ID() string { return v.id }

// Type returns the vertex's VertexType.
func (v *Vertex) Type() VertexType { return v.vtype }

// Subtypes returns the vertex's subtype set.
func (v *Vertex) Subtypes() map[string]Subtype { return v.subtypes }

// Index returns the vertex's position in its owning Graph's arena.
func (v *Vertex) Index() int { return v.index }

func (v *Vertex) String() string {
	return fmt.Sprintf("%s(%s)", v.id, v.vtype)
}

// SubtypeDiff returns the subtypes present in a but not in b.
func SubtypeDiff(a, b *Vertex) []Subtype {
	var diff []Subtype
	for name, s := range a.subtypes {
		if _, ok := b.subtypes[name]; !ok {
			diff = append(diff, s)
		}
	}
	return diff
}

// Edge is a connection between two vertices. Direction only matters in the
// Graph's DefaultGraph view; the UndirectedWithoutLoops view treats every
// edge as bidirectional and drops self-loops.
type Edge struct {
	From, To *Vertex
}
