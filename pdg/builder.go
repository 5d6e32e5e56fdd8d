package pdg

// Builder provides a fluent construction API for Graph, intended for tests
// and for pdgio's document loader. It defers all validation to Build so
// callers can describe a graph declaratively without checking errors after
// every call, the way core.Graph's functional options defer validation to
// construction time.
type Builder struct {
	g       *Graph
	byLabel map[string]*Vertex
	err     error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{g: NewGraph(), byLabel: make(map[string]*Vertex)}
}

// Vertex adds a vertex identified by label (used only to reference it from
// Edge calls within this builder session; it never affects vertex identity
// once built).
func (b *Builder) Vertex(label string, vtype VertexType, subtypes ...Subtype) *Builder {
	if b.err != nil {
		return b
	}
	if _, exists := b.byLabel[label]; exists {
		b.err = duplicateVertexError(label)
		return b
	}
	v := NewVertex(label, vtype, subtypes...)
	b.g.AddVertex(v)
	b.byLabel[label] = v
	return b
}

// Edge adds a directed edge between two previously declared labels.
func (b *Builder) Edge(fromLabel, toLabel string) *Builder {
	if b.err != nil {
		return b
	}
	from, ok := b.byLabel[fromLabel]
	if !ok {
		b.err = unknownVertexError(fromLabel)
		return b
	}
	to, ok := b.byLabel[toLabel]
	if !ok {
		b.err = unknownVertexError(toLabel)
		return b
	}
	b.g.AddEdge(from, to)
	return b
}

// Build finalizes the graph, returning any error recorded during
// construction.
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.g, nil
}

// VertexByLabel looks up a previously declared vertex by label, for tests that
// need to reference vertices built by label without re-walking the graph.
func (b *Builder) VertexByLabel(label string) *Vertex {
	return b.byLabel[label]
}
