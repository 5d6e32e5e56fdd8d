package pdgio

import (
	"fmt"
	"io"
	"os"

	"github.com/graalign/graalign/pdg"
	"gopkg.in/yaml.v3"
)

// VertexDoc is one vertex in a serialized graph document.
type VertexDoc struct {
	ID       string       `yaml:"id" json:"id"`
	Type     string       `yaml:"type" json:"type"`
	Subtypes []SubtypeDoc `yaml:"subtypes,omitempty" json:"subtypes,omitempty"`
}

// SubtypeDoc is one vertex subtype refinement.
type SubtypeDoc struct {
	Name    string  `yaml:"name" json:"name"`
	Penalty float64 `yaml:"penalty" json:"penalty"`
}

// EdgeDoc is one directed edge, referencing vertices by ID.
type EdgeDoc struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// GraphDoc is the on-disk representation of a PDG: a flat vertex list and
// a flat edge list, both keyed by vertex ID rather than array index so
// documents remain stable under reordering.
type GraphDoc struct {
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Vertices []VertexDoc `yaml:"vertices" json:"vertices"`
	Edges    []EdgeDoc   `yaml:"edges" json:"edges"`
}

// Load decodes a YAML-encoded GraphDoc from r and builds a pdg.Graph.
func Load(r io.Reader) (*pdg.Graph, error) {
	var doc GraphDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("pdgio: decode graph document: %w", err)
	}
	return build(&doc)
}

// LoadFile opens path and decodes it as a GraphDoc.
func LoadFile(path string) (*pdg.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdgio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("pdgio: %s: %w", path, err)
	}
	return g, nil
}

func build(doc *GraphDoc) (*pdg.Graph, error) {
	b := pdg.NewBuilder()
	for _, v := range doc.Vertices {
		vtype, err := pdg.ParseVertexType(v.Type)
		if err != nil {
			return nil, fmt.Errorf("pdgio: vertex %q: %w", v.ID, err)
		}
		subtypes := make([]pdg.Subtype, len(v.Subtypes))
		for i, s := range v.Subtypes {
			subtypes[i] = pdg.Subtype{Name: s.Name, Penalty: s.Penalty}
		}
		b.Vertex(v.ID, vtype, subtypes...)
	}
	for _, e := range doc.Edges {
		b.Edge(e.From, e.To)
	}
	return b.Build()
}
