package pdg

import "fmt"

func duplicateVertexError(label string) error {
	return fmt.Errorf("pdg: vertex %q already declared", label)
}

func unknownVertexError(label string) error {
	return fmt.Errorf("pdg: vertex %q not declared", label)
}
