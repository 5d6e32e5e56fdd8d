package align

import "fmt"

func emptyGraphError(side string) error {
	return fmt.Errorf("align: %s graph has no vertices", side)
}

func parameterRangeError(name string, value float64) error {
	return fmt.Errorf("align: %s must be in [0,1], got %v", name, value)
}
