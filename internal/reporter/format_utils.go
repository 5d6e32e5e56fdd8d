package reporter

import (
	"encoding/json"
	"io"

	"github.com/graalign/graalign/domain"
	"gopkg.in/yaml.v3"
)

// WriteJSON writes indented JSON for v to w.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("encode JSON", err)
	}
	return nil
}

// WriteYAML writes YAML for v to w.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("encode YAML", err)
	}
	return nil
}
