// Package graalmcp exposes graalservice.AlignService over the Model Context
// Protocol so LLM-driven callers can request PDG alignments and inspect
// previously computed results without shelling out to the CLI.
package graalmcp
