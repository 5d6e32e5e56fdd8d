// Package reporter renders a domain.AlignResponse as text, JSON, or YAML.
package reporter
