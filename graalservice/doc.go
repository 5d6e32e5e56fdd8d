// Package graalservice orchestrates the alignment engine on behalf of the
// CLI and MCP server: loading PDG documents, driving align.Engine, tracking
// progress across batch runs, and translating results into domain DTOs.
package graalservice
