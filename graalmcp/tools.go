package graalmcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the graalign MCP tools with the server.
func RegisterTools(s *server.MCPServer, deps *Dependencies) {
	h := NewHandlerSet(deps)

	s.AddTool(mcp.NewTool("align_pdgs",
		mcp.WithDescription("Align an original program dependence graph document against one suspect, or against every document a batch pattern matches, and return the best matched vertex alignment per pair"),
		mcp.WithString("original",
			mcp.Required(),
			mcp.Description("Path to the original PDG document")),
		mcp.WithString("suspect",
			mcp.Description("Path to a single suspect PDG document")),
		mcp.WithString("batch_root",
			mcp.Description("Root directory to search for suspect documents instead of a single suspect")),
		mcp.WithArray("batch_patterns",
			mcp.Description("Glob pattern(s) under batch_root, e.g. **/*.pdg.yaml")),
		mcp.WithNumber("sigma",
			mcp.Description("Signature similarity contribution in [0.0, 1.0] (default 0.8)")),
		mcp.WithNumber("alpha",
			mcp.Description("Original cost contribution in [0.0, 1.0] (default 0.6)")),
		mcp.WithString("format",
			mcp.Description("Rendering for the response: text, json, or yaml (default: json)")),
	), h.HandleAlignPDGs)

	s.AddTool(mcp.NewTool("describe_alignment",
		mcp.WithDescription("Summarize a previously computed align_pdgs run by its run id"),
		mcp.WithString("run_id",
			mcp.Required(),
			mcp.Description("Run id returned by align_pdgs")),
		mcp.WithString("format",
			mcp.Description("Rendering for the response: text, json, or yaml (default: text)")),
	), h.HandleDescribeAlignment)
}
