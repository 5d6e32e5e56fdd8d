package graalmcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/graalign/graalign/domain"
	"github.com/graalign/graalign/internal/constants"
	"github.com/graalign/graalign/internal/reporter"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
	rep  *reporter.AlignReporter
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil)
	}
	return &HandlerSet{deps: deps, rep: reporter.NewAlignReporter()}
}

// HandleAlignPDGs handles the align_pdgs tool: it runs Engine.Execute (via
// graalservice.AlignService) on the requested pair or batch, stores the
// response under a run id, and renders it in the requested format.
func (h *HandlerSet) HandleAlignPDGs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	original, ok := args["original"].(string)
	if !ok || original == "" {
		return mcp.NewToolResultError("original parameter is required and must be a string"), nil
	}

	req := &domain.AlignRequest{
		OriginalPath:                    original,
		SignatureSimilarityContribution: constants.DefaultSignatureSimilarityContribution,
		OriginalCostContribution:        constants.DefaultOriginalCostContribution,
	}

	if batchRoot, ok := args["batch_root"].(string); ok && batchRoot != "" {
		req.BatchRoot = batchRoot
		if rawPatterns, ok := args["batch_patterns"].([]interface{}); ok {
			for _, p := range rawPatterns {
				if str, ok := p.(string); ok {
					req.BatchPatterns = append(req.BatchPatterns, str)
				}
			}
		}
	} else if suspect, ok := args["suspect"].(string); ok && suspect != "" {
		req.SuspectPath = suspect
	} else {
		return mcp.NewToolResultError("either suspect or batch_root must be provided"), nil
	}

	if sigma, ok := args["sigma"].(float64); ok {
		req.SignatureSimilarityContribution = sigma
	}
	if alpha, ok := args["alpha"].(float64); ok {
		req.OriginalCostContribution = alpha
	}

	format := domain.OutputFormatJSON
	if f, ok := args["format"].(string); ok && f != "" {
		format = domain.OutputFormat(strings.ToLower(f))
	}

	resp, err := h.deps.svc.Align(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alignment failed: %v", err)), nil
	}

	runID := h.deps.runs.put(resp)

	var out strings.Builder
	fmt.Fprintf(&out, "run_id: %s\n", runID)
	if err := h.rep.Write(resp, format, &out); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render result: %v", err)), nil
	}

	return mcp.NewToolResultText(out.String()), nil
}

// HandleDescribeAlignment handles the describe_alignment tool: it looks up a
// run recorded by align_pdgs and renders it again, optionally in a different
// format than the original call requested.
func (h *HandlerSet) HandleDescribeAlignment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	runID, ok := args["run_id"].(string)
	if !ok || runID == "" {
		return mcp.NewToolResultError("run_id parameter is required and must be a string"), nil
	}

	resp, ok := h.deps.runs.get(runID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no run found with id %q", runID)), nil
	}

	format := domain.OutputFormatText
	if f, ok := args["format"].(string); ok && f != "" {
		format = domain.OutputFormat(strings.ToLower(f))
	}

	var out strings.Builder
	if err := h.rep.Write(resp, format, &out); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render result: %v", err)), nil
	}
	return mcp.NewToolResultText(out.String()), nil
}
