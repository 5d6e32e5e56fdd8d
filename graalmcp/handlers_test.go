package graalmcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graalign/graalign/graalservice"
)

const fixtureDoc = "vertices:\n  - id: a\n    type: DECL\n  - id: b\n    type: CTRL\nedges:\n  - from: a\n    to: b\n"

func writeFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(fixtureDoc), 0o644))
	return path
}

func toolRequest(args map[string]interface{}) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{Params: mcplib.CallToolParams{Arguments: args}}
}

func TestHandleAlignPDGs_SinglePair(t *testing.T) {
	dir := t.TempDir()
	original := writeFixture(t, dir, "original.pdg.yaml")
	suspect := writeFixture(t, dir, "suspect.pdg.yaml")

	h := NewHandlerSet(NewDependencies(graalservice.NewAlignService()))
	res, err := h.HandleAlignPDGs(context.Background(), toolRequest(map[string]interface{}{
		"original": original,
		"suspect":  suspect,
		"format":   "text",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.NotEmpty(t, res.Content)

	text := mcplib.GetTextFromContent(res.Content[0])
	assert.Contains(t, text, "run_id: run-1")
	assert.Contains(t, text, "Best alignment")
}

func TestHandleAlignPDGs_MissingOriginalIsError(t *testing.T) {
	h := NewHandlerSet(nil)
	res, err := h.HandleAlignPDGs(context.Background(), toolRequest(map[string]interface{}{
		"suspect": "suspect.pdg.yaml",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleAlignPDGs_MissingSuspectAndBatchRootIsError(t *testing.T) {
	h := NewHandlerSet(nil)
	res, err := h.HandleAlignPDGs(context.Background(), toolRequest(map[string]interface{}{
		"original": "original.pdg.yaml",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleDescribeAlignment_RoundTripsAPriorRun(t *testing.T) {
	dir := t.TempDir()
	original := writeFixture(t, dir, "original.pdg.yaml")
	suspect := writeFixture(t, dir, "suspect.pdg.yaml")

	h := NewHandlerSet(NewDependencies(graalservice.NewAlignService()))
	alignRes, err := h.HandleAlignPDGs(context.Background(), toolRequest(map[string]interface{}{
		"original": original,
		"suspect":  suspect,
		"format":   "json",
	}))
	require.NoError(t, err)
	require.False(t, alignRes.IsError)

	describeRes, err := h.HandleDescribeAlignment(context.Background(), toolRequest(map[string]interface{}{
		"run_id": "run-1",
		"format": "text",
	}))
	require.NoError(t, err)
	require.False(t, describeRes.IsError)
	text := mcplib.GetTextFromContent(describeRes.Content[0])
	assert.Contains(t, text, "Best alignment")
}

func TestHandleDescribeAlignment_UnknownRunIDIsError(t *testing.T) {
	h := NewHandlerSet(nil)
	res, err := h.HandleDescribeAlignment(context.Background(), toolRequest(map[string]interface{}{
		"run_id": "run-does-not-exist",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
