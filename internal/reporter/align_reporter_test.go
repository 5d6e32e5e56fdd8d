package reporter_test

import (
	"bytes"
	"testing"

	"github.com/graalign/graalign/domain"
	"github.com/graalign/graalign/internal/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse() *domain.AlignResponse {
	return &domain.AlignResponse{
		Results: []domain.PairResult{
			{
				OriginalPath:   "a.pdg.yaml",
				SuspectPath:    "b.pdg.yaml",
				SeedCount:      1,
				AlignmentCount: 2,
				BestAlignment: []domain.VertexPair{
					{OriginalID: "a1", SuspectID: "b1", Cost: 0},
					{OriginalID: "a2", SuspectID: "b2", Cost: 0.5},
				},
			},
		},
	}
}

func TestAlignReporter_Write_Text(t *testing.T) {
	var buf bytes.Buffer
	err := reporter.NewAlignReporter().Write(sampleResponse(), domain.OutputFormatText, &buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "a.pdg.yaml")
	assert.Contains(t, out, "a1 <-> b1")
}

func TestAlignReporter_Write_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := reporter.NewAlignReporter().Write(sampleResponse(), domain.OutputFormatJSON, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"originalPath"`)
}

func TestAlignReporter_Write_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := reporter.NewAlignReporter().Write(sampleResponse(), domain.OutputFormatYAML, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "originalPath")
}

func TestAlignReporter_Write_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := reporter.NewAlignReporter().Write(sampleResponse(), domain.OutputFormat("xml"), &buf)
	assert.Error(t, err)
}

func TestAlignReporter_Write_EmptyBestAlignment(t *testing.T) {
	resp := &domain.AlignResponse{Results: []domain.PairResult{{OriginalPath: "a", SuspectPath: "b"}}}
	var buf bytes.Buffer
	err := reporter.NewAlignReporter().Write(resp, domain.OutputFormatText, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "none")
}
