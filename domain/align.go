package domain

import "strconv"

// AlignRequest describes one alignment run between an original and a
// suspect PDG document, plus the cost-model parameters and output
// preferences that control it.
type AlignRequest struct {
	// OriginalPath and SuspectPath name the serialized PDG documents to
	// compare. In batch mode SuspectPath is ignored and the suspects come
	// from BatchRoot/BatchPatterns instead.
	OriginalPath string
	SuspectPath  string

	// BatchRoot, when non-empty, switches to batch mode: every file under
	// BatchRoot matching one of BatchPatterns is aligned against
	// OriginalPath in turn.
	BatchRoot     string
	BatchPatterns []string

	// SignatureSimilarityContribution is sigma, weighting signature distance
	// against vertex-type penalty in the pairwise cost.
	SignatureSimilarityContribution float64

	// OriginalCostContribution is alpha, weighting a pair's own cost against
	// its neighborhood's cost.
	OriginalCostContribution float64

	// SignatureWeights, if non-nil, overrides the per-index weighting used
	// in the signature distance formula.
	SignatureWeights []float64

	// MaxAlignmentsPerSeed and MaxConcurrentSeeds bound the aligner's search
	// space and parallelism. Zero means "use the engine default."
	MaxAlignmentsPerSeed int
	MaxConcurrentSeeds   int

	Format OutputFormat
}

// Validate checks AlignRequest for structurally invalid input before it
// reaches the alignment engine.
func (req *AlignRequest) Validate() error {
	if req.BatchRoot == "" {
		if req.OriginalPath == "" {
			return NewValidationError("original path is required")
		}
		if req.SuspectPath == "" {
			return NewValidationError("suspect path is required")
		}
	} else if len(req.BatchPatterns) == 0 {
		return NewValidationError("batch mode requires at least one glob pattern")
	}

	if req.SignatureSimilarityContribution < 0.0 || req.SignatureSimilarityContribution > 1.0 {
		return NewParameterOutOfRangeError("signature similarity contribution must be within [0.0, 1.0]")
	}
	if req.OriginalCostContribution < 0.0 || req.OriginalCostContribution > 1.0 {
		return NewParameterOutOfRangeError("original cost contribution must be within [0.0, 1.0]")
	}
	if req.MaxAlignmentsPerSeed < 0 {
		return NewParameterOutOfRangeError("max alignments per seed must not be negative")
	}
	if req.MaxConcurrentSeeds < 0 {
		return NewParameterOutOfRangeError("max concurrent seeds must not be negative")
	}
	for i, w := range req.SignatureWeights {
		if w < 0 {
			return NewParameterOutOfRangeError("signature weight at index " + strconv.Itoa(i) + " must not be negative")
		}
	}
	if req.Format != "" && !req.Format.IsValid() {
		return NewUnsupportedFormatError(req.Format)
	}
	return nil
}

// PairResult is one (original, suspect) alignment outcome, keyed by the
// document pair it came from — meaningful in batch mode, trivial in
// single-pair mode.
type PairResult struct {
	OriginalPath string `json:"originalPath" yaml:"originalPath"`
	SuspectPath  string `json:"suspectPath" yaml:"suspectPath"`

	SeedCount      int          `json:"seedCount" yaml:"seedCount"`
	AlignmentCount int          `json:"alignmentCount" yaml:"alignmentCount"`
	BestAlignment  []VertexPair `json:"bestAlignment,omitempty" yaml:"bestAlignment,omitempty"`
}

// VertexPair names one matched vertex pair by ID, for rendering without
// exposing pdg.Vertex pointers outside the engine.
type VertexPair struct {
	OriginalID string  `json:"originalId" yaml:"originalId"`
	SuspectID  string  `json:"suspectId" yaml:"suspectId"`
	Cost       float64 `json:"cost" yaml:"cost"`
}

// AlignResponse is the result of one AlignRequest, covering both the
// single-pair and batch-mode cases.
type AlignResponse struct {
	Results []PairResult `json:"results" yaml:"results"`
}
