package graalservice

import (
	"context"
	"fmt"
	"sort"

	"github.com/graalign/graalign/align"
	"github.com/graalign/graalign/cost"
	"github.com/graalign/graalign/domain"
	"github.com/graalign/graalign/pdg"
	"github.com/graalign/graalign/pdgio"
	"github.com/graalign/graalign/signature"
)

// DocumentLoader loads a PDG document from a path. LoadFile is the
// production implementation; tests substitute an in-memory loader.
type DocumentLoader func(path string) (*pdg.Graph, error)

// AlignService orchestrates loading PDG documents and running align.Engine
// on behalf of the CLI and MCP server.
type AlignService struct {
	sigProvider signature.Provider
	load        DocumentLoader
	progress    ProgressReporter
}

// NewAlignService builds an AlignService using the reference graphlet
// signature provider and pdgio.LoadFile for document loading.
func NewAlignService() *AlignService {
	return &AlignService{
		sigProvider: signature.NewCachingProvider(signature.NewGraphletProvider()),
		load:        pdgio.LoadFile,
		progress:    NewProgressReporter(),
	}
}

// NewAlignServiceWithProvider builds an AlignService whose graphlet provider
// uses the given max subgraph size and per-vertex enumeration limit, wrapped
// in a caching layer.
func NewAlignServiceWithProvider(graphletMaxSize, perVertexLimit int) *AlignService {
	return &AlignService{
		sigProvider: signature.NewCachingProvider(&signature.GraphletProvider{
			MaxSize:        graphletMaxSize,
			PerVertexLimit: perVertexLimit,
		}),
		load:     pdgio.LoadFile,
		progress: NewProgressReporter(),
	}
}

// WithDocumentLoader overrides how AlignService loads PDG documents from
// disk, primarily for testing.
func (s *AlignService) WithDocumentLoader(loader DocumentLoader) *AlignService {
	s.load = loader
	return s
}

// WithSignatureProvider overrides the structural signature provider.
func (s *AlignService) WithSignatureProvider(p signature.Provider) *AlignService {
	s.sigProvider = p
	return s
}

// WithProgressReporter overrides the progress reporter used during batch
// runs.
func (s *AlignService) WithProgressReporter(p ProgressReporter) *AlignService {
	s.progress = p
	return s
}

// Align validates req, loads the relevant PDG documents, and runs the
// alignment engine — once for a single-pair request, or once per matched
// file for a batch request.
func (s *AlignService) Align(ctx context.Context, req *domain.AlignRequest) (*domain.AlignResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.BatchRoot == "" {
		result, err := s.alignPair(ctx, req, req.OriginalPath, req.SuspectPath)
		if err != nil {
			return nil, err
		}
		return &domain.AlignResponse{Results: []domain.PairResult{*result}}, nil
	}

	suspects, err := pdgio.Discover(req.BatchRoot, req.BatchPatterns)
	if err != nil {
		return nil, domain.NewAlignmentError("discover batch files", err)
	}

	s.progress.Initialize(len(suspects))
	s.progress.Start()
	defer s.progress.Complete()

	results := make([]domain.PairResult, 0, len(suspects))
	for i, suspectPath := range suspects {
		result, err := s.alignPair(ctx, req, req.OriginalPath, suspectPath)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
		s.progress.Update(i+1, len(suspects))
	}
	return &domain.AlignResponse{Results: results}, nil
}

func (s *AlignService) alignPair(ctx context.Context, req *domain.AlignRequest, originalPath, suspectPath string) (*domain.PairResult, error) {
	original, err := s.load(originalPath)
	if err != nil {
		return nil, domain.NewFileNotFoundError(originalPath, err)
	}
	suspect, err := s.load(suspectPath)
	if err != nil {
		return nil, domain.NewFileNotFoundError(suspectPath, err)
	}

	opts := []align.Option{
		align.WithSignatureSimilarityContribution(req.SignatureSimilarityContribution),
		align.WithOriginalCostContribution(req.OriginalCostContribution),
	}
	if req.SignatureWeights != nil {
		opts = append(opts, align.WithSignatureWeights(req.SignatureWeights))
	}
	if req.MaxAlignmentsPerSeed > 0 {
		opts = append(opts, align.WithMaxAlignmentsPerSeed(req.MaxAlignmentsPerSeed))
	}
	if req.MaxConcurrentSeeds > 0 {
		opts = append(opts, align.WithMaxConcurrentSeeds(req.MaxConcurrentSeeds))
	}

	engine := align.NewEngine(s.sigProvider, opts...)
	result, err := engine.Execute(ctx, original, suspect)
	if err != nil {
		return nil, domain.NewAlignmentError(fmt.Sprintf("align %s against %s", suspectPath, originalPath), err)
	}

	return &domain.PairResult{
		OriginalPath:   originalPath,
		SuspectPath:    suspectPath,
		SeedCount:      len(result.Alignments),
		AlignmentCount: totalAlignments(result.Alignments),
		BestAlignment:  bestAlignment(result),
	}, nil
}

func totalAlignments(alignments map[cost.Pair][]align.Alignment) int {
	total := 0
	for _, as := range alignments {
		total += len(as)
	}
	return total
}

// bestAlignment picks the longest alignment (most matched vertex pairs)
// across every seed, breaking ties by the lowest total pdg-cost sum. An
// empty result means the graphs share no alignable seed.
func bestAlignment(result *align.Result) []domain.VertexPair {
	var best align.Alignment
	bestCost := 0.0
	haveBest := false

	seeds := make([]cost.Pair, 0, len(result.Alignments))
	for seed := range result.Alignments {
		seeds = append(seeds, seed)
	}
	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].U.Index() != seeds[j].U.Index() {
			return seeds[i].U.Index() < seeds[j].U.Index()
		}
		return seeds[i].V.Index() < seeds[j].V.Index()
	})

	for _, seed := range seeds {
		for _, a := range result.Alignments[seed] {
			c := alignmentCost(result, a)
			switch {
			case !haveBest:
				best, bestCost, haveBest = a, c, true
			case len(a) > len(best):
				best, bestCost = a, c
			case len(a) == len(best) && c < bestCost:
				best, bestCost = a, c
			}
		}
	}

	if !haveBest {
		return nil
	}
	out := make([]domain.VertexPair, len(best))
	for i, p := range best {
		out[i] = domain.VertexPair{
			OriginalID: p.U.ID(),
			SuspectID:  p.V.ID(),
			Cost:       result.PDGCost.At(p.U.Index(), p.V.Index()),
		}
	}
	return out
}

func alignmentCost(result *align.Result, a align.Alignment) float64 {
	total := 0.0
	for _, p := range a {
		total += result.PDGCost.At(p.U.Index(), p.V.Index())
	}
	return total
}
