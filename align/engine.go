package align

import (
	"context"
	"sync"

	"github.com/graalign/graalign/cost"
	"github.com/graalign/graalign/internal/constants"
	"github.com/graalign/graalign/pdg"
	"github.com/graalign/graalign/signature"
	"github.com/graalign/graalign/sphere"
)

// Result is the immutable record of an Engine.Execute run: the dense
// pair-cost and pdg-cost matrices (row/col order following the vertex
// slices returned by each graph's Vertices()) plus every alignment found,
// keyed by its seed.
type Result struct {
	PairCost         *cost.Matrix
	PDGCost          *cost.Matrix
	OriginalVertices []*pdg.Vertex
	SuspectVertices  []*pdg.Vertex
	Alignments       map[cost.Pair][]Alignment
}

// Engine holds the tunable parameters of one alignment run. Build one
// with NewEngine and Option values; the zero Engine is not usable.
type Engine struct {
	sigProvider          signature.Provider
	weights              []float64
	sigma                float64
	alpha                float64
	maxAlignmentsPerSeed int
	maxConcurrentSeeds   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSignatureSimilarityContribution overrides sigma (default 0.8).
func WithSignatureSimilarityContribution(sigma float64) Option {
	return func(e *Engine) { e.sigma = sigma }
}

// WithOriginalCostContribution overrides alpha (default 0.6).
func WithOriginalCostContribution(alpha float64) Option {
	return func(e *Engine) { e.alpha = alpha }
}

// WithSignatureWeights sets per-orbit weights forwarded to signature
// distance computations. Its length must match the provider's vector
// length; validated at Execute time.
func WithSignatureWeights(weights []float64) Option {
	return func(e *Engine) { e.weights = weights }
}

// WithMaxAlignmentsPerSeed caps the number of alignments retained per
// seed, guarding against combinatorial blow-up from heavily tied buckets
// (a policy decision, not a correctness requirement).
func WithMaxAlignmentsPerSeed(n int) Option {
	return func(e *Engine) { e.maxAlignmentsPerSeed = n }
}

// WithMaxConcurrentSeeds bounds how many seeds are expanded concurrently.
func WithMaxConcurrentSeeds(n int) Option {
	return func(e *Engine) { e.maxConcurrentSeeds = n }
}

// NewEngine builds an Engine with the package defaults, then applies opts.
func NewEngine(sigProvider signature.Provider, opts ...Option) *Engine {
	e := &Engine{
		sigProvider:          sigProvider,
		sigma:                constants.DefaultSignatureSimilarityContribution,
		alpha:                constants.DefaultOriginalCostContribution,
		maxAlignmentsPerSeed: constants.DefaultMaxAlignmentsPerSeed,
		maxConcurrentSeeds:   constants.DefaultMaxConcurrentSeeds,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs the full pipeline — signature computation, pair cost, pdg
// cost, seed finding, and per-seed sphere expansion — for one (original,
// suspect) graph pair. The per-seed expansions run concurrently, bounded
// by maxConcurrentSeeds, but are collected into fixed slots so the final
// Alignments map never depends on goroutine completion order.
func (e *Engine) Execute(ctx context.Context, original, suspect *pdg.Graph) (*Result, error) {
	v1s := original.Vertices()
	v2s := suspect.Vertices()
	if len(v1s) == 0 {
		return nil, emptyGraphError("original")
	}
	if len(v2s) == 0 {
		return nil, emptyGraphError("suspect")
	}
	if e.sigma < 0 || e.sigma > 1 {
		return nil, parameterRangeError("signature similarity contribution", e.sigma)
	}
	if e.alpha < 0 || e.alpha > 1 {
		return nil, parameterRangeError("original cost contribution", e.alpha)
	}

	origView := original.UndirectedWithoutLoops()
	suspView := suspect.UndirectedWithoutLoops()

	sigs1, err := e.sigProvider.Signatures(origView)
	if err != nil {
		return nil, err
	}
	if err := signature.ValidateVectors(v1s, sigs1); err != nil {
		return nil, err
	}
	sigs2, err := e.sigProvider.Signatures(suspView)
	if err != nil {
		return nil, err
	}
	if err := signature.ValidateVectors(v2s, sigs2); err != nil {
		return nil, err
	}

	pairCostM, err := cost.PairCost(v1s, v2s, sigs1, sigs2, e.weights, e.sigma)
	if err != nil {
		return nil, err
	}
	pdgCostM := cost.PDGCost(v1s, v2s, origView, suspView, pairCostM, e.alpha)
	filtered := cost.Filter(pdgCostM, v1s, v2s, e.alpha)
	seeds := FindSeeds(filtered)

	perSeed := make([][]Alignment, len(seeds))
	if len(seeds) > 0 {
		sem := make(chan struct{}, e.maxConcurrentSeeds)
		var wg sync.WaitGroup
		for i, seed := range seeds {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, seed cost.Pair) {
				defer wg.Done()
				defer func() { <-sem }()
				perSeed[i] = expandSeed(ctx, seed, origView, suspView, filtered, e.maxAlignmentsPerSeed)
			}(i, seed)
		}
		wg.Wait()
	}

	alignments := make(map[cost.Pair][]Alignment, len(seeds))
	for i, seed := range seeds {
		alignments[seed] = perSeed[i]
	}

	return &Result{
		PairCost:         pairCostM,
		PDGCost:          pdgCostM,
		OriginalVertices: v1s,
		SuspectVertices:  v2s,
		Alignments:       alignments,
	}, nil
}

// expandSeed runs the concentric-sphere expansion loop for a single seed:
// grow matching spheres on both graphs one radius at a time, extend every
// in-progress alignment through the resulting buckets, and stop the first
// time either sphere is empty.
func expandSeed(ctx context.Context, seed cost.Pair, origView, suspView pdg.UndirectedView, filtered cost.FilteredMap, maxAlignments int) []Alignment {
	alignments := []Alignment{{seed}}
	for radius := 1; ; radius++ {
		if ctx.Err() != nil {
			return alignments
		}

		ur := sphere.Sphere(seed.U, origView, radius)
		vr := sphere.Sphere(seed.V, suspView, radius)
		if len(ur) == 0 || len(vr) == 0 {
			return alignments
		}

		buckets := mapSpheresAndSortByCost(ur, vr, filtered)
		alignments = alignSpheres(buckets, alignments, maxAlignments)
		if len(alignments) == 0 {
			return alignments
		}
	}
}
