package main

import (
	"fmt"
	"os"

	"github.com/graalign/graalign/domain"
	"github.com/graalign/graalign/graalservice"
	"github.com/graalign/graalign/internal/graalconfig"
	"github.com/graalign/graalign/internal/reporter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AlignCommand represents the align command.
type AlignCommand struct {
	batchRoot     string
	batchPatterns []string
	sigma         float64
	alpha         float64
	maxAlignments int
	maxConcurrent int
	format        string
	configFile    string
}

// NewAlignCommand creates a new align command.
func NewAlignCommand() *AlignCommand {
	return &AlignCommand{}
}

// CreateCobraCommand builds the cobra command for running an alignment.
func (a *AlignCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align <original.pdg.yaml> [suspect.pdg.yaml]",
		Short: "Align two program dependence graphs, or one against a batch of suspects",
		Long: `Align compares an original PDG document against one suspect document,
or, with --batch-root, against every document a glob pattern matches under
a directory.

Examples:
  graalign align original.pdg.yaml suspect.pdg.yaml
  graalign align original.pdg.yaml --batch-root suspects/ --batch-pattern "**/*.pdg.yaml"
  graalign align original.pdg.yaml suspect.pdg.yaml --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.run,
	}

	cmd.Flags().StringVar(&a.batchRoot, "batch-root", "", "Root directory for batch alignment against many suspects")
	cmd.Flags().StringArrayVar(&a.batchPatterns, "batch-pattern", nil, "Glob pattern(s) under --batch-root (repeatable)")
	cmd.Flags().Float64Var(&a.sigma, "sigma", 0, "Signature similarity contribution in [0.0, 1.0] (default from config)")
	cmd.Flags().Float64Var(&a.alpha, "alpha", 0, "Original cost contribution in [0.0, 1.0] (default from config)")
	cmd.Flags().IntVar(&a.maxAlignments, "max-alignments-per-seed", 0, "Cap alignments retained per seed (default from config)")
	cmd.Flags().IntVar(&a.maxConcurrent, "max-concurrent-seeds", 0, "Bound concurrent seed expansions (default from config)")
	cmd.Flags().StringVar(&a.format, "format", "text", "Output format: text, json, yaml")
	cmd.Flags().StringVarP(&a.configFile, "config", "c", "", "Configuration file path (.graalign.toml)")
	return cmd
}

func (a *AlignCommand) run(cmd *cobra.Command, args []string) error {
	startDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	v := viper.New()
	bindAlignFlags(v, cmd)
	cfg, err := graalconfig.Load(v, startDir, a.configFile)
	if err != nil {
		return err
	}

	req := &domain.AlignRequest{
		SignatureSimilarityContribution: cfg.Cost.SignatureSimilarityContribution,
		OriginalCostContribution:        cfg.Cost.OriginalCostContribution,
		SignatureWeights:                cfg.Cost.SignatureWeights,
		MaxAlignmentsPerSeed:            cfg.Search.MaxAlignmentsPerSeed,
		MaxConcurrentSeeds:              cfg.Search.MaxConcurrentSeeds,
		Format:                          domain.OutputFormat(cfg.Output.Format),
	}

	if a.batchRoot != "" {
		req.OriginalPath = args[0]
		req.BatchRoot = a.batchRoot
		req.BatchPatterns = a.batchPatterns
	} else {
		if len(args) != 2 {
			return fmt.Errorf("align requires exactly two documents without --batch-root")
		}
		req.OriginalPath = args[0]
		req.SuspectPath = args[1]
	}

	svc := graalservice.NewAlignServiceWithProvider(cfg.Provider.GraphletMaxSize, cfg.Provider.PerVertexLimit)
	resp, err := svc.Align(cmd.Context(), req)
	if err != nil {
		return err
	}

	rep := reporter.NewAlignReporter()
	return rep.Write(resp, req.Format, cmd.OutOrStdout())
}

func bindAlignFlags(v *viper.Viper, cmd *cobra.Command) {
	if cmd.Flags().Changed("sigma") {
		f, _ := cmd.Flags().GetFloat64("sigma")
		v.Set("cost.signature_similarity_contribution", f)
	}
	if cmd.Flags().Changed("alpha") {
		f, _ := cmd.Flags().GetFloat64("alpha")
		v.Set("cost.original_cost_contribution", f)
	}
	if cmd.Flags().Changed("max-alignments-per-seed") {
		n, _ := cmd.Flags().GetInt("max-alignments-per-seed")
		v.Set("search.max_alignments_per_seed", n)
	}
	if cmd.Flags().Changed("max-concurrent-seeds") {
		n, _ := cmd.Flags().GetInt("max-concurrent-seeds")
		v.Set("search.max_concurrent_seeds", n)
	}
	if cmd.Flags().Changed("format") {
		f, _ := cmd.Flags().GetString("format")
		v.Set("output.format", f)
	}
}

// NewAlignCmd creates and returns the align cobra command.
func NewAlignCmd() *cobra.Command {
	return NewAlignCommand().CreateCobraCommand()
}
