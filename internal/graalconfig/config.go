package graalconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/graalign/graalign/internal/constants"
	"github.com/spf13/viper"
)

// Config is the top-level alignment configuration, loaded from
// .graalign.toml and CLI flags via viper, with mapstructure/toml/yaml
// struct tags so the same struct round-trips through any of the three.
type Config struct {
	Cost     CostConfig     `mapstructure:"cost" toml:"cost" yaml:"cost"`
	Search   SearchConfig   `mapstructure:"search" toml:"search" yaml:"search"`
	Provider ProviderConfig `mapstructure:"provider" toml:"provider" yaml:"provider"`
	Output   OutputConfig   `mapstructure:"output" toml:"output" yaml:"output"`
}

// CostConfig holds the pairwise/neighborhood cost weighting.
type CostConfig struct {
	SignatureSimilarityContribution float64   `mapstructure:"signature_similarity_contribution" toml:"signature_similarity_contribution" yaml:"signature_similarity_contribution"`
	OriginalCostContribution        float64   `mapstructure:"original_cost_contribution" toml:"original_cost_contribution" yaml:"original_cost_contribution"`
	SignatureWeights                []float64 `mapstructure:"signature_weights" toml:"signature_weights" yaml:"signature_weights"`
}

// SearchConfig holds the seed-and-expand aligner's search-space guards.
type SearchConfig struct {
	MaxAlignmentsPerSeed int `mapstructure:"max_alignments_per_seed" toml:"max_alignments_per_seed" yaml:"max_alignments_per_seed"`
	MaxConcurrentSeeds   int `mapstructure:"max_concurrent_seeds" toml:"max_concurrent_seeds" yaml:"max_concurrent_seeds"`
}

// ProviderConfig selects and tunes the structural signature provider.
type ProviderConfig struct {
	GraphletMaxSize int  `mapstructure:"graphlet_max_size" toml:"graphlet_max_size" yaml:"graphlet_max_size"`
	PerVertexLimit  int  `mapstructure:"per_vertex_limit" toml:"per_vertex_limit" yaml:"per_vertex_limit"`
	DisableCache    bool `mapstructure:"disable_cache" toml:"disable_cache" yaml:"disable_cache"`
}

// OutputConfig holds default output preferences.
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format" yaml:"format"`
}

// DefaultConfig returns the package defaults, sourced from internal/constants.
func DefaultConfig() *Config {
	return &Config{
		Cost: CostConfig{
			SignatureSimilarityContribution: constants.DefaultSignatureSimilarityContribution,
			OriginalCostContribution:        constants.DefaultOriginalCostContribution,
		},
		Search: SearchConfig{
			MaxAlignmentsPerSeed: constants.DefaultMaxAlignmentsPerSeed,
			MaxConcurrentSeeds:   constants.DefaultMaxConcurrentSeeds,
		},
		Provider: ProviderConfig{
			GraphletMaxSize: constants.DefaultGraphletMaxSize,
			PerVertexLimit:  500,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load resolves configuration in priority order: CLI flags bound to v,
// a .graalign.toml file (found by walking up from startDir if configPath
// is empty), then defaults. v may be nil, in which case only the file and
// defaults apply.
func Load(v *viper.Viper, startDir, configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		configPath = findGraalignToml(startDir)
	}

	if configPath != "" {
		fileViper := viper.New()
		fileViper.SetConfigFile(configPath)
		fileViper.SetConfigType("toml")
		if err := fileViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("graalconfig: read %s: %w", configPath, err)
		}
		if err := fileViper.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("graalconfig: parse %s: %w", configPath, err)
		}
	}

	if v != nil {
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("graalconfig: bind flags: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("graalconfig: invalid configuration: %w", err)
	}
	return cfg, nil
}

// findGraalignToml walks up from startDir looking for .graalign.toml.
func findGraalignToml(startDir string) string {
	dir := startDir
	for {
		candidate := filepath.Join(dir, ".graalign.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate checks that every configured value is within its documented
// range before it reaches align.Engine.
func (c *Config) Validate() error {
	if c.Cost.SignatureSimilarityContribution < 0.0 || c.Cost.SignatureSimilarityContribution > 1.0 {
		return fmt.Errorf("cost.signature_similarity_contribution must be within [0.0, 1.0], got %f", c.Cost.SignatureSimilarityContribution)
	}
	if c.Cost.OriginalCostContribution < 0.0 || c.Cost.OriginalCostContribution > 1.0 {
		return fmt.Errorf("cost.original_cost_contribution must be within [0.0, 1.0], got %f", c.Cost.OriginalCostContribution)
	}
	for i, w := range c.Cost.SignatureWeights {
		if w < 0 {
			return fmt.Errorf("cost.signature_weights[%d] must not be negative, got %f", i, w)
		}
	}
	if c.Search.MaxAlignmentsPerSeed < 1 {
		return fmt.Errorf("search.max_alignments_per_seed must be >= 1, got %d", c.Search.MaxAlignmentsPerSeed)
	}
	if c.Search.MaxConcurrentSeeds < 1 {
		return fmt.Errorf("search.max_concurrent_seeds must be >= 1, got %d", c.Search.MaxConcurrentSeeds)
	}
	if c.Provider.GraphletMaxSize < 2 {
		return fmt.Errorf("provider.graphlet_max_size must be >= 2, got %d", c.Provider.GraphletMaxSize)
	}
	if c.Provider.PerVertexLimit < 1 {
		return fmt.Errorf("provider.per_vertex_limit must be >= 1, got %d", c.Provider.PerVertexLimit)
	}
	validFormats := map[string]bool{"text": true, "json": true, "yaml": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format %q, must be one of: text, json, yaml", c.Output.Format)
	}
	return nil
}
