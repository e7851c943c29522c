package componenttree

import (
	"fmt"
	"math"
)

// Sweep directions. Dark-to-bright raises the threshold through
// ascending values (components are regions of low value, a max-tree of
// the inverted field); bright-to-dark descends.
const (
	DarkToBright = "dark_to_bright"
	BrightToDark = "bright_to_dark"
)

// Config controls component-tree construction and MSER extraction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Delta is the value lag used to compute the MSER instability
	// score: a region is compared against its state Delta value units
	// earlier in the sweep. Must be >= 0. Ignored by the filtered
	// variant. Default: 2.
	Delta float64

	// MinSize is the smallest pixel count of an accepted region.
	// Must be >= 1. Default: 1.
	MinSize int

	// MaxSize is the largest pixel count of an accepted region.
	// 0 means unbounded. Default: 0.
	MaxSize int

	// MaxVar is the largest accepted instability score. Regions whose
	// score exceeds it are discarded. Must be > 0 (0 means default).
	// Ignored by the filtered variant. Default: 0.25.
	MaxVar float64

	// MinDiversity prunes accepted regions that are too similar to
	// their parent: a child is removed when
	// (size(parent)-size(child))/size(parent) <= MinDiversity.
	// Must be in [0, 1). 0 removes only exact-duplicate sizes.
	// Ignored by the filtered variant. Default: 0.2.
	MinDiversity float64

	// Direction selects the sweep order, DarkToBright or BrightToDark.
	// Default: DarkToBright.
	Direction string
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Delta:        2,
		MinSize:      1,
		MaxVar:       0.25,
		MinDiversity: 0.2,
		Direction:    DarkToBright,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MinSize == 0 {
		cfg.MinSize = 1
	}
	if cfg.MaxVar == 0 {
		cfg.MaxVar = 0.25
	}
	if cfg.Direction == "" {
		cfg.Direction = DarkToBright
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Delta < 0 || math.IsNaN(cfg.Delta) {
		return fmt.Errorf("componenttree: Delta must be >= 0, got %f", cfg.Delta)
	}
	if cfg.MinSize < 1 {
		return fmt.Errorf("componenttree: MinSize must be >= 1, got %d", cfg.MinSize)
	}
	if cfg.MaxSize != 0 && cfg.MaxSize < cfg.MinSize {
		return fmt.Errorf("componenttree: MaxSize must be 0 (unbounded) or >= MinSize, got MinSize=%d MaxSize=%d", cfg.MinSize, cfg.MaxSize)
	}
	if cfg.MaxVar <= 0 || math.IsNaN(cfg.MaxVar) {
		return fmt.Errorf("componenttree: MaxVar must be > 0, got %f", cfg.MaxVar)
	}
	if cfg.MinDiversity < 0 || cfg.MinDiversity >= 1 || math.IsNaN(cfg.MinDiversity) {
		return fmt.Errorf("componenttree: MinDiversity must be in [0, 1), got %f", cfg.MinDiversity)
	}
	if cfg.Direction != DarkToBright && cfg.Direction != BrightToDark {
		return fmt.Errorf("componenttree: Direction must be %q or %q, got %q", DarkToBright, BrightToDark, cfg.Direction)
	}
	return nil
}

// Node is the navigation contract shared by the two tree variants.
// Concrete node types additionally expose variant-specific accessors
// and concretely typed parent/child links.
type Node interface {
	// Value returns the threshold at which the region was accepted.
	Value() float64

	// Size returns the number of pixels in the region.
	Size() int

	// ParentNode returns the parent, or nil for a root.
	ParentNode() Node

	// ChildNodes returns the children of this node.
	ChildNodes() []Node

	// Pixels returns a replayable snapshot of the region's member
	// positions.
	Pixels() PixelList
}

// BuildMSERTree sweeps the grid and extracts Maximally Stable Extremal
// Regions. Returns an error if the config is invalid.
func BuildMSERTree(g *Grid, cfg Config) (*MSERTree, error) {
	if g == nil {
		return nil, fmt.Errorf("componenttree: nil grid")
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	tree := newMSERTree(cfg)
	buildComponentTree(g, tree, cfg.Direction == BrightToDark)
	tree.pruneDuplicates()
	return tree, nil
}

// BuildFilteredTree sweeps the grid and builds the size-filtered
// component tree: one node per branch, namely the region with the
// highest accepted threshold right before the branch joins another.
// Returns an error if the config is invalid.
func BuildFilteredTree(g *Grid, cfg Config) (*FilteredTree, error) {
	if g == nil {
		return nil, fmt.Errorf("componenttree: nil grid")
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	tree := newFilteredTree(cfg)
	buildComponentTree(g, tree, cfg.Direction == BrightToDark)
	return tree, nil
}
