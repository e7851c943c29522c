package componenttree

import (
	"math"
	"strings"
	"testing"
)

// Both node types satisfy the shared navigation contract.
var (
	_ Node = (*MSERNode)(nil)
	_ Node = (*FilteredNode)(nil)
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Delta != 2 {
		t.Errorf("Delta: expected 2, got %v", cfg.Delta)
	}
	if cfg.MinSize != 1 {
		t.Errorf("MinSize: expected 1, got %d", cfg.MinSize)
	}
	if cfg.MaxSize != 0 {
		t.Errorf("MaxSize: expected 0 (unbounded), got %d", cfg.MaxSize)
	}
	if cfg.MaxVar != 0.25 {
		t.Errorf("MaxVar: expected 0.25, got %v", cfg.MaxVar)
	}
	if cfg.MinDiversity != 0.2 {
		t.Errorf("MinDiversity: expected 0.2, got %v", cfg.MinDiversity)
	}
	if cfg.Direction != DarkToBright {
		t.Errorf("Direction: expected %q, got %q", DarkToBright, cfg.Direction)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Delta: 1}
	applyDefaults(&cfg)
	if cfg.MinSize != 1 || cfg.MaxVar != 0.25 || cfg.Direction != DarkToBright {
		t.Errorf("zero fields not defaulted: %+v", cfg)
	}
	if cfg.Delta != 1 {
		t.Errorf("set field overwritten: %+v", cfg)
	}

	// Explicit values are kept.
	cfg = Config{Delta: 3, MinSize: 7, MaxVar: 0.5, Direction: BrightToDark}
	applyDefaults(&cfg)
	if cfg.MinSize != 7 || cfg.MaxVar != 0.5 || cfg.Direction != BrightToDark {
		t.Errorf("explicit fields not kept: %+v", cfg)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{Delta: 2, MinSize: 1, MaxVar: 0.25, MinDiversity: 0.2, Direction: DarkToBright}
	}
	if err := validateConfig(&Config{Delta: 0, MinSize: 1, MaxVar: 0.25, Direction: DarkToBright}); err != nil {
		t.Errorf("Delta 0 should be valid, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative Delta", func(c *Config) { c.Delta = -1 }, "Delta"},
		{"NaN Delta", func(c *Config) { c.Delta = math.NaN() }, "Delta"},
		{"negative MinSize", func(c *Config) { c.MinSize = -3 }, "MinSize"},
		{"MaxSize below MinSize", func(c *Config) { c.MinSize = 10; c.MaxSize = 5 }, "MaxSize"},
		{"negative MaxVar", func(c *Config) { c.MaxVar = -0.1 }, "MaxVar"},
		{"NaN MaxVar", func(c *Config) { c.MaxVar = math.NaN() }, "MaxVar"},
		{"MinDiversity at 1", func(c *Config) { c.MinDiversity = 1 }, "MinDiversity"},
		{"negative MinDiversity", func(c *Config) { c.MinDiversity = -0.2 }, "MinDiversity"},
		{"unknown Direction", func(c *Config) { c.Direction = "up" }, "Direction"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := validateConfig(&cfg)
			if err == nil {
				t.Fatalf("expected error for %+v", cfg)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error mentioning %q, got %q", tc.want, err)
			}
		})
	}
}

func TestBuild_InvalidConfigRejected(t *testing.T) {
	g := mustGrid(t, []float64{0, 1, 2}, 3)
	bad := Config{Delta: -1}
	if _, err := BuildMSERTree(g, bad); err == nil {
		t.Error("BuildMSERTree accepted an invalid config")
	}
	if _, err := BuildFilteredTree(g, bad); err == nil {
		t.Error("BuildFilteredTree accepted an invalid config")
	}
}

func TestBuild_NilGridRejected(t *testing.T) {
	if _, err := BuildMSERTree(nil, DefaultConfig()); err == nil {
		t.Error("BuildMSERTree accepted a nil grid")
	}
	if _, err := BuildFilteredTree(nil, DefaultConfig()); err == nil {
		t.Error("BuildFilteredTree accepted a nil grid")
	}
}

func TestBuild_ZeroConfigUsesDefaults(t *testing.T) {
	g := mustGrid(t, []float64{0, 1, 2, 1, 0}, 5)
	tree, err := BuildFilteredTree(g, Config{})
	if err != nil {
		t.Fatalf("zero config should default to valid settings: %v", err)
	}
	if len(tree.Roots()) != 1 {
		t.Errorf("expected 1 root, got %d", len(tree.Roots()))
	}
}

func TestBuild_SinglePixel(t *testing.T) {
	g := mustGrid(t, []float64{7}, 1)

	ft, err := BuildFilteredTree(g, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ft.Roots()) != 1 {
		t.Fatalf("expected 1 root, got %d", len(ft.Roots()))
	}
	r := ft.Roots()[0]
	if r.Size() != 1 || r.MinValue() != 7 || r.MaxValue() != 7 {
		t.Errorf("unexpected root: size=%d minValue=%v maxValue=%v", r.Size(), r.MinValue(), r.MaxValue())
	}

	// A single pixel never yields a score, so no stable regions.
	mt, err := BuildMSERTree(g, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(mt.Nodes()) != 0 {
		t.Errorf("expected no stable regions, got %d", len(mt.Nodes()))
	}
}

func TestBuild_ZeroExtentGrid(t *testing.T) {
	g := mustGrid(t, nil, 0, 4)

	ft, err := BuildFilteredTree(g, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ft.Roots()) != 0 {
		t.Errorf("expected no roots, got %d", len(ft.Roots()))
	}
	mt, err := BuildMSERTree(g, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(mt.Roots()) != 0 {
		t.Errorf("expected no regions, got %d", len(mt.Roots()))
	}
}

func TestNodeInterfaceNavigation(t *testing.T) {
	cfg := Config{Delta: 2, MinSize: 1, MaxVar: 1, MinDiversity: 0.2, Direction: DarkToBright}
	tree := buildMSER(t, staircaseValues(), cfg, 26)

	var root Node = tree.Roots()[0]
	if root.ParentNode() != nil {
		t.Error("root must have a nil ParentNode")
	}
	children := root.ChildNodes()
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
	child := children[0]
	if child.ParentNode() != root {
		t.Error("ParentNode must lead back to the root")
	}
	if child.Value() != 3 || child.Size() != 4 {
		t.Errorf("unexpected child: value=%v size=%d", child.Value(), child.Size())
	}
	if child.Pixels().Size() != child.Size() {
		t.Error("Pixels size must match Size")
	}
}
