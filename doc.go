// Package componenttree builds component trees of n-dimensional scalar
// grids (max-trees/min-trees) and extracts Maximally Stable Extremal
// Regions (MSER) from them.
//
// A component tree orders the connected components of all thresholdings
// of a grid by the threshold at which they merge. The builder sweeps the
// grid positions in value order (dark-to-bright or bright-to-dark),
// incrementally unioning adjacent positions into growing components, and
// hands every completed component to a tree-building handler. Two
// handlers are provided:
//
//   - [BuildMSERTree] scores each region's size stability across a value
//     lag Delta and keeps regions whose instability score is a local
//     minimum, subject to size and score bounds. Near-duplicate nodes
//     are pruned by a parent/child diversity threshold.
//   - [BuildFilteredTree] keeps every region inside a size window,
//     collapsing linear runs of nested regions to the single node with
//     the highest accepted threshold before a branch.
//
// Basic usage:
//
//	g, err := componenttree.NewGrid(values, width, height)
//	cfg := componenttree.DefaultConfig()
//	cfg.Delta = 2
//	tree, err := componenttree.BuildMSERTree(g, cfg)
//	// tree.Roots() are the forest roots; tree.Nodes() all accepted
//	// regions in build order.
//
// The sweep is sequential and deterministic: equal-valued positions are
// processed in grid order, and when components merge the survivor is the
// one reached through the first neighbor in fixed dimension order. Two
// builds over the same grid and configuration produce structurally
// identical trees.
package componenttree
