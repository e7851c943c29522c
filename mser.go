package componenttree

// pruneAfterNMinima bounds node growth during very long sweeps: the
// duplicate prune runs every time this many candidates were accepted,
// in addition to the final prune.
const pruneAfterNMinima = 1000

// MSERTree is the tree of Maximally Stable Extremal Regions of a grid.
// It is both the result and the sweep handler that builds it: every
// emitted component becomes an evaluation node, locally score-minimal
// evaluation nodes inside the configured bounds become tree nodes, and
// nodes too similar to their parent are pruned.
type MSERTree struct {
	roots []*MSERNode
	nodes []*MSERNode

	delta        float64
	minSize      int
	maxSize      int // 0 means unbounded
	maxVar       float64
	minDiversity float64
	brightToDark bool

	minimaSinceLastPrune int
}

func newMSERTree(cfg Config) *MSERTree {
	return &MSERTree{
		delta:        cfg.Delta,
		minSize:      cfg.MinSize,
		maxSize:      cfg.MaxSize,
		maxVar:       cfg.MaxVar,
		minDiversity: cfg.MinDiversity,
		brightToDark: cfg.Direction == BrightToDark,
	}
}

func (t *MSERTree) wantStats() bool { return true }

func (t *MSERTree) emit(c *activeComponent) {
	newEvaluationNode(c, t)
	c.children = nil
}

// lagged reports whether an ancestor at ancestorValue is at least Delta
// value units behind a node at value, in sweep direction.
func (t *MSERTree) lagged(ancestorValue, value float64) bool {
	if t.brightToDark {
		return ancestorValue >= value+t.delta
	}
	return ancestorValue <= value-t.delta
}

// foundNewMinimum is called when an evaluation node is confirmed as a
// local minimum of its chain's instability score. If the region's size
// and score are inside the configured bounds it becomes a tree node,
// adopting the accepted descendants that rode along the chain.
func (t *MSERTree) foundNewMinimum(e *evaluationNode) {
	if e.size < t.minSize || (t.maxSize > 0 && e.size > t.maxSize) || e.score > t.maxVar {
		return
	}

	n := &MSERNode{
		value:  e.value,
		size:   e.size,
		score:  e.score,
		mean:   e.mean,
		cov:    e.cov,
		pixels: e.pixels,
	}
	n.children = append(n.children, e.pending...)
	for _, c := range n.children {
		c.parent = n
		t.removeRoot(c)
	}
	e.pending = append(e.pending[:0], n)

	t.roots = append(t.roots, n)
	t.nodes = append(t.nodes, n)

	t.minimaSinceLastPrune++
	if t.minimaSinceLastPrune == pruneAfterNMinima {
		t.minimaSinceLastPrune = 0
		t.pruneDuplicates()
	}
}

func (t *MSERTree) removeRoot(n *MSERNode) {
	for i, r := range t.roots {
		if r == n {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			return
		}
	}
}

// pruneDuplicates removes nodes that are too similar to their parent:
// a child is deleted when (size(parent)-size(child))/size(parent) is at
// most MinDiversity, and its own children are spliced under the parent.
// Pruning is idempotent; every surviving edge exceeds MinDiversity.
//
// Only non-roots are ever deleted. Evaluation chains still in flight
// reference tree nodes exclusively through their pending lists, and
// pending nodes are always roots, so a mid-build prune cannot invalidate
// them. Pruned nodes stay readable; they are only unlinked.
func (t *MSERTree) pruneDuplicates() {
	for _, r := range t.roots {
		t.pruneChildren(r)
	}
	kept := t.nodes[:0]
	for _, n := range t.nodes {
		if !n.pruned {
			kept = append(kept, n)
		}
	}
	t.nodes = kept
}

func (t *MSERTree) pruneChildren(n *MSERNode) {
	var kept []*MSERNode
	// Deleting a child appends its children to the worklist, so spliced
	// grandchildren are re-checked against n in the same pass.
	work := n.children
	for i := 0; i < len(work); i++ {
		c := work[i]
		div := float64(n.size-c.size) / float64(n.size)
		if div > t.minDiversity {
			kept = append(kept, c)
			continue
		}
		for _, gc := range c.children {
			gc.parent = n
		}
		work = append(work, c.children...)
		c.pruned = true
	}
	n.children = kept
	for _, c := range kept {
		t.pruneChildren(c)
	}
}

// Roots returns the roots of the forest, in acceptance order.
func (t *MSERTree) Roots() []*MSERNode { return t.roots }

// Nodes returns all surviving nodes in acceptance order.
func (t *MSERTree) Nodes() []*MSERNode { return t.nodes }

// MSERNode is an accepted maximally stable extremal region: the grid
// thresholded at Value, restricted to one connected component, at the
// sweep step where its instability score was locally minimal.
type MSERNode struct {
	parent   *MSERNode
	children []*MSERNode

	value  float64
	size   int
	score  float64
	mean   []float64
	cov    []float64
	pixels PixelList

	pruned bool
}

// Value returns the threshold that created the region.
func (n *MSERNode) Value() float64 { return n.value }

// Size returns the number of pixels in the region.
func (n *MSERNode) Size() int { return n.size }

// Score returns the instability score |R_i - R_(i-Delta)| / |R_i|.
func (n *MSERNode) Score() float64 { return n.score }

// Mean returns the mean of the pixel coordinates, one entry per grid
// dimension.
func (n *MSERNode) Mean() []float64 { return n.mean }

// Cov returns the covariance of the pixel coordinates as the packed
// upper triangle (xx, xy, xz, ..., yy, yz, ..., zz, ...).
func (n *MSERNode) Cov() []float64 { return n.cov }

// Parent returns the parent node, or nil for a root.
func (n *MSERNode) Parent() *MSERNode { return n.parent }

// Children returns the node's children.
func (n *MSERNode) Children() []*MSERNode { return n.children }

// Pixels returns a replayable snapshot of the region's positions.
func (n *MSERNode) Pixels() PixelList { return n.pixels }

// ParentNode implements [Node].
func (n *MSERNode) ParentNode() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ChildNodes implements [Node].
func (n *MSERNode) ChildNodes() []Node {
	children := make([]Node, len(n.children))
	for i, c := range n.children {
		children[i] = c
	}
	return children
}
