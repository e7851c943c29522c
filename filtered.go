package componenttree

// FilteredTree is the size-filtered component tree of a grid. It is
// both the result and the sweep handler that builds it: emitted
// components inside the size window become tree nodes, long linear runs
// of nested regions collapse to their topmost accepted node, and a new
// node is created only where the region started fresh or where two or
// more accepted branches join.
type FilteredTree struct {
	roots []*FilteredNode
	nodes []*FilteredNode

	minSize int
	maxSize int // 0 means unbounded
}

func newFilteredTree(cfg Config) *FilteredTree {
	return &FilteredTree{
		minSize: cfg.MinSize,
		maxSize: cfg.MaxSize,
	}
}

func (t *FilteredTree) wantStats() bool { return false }

// emit accepts or rejects a completed component. Rejected components
// drop their merged-in bookkeeping silently; their pixels stay with the
// still-growing region.
func (t *FilteredTree) emit(c *activeComponent) {
	size := c.pixels.Size()
	if size < t.minSize || (t.maxSize > 0 && size > t.maxSize) {
		c.children = nil
		return
	}

	// Count the accepted nodes feeding this region: the node this
	// component emitted last, plus the nodes of components merged in
	// since.
	emitted := 0
	if c.emitted != nil {
		emitted++
	}
	for _, ch := range c.children {
		if ch.emitted != nil {
			emitted++
		}
	}

	if emitted == 1 {
		// A linear run: replace the existing node's extent in place so
		// only the topmost accepted region of the run survives.
		node := c.emitted
		if node == nil {
			for _, ch := range c.children {
				if ch.emitted != nil {
					node = ch.emitted
					break
				}
			}
		}
		node.update(c)
		return
	}

	// Fresh region or branch point: create a new node adopting every
	// accepted branch.
	node := newFilteredNode(c)
	for _, ch := range node.children {
		t.removeRoot(ch)
	}
	t.roots = append(t.roots, node)
	t.nodes = append(t.nodes, node)
}

func (t *FilteredTree) removeRoot(n *FilteredNode) {
	for i, r := range t.roots {
		if r == n {
			t.roots = append(t.roots[:i], t.roots[i+1:]...)
			return
		}
	}
}

// Roots returns the roots of the forest, in creation order.
func (t *FilteredTree) Roots() []*FilteredNode { return t.roots }

// Nodes returns all accepted nodes in build order.
func (t *FilteredTree) Nodes() []*FilteredNode { return t.nodes }

// FilteredNode is a node of a [FilteredTree]: a run of nested regions
// between minValue/minSize (where the run entered the size window or
// branched) and maxValue/maxSize (the topmost accepted region of the
// run).
type FilteredNode struct {
	parent   *FilteredNode
	children []*FilteredNode

	minValue float64
	maxValue float64
	minSize  int
	pixels   PixelList
}

func newFilteredNode(c *activeComponent) *FilteredNode {
	n := &FilteredNode{
		minValue: c.value,
		maxValue: c.value,
		minSize:  c.pixels.Size(),
		pixels:   c.pixels,
	}
	if c.emitted != nil {
		n.children = append(n.children, c.emitted)
		c.emitted.parent = n
	}
	for _, ch := range c.children {
		if ch.emitted != nil {
			n.children = append(n.children, ch.emitted)
			ch.emitted.parent = n
		}
	}
	c.emitted = n
	c.children = nil
	return n
}

// update replaces the node's extent with the newly emitted state of the
// same run and re-binds the component to this node.
func (n *FilteredNode) update(c *activeComponent) {
	n.maxValue = c.value
	n.pixels = c.pixels
	c.emitted = n
	c.children = nil
}

// MinValue returns the threshold at which the node's run entered the
// tree.
func (n *FilteredNode) MinValue() float64 { return n.minValue }

// MaxValue returns the highest threshold of the node's run.
func (n *FilteredNode) MaxValue() float64 { return n.maxValue }

// MinSize returns the pixel count at MinValue.
func (n *FilteredNode) MinSize() int { return n.minSize }

// MaxSize returns the pixel count at MaxValue.
func (n *FilteredNode) MaxSize() int { return n.pixels.Size() }

// Value returns MaxValue.
func (n *FilteredNode) Value() float64 { return n.maxValue }

// Size returns MaxSize.
func (n *FilteredNode) Size() int { return n.pixels.Size() }

// Parent returns the parent node, or nil for a root.
func (n *FilteredNode) Parent() *FilteredNode { return n.parent }

// Children returns the node's children.
func (n *FilteredNode) Children() []*FilteredNode { return n.children }

// Pixels returns a replayable snapshot of the region's positions.
func (n *FilteredNode) Pixels() PixelList { return n.pixels }

// ParentNode implements [Node].
func (n *FilteredNode) ParentNode() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ChildNodes implements [Node].
func (n *FilteredNode) ChildNodes() []Node {
	children := make([]Node, len(n.children))
	for i, c := range n.children {
		children[i] = c
	}
	return children
}
