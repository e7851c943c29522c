package componenttree

import "gonum.org/v1/gonum/floats"

// scoreTrend tracks how the instability score developed along the
// evaluation chain that leads to a node: a candidate is confirmed as a
// local minimum only when the score rises again after a non-ascending
// stretch.
type scoreTrend uint8

const (
	trendFlat scoreTrend = iota // no valid comparison yet
	trendDescending
	trendAscending
)

// evaluationNode captures the state of a region at one threshold of the
// sweep. Nodes of the same growing region are chained through prev;
// merges join chains, with prev following the largest merged part.
// Evaluation nodes are transient: they exist to score stability and to
// carry accepted descendants upward, and are dropped once the sweep
// moves past them.
type evaluationNode struct {
	value  float64
	size   int
	pixels PixelList

	mean []float64 // mean of the pixel coordinates
	cov  []float64 // packed upper-triangular covariance

	// history is the nearest chain ancestor at least Delta value units
	// back, or nil if the chain is not deep enough yet. score compares
	// this node's size against history's.
	history    *evaluationNode
	prev       *evaluationNode
	score      float64
	scoreValid bool
	trend      scoreTrend

	// pending holds accepted tree nodes waiting for an accepted
	// ancestor to adopt them. Every entry is currently a root of the
	// tree under construction.
	pending []*MSERNode
}

// newEvaluationNode evaluates an emitted component: it snapshots the
// region, resolves the Delta-lagged history ancestor, scores the
// region's stability, and confirms any predecessor whose score turns
// out to be a local minimum of its chain.
func newEvaluationNode(c *activeComponent, t *MSERTree) *evaluationNode {
	size := c.pixels.Size()
	dims := len(c.sumPos)
	node := &evaluationNode{
		value:  c.value,
		size:   size,
		pixels: c.pixels,
		mean:   make([]float64, dims),
		cov:    make([]float64, len(c.sumSq)),
	}
	floats.ScaleTo(node.mean, 1/float64(size), c.sumPos)
	k := 0
	for i := 0; i < dims; i++ {
		for j := i; j < dims; j++ {
			node.cov[k] = c.sumSq[k]/float64(size) - node.mean[i]*node.mean[j]
			k++
		}
	}

	// Direct predecessors: the component's own previous evaluation,
	// plus the last evaluations of everything merged in since.
	var preds []*evaluationNode
	if c.eval != nil {
		preds = append(preds, c.eval)
	}
	for _, ch := range c.children {
		if ch.eval != nil {
			preds = append(preds, ch.eval)
		}
	}

	// The chain identity follows the largest merged part.
	for _, p := range preds {
		if node.prev == nil || p.size > node.prev.size {
			node.prev = p
		}
	}

	// Resolve the history ancestor: the newest chain node at least
	// Delta value units back.
	for p := node.prev; p != nil; p = p.prev {
		if t.lagged(p.value, node.value) {
			node.history = p
			break
		}
	}
	if node.history != nil {
		node.score = float64(size-node.history.size) / float64(size)
		node.scoreValid = true
	}

	if node.scoreValid {
		// A predecessor whose score did not rise past its own
		// predecessor is the provisional minimum of its chain; the
		// first rise confirms it. Confirm before collecting pending
		// nodes below, so a freshly accepted candidate rides along.
		for _, p := range preds {
			if p.scoreValid && node.score > p.score && p.trend != trendAscending {
				t.foundNewMinimum(p)
			}
		}
		if node.prev != nil && node.prev.scoreValid {
			switch {
			case node.score > node.prev.score:
				node.trend = trendAscending
			case node.score < node.prev.score:
				node.trend = trendDescending
			default:
				node.trend = node.prev.trend
			}
		}
	}

	for _, p := range preds {
		node.pending = append(node.pending, p.pending...)
		p.pending = nil
	}

	c.eval = node
	return node
}
