package componenttree

import "gonum.org/v1/gonum/floats"

// activeComponent is an open region of the sweep: the positions
// collected so far, the threshold value the region was last extended
// at, and the components merged into it since it was last emitted.
//
// When the handler wants position statistics, the component also
// accumulates per-dimension coordinate sums and upper-triangular
// cross-product sums, so mean and covariance of an emitted region cost
// O(dims²) instead of a pass over the pixel list.
type activeComponent struct {
	value  float64
	pixels PixelList

	// components merged into this one since the last emit. The handler
	// owns this bookkeeping and clears it on emit.
	children []*activeComponent

	sumPos []float64 // per-dimension coordinate sums, nil without stats
	sumSq  []float64 // packed upper-triangular cross-product sums

	eval    *evaluationNode // last evaluation node (MSER handler)
	emitted *FilteredNode   // last emitted tree node (filtered handler)
}

// handler receives completed components from the sweep driver.
type handler interface {
	// emit is called each time raising the threshold closes the
	// component at its current value, and once more per surviving
	// component at the end of the sweep. The handler must clear
	// c.children.
	emit(c *activeComponent)

	// wantStats reports whether components should accumulate position
	// statistics.
	wantStats() bool
}

func newActiveComponent(value float64, arena *pixelArena, dims int, stats bool) *activeComponent {
	c := &activeComponent{
		value:  value,
		pixels: newPixelList(arena),
	}
	if stats {
		c.sumPos = make([]float64, dims)
		c.sumSq = make([]float64, dims*(dims+1)/2)
	}
	return c
}

// addPosition appends the position with the given linear index and
// coordinates to the component.
func (c *activeComponent) addPosition(idx int, coords []int) {
	c.pixels.append(idx)
	if c.sumPos == nil {
		return
	}
	k := 0
	for i, xi := range coords {
		c.sumPos[i] += float64(xi)
		for _, xj := range coords[i:] {
			c.sumSq[k] += float64(xi) * float64(xj)
			k++
		}
	}
}

// merge transfers o's positions, statistics and evaluation bookkeeping
// into this component. o's pixel list is dead afterwards.
//
// o may itself hold components merged into it since its last emit; they
// are hoisted into this component's children so that every history
// chain feeding the merged region stays one level deep for the handler.
func (c *activeComponent) merge(o *activeComponent) {
	c.pixels.merge(&o.pixels)
	c.children = append(c.children, o)
	c.children = append(c.children, o.children...)
	o.children = nil
	if c.sumPos != nil {
		floats.Add(c.sumPos, o.sumPos)
		floats.Add(c.sumSq, o.sumSq)
	}
}
