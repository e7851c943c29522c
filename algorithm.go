package componenttree

import "sort"

// buildComponentTree sweeps the grid positions in value order and feeds
// completed components to h.
//
// Every position is visited exactly once. A position with no visited
// neighbor opens a new component at the position's value. A position
// adjacent to open components extends the first of them (in neighbor
// order) and merges the others into it. Before a component is extended
// or merged at a value different from its recorded one, it is emitted:
// its pixel set at the recorded value is final, since all lower-ordered
// positions have already been processed. At the end of the sweep the
// remaining component of each connected part of the domain is emitted
// once more at its final value.
//
// The sweep is sequential; its outputs are deterministic given the grid
// and direction. Equal-valued positions are processed in increasing
// index order, and merge survivors are chosen by neighbor order.
func buildComponentTree(g *Grid, h handler, brightToDark bool) {
	n := g.Len()
	if n == 0 {
		return
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	values := g.values
	if brightToDark {
		sort.Slice(order, func(a, b int) bool {
			i, j := order[a], order[b]
			if values[i] != values[j] {
				return values[i] > values[j]
			}
			return i < j
		})
	} else {
		sort.Slice(order, func(a, b int) bool {
			i, j := order[a], order[b]
			if values[i] != values[j] {
				return values[i] < values[j]
			}
			return i < j
		})
	}

	arena := newPixelArena(n)
	uf := newSweepUnionFind(n)
	visited := make([]bool, n)
	// comps[r] is the open component whose representative is r. Only
	// entries at union-find roots are meaningful.
	comps := make([]*activeComponent, n)

	dims := g.NumDims()
	stats := h.wantStats()
	coords := make([]int, dims)
	nbrs := make([]int, 0, 2*dims)
	roots := make([]int, 0, 2*dims)

	for _, idx := range order {
		v := values[idx]
		g.coordsInto(idx, coords)

		// Distinct open components among the visited neighbors, in
		// neighbor order.
		nbrs = g.appendNeighbors(idx, coords, nbrs[:0])
		roots = roots[:0]
		for _, nb := range nbrs {
			if !visited[nb] {
				continue
			}
			r := uf.find(nb)
			known := false
			for _, seen := range roots {
				if seen == r {
					known = true
					break
				}
			}
			if !known {
				roots = append(roots, r)
			}
		}

		if len(roots) == 0 {
			c := newActiveComponent(v, arena, dims, stats)
			c.addPosition(idx, coords)
			visited[idx] = true
			comps[idx] = c
			continue
		}

		// Close snapshots recorded at other values before extending at v.
		survivor := comps[roots[0]]
		if survivor.value != v {
			h.emit(survivor)
			survivor.value = v
		}
		root := roots[0]
		for _, r := range roots[1:] {
			c := comps[r]
			if c.value != v {
				h.emit(c)
				c.value = v
			}
			survivor.merge(c)
			comps[r] = nil
			root = uf.union(root, r)
		}
		survivor.addPosition(idx, coords)
		visited[idx] = true
		root = uf.union(root, idx)
		comps[root] = survivor
	}

	// Force-emit the remaining component of every connected part of the
	// domain, in increasing position order.
	done := make([]bool, n)
	for i := 0; i < n; i++ {
		r := uf.find(i)
		if done[r] {
			continue
		}
		done[r] = true
		h.emit(comps[r])
	}
}
