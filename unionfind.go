package componenttree

// sweepUnionFind is a disjoint-set over grid positions with path
// compression and union by size. It maps every visited position to the
// representative of the open component containing it. Which component
// survives a merge is decided by the sweep driver (first encountered),
// not by the union-by-size heuristic, which only balances the find
// paths.
type sweepUnionFind struct {
	parent []int
	size   []int
}

func newSweepUnionFind(n int) *sweepUnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
		size[i] = 1
	}
	return &sweepUnionFind{parent: parent, size: size}
}

// find returns the representative of the set containing x, compressing
// the walked path behind it.
func (uf *sweepUnionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	// Repoint everything on the walked path directly at the root, so
	// repeated lookups of the same region stay near O(1).
	for x != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// union merges the sets containing x and y and returns the new
// representative. The shallower side goes under the heavier one.
func (uf *sweepUnionFind) union(x, y int) int {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return rx
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	return rx
}
