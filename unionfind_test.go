package componenttree

import "testing"

func TestSweepUnionFind_InitiallyDisjoint(t *testing.T) {
	uf := newSweepUnionFind(5)
	for i := 0; i < 5; i++ {
		if got := uf.find(i); got != i {
			t.Errorf("expected find(%d) = %d before any union, got %d", i, i, got)
		}
	}
}

func TestSweepUnionFind_UnionJoinsSets(t *testing.T) {
	uf := newSweepUnionFind(6)
	uf.union(0, 1)
	uf.union(2, 3)

	if uf.find(0) != uf.find(1) {
		t.Error("expected 0 and 1 in the same set")
	}
	if uf.find(2) != uf.find(3) {
		t.Error("expected 2 and 3 in the same set")
	}
	if uf.find(0) == uf.find(2) {
		t.Error("expected {0,1} and {2,3} to stay disjoint")
	}

	root := uf.union(1, 3)
	for _, x := range []int{0, 1, 2, 3} {
		if uf.find(x) != root {
			t.Errorf("expected find(%d) = %d after joining, got %d", x, root, uf.find(x))
		}
	}
	if uf.find(4) == root {
		t.Error("expected 4 to stay outside the joined set")
	}
}

func TestSweepUnionFind_UnionSameSetIsNoop(t *testing.T) {
	uf := newSweepUnionFind(3)
	r1 := uf.union(0, 1)
	r2 := uf.union(0, 1)
	if r1 != r2 {
		t.Errorf("expected repeated union to return the same root, got %d then %d", r1, r2)
	}
}

func TestSweepUnionFind_UnionBySize(t *testing.T) {
	uf := newSweepUnionFind(8)
	// Build a set of four, then attach a singleton: the big set's root
	// must survive.
	big := uf.union(0, 1)
	big = uf.union(big, 2)
	big = uf.union(big, 3)
	if got := uf.union(big, 7); got != big {
		t.Errorf("expected larger set's root %d to survive, got %d", big, got)
	}
}
