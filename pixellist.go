package componenttree

import "iter"

// pixelArena backs every PixelList of one build with a single
// next-position table threaded through the grid positions. A position
// appears in at most one live list, so one table per build suffices.
// The arena is owned by the sweep driver for the duration of a build.
type pixelArena struct {
	next []int
}

func newPixelArena(n int) *pixelArena {
	return &pixelArena{next: make([]int, n)}
}

// PixelList is an append-order list of grid positions (linear indices).
// Append and Merge are O(1). Merge transfers the source list's entries
// and kills the source: a merged-from list is empty and must not be
// appended to or merged again.
//
// A copy of a PixelList value is a snapshot: it remains valid and keeps
// its length even as the original list grows through later appends or
// merges.
type PixelList struct {
	arena *pixelArena
	head  int
	tail  int
	size  int
	dead  bool
}

func newPixelList(arena *pixelArena) PixelList {
	return PixelList{arena: arena, head: -1, tail: -1}
}

// Size returns the number of positions in the list.
func (p PixelList) Size() int { return p.size }

// append adds a position to the end of the list.
func (p *PixelList) append(idx int) {
	if p.dead {
		panic("componenttree: append to a merged-away pixel list")
	}
	if p.head < 0 {
		p.head = idx
	} else {
		p.arena.next[p.tail] = idx
	}
	p.tail = idx
	p.size++
}

// merge transfers all entries of o to the end of this list and kills o.
// Merging is one-shot: o becomes empty and unusable.
func (p *PixelList) merge(o *PixelList) {
	if p.dead || o.dead {
		panic("componenttree: merge involving a merged-away pixel list")
	}
	if o.size > 0 {
		if p.head < 0 {
			p.head = o.head
		} else {
			p.arena.next[p.tail] = o.head
		}
		p.tail = o.tail
		p.size += o.size
	}
	o.head = -1
	o.tail = -1
	o.size = 0
	o.dead = true
}

// All returns an iterator over the positions in the list, in append
// order. The sequence can be replayed any number of times.
func (p PixelList) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		idx := p.head
		for i := 0; i < p.size; i++ {
			if !yield(idx) {
				return
			}
			idx = p.arena.next[idx]
		}
	}
}
