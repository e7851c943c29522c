package componenttree

import (
	"fmt"
	"math"
)

// Grid is a bounded, zero-origin, n-dimensional scalar field. Values are
// stored in a flat slice with the first dimension varying fastest.
// Positions are linear indices into that slice; coordinates are
// recovered on demand.
type Grid struct {
	values  []float64
	dims    []int
	strides []int
}

// NewGrid wraps values as a grid with the given extents. The number of
// values must equal the product of the extents. The product must fit in
// an int; larger domains fail fast rather than silently truncating the
// position list that backs region membership.
func NewGrid(values []float64, dims ...int) (*Grid, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("componenttree: grid needs at least one dimension")
	}
	n := 1
	for d, extent := range dims {
		if extent < 0 {
			return nil, fmt.Errorf("componenttree: dimension %d has negative extent %d", d, extent)
		}
		if extent > 0 && n > math.MaxInt/extent {
			return nil, fmt.Errorf("componenttree: grid extents %v overflow the addressable position range", dims)
		}
		n *= extent
	}
	if n != len(values) {
		return nil, fmt.Errorf("componenttree: got %d values for extents %v (want %d)", len(values), dims, n)
	}

	strides := make([]int, len(dims))
	stride := 1
	for d := range dims {
		strides[d] = stride
		stride *= dims[d]
	}
	return &Grid{
		values:  values,
		dims:    append([]int(nil), dims...),
		strides: strides,
	}, nil
}

// Len returns the total number of positions in the grid.
func (g *Grid) Len() int { return len(g.values) }

// NumDims returns the number of dimensions.
func (g *Grid) NumDims() int { return len(g.dims) }

// Dims returns a copy of the grid extents.
func (g *Grid) Dims() []int { return append([]int(nil), g.dims...) }

// Value returns the scalar value at a linear position index.
func (g *Grid) Value(idx int) float64 { return g.values[idx] }

// Coords returns the coordinates of a linear position index.
func (g *Grid) Coords(idx int) []int {
	coords := make([]int, len(g.dims))
	g.coordsInto(idx, coords)
	return coords
}

// coordsInto writes the coordinates of idx into coords, which must have
// length NumDims.
func (g *Grid) coordsInto(idx int, coords []int) {
	for d := range g.dims {
		coords[d] = idx % g.dims[d]
		idx /= g.dims[d]
	}
}

// Index returns the linear position index of the given coordinates.
func (g *Grid) Index(coords ...int) int {
	if len(coords) != len(g.dims) {
		panic(fmt.Sprintf("componenttree: got %d coordinates for a %d-dimensional grid", len(coords), len(g.dims)))
	}
	idx := 0
	for d, c := range coords {
		if c < 0 || c >= g.dims[d] {
			panic(fmt.Sprintf("componenttree: coordinate %d out of range [0,%d) in dimension %d", c, g.dims[d], d))
		}
		idx += c * g.strides[d]
	}
	return idx
}

// appendNeighbors appends the rectilinear neighbors of the position at
// coords (linear index idx) to buf and returns it. Neighbors are listed
// in fixed order, for each dimension the lower then the upper neighbor.
// This order is the tie-break for merge-survivor selection during the
// sweep.
func (g *Grid) appendNeighbors(idx int, coords []int, buf []int) []int {
	for d := range g.dims {
		if coords[d] > 0 {
			buf = append(buf, idx-g.strides[d])
		}
		if coords[d] < g.dims[d]-1 {
			buf = append(buf, idx+g.strides[d])
		}
	}
	return buf
}
