package grid

import (
	"fmt"
	"math/bits"
)

//Shape is the number of rows and columns of a Grid
type Shape struct {
	Rows int
	Cols int
}

//Size returns rows*cols, panics if the product overflows
func (s Shape) Size() int {
	if s.Rows < 0 || s.Cols < 0 {
		panic(fmt.Sprintf("grid: negative shape %dx%d", s.Rows, s.Cols))
	}
	hi, lo := bits.Mul64(uint64(s.Rows), uint64(s.Cols))
	if hi != 0 || lo > uint64(maxInt) {
		panic(fmt.Sprintf("grid: size of %dx%d overflows", s.Rows, s.Cols))
	}
	return int(lo)
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

//Index is the position of an element
type Index struct {
	Row int
	Col int
}

const maxInt = int(^uint(0) >> 1)

//Grid is a fixed-shape row-major 2D container
//the shape never changes after construction
type Grid[T any] struct {
	data  []T
	shape Shape
}

//New allocates the grid with zero-valued elements
func New[T any](shape Shape) *Grid[T] {
	return &Grid[T]{data: make([]T, shape.Size()), shape: shape}
}

//FromSlice creates the grid holding a copy of data
//len(data) must be equal to shape.Size()
func FromSlice[T any](shape Shape, data []T) *Grid[T] {
	size := shape.Size()
	if len(data) != size {
		panic(fmt.Sprintf("grid: %d elements do not fit shape %v", len(data), shape))
	}
	g := &Grid[T]{data: make([]T, size), shape: shape}
	copy(g.data, data)
	return g
}

func (g *Grid[T]) Shape() Shape { return g.shape }
func (g *Grid[T]) Rows() int    { return g.shape.Rows }
func (g *Grid[T]) Cols() int    { return g.shape.Cols }
func (g *Grid[T]) Size() int    { return len(g.data) }

//flatIndex panics when the position is outside the grid
func (g *Grid[T]) flatIndex(row int, col int) int {
	if row < 0 || row >= g.shape.Rows {
		panic(fmt.Sprintf("grid: row index %d out of bounds for %v", row, g.shape))
	}
	if col < 0 || col >= g.shape.Cols {
		panic(fmt.Sprintf("grid: col index %d out of bounds for %v", col, g.shape))
	}
	return row*g.shape.Cols + col
}

//At returns the element at row, col
func (g *Grid[T]) At(row int, col int) T {
	return g.data[g.flatIndex(row, col)]
}

//Ptr returns the pointer to the element at row, col
func (g *Grid[T]) Ptr(row int, col int) *T {
	return &g.data[g.flatIndex(row, col)]
}

//Set stores v at row, col
func (g *Grid[T]) Set(row int, col int, v T) {
	g.data[g.flatIndex(row, col)] = v
}

//WrappingAt treats the grid as a torus: any row and col resolve to a valid element,
//negative values wrap to the high end
func (g *Grid[T]) WrappingAt(row int, col int) T {
	return g.At(wrap(row, g.shape.Rows), wrap(col, g.shape.Cols))
}

func wrap(i int, n int) int {
	return ((i % n) + n) % n
}

//CanHold reports whether every position of other exists in g
func (g *Grid[T]) CanHold(other *Grid[T]) bool {
	return g.shape.Rows >= other.shape.Rows && g.shape.Cols >= other.shape.Cols
}

//Overwrite copies the content of g into dst without reallocating
func (g *Grid[T]) Overwrite(dst *Grid[T]) {
	if !dst.CanHold(g) {
		panic(fmt.Sprintf("grid: cannot overwrite %v with %v", dst.shape, g.shape))
	}
	if dst.shape.Cols == g.shape.Cols {
		copy(dst.data, g.data)
		return
	}
	for r := 0; r < g.shape.Rows; r++ {
		copy(dst.data[r*dst.shape.Cols:], g.row(r))
	}
}

//Clone returns a deep copy
func (g *Grid[T]) Clone() *Grid[T] {
	return FromSlice(g.shape, g.data)
}

func (g *Grid[T]) row(r int) []T {
	start := r * g.shape.Cols
	return g.data[start : start+g.shape.Cols : start+g.shape.Cols]
}
