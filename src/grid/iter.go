package grid

import "iter"

//Elements yields the elements in row-major order
func (g *Grid[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range g.data {
			if !yield(e) {
				return
			}
		}
	}
}

//ElementsWithIndex yields the elements with their positions in row-major order
func (g *Grid[T]) ElementsWithIndex() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for i, e := range g.data {
			if !yield(Index{Row: i / g.shape.Cols, Col: i % g.shape.Cols}, e) {
				return
			}
		}
	}
}

//IterRows yields every row as a slice sharing the grid storage
//callers must not keep or modify the slices
func (g *Grid[T]) IterRows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for r := 0; r < g.shape.Rows; r++ {
			if !yield(g.row(r)) {
				return
			}
		}
	}
}
