package universe

import (
	"math/rand/v2"

	"lifegame/src/grid"
)

//neighbourOffsets lists the 8 surrounding positions, the cell itself excluded
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

//BioSquare is the evolution engine
//implements Universe interface
//current is the observable generation, next is the scratch buffer of the generation being computed
//outside of Evolve both buffers hold the same cells and population is the count of live cells in current
type BioSquare struct {
	options    Options
	generation int
	population int
	current    *grid.Grid[Cell]
	next       *grid.Grid[Cell]
	bands      []band
}

//New creates the BioSquare seeded with a copy of genesis
func New(genesis *grid.Grid[Cell], o *Options) *BioSquare {
	if o == nil {
		o = &DefaultOptions
	}
	b := BioSquare{
		options: *o,
		current: genesis.Clone(),
		next:    genesis.Clone(),
	}
	b.population = countAlive(b.current)
	b.bands = splitBands(b.current.Rows(), b.options.Workers)
	return &b
}

//Observe returns the current generation, callers must not modify it
func (b *BioSquare) Observe() *grid.Grid[Cell] {
	return b.current
}

func (b *BioSquare) Generation() int {
	return b.generation
}

func (b *BioSquare) Population() int {
	return b.population
}

//Density returns the share of live cells, 0 for an empty grid
func (b *BioSquare) Density() float64 {
	size := b.current.Size()
	if size == 0 {
		return 0
	}
	return float64(b.population) / float64(size)
}

//Evolve computes the next generation
//neighbours are read from current only, the new states are written to next
//and next is copied back to current once every cell has been evaluated
func (b *BioSquare) Evolve() {
	b.generation++
	if b.current.Size() == 0 {
		return
	}
	if len(b.bands) > 1 {
		b.population += b.evolveBands()
	} else {
		b.population += b.evolveRows(0, b.current.Rows())
	}
	b.next.Overwrite(b.current)
}

//Flip inverses one random cell
func (b *BioSquare) Flip(rng *rand.Rand) {
	size := b.current.Size()
	if size == 0 {
		return
	}
	i := rng.IntN(size)
	row, col := i/b.current.Cols(), i%b.current.Cols()
	cell := b.current.Ptr(row, col)
	if cell.IsAlive() {
		cell.Die()
		b.population--
	} else {
		cell.Revive()
		b.population++
	}
	b.next.Set(row, col, *cell)
}

//evolveRows applies the rule to rows [y1, y2) and returns the population change
func (b *BioSquare) evolveRows(y1 int, y2 int) (delta int) {
	cols := b.current.Cols()
	for y := y1; y < y2; y++ {
		for x := 0; x < cols; x++ {
			n := b.liveNeighbours(y, x)
			cell := b.next.Ptr(y, x)
			if cell.IsAlive() {
				if (n < 2 || n > 3) && cell.Die() {
					delta--
				}
			} else if n == 3 && cell.Revive() {
				delta++
			}
		}
	}
	return
}

//liveNeighbours counts the live cells around row, col, the edges wrap around
func (b *BioSquare) liveNeighbours(row int, col int) (n int) {
	for _, o := range neighbourOffsets {
		if b.current.WrappingAt(row+o[0], col+o[1]).IsAlive() {
			n++
		}
	}
	return
}

//countAlive calculates the count of live cells
func countAlive(g *grid.Grid[Cell]) (n int) {
	for c := range g.Elements() {
		if c.IsAlive() {
			n++
		}
	}
	return
}
