package universe

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"lifegame/src/grid"
)

var ErrInvalidDensity = errors.New("density must be within 0.0..=1.0")

//NewRand creates a deterministic generator for a non-empty seed
//and a time-seeded one otherwise
func NewRand(seed string) *rand.Rand {
	var s uint64
	if seed == "" {
		s = uint64(time.Now().UnixNano())
	} else {
		h := fnv.New64a()
		_, _ = h.Write([]byte(seed))
		s = h.Sum64()
	}
	return rand.New(rand.NewPCG(s, 0))
}

//Genesis creates the initial generation, each cell is alive with probability density
func Genesis(shape grid.Shape, density float64, rng *rand.Rand) (*grid.Grid[Cell], error) {
	if !(density >= 0 && density <= 1) {
		return nil, fmt.Errorf("genesis: %w, got %v", ErrInvalidDensity, density)
	}
	g := grid.New[Cell](shape)
	for y := 0; y < shape.Rows; y++ {
		for x := 0; x < shape.Cols; x++ {
			if rng.Float64() < density {
				g.Set(y, x, Alive)
			}
		}
	}
	return g, nil
}
