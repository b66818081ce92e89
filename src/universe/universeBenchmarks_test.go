package universe

import (
	"sort"
	"testing"

	"lifegame/src/grid"
)

const (
	width  = 200
	height = 200
)

func engineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(Engines))
	for k := range Engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

func newGenesis(b *testing.B) *grid.Grid[Cell] {
	g, err := Genesis(grid.Shape{Rows: height, Cols: width}, 0.5, NewRand("benchmark"))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func Benchmark_Evolve(b *testing.B) {
	genesis := newGenesis(b)
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			o := Engines[e](0)
			u := New(genesis, &o)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				u.Evolve()
			}
		})
	}
}

func Benchmark_New(b *testing.B) {
	genesis := newGenesis(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(genesis, nil)
	}
}
