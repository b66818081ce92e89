package universe

import (
	"math/rand/v2"

	"lifegame/src/grid"
)

//Universe is the evolution engine driven by the playback loop
type Universe interface {
	Observe() *grid.Grid[Cell]
	Generation() int
	Population() int
	Density() float64
	Evolve()
	Flip(rng *rand.Rand)
}

//Options represents the engine's configurable options
type Options struct {
	Workers int //1 or less evaluates the rows sequentially
}

const (
	DefWorkers          = 10 //default workers of the multithreaded engine
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

var DefaultOptions = Options{Workers: 1}

//Engines maps the engine names accepted on the command line to their options
var Engines = map[string]func(workers int) Options{
	"base": func(int) Options {
		return DefaultOptions
	},
	"multithreaded": func(workers int) Options {
		if workers <= 0 {
			workers = DefWorkers
		}
		return Options{Workers: workers}
	},
}
