package universe

import "golang.org/x/sync/errgroup"

/*
	Multithreaded evaluation
	the rows are split into bands each of which is computed by an individual goroutine
	every band writes its own rows of the next buffer and reads the current buffer only,
	so the bands never touch the same memory
*/

//band describes the rows [y1, y2) evaluated by one worker
type band struct {
	y1    int
	y2    int
	delta int
}

//splitBands splits rows between the workers, nil means sequential evaluation
func splitBands(rows int, workers int) []band {
	if workers <= 1 || rows == 0 {
		return nil
	}
	linesPerWorker := rows / workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*workers < rows {
		linesPerWorker++
	}
	bands := make([]band, 0, workers)
	for y1 := 0; y1 < rows; y1 += linesPerWorker {
		bands = append(bands, band{y1: y1, y2: min(y1+linesPerWorker, rows)})
	}
	return bands
}

//evolveBands starts the goroutines, waits for them and sums the population changes
func (b *BioSquare) evolveBands() (delta int) {
	var eg errgroup.Group
	for i := range b.bands {
		bd := &b.bands[i]
		eg.Go(func() error {
			bd.delta = b.evolveRows(bd.y1, bd.y2)
			return nil
		})
	}
	//bands never fail, Wait only joins them
	_ = eg.Wait()
	for _, bd := range b.bands {
		delta += bd.delta
	}
	return
}
