package telemetry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"lifegame/src/playback"
)

//Record is one CSV row
type Record struct {
	Generation int     `csv:"generation"`
	Population int     `csv:"population"`
	Density    float64 `csv:"density"`
	FPS        float64 `csv:"fps"`
	RuntimeMs  float64 `csv:"runtime_ms"`
}

//CSVRecorder writes the frame statistics as CSV, the header is written once
type CSVRecorder struct {
	w             *bufio.Writer
	c             io.Closer
	every         int
	seen          int
	headerWritten bool
}

//NewCSVRecorder creates the file at path, every n-th frame is written (n < 1 means every frame)
func NewCSVRecorder(path string, every int) (*CSVRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating stats file: %w", err)
	}
	r := NewCSVWriterRecorder(f, every)
	r.c = f
	return r, nil
}

//NewCSVWriterRecorder writes to w, closing the recorder does not close w
func NewCSVWriterRecorder(w io.Writer, every int) *CSVRecorder {
	if every < 1 {
		every = 1
	}
	return &CSVRecorder{w: bufio.NewWriter(w), every: every}
}

//Record implements playback.Recorder
func (r *CSVRecorder) Record(f playback.Frame) error {
	r.seen++
	if (r.seen-1)%r.every != 0 {
		return nil
	}
	records := []*Record{{
		Generation: f.Generation,
		Population: f.Population,
		Density:    f.Density,
		FPS:        f.FPS,
		RuntimeMs:  float64(f.Runtime) / float64(time.Millisecond),
	}}
	if !r.headerWritten {
		r.headerWritten = true
		return gocsv.Marshal(records, r.w)
	}
	return gocsv.MarshalWithoutHeaders(records, r.w)
}

//Close flushes the buffered rows and closes the file
func (r *CSVRecorder) Close() error {
	err := r.w.Flush()
	if r.c != nil {
		if cerr := r.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
