package playback

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"lifegame/src/timer"
)

const (
	keyWidth   = 20
	valueWidth = 40
)

//errWriter keeps the first write error and skips the writes after it
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

//render writes the current generation: one view per cell, a line feed per row,
//then the statistics if enabled
func (p *Playback) render() error {
	ew := &errWriter{w: p.sink}
	for row := range p.universe.Observe().IterRows() {
		for _, c := range row {
			ew.writeString(p.filter.Filter(c))
		}
		ew.writeString("\n")
	}
	if p.options.ShowStats {
		p.renderStats(ew)
	}
	if ew.err != nil {
		return ew.err
	}
	return p.sink.Flush()
}

func (p *Playback) renderStats(ew *errWriter) {
	f := p.frame()
	ew.writeString("\n")
	renderMeasurement(ew, "Generation", fmt.Sprintf("%d", f.Generation))
	renderMeasurement(ew, "Population", fmt.Sprintf("%d", f.Population))
	renderMeasurement(ew, "Density", fmt.Sprintf("%.2f %%", f.Density*100))
	renderMeasurement(ew, "FPS", fmt.Sprintf("%.2f", f.FPS))
	renderMeasurement(ew, "Speed", fmt.Sprintf("x%g", p.hub.TimeScale.Scale()))
	renderMeasurement(ew, "Runtime", timer.FormatDuration(f.Runtime))
}

//renderMeasurement pads before styling, escape sequences would break the alignment
func renderMeasurement(ew *errWriter, key string, value string) {
	ew.writeString(aurora.Bold(fmt.Sprintf("%-*s", keyWidth, key)).String())
	ew.writeString(fmt.Sprintf("%*s", valueWidth, value))
	ew.writeString("\n")
}
