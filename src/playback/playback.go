package playback

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"lifegame/src/filter"
	"lifegame/src/grid"
	"lifegame/src/signal"
	"lifegame/src/timer"
	"lifegame/src/universe"
)

//Sink is a buffered output, a frame is complete when Flush returns
type Sink interface {
	io.Writer
	Flush() error
}

//Recorder receives the statistics of every rendered frame
type Recorder interface {
	Record(f Frame) error
}

//Frame is the statistics of one rendered generation
type Frame struct {
	Generation int
	Population int
	Density    float64
	FPS        float64
	Runtime    time.Duration
}

//Options represents the playback configurable options
type Options struct {
	FPSMax         float64
	ShowStats      bool
	MaxGenerations int //0 is unlimited
	Universe       universe.Options
}

const (
	DefFPSMax = 60.0

	//pacingSpin is the longest sleep of the pacing wait between two quit checks
	pacingSpin = time.Millisecond
)

var DefaultOptions = Options{
	FPSMax:   DefFPSMax,
	Universe: universe.DefaultOptions,
}

//FPSMax returns fps if it is within (0, +Inf], DefFPSMax otherwise
func FPSMax(fps float64) float64 {
	if fps > 0 {
		return fps
	}
	return DefFPSMax
}

//Playback renders and evolves the universe until the quit signal
type Playback struct {
	options  Options
	genesis  *grid.Grid[universe.Cell]
	universe universe.Universe
	hub      *signal.Hub
	filter   filter.Filter
	sink     Sink
	timer    *timer.Timer
	rng      *rand.Rand
	recorder Recorder
	log      *slog.Logger
}

//New creates the Playback, the universe is seeded with genesis and reseeded with it on reset
func New(genesis *grid.Grid[universe.Cell], o *Options, hub *signal.Hub, f filter.Filter, sink Sink) *Playback {
	if o == nil {
		o = &DefaultOptions
	}
	p := Playback{
		options: *o,
		genesis: genesis,
		hub:     hub,
		filter:  f,
		sink:    sink,
		rng:     universe.NewRand(""),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.options.FPSMax = FPSMax(o.FPSMax)
	p.universe = universe.New(genesis, &p.options.Universe)
	return &p
}

func (p *Playback) SetRecorder(r Recorder) {
	p.recorder = r
}

func (p *Playback) SetLogger(l *slog.Logger) {
	p.log = l
}

//SetRand sets the generator used by the flip command
func (p *Playback) SetRand(rng *rand.Rand) {
	p.rng = rng
}

func (p *Playback) Universe() universe.Universe {
	return p.universe
}

func (p *Playback) Options() Options {
	return p.options
}

//Run is the main cycle, returns nil on quit or when MaxGenerations is reached
//and the first render or record error otherwise
func (p *Playback) Run() error {
	p.timer = timer.Start()
	p.log.Info("playback started",
		"shape", p.genesis.Shape().String(),
		"population", p.universe.Population(),
		"fps_max", p.options.FPSMax,
		"workers", p.options.Universe.Workers)

	for {
		p.timer.Tick()

		if p.hub.Reset.Take() {
			p.reset()
		}
		if p.hub.Flip.Take() {
			p.universe.Flip(p.rng)
			p.log.Debug("cell flipped", "population", p.universe.Population())
		}

		p.waitIfPaused()

		if p.hub.Quit.Get() {
			p.log.Info("quit requested", "generation", p.universe.Generation())
			return nil
		}

		if err := p.render(); err != nil {
			return fmt.Errorf("render generation %d: %w", p.universe.Generation(), err)
		}
		if p.recorder != nil {
			if err := p.recorder.Record(p.frame()); err != nil {
				return fmt.Errorf("record generation %d: %w", p.universe.Generation(), err)
			}
		}

		//the last generation is rendered before stopping
		if limit := p.options.MaxGenerations; limit > 0 && p.universe.Generation() >= limit {
			p.log.Info("max generations reached", "generation", p.universe.Generation())
			return nil
		}

		p.universe.Evolve()

		if !p.pace() {
			p.log.Info("quit requested", "generation", p.universe.Generation())
			return nil
		}
	}
}

//reset reseeds the universe with genesis and restarts the timer
func (p *Playback) reset() {
	p.universe = universe.New(p.genesis, &p.options.Universe)
	p.timer.Restart()
	p.log.Info("universe reset", "population", p.universe.Population())
}

//waitIfPaused blocks on the pause gate, the paused time is not counted by the timer
func (p *Playback) waitIfPaused() {
	if !p.hub.Pause.Paused() {
		return
	}
	paused := p.timer.Pause()
	p.log.Info("paused", "generation", p.universe.Generation())
	p.hub.Pause.WaitIfPaused()
	paused.Resume()
	p.log.Info("resumed", "paused_for", paused.Elapsed().String())
}

//frameDurationMin is 1/FPSMax divided by the time scale
func (p *Playback) frameDurationMin() time.Duration {
	d := 1 / p.options.FPSMax / p.hub.TimeScale.Scale()
	return time.Duration(d * float64(time.Second))
}

//pace waits until the minimum frame duration has elapsed
//returns false as soon as quit is requested
func (p *Playback) pace() bool {
	frameMin := p.frameDurationMin()
	for {
		if p.hub.Quit.Get() {
			return false
		}
		remaining := frameMin - p.timer.Frame()
		if remaining <= 0 {
			return true
		}
		time.Sleep(min(remaining, pacingSpin))
	}
}

func (p *Playback) frame() Frame {
	fps := math.Inf(1)
	if last := p.timer.LastFrame(); last > 0 {
		fps = 1 / last.Seconds()
	}
	return Frame{
		Generation: p.universe.Generation(),
		Population: p.universe.Population(),
		Density:    p.universe.Density(),
		FPS:        fps,
		Runtime:    p.timer.Global(),
	}
}
