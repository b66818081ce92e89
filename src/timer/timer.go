package timer

import (
	"fmt"
	"time"
)

//Timer measures the global running time and the time of the current frame
//time spent between Pause and Resume is excluded from both
type Timer struct {
	globalStart time.Time
	frameStart  time.Time
	lastFrame   time.Duration
}

func Start() *Timer {
	now := time.Now()
	return &Timer{globalStart: now, frameStart: now}
}

//Restart resets the timer to the just started state
func (t *Timer) Restart() {
	*t = *Start()
}

//Global returns the running time since start
func (t *Timer) Global() time.Duration {
	return time.Since(t.globalStart)
}

//Frame returns the time elapsed in the current frame
func (t *Timer) Frame() time.Duration {
	return time.Since(t.frameStart)
}

//LastFrame returns the duration of the most recently completed frame
func (t *Timer) LastFrame() time.Duration {
	return t.lastFrame
}

//Tick completes the current frame and starts the next one
func (t *Timer) Tick() {
	now := time.Now()
	t.lastFrame = now.Sub(t.frameStart)
	t.frameStart = now
}

//Pause starts a pause, the timer must not be used until Resume is called
func (t *Timer) Pause() *Paused {
	return &Paused{start: time.Now(), timer: t}
}

//Paused is the handle of a paused timer
type Paused struct {
	start   time.Time
	timer   *Timer
	resumed bool
}

//Elapsed returns the duration of the pause so far
func (p *Paused) Elapsed() time.Duration {
	return time.Since(p.start)
}

//Resume shifts the timer start points by the paused duration, subsequent calls do nothing
func (p *Paused) Resume() {
	if p.resumed {
		return
	}
	p.resumed = true
	d := p.Elapsed()
	p.timer.globalStart = p.timer.globalStart.Add(d)
	p.timer.frameStart = p.timer.frameStart.Add(d)
}

//FormatDuration renders d as "1 s 002 ms 003 μs 004 ns"
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	nanos := d.Nanoseconds()
	secs := nanos / int64(time.Second)
	nanos %= int64(time.Second)
	millis := nanos / int64(time.Millisecond)
	nanos %= int64(time.Millisecond)
	micros := nanos / int64(time.Microsecond)
	nanos %= int64(time.Microsecond)
	return fmt.Sprintf("%d s %03d ms %03d μs %03d ns", secs, millis, micros, nanos)
}
