/*
Package signal holds the control signals shared between the input listener and the playback loop.

The listener only writes to the Hub, the playback loop only reads and consumes.
Every field is synchronized on its own, the Hub itself needs no lock.
*/
package signal

import "sync/atomic"

//Hub is the set of control signals of one simulation
type Hub struct {
	Quit      Flag
	Reset     Trigger
	Flip      Trigger
	TimeScale TimeScale
	Pause     *Pause
}

func NewHub() *Hub {
	return &Hub{Pause: NewPause()}
}

//RequestQuit sets the quit flag and releases a paused loop so it can observe it
func (h *Hub) RequestQuit() {
	h.Quit.Set()
	h.Pause.Unset()
}

//Flag is a one-way flag, once set it stays set
type Flag struct {
	v atomic.Bool
}

func (f *Flag) Set()      { f.v.Store(true) }
func (f *Flag) Get() bool { return f.v.Load() }

//Trigger is an edge-triggered flag consumed by Take
type Trigger struct {
	v atomic.Bool
}

func (t *Trigger) Set() { t.v.Store(true) }

//Take reports whether the trigger was set and clears it
func (t *Trigger) Take() bool { return t.v.Swap(false) }
