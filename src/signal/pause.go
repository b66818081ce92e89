package signal

import "sync"

//Pause is a gate the playback loop blocks on while paused
type Pause struct {
	mu     sync.Mutex
	cond   *sync.Cond
	paused bool
}

func NewPause() *Pause {
	p := &Pause{}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (p *Pause) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

func (p *Pause) Set() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
}

//Unset resumes and wakes every waiter
func (p *Pause) Unset() {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
	p.cond.Broadcast()
}

//Toggle flips the state, waiters are woken when it becomes running
func (p *Pause) Toggle() (paused bool) {
	p.mu.Lock()
	p.paused = !p.paused
	paused = p.paused
	p.mu.Unlock()
	if !paused {
		p.cond.Broadcast()
	}
	return
}

//WaitIfPaused blocks until the gate is running, returns immediately if it already is
func (p *Pause) WaitIfPaused() {
	p.mu.Lock()
	for p.paused {
		p.cond.Wait()
	}
	p.mu.Unlock()
}
