package signal

import (
	"sync"
	"testing"
	"time"
)

func TestTrigger(t *testing.T) {
	h := NewHub()
	if h.Reset.Take() {
		t.Fatalf("fresh trigger is set")
	}
	h.Reset.Set()
	h.Reset.Set()
	if !h.Reset.Take() {
		t.Fatalf("trigger not observed")
	}
	if h.Reset.Take() {
		t.Fatalf("trigger consumed twice")
	}
}

func TestTriggerConcurrentTake(t *testing.T) {
	var tr Trigger
	for round := 0; round < 100; round++ {
		tr.Set()
		var wg sync.WaitGroup
		var mu sync.Mutex
		taken := 0
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if tr.Take() {
					mu.Lock()
					taken++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		if taken != 1 {
			t.Fatalf("round %v: trigger taken %v times", round, taken)
		}
	}
}

func TestTimeScaleBounds(t *testing.T) {
	var s TimeScale
	if s.Scale() != 1 {
		t.Errorf("initial scale %v", s.Scale())
	}
	for i := 0; i < 15; i++ {
		s.Increment()
	}
	if s.Exponent() != MaxExponent || s.Scale() != 1024 {
		t.Errorf("exponent %v scale %v", s.Exponent(), s.Scale())
	}
	for i := 0; i < 30; i++ {
		s.Decrement()
	}
	if s.Exponent() != MinExponent || s.Scale() != 1.0/1024 {
		t.Errorf("exponent %v scale %v", s.Exponent(), s.Scale())
	}
	for e := MinExponent; e <= MaxExponent; e++ {
		if s.Exponent() != e {
			t.Fatalf("exponent %v, want %v", s.Exponent(), e)
		}
		want := 1.0
		for i := 0; i < e; i++ {
			want *= 2
		}
		for i := 0; i > e; i-- {
			want /= 2
		}
		if s.Scale() != want {
			t.Errorf("Scale() = %v at exponent %v, want %v", s.Scale(), e, want)
		}
		s.Increment()
	}
}

func TestTimeScaleConcurrent(t *testing.T) {
	var s TimeScale
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Increment()
		}()
	}
	wg.Wait()
	if s.Exponent() != MaxExponent {
		t.Errorf("exponent %v escaped the bound", s.Exponent())
	}
}

func TestPauseToggleTwice(t *testing.T) {
	p := NewPause()
	if !p.Toggle() || p.Toggle() || p.Paused() {
		t.Errorf("double toggle did not restore the state")
	}
	p.WaitIfPaused() //running gate returns immediately
}

func TestPauseWakesWaiter(t *testing.T) {
	p := NewPause()
	p.Set()
	done := make(chan struct{})
	go func() {
		p.WaitIfPaused()
		close(done)
	}()

	select {
	case <-done:
		t.Fatalf("waiter passed a paused gate")
	case <-time.After(50 * time.Millisecond):
	}

	p.Toggle()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("waiter not woken on resume")
	}
}

func TestRequestQuitReleasesPause(t *testing.T) {
	h := NewHub()
	h.Pause.Set()
	done := make(chan bool)
	go func() {
		h.Pause.WaitIfPaused()
		done <- h.Quit.Get()
	}()
	time.Sleep(10 * time.Millisecond)
	if !h.Dispatch(CmdQuit) {
		t.Errorf("quit did not stop the listener")
	}
	select {
	case quit := <-done:
		if !quit {
			t.Errorf("woken loop did not observe quit")
		}
	case <-time.After(time.Second):
		t.Fatalf("paused loop hangs on quit")
	}
}

func TestDispatch(t *testing.T) {
	h := NewHub()
	keys := "JjkRfPx"
	for _, k := range keys {
		if h.Dispatch(CommandForKey(k)) {
			t.Fatalf("key %q stopped the listener", k)
		}
	}
	if h.TimeScale.Exponent() != 1 {
		t.Errorf("exponent %v", h.TimeScale.Exponent())
	}
	if !h.Reset.Take() || !h.Flip.Take() || !h.Pause.Paused() {
		t.Errorf("signals not set")
	}
	if h.Quit.Get() {
		t.Errorf("quit set without a quit key")
	}
	if CommandForKey('Q') != CmdQuit {
		t.Errorf("upper case quit not recognized")
	}
}

func TestHubsAreIndependent(t *testing.T) {
	a, b := NewHub(), NewHub()
	a.Dispatch(CmdQuit)
	a.TimeScale.Increment()
	if b.Quit.Get() || b.TimeScale.Exponent() != 0 {
		t.Errorf("hubs share state")
	}
}
