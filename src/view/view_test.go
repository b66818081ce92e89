package view

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"lifegame/src/signal"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestListenKeys(t *testing.T) {
	hub := signal.NewHub()
	if err := ListenKeys(strings.NewReader("jJx\np?f q r"), hub, discard); err != nil {
		t.Fatal(err)
	}
	if e := hub.TimeScale.Exponent(); e != 2 {
		t.Errorf("exponent %v, want 2", e)
	}
	if hub.Pause.Paused() {
		t.Errorf("quit did not release the pause")
	}
	if !hub.Flip.Take() {
		t.Errorf("flip not triggered")
	}
	if !hub.Quit.Get() {
		t.Errorf("quit not set")
	}
	if hub.Reset.Take() {
		t.Errorf("keys after quit were dispatched")
	}
}

func TestListenKeysEndOfInput(t *testing.T) {
	hub := signal.NewHub()
	if err := ListenKeys(strings.NewReader("kp"), hub, discard); err != nil {
		t.Fatal(err)
	}
	if hub.Quit.Get() {
		t.Errorf("end of input is not a quit")
	}
	if !hub.Pause.Paused() || hub.TimeScale.Exponent() != -1 {
		t.Errorf("commands lost: paused %v exponent %v", hub.Pause.Paused(), hub.TimeScale.Exponent())
	}
}

func TestConsoleOutStop(t *testing.T) {
	hub := signal.NewHub()
	in, w := io.Pipe()
	defer w.Close()
	c := NewConsoleOut(hub, in, io.Discard, nil, discard)

	done := make(chan error)
	go func() { done <- c.Listen() }()

	_, _ = w.Write([]byte("j"))
	c.Stop()
	c.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Error(err)
		}
	case <-time.After(time.Second):
		t.Fatal("Listen did not return after Stop")
	}
}

func TestConsoleOutFrames(t *testing.T) {
	var out bytes.Buffer
	conf := map[string]interface{}{"Rows": 3, "Engine": "base"}
	c := NewConsoleOut(signal.NewHub(), strings.NewReader(""), &out, conf, discard)

	header := "Running configuration:\n  Engine: base\n  Rows: 3\n\n"
	if out.String() != header {
		t.Fatalf("header %q, want %q", out.String(), header)
	}

	_, _ = c.Write([]byte("10\n01\n"))
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "10\n01\n") {
		t.Errorf("frame not written: %q", out.String())
	}
	c.Stop()
	if err := c.Listen(); err != nil {
		t.Errorf("Listen() on empty input: %v", err)
	}
	if c.hub.Quit.Get() {
		t.Errorf("end of input requested quit")
	}
}

func TestHelpLine(t *testing.T) {
	var k []keyBindings
	for _, b := range signal.Bindings {
		k = append(k, keyBindings{key: b.Key, name: b.Name, descr: b.Descr})
	}
	h := helpLine(k)
	for _, b := range signal.Bindings {
		if !strings.Contains(h, b.Descr) {
			t.Errorf("help line %q misses %q", h, b.Descr)
		}
	}
}

func TestFrameSlot(t *testing.T) {
	var s frameSlot
	if !s.put([]byte("first")) {
		t.Fatalf("first frame did not queue a redraw")
	}
	if s.put([]byte("second")) {
		t.Errorf("second redraw queued while one is pending")
	}
	if got := string(s.take()); got != "second" {
		t.Errorf("redraw got %q, want the newest frame", got)
	}
	if !s.put([]byte("third")) {
		t.Errorf("frame after a redraw did not queue another one")
	}
	if got := string(s.take()); got != "third" {
		t.Errorf("redraw got %q, want %q", got, "third")
	}
}
