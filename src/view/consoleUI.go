package view

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifegame/src/signal"
)

type keyBindings struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
}

//ConsoleUI is the full-screen terminal front end
//the gocui main loop is the key listener, the "world" view is the playback sink
type ConsoleUI struct {
	hub  *signal.Hub
	g    *gocui.Gui
	k    []keyBindings
	log  *slog.Logger
	conf map[string]interface{}

	buf   bytes.Buffer //written by the playback goroutine only
	frame frameSlot
}

//frameSlot hands the frames over to the main loop
//frames produced faster than the terminal redraws are dropped, the newest one wins
type frameSlot struct {
	mu      sync.Mutex
	data    []byte
	pending bool
}

//put stores the frame, reports whether a redraw has to be queued
//at most one redraw is queued at a time
func (s *frameSlot) put(data []byte) (queue bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	if s.pending {
		return false
	}
	s.pending = true
	return true
}

//take returns the newest frame, the next put queues a redraw again
func (s *frameSlot) take() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	return s.data
}

var (
	pauseDescr = map[bool]string{
		false: aurora.Colorize("running", aurora.CyanFg).String(),
		true:  aurora.Colorize("paused", aurora.BlueFg).String(),
	}
)

//NewConsoleUI takes over the terminal, conf is shown in the configuration panel
func NewConsoleUI(hub *signal.Hub, conf map[string]interface{}, log *slog.Logger) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	t := ConsoleUI{hub: hub, g: g, log: log, conf: conf}

	t.k = append(t.k, keyBindings{gocui.KeyCtrlC, "^C", "Exit", t.cmd(signal.CmdQuit)})
	for _, b := range signal.Bindings {
		t.k = append(t.k, keyBindings{b.Key, b.Name, b.Descr, t.cmd(b.Cmd)})
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}
	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) error {
	bind := func(key interface{}, h func(v *gocui.View) error) error {
		return t.g.SetKeybinding("", key, gocui.ModNone, func(_ *gocui.Gui, view *gocui.View) error { return h(view) })
	}
	for _, kb := range k {
		if err := bind(kb.key, kb.handler); err != nil {
			return fmt.Errorf("binding key %s: %w", kb.name, err)
		}
		//letters are bound in both cases
		if r, ok := kb.key.(rune); ok {
			if err := bind([]rune(strings.ToUpper(string(r)))[0], kb.handler); err != nil {
				return fmt.Errorf("binding key %s: %w", kb.name, err)
			}
		}
	}
	return nil
}

//cmd creates the key handler dispatching the command to the hub
func (t *ConsoleUI) cmd(c signal.Command) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		t.log.Debug("key command", "command", c.String())
		if t.hub.Dispatch(c) {
			return gocui.ErrQuit
		}
		t.renderStatus()
		return nil
	}
}

//Listen runs the terminal main loop until the user quits or Stop is called
func (t *ConsoleUI) Listen() error {
	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return fmt.Errorf("terminal main loop: %w", err)
	}
	return nil
}

//Stop asks the main loop to return, safe to call from any goroutine
func (t *ConsoleUI) Stop() {
	t.g.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Close restores the terminal
func (t *ConsoleUI) Close() error {
	t.g.Close()
	return nil
}

//Write buffers a part of the frame
func (t *ConsoleUI) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

//Flush hands the frame over to the main loop
func (t *ConsoleUI) Flush() error {
	data := bytes.Clone(t.buf.Bytes())
	t.buf.Reset()
	if t.frame.put(data) {
		t.g.Update(t.renderField)
	}
	return nil
}

func (t *ConsoleUI) renderField(g *gocui.Gui) error {
	data := t.frame.take()

	v, e := g.View("world")
	if e != nil {
		//the terminal is too small to show the world
		return nil
	}
	//the entire field is redrawing at once
	v.Clear()
	_, _ = v.Write(data)
	return nil
}

func (t *ConsoleUI) renderStatus() {
	if v, e := t.g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", pauseDescr[t.hub.Pause.Paused()]))
		_, _ = fmt.Fprintln(v, t.renderProp("Speed", "x%g", t.hub.TimeScale.Scale()))
	}
}

func (t *ConsoleUI) renderConfiguration() {
	if v, e := t.g.View("configuration"); e == nil {
		v.Clear()
		for _, k := range sortedKeys(t.conf) {
			_, _ = fmt.Fprintln(v, t.renderProp(k, "%v", t.conf[k]))
		}
	}
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("world")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("world", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "World"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, helpLine(t.k))
	}

	return nil
}

func helpLine(k []keyBindings) string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, kb := range k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(kb.name).String())
		b.WriteString(": ")
		b.WriteString(kb.descr)
	}
	return b.String()
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}
