package view

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/gosuri/uilive"

	"lifegame/src/signal"
)

//ConsoleOut is the line oriented front end
//frames are redrawn in place by uilive, commands are read from the input one rune at a time
type ConsoleOut struct {
	hub  *signal.Hub
	w    *uilive.Writer
	in   io.Reader
	log  *slog.Logger
	stop chan struct{}
	once sync.Once
}

//NewConsoleOut prints the running configuration to out, the frames follow it
func NewConsoleOut(hub *signal.Hub, in io.Reader, out io.Writer, conf map[string]interface{}, log *slog.Logger) *ConsoleOut {
	w := uilive.New()
	w.Out = out
	_, _ = fmt.Fprintln(out, "Running configuration:")
	printHashData(out, conf)
	_, _ = fmt.Fprintln(out)
	return &ConsoleOut{hub: hub, w: w, in: in, log: log, stop: make(chan struct{})}
}

func (c *ConsoleOut) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

func (c *ConsoleOut) Flush() error {
	return c.w.Flush()
}

//Listen dispatches the commands read from the input until the user quits or Stop is called
//the reading goroutine stays blocked on the input after Stop, it ends with the process
func (c *ConsoleOut) Listen() error {
	done := make(chan error, 1)
	go func() {
		done <- ListenKeys(c.in, c.hub, c.log)
	}()
	select {
	case err := <-done:
		if err != nil || c.hub.Quit.Get() {
			return err
		}
		//the input is closed, the simulation goes on without keys
		<-c.stop
		return nil
	case <-c.stop:
		return nil
	}
}

func (c *ConsoleOut) Stop() {
	c.once.Do(func() { close(c.stop) })
}

func (c *ConsoleOut) Close() error {
	return nil
}

//Summary prints the results below the last frame
func (c *ConsoleOut) Summary(d map[string]interface{}) {
	_, _ = fmt.Fprintln(c.w.Out, "\nFinished:")
	printHashData(c.w.Out, d)
}

//ListenKeys reads runes from r and dispatches their commands to the hub
//it returns on the quit command or at the end of the input, unknown keys are ignored
func ListenKeys(r io.Reader, hub *signal.Hub, log *slog.Logger) error {
	br := bufio.NewReader(r)
	for {
		key, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			log.Debug("key input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading keys: %w", err)
		}
		cmd := signal.CommandForKey(key)
		if cmd == signal.CmdNone {
			continue
		}
		log.Debug("key command", "command", cmd.String())
		if hub.Dispatch(cmd) {
			return nil
		}
	}
}

func printHashData(w io.Writer, d map[string]interface{}) {
	for _, propName := range sortedKeys(d) {
		_, _ = fmt.Fprintf(w, "  %s: %v\n", propName, d[propName])
	}
}

func sortedKeys(d map[string]interface{}) []string {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	return propNames
}
