package signal

import "unicode"

//Command is a control request issued by the user
type Command int

const (
	CmdNone Command = iota
	CmdFaster
	CmdSlower
	CmdReset
	CmdFlip
	CmdPause
	CmdQuit
)

//Binding describes the key of a command, used to build the key handlers and the help line
type Binding struct {
	Key   rune
	Name  string
	Descr string
	Cmd   Command
}

//Bindings lists the keys recognized by the listeners, Ctrl-C is an extra quit key
var Bindings = []Binding{
	{'j', "J", "Faster", CmdFaster},
	{'k', "K", "Slower", CmdSlower},
	{'r', "R", "Reset", CmdReset},
	{'f', "F", "Flip a cell", CmdFlip},
	{'p', "P", "Pause/Resume", CmdPause},
	{'q', "Q", "Quit", CmdQuit},
}

//CommandForKey maps a key to its command, case insensitive
func CommandForKey(key rune) Command {
	key = unicode.ToLower(key)
	for _, b := range Bindings {
		if b.Key == key {
			return b.Cmd
		}
	}
	return CmdNone
}

func (c Command) String() string {
	switch c {
	case CmdFaster:
		return "faster"
	case CmdSlower:
		return "slower"
	case CmdReset:
		return "reset"
	case CmdFlip:
		return "flip"
	case CmdPause:
		return "pause"
	case CmdQuit:
		return "quit"
	}
	return "none"
}

//Dispatch applies the command to the hub, reports whether the listener should stop
func (h *Hub) Dispatch(cmd Command) (quit bool) {
	switch cmd {
	case CmdFaster:
		h.TimeScale.Increment()
	case CmdSlower:
		h.TimeScale.Decrement()
	case CmdReset:
		h.Reset.Set()
	case CmdFlip:
		h.Flip.Set()
	case CmdPause:
		h.Pause.Toggle()
	case CmdQuit:
		h.RequestQuit()
		return true
	}
	return false
}
