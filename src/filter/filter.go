/*
Package filter turns cells into printable views.

All the views of one filter have the same display width, two terminal columns,
so the rows of the grid stay aligned.
*/
package filter

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"

	"lifegame/src/universe"
)

//Filter maps a cell to its view
type Filter interface {
	Filter(c universe.Cell) string
}

//pair is the filter holding the precomputed views
type pair struct {
	dead  string
	alive string
}

func (p pair) Filter(c universe.Cell) string {
	if c.IsAlive() {
		return p.alive
	}
	return p.dead
}

//Bit shows cells as green digits
func Bit() Filter {
	return pair{
		dead:  aurora.Green("0 ").Faint().String(),
		alive: aurora.Green("1 ").Bold().String(),
	}
}

//Block shows live cells as full blocks
func Block() Filter {
	return pair{dead: "  ", alive: "██"}
}

//Hanzi shows cells as the characters for death and life
func Hanzi() Filter {
	return pair{
		dead:  aurora.Faint("死").String(),
		alive: aurora.Bold("生").String(),
	}
}

var colors = map[string]aurora.Color{
	"black":   aurora.BlackBg,
	"red":     aurora.RedBg,
	"green":   aurora.GreenBg,
	"yellow":  aurora.YellowBg,
	"blue":    aurora.BlueBg,
	"magenta": aurora.MagentaBg,
	"cyan":    aurora.CyanBg,
	"white":   aurora.WhiteBg,
}

//ColorNames returns the color names accepted by Dye
func ColorNames() []string {
	names := make([]string, 0, len(colors))
	for k := range colors {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//Dye shows cells as blocks with the named background colors
func Dye(dead string, alive string) (Filter, error) {
	d, ok := colors[strings.ToLower(dead)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q, expected one of %v", dead, ColorNames())
	}
	a, ok := colors[strings.ToLower(alive)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q, expected one of %v", alive, ColorNames())
	}
	return pair{
		dead:  aurora.Colorize("  ", d).String(),
		alive: aurora.Colorize("  ", a).String(),
	}, nil
}

var (
	deadEmoji  = []string{"🤢", "🥶", "🥵", "😡", "🤬", "😈", "👿", "🤡", "👻"}
	aliveEmoji = []string{"🤣", "😊", "🥰", "😍", "🤗", "🤭", "😋", "🤤", "😤"}
)

//Emoji shows cells as a random pair of faces
func Emoji(rng *rand.Rand) Filter {
	return pair{
		dead:  deadEmoji[rng.IntN(len(deadEmoji))],
		alive: aliveEmoji[rng.IntN(len(aliveEmoji))],
	}
}

//Names lists the filters accepted by New
var Names = []string{"bit", "block", "dye", "emoji", "hanzi"}

//New creates the filter by name, the colors are used by dye only
func New(name string, colorDead string, colorAlive string, rng *rand.Rand) (Filter, error) {
	switch strings.ToLower(name) {
	case "bit":
		return Bit(), nil
	case "block":
		return Block(), nil
	case "dye":
		return Dye(colorDead, colorAlive)
	case "emoji":
		return Emoji(rng), nil
	case "hanzi":
		return Hanzi(), nil
	}
	return nil, fmt.Errorf("unknown filter %q, expected one of %v", name, Names)
}
