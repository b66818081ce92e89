package filter

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"lifegame/src/universe"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

//columns approximates the display width: wide runes (emoji, hanzi) take two columns
func columns(s string) int {
	n := 0
	for _, r := range ansi.ReplaceAllString(s, "") {
		if utf8.RuneLen(r) >= 3 && r != '█' {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func TestFiltersKeepWidth(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, name := range Names {
		f, err := New(name, "red", "Blue", rng)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		dead, alive := f.Filter(universe.Dead), f.Filter(universe.Alive)
		if dead == alive {
			t.Errorf("%s: views are not distinct", name)
		}
		if columns(dead) != 2 || columns(alive) != 2 {
			t.Errorf("%s: widths %v and %v, want 2", name, columns(dead), columns(alive))
		}
	}
}

func TestDye(t *testing.T) {
	f, err := Dye("green", "white")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(f.Filter(universe.Dead), "42") || !strings.Contains(f.Filter(universe.Alive), "47") {
		t.Errorf("unexpected escapes %q %q", f.Filter(universe.Dead), f.Filter(universe.Alive))
	}
	if _, err := Dye("purple", "white"); err == nil {
		t.Errorf("unknown color accepted")
	}
}

func TestUnknownFilter(t *testing.T) {
	if _, err := New("ascii", "green", "white", nil); err == nil {
		t.Errorf("unknown filter accepted")
	}
}
