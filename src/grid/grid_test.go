package grid

import (
	"slices"
	"testing"
)

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestNew(t *testing.T) {
	g := New[int](Shape{3, 4})
	if g.Size() != 12 || g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("unexpected geometry: size %v shape %v", g.Size(), g.Shape())
	}
	for e := range g.Elements() {
		if e != 0 {
			t.Fatalf("expected zero value, got %v", e)
		}
	}

	empty := New[int](Shape{0, 5})
	if empty.Size() != 0 {
		t.Errorf("expected empty grid, got size %v", empty.Size())
	}

	mustPanic(t, "overflow", func() { New[byte](Shape{maxInt, 3}) })
	mustPanic(t, "negative", func() { New[byte](Shape{-1, 3}) })
}

func TestIndexing(t *testing.T) {
	g := FromSlice(Shape{2, 3}, []int{0, 1, 2, 3, 4, 5})
	if g.At(1, 2) != 5 || g.At(0, 1) != 1 {
		t.Errorf("row-major order broken")
	}
	g.Set(1, 0, 30)
	*g.Ptr(0, 0) = 10
	if g.At(1, 0) != 30 || g.At(0, 0) != 10 {
		t.Errorf("Set/Ptr did not store the value")
	}

	mustPanic(t, "row", func() { g.At(2, 0) })
	mustPanic(t, "col", func() { g.At(0, 3) })
	mustPanic(t, "negative", func() { g.Set(-1, 0, 1) })
	mustPanic(t, "FromSlice", func() { FromSlice(Shape{2, 2}, []int{1}) })
}

func TestWrappingAt(t *testing.T) {
	g := FromSlice(Shape{2, 3}, []int{0, 1, 2, 3, 4, 5})
	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 0},
		{-1, -1, 5},
		{2, 3, 0},
		{-3, 4, 4},
		{-2001, -3001, 5},
		{1000001, 1000000, 4},
	}
	for _, tt := range tests {
		if got := g.WrappingAt(tt.row, tt.col); got != tt.want {
			t.Errorf("WrappingAt(%v, %v) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestOverwrite(t *testing.T) {
	src := FromSlice(Shape{2, 2}, []int{1, 2, 3, 4})
	dst := New[int](Shape{2, 2})
	src.Overwrite(dst)
	if !slices.Equal(slices.Collect(dst.Elements()), []int{1, 2, 3, 4}) {
		t.Errorf("same shape overwrite failed")
	}

	wide := New[int](Shape{3, 3})
	src.Overwrite(wide)
	if !slices.Equal(slices.Collect(wide.Elements()), []int{1, 2, 0, 3, 4, 0, 0, 0, 0}) {
		t.Errorf("larger destination overwrite failed: %v", slices.Collect(wide.Elements()))
	}

	mustPanic(t, "small destination", func() { wide.Overwrite(dst) })
}

func TestIterators(t *testing.T) {
	g := FromSlice(Shape{2, 2}, []string{"a", "b", "c", "d"})

	//restartable
	for i := 0; i < 2; i++ {
		if got := slices.Collect(g.Elements()); !slices.Equal(got, []string{"a", "b", "c", "d"}) {
			t.Errorf("pass %d: Elements = %v", i, got)
		}
	}

	var idx []Index
	for i, e := range g.ElementsWithIndex() {
		if g.At(i.Row, i.Col) != e {
			t.Errorf("index %v does not match element %v", i, e)
		}
		idx = append(idx, i)
	}
	if !slices.Equal(idx, []Index{{0, 0}, {0, 1}, {1, 0}, {1, 1}}) {
		t.Errorf("unexpected indexes %v", idx)
	}

	rows := 0
	for r := range g.IterRows() {
		if len(r) != 2 {
			t.Errorf("row length %v", len(r))
		}
		rows++
	}
	if rows != 2 {
		t.Errorf("expected 2 rows, got %v", rows)
	}

	for range g.Elements() {
		break
	}

	c := g.Clone()
	c.Set(0, 0, "z")
	if g.At(0, 0) != "a" {
		t.Errorf("Clone shares storage")
	}
}
