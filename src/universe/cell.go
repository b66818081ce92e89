package universe

type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

func (c Cell) IsAlive() bool {
	return c == Alive
}

//Die kills the cell, reports whether the state has changed
func (c *Cell) Die() (changed bool) {
	changed = *c == Alive
	*c = Dead
	return
}

//Revive brings the cell to life, reports whether the state has changed
func (c *Cell) Revive() (changed bool) {
	changed = *c == Dead
	*c = Alive
	return
}

func (c Cell) String() string {
	if c {
		return "alive"
	}
	return "dead"
}
