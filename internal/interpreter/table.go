package interpreter

// Table dimensions are fixed at compile time.
const (
	TableWidth  = 5
	TableHeight = 5
)

// Table is the bounded grid the robot moves on. Coordinates grow east (x)
// and north (y) from the origin corner (0,0).
type Table struct {
	Width, Height int
}

func NewTable() Table {
	return Table{Width: TableWidth, Height: TableHeight}
}

func (t Table) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}
