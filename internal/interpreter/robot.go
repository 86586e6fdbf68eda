package interpreter

import "fmt"

// Robot holds the simulator state: position, facing, and whether a valid
// PLACE has happened yet. Until then every transition except Place is a
// no-op, and once set Placed never reverts.
//
// Invariant: whenever Placed is true, (X, Y) lies on the table. Transitions
// that would break this are rejected whole, never partially applied.
type Robot struct {
	X, Y   int
	Facing Facing
	Placed bool

	table Table
}

func NewRobot() *Robot {
	return &Robot{table: NewTable()}
}

// Place puts the robot at (x, y) facing f. Unrecognized facings and
// out-of-bounds positions leave the state completely untouched.
func (r *Robot) Place(x, y int, f Facing) {
	if f < North || f > West {
		return
	}
	if !r.table.InBounds(x, y) {
		return
	}
	r.X, r.Y, r.Facing = x, y, f
	r.Placed = true
}

// Move advances one unit in the current facing. Moves that would take the
// robot off the table are ignored.
func (r *Robot) Move() {
	if !r.Placed {
		return
	}
	dx, dy := r.Facing.Delta()
	nx, ny := r.X+dx, r.Y+dy
	if !r.table.InBounds(nx, ny) {
		return
	}
	r.X, r.Y = nx, ny
}

// Left rotates the robot 90 degrees counter-clockwise.
func (r *Robot) Left() {
	if !r.Placed {
		return
	}
	r.Facing = r.Facing.Left()
}

// Right rotates the robot 90 degrees clockwise.
func (r *Robot) Right() {
	if !r.Placed {
		return
	}
	r.Facing = r.Facing.Right()
}

// Report returns the current position and facing. ok is false until the
// robot has been placed.
func (r *Robot) Report() (x, y int, f Facing, ok bool) {
	if !r.Placed {
		return 0, 0, North, false
	}
	return r.X, r.Y, r.Facing, true
}

func (r *Robot) String() string {
	if !r.Placed {
		return "(unplaced)"
	}
	return fmt.Sprintf("(%d,%d,%s)", r.X, r.Y, r.Facing)
}
