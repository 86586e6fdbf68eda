package interpreter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	robotStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	borderStyle = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Render draws the table with the robot shown as ^ > v < depending on
// facing. The top row is the highest y, the origin the bottom-left corner.
// Purely a debugging aid; it reads the state and never mutates it.
func (t Table) Render(r *Robot) string {
	var b strings.Builder
	border := borderStyle.Render("+" + strings.Repeat("---+", t.Width))

	for y := t.Height - 1; y >= 0; y-- {
		b.WriteString(border)
		b.WriteByte('\n')
		for x := 0; x < t.Width; x++ {
			b.WriteString(borderStyle.Render("|"))
			if r.Placed && r.X == x && r.Y == y {
				b.WriteString(" " + robotStyle.Render(r.Facing.Glyph()) + " ")
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(borderStyle.Render("|"))
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')

	if x, y, f, ok := r.Report(); ok {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Robot: %d,%d,%s", x, y, f)))
	} else {
		b.WriteString(statusStyle.Render("Robot not placed."))
	}
	return b.String()
}
