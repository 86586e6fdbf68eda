package interpreter

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering assertions need byte-stable output regardless of the terminal
// the tests run under.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRenderUnplaced(t *testing.T) {
	out := NewTable().Render(NewRobot())
	lines := strings.Split(out, "\n")

	// 5 cell rows with a border above each, the closing border, the footer.
	require.Len(t, lines, 2*TableHeight+2)
	assert.Equal(t, "+---+---+---+---+---+", lines[0])
	assert.Equal(t, "Robot not placed.", lines[len(lines)-1])
	assert.NotContains(t, out, "^")
}

func TestRenderPlacedRobot(t *testing.T) {
	r := NewRobot()
	r.Place(1, 2, East)
	lines := strings.Split(NewTable().Render(r), "\n")

	// Top cell row is y=4; the row for y sits at index 2*(Height-1-y)+1.
	row := lines[2*(TableHeight-1-2)+1]
	assert.Equal(t, "|   | > |   |   |   |", row)
	assert.Equal(t, "Robot: 1,2,EAST", lines[len(lines)-1])
}

func TestRenderGlyphsByFacing(t *testing.T) {
	glyphs := map[Facing]string{North: "^", South: "v", East: ">", West: "<"}
	for f, g := range glyphs {
		r := NewRobot()
		r.Place(0, 0, f)
		out := NewTable().Render(r)
		assert.Contains(t, out, " "+g+" ", "facing %v", f)
	}
}
