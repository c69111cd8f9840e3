package walker

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MaxDisplayCells bounds the area Display is willing to draw.
const MaxDisplayCells = 1 << 20

var ErrTooLarge = errors.New("walk too large to display")

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")) // Grey
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))  // Green
	startStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")) // Bright yellow
	endStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // Bright red
	repeatStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))  // Bright magenta
)

// Display draws every visited cell inside the walk's bounding box, north
// at the top:
//
//	S origin, E current position, X first repeat, # visited, . never visited
func (w *Walker) Display(out io.Writer) error {
	width := uint64(w.max.X) - uint64(w.min.X) + 1
	height := uint64(w.max.Y) - uint64(w.min.Y) + 1
	if width > MaxDisplayCells || height > MaxDisplayCells || width*height > MaxDisplayCells {
		return ErrTooLarge
	}
	var b strings.Builder
	for row := uint64(0); row < height; row++ {
		y := w.max.Y - int64(row)
		for col := uint64(0); col < width; col++ {
			b.WriteString(w.glyph(Position{X: w.min.X + int64(col), Y: y}))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func (w *Walker) glyph(p Position) string {
	switch {
	case w.repeat != nil && p == *w.repeat:
		return repeatStyle.Render("X")
	case p == w.Position:
		return endStyle.Render("E")
	case p == (Position{}):
		return startStyle.Render("S")
	case w.Visited(p):
		return pathStyle.Render("#")
	}
	return emptyStyle.Render(".")
}
