package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/showctl/cueline/internal/theme"
	"github.com/showctl/cueline/internal/timeline"
)

// cell is one terminal character cell of the timeline grid.
type cell struct {
	r  rune
	fg theme.Color
	bg theme.Color
}

// cellSurface implements timeline.Surface on a terminal character grid.
//
// The engine paints in pixel space; the surface quantizes every rectangle
// and line to cells at PxPerColumn × PxPerRow density. originX shifts the
// visible window so the host's horizontal scroll offset is applied during
// rasterization rather than inside the engine.
type cellSurface struct {
	cols, rows int
	originX    float64
	cells      []cell
}

func newCellSurface(cols, rows int, originX float64) *cellSurface {
	s := &cellSurface{cols: cols, rows: rows, originX: originX}
	s.cells = make([]cell, cols*rows)
	for i := range s.cells {
		s.cells[i] = cell{r: ' ', fg: theme.Text, bg: theme.Background}
	}
	return s
}

func (s *cellSurface) colAt(x float64) int { return int((x - s.originX) / PxPerColumn) }
func (s *cellSurface) rowAt(y float64) int { return int(y / PxPerRow) }

func (s *cellSurface) set(col, row int, c cell) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	s.cells[row*s.cols+col] = c
}

func (s *cellSurface) at(col, row int) cell {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return cell{r: ' ', fg: theme.Text, bg: theme.Background}
	}
	return s.cells[row*s.cols+col]
}

// FillRect fills the covered cells with the color as background. Rounded
// corners do not survive cell quantization, so the flag is ignored.
func (s *cellSurface) FillRect(r timeline.Rect, c theme.Color, rounded bool) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	col0, col1 := s.colAt(r.X), s.colAt(r.Right())
	row0, row1 := s.rowAt(r.Y), s.rowAt(r.Y+r.H)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			s.set(col, row, cell{r: ' ', fg: theme.Text, bg: c})
		}
	}
}

// StrokeRect tints the outline color into the edge cells' foreground so a
// later Text call inside the rect still wins the cell's rune.
func (s *cellSurface) StrokeRect(r timeline.Rect, c theme.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	col0, col1 := s.colAt(r.X), s.colAt(r.Right())-1
	row0, row1 := s.rowAt(r.Y), s.rowAt(r.Y+r.H)-1
	if col1 < col0 || row1 < row0 {
		return
	}
	for col := col0; col <= col1; col++ {
		s.edge(col, row0, '▔', c)
		s.edge(col, row1, '▁', c)
	}
	for row := row0; row <= row1; row++ {
		s.edge(col0, row, '▏', c)
		s.edge(col1, row, '▕', c)
	}
}

// edge writes an outline rune only into an empty cell, keeping its
// background.
func (s *cellSurface) edge(col, row int, r rune, c theme.Color) {
	existing := s.at(col, row)
	if existing.r != ' ' {
		return
	}
	s.set(col, row, cell{r: r, fg: c, bg: existing.bg})
}

// Line draws an axis-aligned line; the engine never asks for diagonals.
func (s *cellSurface) Line(x1, y1, x2, y2 float64, c theme.Color) {
	switch {
	case x1 == x2:
		col := s.colAt(x1)
		row0, row1 := s.rowAt(y1), s.rowAt(y2)
		if row1 < row0 {
			row0, row1 = row1, row0
		}
		for row := row0; row <= row1; row++ {
			existing := s.at(col, row)
			s.set(col, row, cell{r: '│', fg: c, bg: existing.bg})
		}
	case y1 == y2:
		row := s.rowAt(y1)
		col0, col1 := s.colAt(x1), s.colAt(x2)
		if col1 < col0 {
			col0, col1 = col1, col0
		}
		for col := col0; col <= col1; col++ {
			existing := s.at(col, row)
			s.set(col, row, cell{r: '─', fg: c, bg: existing.bg})
		}
	}
}

// Text writes one line of text into the vertical center of r, clipped to
// the rect's cell span.
func (s *cellSurface) Text(r timeline.Rect, align timeline.Align, c theme.Color, text string) {
	if r.W <= 0 || r.H <= 0 || text == "" {
		return
	}
	col0, col1 := s.colAt(r.X), s.colAt(r.Right())
	width := col1 - col0
	if width <= 0 {
		return
	}
	text = runewidth.Truncate(text, width, "")
	row := s.rowAt(r.Y + r.H/2)

	col := col0
	if align == timeline.AlignCenter {
		col = col0 + (width-runewidth.StringWidth(text))/2
	}
	for _, rn := range text {
		existing := s.at(col, row)
		s.set(col, row, cell{r: rn, fg: c, bg: existing.bg})
		col += runewidth.RuneWidth(rn)
	}
}

// TextWidth measures text in timeline pixels at the surface's density.
func (s *cellSurface) TextWidth(text string) float64 {
	return float64(runewidth.StringWidth(text)) * PxPerColumn
}

// View renders the grid to a styled string, one lipgloss segment per run
// of identically colored cells.
func (s *cellSurface) View() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for col < s.cols {
			start := s.at(col, row)
			var run strings.Builder
			for col < s.cols {
				c := s.at(col, row)
				if c.fg != start.fg || c.bg != start.bg {
					break
				}
				run.WriteRune(c.r)
				col++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(start.fg))).
				Background(lipgloss.Color(string(start.bg)))
			b.WriteString(style.Render(run.String()))
		}
	}
	return b.String()
}
