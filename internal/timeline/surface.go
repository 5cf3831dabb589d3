package timeline

import "github.com/showctl/cueline/internal/theme"

// Align selects horizontal text placement within a rect.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is the abstract drawing capability the timeline renders
// through. The engine computes rectangles, colors and strings; it never
// rasterizes. Coordinates are screen pixels (the engine has already
// applied its scale).
type Surface interface {
	// FillRect fills a rectangle; rounded asks for softened corners where
	// the backend can manage them.
	FillRect(r Rect, c theme.Color, rounded bool)
	// StrokeRect outlines a rectangle.
	StrokeRect(r Rect, c theme.Color)
	// Line draws a straight line between two points.
	Line(x1, y1, x2, y2 float64, c theme.Color)
	// Text draws a single line of text inside r with the given alignment,
	// clipped to r.
	Text(r Rect, align Align, c theme.Color, text string)
	// TextWidth measures the rendered width of text in pixels.
	TextWidth(text string) float64
}

// Ruler painting offsets, matching the marking label inset inside the
// ruler band.
const (
	rulerLabelLeftOffset = 3
	rulerLabelTopOffset  = 2
)

// Render paints the whole timeline onto s: background, the seek gutter,
// every row's elements with their hover/selected state, ruler markings,
// row separators, and the playhead. Elements whose length is transiently
// negative mid-drag are skipped entirely.
func (t *Timeline) Render(s Surface, width, height float64) {
	s.FillRect(Rect{W: width, H: height}, theme.Background, false)

	y := 0.0
	for _, row := range t.rows {
		if row.Kind() == RowTime {
			s.FillRect(Rect{Y: y, W: width, H: SeekGutterHeight}, theme.Gutter, false)
		}
		for _, e := range row.Elements() {
			r := t.ElementRect(row, y, e)
			if r.W <= 0 {
				continue
			}
			e.Paint(s, r, t.stateOf(e))
			if ruler, ok := e.(Ruler); ok {
				t.paintMarkings(s, ruler, r)
			}
		}
		y += row.Height()
		s.Line(0, y, width, y, theme.Outline)
	}

	x := float64(t.playhead) * t.scale
	s.Line(x, 0, x, y, theme.Playhead)
}

func (t *Timeline) stateOf(e Element) State {
	switch e.ID() {
	case t.selected:
		return StateSelected
	case t.hovering:
		return StateHovering
	default:
		return StateNone
	}
}

// paintMarkings draws a ruler's ticks over its band: labeled markings get
// their label (when it fits the per-ruler label slot) and a full-height
// line, unlabeled ones a half-height line.
func (t *Timeline) paintMarkings(s Surface, ruler Ruler, band Rect) {
	labelWidth := ruler.MarkingLabelWidth() * t.scale
	for _, m := range ruler.Markings() {
		x := m.Pos * t.scale
		if m.Label == "" {
			s.Line(x, band.Y+band.H/2, x, band.Y+band.H, theme.Ruler)
			continue
		}
		slot := Rect{
			X: x + rulerLabelLeftOffset,
			Y: band.Y + rulerLabelTopOffset,
			W: labelWidth - rulerLabelLeftOffset,
			H: band.H / 2,
		}
		if s.TextWidth(m.Label)+rulerLabelLeftOffset < slot.W {
			s.Text(slot, AlignLeft, theme.Text, m.Label)
		}
		s.Line(x, band.Y, x, band.Y+band.H, theme.Ruler)
	}
}
