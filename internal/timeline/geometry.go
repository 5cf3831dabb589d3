package timeline

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle. A rect
// with non-positive width or height contains nothing, so an element whose
// length has gone transiently negative mid-drag cannot be hit.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right is the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// adjusted mirrors QRect.adjusted: it offsets the edges by the given
// deltas.
func (r Rect) adjusted(dx1, dy1, dx2, dy2 float64) Rect {
	return Rect{
		X: r.X + dx1,
		Y: r.Y + dy1,
		W: r.W + dx2 - dx1,
		H: r.H + dy2 - dy1,
	}
}

// ElementRect projects an element of the given row, stacked at rowY, into
// screen space. This is the single unit-to-screen transform: all
// hit-testing and painting route through it, so zooming changes only the
// projection, never the stored start/length.
//
// Time rows reserve their top SeekGutterHeight strip for playhead
// scrubbing; their elements occupy the ruler band below it, so grabbing a
// ruler segment and scrubbing the playhead never compete for the same
// pixels.
func (t *Timeline) ElementRect(row *Row, rowY float64, e Element) Rect {
	if row.Kind() == RowTime {
		return Rect{
			X: e.Start() * t.scale,
			Y: rowY + SeekGutterHeight,
			W: e.Length() * t.scale,
			H: row.Height() - SeekGutterHeight,
		}
	}
	return Rect{
		X: e.Start() * t.scale,
		Y: rowY + RowPadding/2,
		W: e.Length() * t.scale,
		H: row.Height() - RowPadding,
	}
}

// RowOffset is the vertical offset of rows[i]: the sum of the heights of
// the rows above it.
func (t *Timeline) RowOffset(i int) float64 {
	y := 0.0
	for j := 0; j < i && j < len(t.rows); j++ {
		y += t.rows[j].Height()
	}
	return y
}

// Height is the total stacked height of all rows.
func (t *Timeline) Height() float64 {
	return t.RowOffset(len(t.rows))
}

// rowAt returns the row covering the vertical position y, or nil.
func (t *Timeline) rowAt(y float64) *Row {
	offset := 0.0
	for _, row := range t.rows {
		offset += row.Height()
		if y < offset {
			return row
		}
	}
	return nil
}

// leftHandleRect is the grab band around an element's left edge:
// ResizeOuterBound pixels outside it and ResizeInnerBound inside.
func leftHandleRect(r Rect) Rect {
	return r.adjusted(-ResizeOuterBound, 0, ResizeInnerBound-r.W, 0)
}

// rightHandleRect mirrors leftHandleRect on the right edge.
func rightHandleRect(r Rect) Rect {
	return r.adjusted(r.W-ResizeInnerBound, 0, ResizeOuterBound, 0)
}
