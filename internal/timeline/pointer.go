package timeline

// pointer.go is the interaction state machine. Hosts feed it raw pointer
// events in screen coordinates (already corrected for their own scroll
// offset); the machine mutates elements and fires the notifiers.
//
// States: idle, potential-move (pressed on an element, not yet moved),
// moving, resizing, seeking. Entering "moving" is deferred to the first
// pointer-move after the press so a click without a drag still registers
// as a selection. Releasing the button always commits the current
// geometry; there is no cancel gesture.

type dragKind int

const (
	dragNone dragKind = iota
	dragPotentialMove
	dragMove
	dragResize
	dragSeek
)

type drag struct {
	kind      dragKind
	elem      Element
	row       *Row
	anchorX   float64
	oldStart  float64
	oldLength float64
	// leftHandle is fixed for the whole resize gesture: the press position
	// compared against the element's pre-drag midpoint.
	leftHandle bool
	moved      bool
}

// PointerMove handles pointer motion, pressed or not: it recomputes the
// hover and resize-handle affordances and advances any active drag.
func (t *Timeline) PointerMove(x, y float64) {
	t.updateHover(x, y)

	switch t.drag.kind {
	case dragResize:
		t.dragResize(x)
	case dragMove:
		t.dragMove(x, y)
	case dragPotentialMove:
		// First motion after the press: promote to an actual move,
		// anchored here.
		t.drag.kind = dragMove
		t.drag.anchorX = x
		t.drag.oldStart = t.drag.elem.Start()
		t.dragMove(x, y)
	case dragSeek:
		if t.inSeekGutter(y) {
			t.seekTo(x)
		}
	}
	t.Changed.notify()
}

// PointerDown handles a primary-button press.
func (t *Timeline) PointerDown(x, y float64) {
	switch {
	case t.inSeekGutter(y):
		t.drag = drag{kind: dragSeek}
		t.seekTo(x)
	case t.potentialResize != 0:
		e := t.byID(t.potentialResize)
		if e == nil {
			break
		}
		row, _ := t.rowOf(e)
		t.drag = drag{
			kind:       dragResize,
			elem:       e,
			row:        row,
			anchorX:    x,
			oldStart:   e.Start(),
			oldLength:  e.Length(),
			leftHandle: x < (e.Start()+e.Length()/2)*t.scale,
		}
	case t.hovering != 0:
		e := t.byID(t.hovering)
		if e == nil {
			break
		}
		row, _ := t.rowOf(e)
		t.drag = drag{kind: dragPotentialMove, elem: e, row: row}
	}
	t.Changed.notify()
}

// PointerUp handles the primary-button release: it commits an active
// resize or move, or resolves a click into a selection change.
func (t *Timeline) PointerUp(x, y float64) {
	switch t.drag.kind {
	case dragResize:
		t.finishResize()
		t.drag = drag{}
		t.commit()
	case dragMove:
		t.drag.row.resort()
		t.drag = drag{}
		t.commit()
	case dragPotentialMove:
		// Pressed on an element and never moved: plain click selects it.
		t.selected = t.drag.elem.ID()
		t.drag = drag{}
		t.Changed.notify()
	case dragSeek:
		t.drag = drag{}
		t.Changed.notify()
	default:
		// Pressed over empty space: clear the selection.
		t.selected = 0
		t.Changed.notify()
	}
}

// ResizeCursor reports whether the host should show a horizontal-resize
// cursor affordance.
func (t *Timeline) ResizeCursor() bool {
	return t.potentialResize != 0 || t.drag.kind == dragResize
}

// Dragging reports whether a move, resize or seek gesture is in flight.
func (t *Timeline) Dragging() bool {
	return t.drag.kind == dragMove || t.drag.kind == dragResize || t.drag.kind == dragSeek
}

// updateHover recomputes the hovered element and the armed resize handle.
// Both scans run in deterministic order (rows in stacking order, elements
// by start); the first hit wins, and per element the left band is checked
// before the right one.
func (t *Timeline) updateHover(x, y float64) {
	t.hovering = 0
	t.forEachElement(func(_ *Row, e Element, r Rect) bool {
		if r.Contains(x, y) {
			t.hovering = e.ID()
			return false
		}
		return true
	})

	t.potentialResize = 0
	t.forEachElement(func(_ *Row, e Element, r Rect) bool {
		if leftHandleRect(r).Contains(x, y) || rightHandleRect(r).Contains(x, y) {
			t.potentialResize = e.ID()
			return false
		}
		return true
	})
}

// dragResize applies the pointer delta to whichever handle the gesture
// grabbed. Left-handle drags adjust start and length inversely so the
// right edge stays put; right-handle drags adjust length only. The moving
// edge then snaps against every candidate except the element itself.
// Negative lengths are tolerated here and corrected at release.
func (t *Timeline) dragResize(x float64) {
	d := &t.drag
	e := d.elem
	delta := (x - d.anchorX) / t.scale
	if d.leftHandle {
		start := d.oldStart + delta
		length := d.oldLength - delta
		if snapped, ok := t.snap(start, e); ok {
			length += start - snapped
			start = snapped
		}
		e.SetStart(start)
		e.SetLength(length)
	} else {
		length := d.oldLength + delta
		if snapped, ok := t.snap(d.oldStart+length, e); ok {
			length = snapped - d.oldStart
		}
		e.SetLength(length)
	}
	d.moved = true
	d.row.resort()
}

// finishResize normalizes the committed geometry: a crossed-over handle
// flips the sign and shifts start left, then the kind's minimum length is
// enforced.
func (t *Timeline) finishResize() {
	e := t.drag.elem
	if e.Length() < 0 {
		e.SetLength(-e.Length())
		e.SetStart(e.Start() - e.Length())
	}
	if e.Length() < e.MinLength() {
		e.SetLength(e.MinLength())
	}
	t.drag.row.resort()
}

// dragMove shifts the element by the pointer delta, snapping its start,
// and reassigns it to the row under the pointer when that row accepts its
// kind.
func (t *Timeline) dragMove(x, y float64) {
	d := &t.drag
	start := d.oldStart + (x-d.anchorX)/t.scale
	if snapped, ok := t.snap(start, d.elem); ok {
		start = snapped
	}
	d.elem.SetStart(start)
	d.moved = true
	d.row.resort()

	if target := t.rowAt(y); target != nil && target != d.row && target.CanContainElement(d.elem) {
		d.row.remove(d.elem)
		target.add(d.elem)
		d.row = target
	}
}

// inSeekGutter reports whether y falls in the seek strip at the top of
// the first Time row.
func (t *Timeline) inSeekGutter(y float64) bool {
	offset := 0.0
	for _, row := range t.rows {
		if row.Kind() == RowTime {
			return y >= offset && y < offset+SeekGutterHeight
		}
		offset += row.Height()
	}
	return false
}

// seekTo scrubs the playhead to the timeline position under x.
func (t *Timeline) seekTo(x float64) {
	t.SetPlayhead(x / t.scale)
}

// Zoom applies a modifier-wheel zoom step anchored at pointerX (a screen
// position including the host's scroll offset) and returns the corrected
// scroll offset that keeps the timeline position under the pointer
// stationary.
func (t *Timeline) Zoom(wheelDelta, pointerX, scroll float64) float64 {
	oldScale := t.scale
	t.SetScale(t.scale * (1 + wheelDelta*ScrollScaleMultiplier))
	t.Changed.notify()
	return pointerX*t.scale/oldScale - (pointerX - scroll)
}
