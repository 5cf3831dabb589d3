package timeline

// keyboard.go holds the keyboard-driven operations. Key decoding and
// binding live in the host; the engine only exposes the semantics.

// DeleteSelected removes the selected element from its row. If the
// element had a predecessor in its row's start ordering, the predecessor
// becomes the new selection; otherwise the selection clears. Reports
// whether anything was deleted. A deletion is a persistence point.
func (t *Timeline) DeleteSelected() bool {
	e := t.Selected()
	if e == nil {
		return false
	}
	row, _ := t.rowOf(e)
	var predecessor Element
	if row != nil {
		predecessor = row.Before(e)
	}
	t.Remove(e)
	if predecessor != nil {
		t.selected = predecessor.ID()
		t.Changed.notify()
	}
	return true
}

// StepMarking jumps the playhead to the nearest time-ruler marking
// strictly before (dir < 0) or after (dir > 0) its current position.
// Coarse restricts the targets to labeled markings (whole seconds, bar
// starts). Reports whether a target existed.
func (t *Timeline) StepMarking(dir int, coarse bool) bool {
	playhead := float64(t.playhead)
	marks := t.timeSnaps(coarse)
	if dir >= 0 {
		for _, m := range marks {
			if m > playhead {
				t.SetPlayhead(m)
				return true
			}
		}
		return false
	}
	for i := len(marks) - 1; i >= 0; i-- {
		if marks[i] < playhead {
			t.SetPlayhead(marks[i])
			return true
		}
	}
	return false
}

// StepRelative nudges the playhead by delta units.
func (t *Timeline) StepRelative(delta float64) {
	t.SetPlayhead(t.accuratePlayhead + delta)
}

// StepCue jumps the playhead to the nearest cue boundary (start or end of
// any Lighting or Scene cue) strictly before or after its current
// position. Reports whether a target existed.
func (t *Timeline) StepCue(dir int) bool {
	playhead := float64(t.playhead)
	bounds := t.cueBounds()
	if dir >= 0 {
		for _, b := range bounds {
			if b > playhead {
				t.SetPlayhead(b)
				return true
			}
		}
		return false
	}
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] < playhead {
			t.SetPlayhead(bounds[i])
			return true
		}
	}
	return false
}
