package timeline

import (
	"math"
	"sort"
)

// Snaps generates the snap candidates a dragged or resized edge may jump
// to, in deterministic order: the origin and the playhead first, then per
// row (in stacking order) every element's start and end, plus every ruler
// marking on Time rows. The excluded element contributes nothing, so an
// element never snaps to itself. With coarse set, only labeled markings
// (whole seconds, bar starts) are included.
func (t *Timeline) Snaps(exclude Element, coarse bool) []float64 {
	candidates := []float64{0, float64(t.playhead)}
	for _, row := range t.rows {
		for _, e := range row.Elements() {
			if e == exclude {
				continue
			}
			candidates = append(candidates, e.Start(), e.Start()+e.Length())
			if ruler, ok := e.(Ruler); ok {
				for _, m := range ruler.Markings() {
					if coarse && m.Label == "" {
						continue
					}
					candidates = append(candidates, m.Pos)
				}
			}
		}
	}
	return candidates
}

// snap resolves pos against the fine candidate set. If a candidate lies
// within SnapMarkingPixels of pos in screen distance, the first such
// candidate replaces pos exactly.
func (t *Timeline) snap(pos float64, exclude Element) (float64, bool) {
	for _, c := range t.Snaps(exclude, false) {
		if math.Abs(pos-c)*t.scale < SnapMarkingPixels {
			return c, true
		}
	}
	return pos, false
}

// timeSnaps collects ruler marking positions (and ruler end edges) from
// Time rows only, sorted ascending. These back the keyboard playhead
// stepping.
func (t *Timeline) timeSnaps(coarse bool) []float64 {
	var marks []float64
	for _, row := range t.rows {
		if row.Kind() != RowTime {
			continue
		}
		for _, e := range row.Elements() {
			ruler, ok := e.(Ruler)
			if !ok {
				continue
			}
			for _, m := range ruler.Markings() {
				if coarse && m.Label == "" {
					continue
				}
				marks = append(marks, m.Pos)
			}
			if !coarse {
				marks = append(marks, e.Start()+e.Length())
			}
		}
	}
	sort.Float64s(marks)
	return marks
}

// cueBounds collects the start and end of every Lighting and Scene cue,
// sorted ascending. These back the keyboard cue jumps.
func (t *Timeline) cueBounds() []float64 {
	var bounds []float64
	for _, row := range t.rows {
		if row.Kind() != RowLighting && row.Kind() != RowScene {
			continue
		}
		for _, e := range row.Elements() {
			bounds = append(bounds, e.Start(), e.Start()+e.Length())
		}
	}
	sort.Float64s(bounds)
	return bounds
}
