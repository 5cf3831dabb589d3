// Package timeline implements the cueline show-control timeline engine:
// typed rows of elements (labels, time rulers, lighting and scene cues),
// geometry and hit testing, the drag/resize/seek interaction state
// machine, snapping, the playback clock, and show document persistence.
//
// The engine is deliberately free of any UI toolkit. It paints through the
// abstract Surface, exposes element properties as abstract Fields, and
// reports mutations through two Notifiers. The bubbletea front end in
// internal/app is one consumer; tests drive the engine directly.
//
// All positions and lengths are timeline-space units: pixels at scale 1.
// The current scale only affects the screen projection.
package timeline

import "fmt"

// Interaction and projection constants.
const (
	ScaleMin = 0.1
	ScaleMax = 10

	// ScrollScaleMultiplier converts wheel delta into a relative scale
	// change when zooming.
	ScrollScaleMultiplier = 1.0 / 1000
	// ScrollMoveMultiplier converts wheel delta into horizontal scroll
	// pixels.
	ScrollMoveMultiplier = 0.5

	// RowPadding is the vertical gap an element leaves inside its row.
	RowPadding = 6

	// Resize handle band: ResizeOuterBound pixels outside an edge,
	// ResizeInnerBound inside it.
	ResizeInnerBound = 10
	ResizeOuterBound = 2

	// SnapMarkingPixels is the screen distance within which a dragged
	// edge jumps to a snap candidate.
	SnapMarkingPixels = 6

	// SeekGutterHeight is the strip at the top of the Time row where a
	// press starts scrubbing the playhead.
	SeekGutterHeight = 20
)

// Timeline is the aggregate root: it owns the rows, the zoom scale,
// selection and hover state, the playhead, and the interaction state
// machine, and it coordinates snapping, playback and persistence.
type Timeline struct {
	scenes *SceneRegistry
	rows   []*Row
	scale  float64
	nextID ElementID

	selected        ElementID
	hovering        ElementID
	potentialResize ElementID

	drag drag

	playing          bool
	playhead         int
	accuratePlayhead float64
	playingSet       map[ElementID]Element
	nextSet          map[*Row]Element

	// Transition hooks fired by playhead movement, in addition to any
	// Transitioner the element itself implements. Left nil by the core.
	OnElementEnter func(Element)
	OnElementExit  func(Element)
	OnElementNext  func(Element)

	// Changed fires after any mutation that requires a repaint.
	// Committed fires at persistence points only.
	Changed   Notifier
	Committed Notifier
}

// New constructs an empty timeline at scale 1 resolving scene references
// through the given registry.
func New(scenes *SceneRegistry) *Timeline {
	if scenes == nil {
		scenes = NewSceneRegistry()
	}
	return &Timeline{
		scenes:     scenes,
		scale:      1,
		playingSet: map[ElementID]Element{},
		nextSet:    map[*Row]Element{},
	}
}

// Scenes returns the scene registry this timeline resolves against.
func (t *Timeline) Scenes() *SceneRegistry { return t.scenes }

// Rows returns the rows in stacking order. Callers must not mutate the
// slice.
func (t *Timeline) Rows() []*Row { return t.rows }

// AddRow appends a row below the existing ones.
func (t *Timeline) AddRow(r *Row) {
	t.rows = append(t.rows, r)
	t.Changed.notify()
}

// Scale is the current pixels-per-unit zoom factor.
func (t *Timeline) Scale() float64 { return t.scale }

// SetScale clamps and applies a new zoom factor.
func (t *Timeline) SetScale(s float64) {
	if s < ScaleMin {
		s = ScaleMin
	}
	if s > ScaleMax {
		s = ScaleMax
	}
	t.scale = s
}

// Width is the screen width needed to show every element, used by hosts
// to size their scroll region.
func (t *Timeline) Width() float64 {
	end := 0.0
	for _, row := range t.rows {
		if e := row.End(); e > end {
			end = e
		}
	}
	if float64(t.playhead) > end {
		end = float64(t.playhead)
	}
	return end * t.scale
}

// Add places e on row, assigning it an ID on first add. Adding an element
// to a row that rejects its kind is a programming error: callers must
// check CanContain first.
func (t *Timeline) Add(row *Row, e Element) {
	if !row.CanContainElement(e) {
		panic(fmt.Sprintf("timeline: row %q cannot contain element kind %q", row.Kind(), e.Kind()))
	}
	if e.ID() == 0 {
		t.nextID++
		e.setID(t.nextID)
	}
	row.add(e)
	t.commit()
}

// Append places e at the row's default position: the end of the last
// element, or 0 on an empty row.
func (t *Timeline) Append(row *Row, e Element) {
	e.SetStart(row.End())
	t.Add(row, e)
}

// Remove deletes e from whichever row holds it and clears any selection
// or hover reference to it. Removing an element that is on no row is a
// no-op.
func (t *Timeline) Remove(e Element) {
	for _, row := range t.rows {
		if row.remove(e) {
			t.clearRefs(e.ID())
			t.commit()
			return
		}
	}
}

// Move transfers e to target, preserving its start and length. The target
// must accept the element's kind.
func (t *Timeline) Move(e Element, target *Row) {
	if !target.CanContainElement(e) {
		panic(fmt.Sprintf("timeline: row %q cannot contain element kind %q", target.Kind(), e.Kind()))
	}
	from, _ := t.rowOf(e)
	if from == nil || from == target {
		return
	}
	from.remove(e)
	target.add(e)
	t.commit()
}

// Selected returns the selected element, or nil. The selection is a weak
// reference: it is cleared automatically when the element is removed.
func (t *Timeline) Selected() Element {
	return t.byID(t.selected)
}

// Select marks e as selected; Select(nil) clears the selection.
func (t *Timeline) Select(e Element) {
	if e == nil {
		t.selected = 0
	} else {
		t.selected = e.ID()
	}
	t.Changed.notify()
}

// Hovering returns the element under the pointer, or nil.
func (t *Timeline) Hovering() Element {
	return t.byID(t.hovering)
}

// RowOf returns the row holding e and its index, or (nil, -1).
func (t *Timeline) RowOf(e Element) (*Row, int) {
	return t.rowOf(e)
}

func (t *Timeline) rowOf(e Element) (*Row, int) {
	for i, row := range t.rows {
		if row.Contains(e) {
			return row, i
		}
	}
	return nil, -1
}

// byID finds an element by ID across all rows; 0 and unknown IDs yield
// nil.
func (t *Timeline) byID(id ElementID) Element {
	if id == 0 {
		return nil
	}
	for _, row := range t.rows {
		for _, e := range row.Elements() {
			if e.ID() == id {
				return e
			}
		}
	}
	return nil
}

func (t *Timeline) clearRefs(id ElementID) {
	if t.selected == id {
		t.selected = 0
	}
	if t.hovering == id {
		t.hovering = 0
	}
	if t.potentialResize == id {
		t.potentialResize = 0
	}
	delete(t.playingSet, id)
}

// commit records a persistence point: both notifiers fire.
func (t *Timeline) commit() {
	t.recomputePlayback()
	t.Changed.notify()
	t.Committed.notify()
}

// Commit publishes an externally applied edit (e.g. a property-editor
// field write) as a persistence point.
func (t *Timeline) Commit() {
	t.commit()
}

// forEachElement visits elements in deterministic hit-test order: rows in
// stacking order, elements within a row by start ascending. The visit
// callback receives the element's screen rect; returning false stops the
// walk.
func (t *Timeline) forEachElement(visit func(row *Row, e Element, r Rect) bool) {
	y := 0.0
	for _, row := range t.rows {
		for _, e := range row.Elements() {
			if !visit(row, e, t.ElementRect(row, y, e)) {
				return
			}
		}
		y += row.Height()
	}
}
