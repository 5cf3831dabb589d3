package timeline

import "sort"

// RowKind discriminates the closed set of row variants. Like element
// kinds, the strings double as `type` discriminators in saved documents.
type RowKind string

const (
	RowLabel    RowKind = "label"
	RowGuide    RowKind = "guide"
	RowTime     RowKind = "time"
	RowLighting RowKind = "lighting"
	RowScene    RowKind = "scene"
)

// rowHeights are the fixed per-kind pixel heights used to stack rows
// vertically. The Time row includes the seek gutter strip at its top.
var rowHeights = map[RowKind]float64{
	RowLabel:    24,
	RowGuide:    30,
	RowTime:     50,
	RowLighting: 60,
	RowScene:    60,
}

// rowAllowedKinds is the static membership table behind CanContain.
var rowAllowedKinds = map[RowKind][]ElementKind{
	RowLabel:    {KindLabel},
	RowGuide:    {KindLabel},
	RowTime:     {KindTimeClock, KindTimeMusic},
	RowLighting: {KindLightingCue},
	RowScene:    {KindSceneCue},
}

// Row is an ordered, typed lane of elements. Elements are kept sorted by
// start ascending; ties keep insertion order so traversal is
// deterministic. A row owns its elements exclusively: moving an element
// between rows is remove-then-add, mediated by the Timeline.
type Row struct {
	kind     RowKind
	name     string
	elements []Element
}

// NewRow constructs a row of the given kind. Scene rows should use
// NewSceneRow so they carry an output destination name.
func NewRow(kind RowKind) *Row {
	return &Row{kind: kind}
}

// NewSceneRow constructs a Scene row named for its output destination
// (e.g. "Projector", "Stream"). Multiple scene rows coexist.
func NewSceneRow(name string) *Row {
	return &Row{kind: RowScene, name: name}
}

func (r *Row) Kind() RowKind { return r.kind }
func (r *Row) Name() string  { return r.name }

// Height is the fixed pixel height of this row kind.
func (r *Row) Height() float64 { return rowHeights[r.kind] }

// CanContain reports whether this row accepts elements of the given kind.
// It is usable before an element exists, e.g. when deciding where a new
// element should land.
func (r *Row) CanContain(kind ElementKind) bool {
	for _, k := range rowAllowedKinds[r.kind] {
		if k == kind {
			return true
		}
	}
	return false
}

// CanContainElement is CanContain for an element instance.
func (r *Row) CanContainElement(e Element) bool {
	return r.CanContain(e.Kind())
}

// Elements returns the row's elements in start order. The slice is the
// row's own; callers must not mutate it.
func (r *Row) Elements() []Element {
	return r.elements
}

// Contains reports whether e is a member of this row.
func (r *Row) Contains(e Element) bool {
	for _, el := range r.elements {
		if el == e {
			return true
		}
	}
	return false
}

// End is the right edge of the last element, or 0 for an empty row. New
// elements added without an explicit start land here.
func (r *Row) End() float64 {
	if len(r.elements) == 0 {
		return 0
	}
	last := r.elements[len(r.elements)-1]
	return last.Start() + last.Length()
}

// Before returns the element immediately preceding e in start order, or
// nil if e is first or not a member.
func (r *Row) Before(e Element) Element {
	for i, el := range r.elements {
		if el == e {
			if i == 0 {
				return nil
			}
			return r.elements[i-1]
		}
	}
	return nil
}

// NextAfter returns the first element whose start is strictly after pos,
// or nil.
func (r *Row) NextAfter(pos float64) Element {
	for _, el := range r.elements {
		if el.Start() > pos {
			return el
		}
	}
	return nil
}

func (r *Row) add(e Element) {
	r.elements = append(r.elements, e)
	r.resort()
}

func (r *Row) remove(e Element) bool {
	for i, el := range r.elements {
		if el == e {
			r.elements = append(r.elements[:i], r.elements[i+1:]...)
			return true
		}
	}
	return false
}

// resort restores start ordering. Stable sort keeps insertion order for
// equal starts.
func (r *Row) resort() {
	sort.SliceStable(r.elements, func(i, j int) bool {
		return r.elements[i].Start() < r.elements[j].Start()
	})
}
