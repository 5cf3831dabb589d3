package timeline

import (
	"fmt"
	"strconv"

	"github.com/showctl/cueline/internal/theme"
)

// ElementID identifies an element placed on the timeline. IDs are assigned
// by the Timeline when an element is first added and are never reused
// within a session. Selection and hover track elements by ID so removal
// can never leave a dangling reference.
type ElementID int

// ElementKind discriminates the closed set of element variants. The kind
// strings double as the `type` discriminator in saved show documents.
type ElementKind string

const (
	KindLabel       ElementKind = "label"
	KindTimeClock   ElementKind = "time_clock"
	KindTimeMusic   ElementKind = "time_music"
	KindLightingCue ElementKind = "lighting_cue"
	KindSceneCue    ElementKind = "scene_cue"
)

// State is the visual state an element is painted in.
type State int

const (
	StateNone State = iota
	StateHovering
	StateSelected
)

// Field is one editable property of an element, exposed to whatever
// property-editor surface the host application provides. Value is the
// current value formatted for display; Set parses and applies a new one.
type Field struct {
	Name  string
	Value string
	Set   func(string) error
}

// Element is the atomic placed object on a row: a start position and a
// length in timeline-space units (pixels at scale 1), plus kind-specific
// data. Lengths may go transiently negative while a resize drag is in
// flight; MinLength is enforced at resize commit, not during the drag.
//
// The unexported setID method keeps the variant set closed to this
// package.
type Element interface {
	ID() ElementID
	Kind() ElementKind
	Start() float64
	SetStart(float64)
	Length() float64
	SetLength(float64)
	MinLength() float64
	DisplayText() string
	Fields() []Field
	Paint(s Surface, r Rect, st State)

	setID(ElementID)
}

// Transitioner is implemented by elements that react to playhead
// transitions. The core defines no default behavior; show outputs
// (lighting, video) wrap or embed elements to hook these.
type Transitioner interface {
	Enter()
	Exit()
	EnterNextInRow()
}

// base carries the identity and start position shared by every variant.
type base struct {
	id    ElementID
	start float64
}

func (b *base) ID() ElementID      { return b.id }
func (b *base) setID(id ElementID) { b.id = id }
func (b *base) Start() float64     { return b.start }
func (b *base) SetStart(v float64) { b.start = v }

// span extends base with a directly stored length, shared by the variants
// whose length is a free quantity (labels and cues). Time rulers derive
// length from their duration instead.
type span struct {
	base
	length float64
}

func (s *span) Length() float64     { return s.length }
func (s *span) SetLength(v float64) { s.length = v }
func (s *span) MinLength() float64  { return 1 }

func (s *span) startField() Field {
	return Field{
		Name:  "Start (px)",
		Value: formatUnit(s.start),
		Set: func(v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			s.start = f
			return nil
		},
	}
}

func (s *span) lengthField() Field {
	return Field{
		Name:  "Duration (px)",
		Value: formatUnit(s.length),
		Set: func(v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("length: %w", err)
			}
			if f < s.MinLength() {
				return fmt.Errorf("length must be at least %v", s.MinLength())
			}
			s.length = f
			return nil
		},
	}
}

func formatUnit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Label is a free-text annotation element hosted by Label and Guide rows.
type Label struct {
	span
	text string
}

const labelTextInset = 2

func NewLabel(start, length float64, text string) *Label {
	l := &Label{text: text}
	l.start = start
	l.length = length
	return l
}

func (l *Label) Kind() ElementKind   { return KindLabel }
func (l *Label) Text() string        { return l.text }
func (l *Label) SetText(text string) { l.text = text }
func (l *Label) DisplayText() string { return l.text }

func (l *Label) Fields() []Field {
	return []Field{
		l.startField(),
		l.lengthField(),
		{
			Name:  "Label",
			Value: l.text,
			Set: func(v string) error {
				l.text = v
				return nil
			},
		},
	}
}

func (l *Label) Paint(s Surface, r Rect, st State) {
	fill := theme.LabelBackground
	switch st {
	case StateHovering:
		fill = theme.Darken(fill, 1.2)
	case StateSelected:
		fill = theme.Lighten(fill, 1.2)
	}
	s.FillRect(r, fill, false)

	outline := theme.Outline
	if st == StateSelected {
		outline = theme.SelectedOutline
	}
	s.StrokeRect(r, outline)

	text := Rect{X: r.X + labelTextInset, Y: r.Y + labelTextInset, W: r.W - labelTextInset, H: r.H - labelTextInset}
	if s.TextWidth(l.text) < text.W {
		s.Text(text, AlignLeft, theme.Text, l.text)
	}
}

// LightingCue is a placeholder cue on the Lighting row. It carries no data
// of its own yet; lighting output hooks attach through Transitioner
// wrappers.
type LightingCue struct {
	span
}

func NewLightingCue(start, length float64) *LightingCue {
	c := &LightingCue{}
	c.start = start
	c.length = length
	return c
}

func (c *LightingCue) Kind() ElementKind   { return KindLightingCue }
func (c *LightingCue) DisplayText() string { return "" }

func (c *LightingCue) Fields() []Field {
	return []Field{c.startField(), c.lengthField()}
}

func (c *LightingCue) Paint(s Surface, r Rect, st State) {
	paintCue(s, r, st, theme.LightingCueFill, c.DisplayText())
}

// SceneCue binds a free-text cue label to a scene in the registry. The
// scene itself (name, color) lives in the registry and is resolved by ID,
// never embedded.
type SceneCue struct {
	span
	cue     string
	sceneID string
	scenes  *SceneRegistry
}

func NewSceneCue(scenes *SceneRegistry, start, length float64, cue, sceneID string) *SceneCue {
	c := &SceneCue{cue: cue, sceneID: sceneID, scenes: scenes}
	c.start = start
	c.length = length
	return c
}

func (c *SceneCue) Kind() ElementKind { return KindSceneCue }
func (c *SceneCue) Cue() string       { return c.cue }
func (c *SceneCue) SceneID() string   { return c.sceneID }

// DisplayText is the cue text followed by the referenced scene's name.
func (c *SceneCue) DisplayText() string {
	scene, ok := c.scenes.Get(c.sceneID)
	if !ok {
		return c.cue
	}
	if c.cue == "" {
		return scene.Name
	}
	return c.cue + " " + scene.Name
}

func (c *SceneCue) color() theme.Color {
	scene, ok := c.scenes.Get(c.sceneID)
	if !ok {
		return theme.Gray245
	}
	return scene.Color
}

func (c *SceneCue) Fields() []Field {
	return []Field{
		c.startField(),
		c.lengthField(),
		{
			Name:  "Cue",
			Value: c.cue,
			Set: func(v string) error {
				c.cue = v
				return nil
			},
		},
		{
			Name:  "Scene",
			Value: c.sceneID,
			Set: func(v string) error {
				if _, ok := c.scenes.Get(v); !ok {
					return fmt.Errorf("unknown scene %q", v)
				}
				c.sceneID = v
				return nil
			},
		},
	}
}

func (c *SceneCue) Paint(s Surface, r Rect, st State) {
	paintCue(s, r, st, c.color(), c.DisplayText())
}

// paintCue is the shared rounded-rect cue painter: fill shaded by state,
// outline, centered text when it fits.
func paintCue(s Surface, r Rect, st State, fill theme.Color, text string) {
	switch st {
	case StateHovering:
		fill = theme.Darken(fill, 1.2)
	case StateSelected:
		fill = theme.Lighten(fill, 1.2)
	}
	s.FillRect(r, fill, true)

	outline := theme.Outline
	if st == StateSelected {
		outline = theme.SelectedOutline
	}
	s.StrokeRect(r, outline)

	if text != "" && s.TextWidth(text) < r.W {
		s.Text(r, AlignCenter, theme.Text, text)
	}
}
