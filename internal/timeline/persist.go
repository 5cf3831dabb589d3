package timeline

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Show document defaults applied to missing optional fields on load.
const (
	DefaultBPM          = 100
	DefaultBeatsPerBar  = 4
	DefaultStartingBar  = 1
	DefaultStartingBeat = 0
)

// showDocument is the on-disk YAML form of a timeline: the zoom scale and
// the rows in stacking order, each with its elements in start order. The
// `type` strings are the row/element kind discriminators; unknown ones
// fail the load rather than silently dropping state.
type showDocument struct {
	Scale float64  `yaml:"scale"`
	Rows  []rowDoc `yaml:"rows"`
}

type rowDoc struct {
	Type     string       `yaml:"type"`
	Name     string       `yaml:"name,omitempty"`
	Elements []elementDoc `yaml:"elements"`
}

type elementDoc struct {
	Type   string  `yaml:"type"`
	Start  float64 `yaml:"start"`
	Length float64 `yaml:"length,omitempty"`

	// Label.
	Text string `yaml:"text,omitempty"`

	// Time rulers. Duration is seconds for a clock, beats for music;
	// length is derived and not stored for these.
	Duration     int `yaml:"duration,omitempty"`
	BPM          int `yaml:"bpm,omitempty"`
	BeatsPerBar  int `yaml:"beats_per_bar,omitempty"`
	StartingBar  int `yaml:"starting_bar,omitempty"`
	StartingBeat int `yaml:"starting_beat,omitempty"`

	// Scene cue.
	Cue   string `yaml:"cue,omitempty"`
	Scene string `yaml:"scene,omitempty"`
}

// Marshal serializes the timeline to its YAML show document. Two calls
// without an intervening mutation produce identical bytes.
func Marshal(t *Timeline) ([]byte, error) {
	doc := showDocument{Scale: t.scale}
	for _, row := range t.rows {
		rd := rowDoc{Type: string(row.Kind()), Name: row.Name()}
		for _, e := range row.Elements() {
			ed, err := marshalElement(e)
			if err != nil {
				return nil, err
			}
			rd.Elements = append(rd.Elements, ed)
		}
		doc.Rows = append(doc.Rows, rd)
	}
	return yaml.Marshal(doc)
}

func marshalElement(e Element) (elementDoc, error) {
	doc := elementDoc{Type: string(e.Kind()), Start: e.Start()}
	switch el := e.(type) {
	case *Label:
		doc.Length = el.Length()
		doc.Text = el.Text()
	case *LightingCue:
		doc.Length = el.Length()
	case *SceneCue:
		doc.Length = el.Length()
		doc.Cue = el.Cue()
		doc.Scene = el.SceneID()
	case *TimeClock:
		doc.Duration = el.Duration()
	case *TimeMusic:
		doc.Duration = el.Duration()
		doc.BPM = el.BPM()
		doc.BeatsPerBar = el.BeatsPerBar()
		doc.StartingBar = el.StartingBar()
		doc.StartingBeat = el.StartingBeat()
	default:
		return elementDoc{}, fmt.Errorf("marshal: unknown element kind %q", e.Kind())
	}
	return doc, nil
}

// Unmarshal reconstructs a timeline from a show document. The whole load
// fails on the first unknown row or element type; no partially loaded
// timeline is ever returned.
func Unmarshal(data []byte, scenes *SceneRegistry) (*Timeline, error) {
	var doc showDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse show document: %w", err)
	}

	t := New(scenes)
	if doc.Scale > 0 {
		t.SetScale(doc.Scale)
	}
	for i, rd := range doc.Rows {
		row, err := unmarshalRow(rd)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		t.rows = append(t.rows, row)
		for j, ed := range rd.Elements {
			e, err := t.unmarshalElement(ed)
			if err != nil {
				return nil, fmt.Errorf("row %d element %d: %w", i, j, err)
			}
			if !row.CanContainElement(e) {
				return nil, fmt.Errorf("row %d element %d: row %q cannot contain %q", i, j, row.Kind(), e.Kind())
			}
			t.nextID++
			e.setID(t.nextID)
			row.add(e)
		}
	}
	t.recomputePlayback()
	return t, nil
}

func unmarshalRow(doc rowDoc) (*Row, error) {
	switch RowKind(doc.Type) {
	case RowLabel, RowGuide, RowTime, RowLighting:
		return NewRow(RowKind(doc.Type)), nil
	case RowScene:
		return NewSceneRow(doc.Name), nil
	case "":
		return nil, errors.New("missing row type")
	default:
		return nil, fmt.Errorf("unknown row type %q", doc.Type)
	}
}

func (t *Timeline) unmarshalElement(doc elementDoc) (Element, error) {
	switch ElementKind(doc.Type) {
	case KindLabel:
		return NewLabel(doc.Start, doc.Length, doc.Text), nil
	case KindLightingCue:
		return NewLightingCue(doc.Start, doc.Length), nil
	case KindSceneCue:
		return NewSceneCue(t.scenes, doc.Start, doc.Length, doc.Cue, doc.Scene), nil
	case KindTimeClock:
		return NewTimeClock(doc.Start, doc.Duration), nil
	case KindTimeMusic:
		bpm := doc.BPM
		if bpm == 0 {
			bpm = DefaultBPM
		}
		beatsPerBar := doc.BeatsPerBar
		if beatsPerBar == 0 {
			beatsPerBar = DefaultBeatsPerBar
		}
		startingBar := doc.StartingBar
		if startingBar == 0 {
			startingBar = DefaultStartingBar
		}
		startingBeat := doc.StartingBeat
		if startingBeat == 0 {
			startingBeat = DefaultStartingBeat
		}
		return NewTimeMusic(doc.Start, doc.Duration, bpm, beatsPerBar, startingBar, startingBeat), nil
	case "":
		return nil, errors.New("missing element type")
	default:
		return nil, fmt.Errorf("unknown element type %q", doc.Type)
	}
}

// LoadFile reads a show document from disk. A missing file is not an
// error: the show simply has not been saved yet, so an empty timeline is
// returned.
func LoadFile(path string, scenes *SceneRegistry) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(scenes), nil
		}
		return nil, fmt.Errorf("read show %q: %w", path, err)
	}
	t, err := Unmarshal(data, scenes)
	if err != nil {
		return nil, fmt.Errorf("load show %q: %w", path, err)
	}
	return t, nil
}

// SaveFile writes the show document to disk.
func SaveFile(t *Timeline, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write show %q: %w", path, err)
	}
	return nil
}
