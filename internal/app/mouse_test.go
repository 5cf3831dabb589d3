package app

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/showctl/cueline/internal/config"
	"github.com/showctl/cueline/internal/timeline"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Config{
		ShowFile: filepath.Join(t.TempDir(), "show.yaml"),
		Scenes:   config.DefaultScenes(),
	}
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestNewSeedsStarterShow(t *testing.T) {
	m := newTestModel(t)
	rows := m.Timeline().Rows()
	if len(rows) != 6 {
		t.Fatalf("seeded rows = %d, want 6", len(rows))
	}
	if rows[2].Kind() != timeline.RowTime {
		t.Fatalf("row 2 kind = %q, want time", rows[2].Kind())
	}
	if len(rows[4].Elements()) == 0 {
		t.Fatal("expected seeded scene cues on the Projector row")
	}
}

func TestPointerPosAppliesScrollAndDensity(t *testing.T) {
	m := newTestModel(t)
	m.scrollX = 100

	x, y := m.pointerPos(tea.MouseMsg{X: 10, Y: 3})
	if x != 100+10*PxPerColumn {
		t.Fatalf("x = %v, want %v", x, 100+10*PxPerColumn)
	}
	if y != 3*PxPerRow {
		t.Fatalf("y = %v, want %v", y, 3*PxPerRow)
	}
}

func TestClickSelectsSeededCue(t *testing.T) {
	m := newTestModel(t)

	// The Projector row stacks below label+guide+time+lighting rows
	// (164 px); its first cue spans [0, 100). Cell (5, 18) lands inside.
	press := tea.MouseMsg{X: 5, Y: 18, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	release := tea.MouseMsg{X: 5, Y: 18, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	m.Update(press)
	m.Update(release)

	e := m.Timeline().Selected()
	if e == nil {
		t.Fatal("expected click to select the seeded cue")
	}
	cue, ok := e.(*timeline.SceneCue)
	if !ok {
		t.Fatalf("selected %T, want *timeline.SceneCue", e)
	}
	if cue.SceneID() != "camera-1" {
		t.Fatalf("selected scene %q, want camera-1", cue.SceneID())
	}
}

func TestAltWheelZooms(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.MouseMsg{X: 10, Y: 5, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := m.Timeline().Scale(); got <= 1 {
		t.Fatalf("scale = %v, want > 1 after alt+wheel up", got)
	}

	m.Update(tea.MouseMsg{X: 10, Y: 5, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m.Update(tea.MouseMsg{X: 10, Y: 5, Alt: true, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := m.Timeline().Scale(); got >= 1 {
		t.Fatalf("scale = %v, want < 1 after two alt+wheel downs", got)
	}
}

func TestPlainWheelPans(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.scrollX != WheelStep*timeline.ScrollMoveMultiplier {
		t.Fatalf("scrollX = %v, want %v", m.scrollX, WheelStep*timeline.ScrollMoveMultiplier)
	}

	m.Update(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.scrollX != 0 {
		t.Fatalf("scrollX = %v, want 0 after panning back", m.scrollX)
	}
}

func TestMouseOutsideGridIgnored(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.MouseMsg{X: 5, Y: 39, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Timeline().Selected() != nil || m.Timeline().Hovering() != nil {
		t.Fatal("footer-area clicks must not reach the engine")
	}
}
