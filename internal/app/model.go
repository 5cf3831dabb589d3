package app

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/showctl/cueline/internal/config"
	"github.com/showctl/cueline/internal/theme"
	"github.com/showctl/cueline/internal/timeline"
)

// mode controls which pane owns the keyboard.
type mode int

const (
	modeTimeline mode = iota
	modeProps
)

// tickMsg drives the playback clock.
type tickMsg time.Time

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	cfg config.Config
	tl  *timeline.Timeline

	// Horizontal scroll offset of the visible window, in timeline pixels.
	scrollX float64

	// Keybinding maps (see keybindings.go).
	keyForAction map[string][]string
	keyToAction  map[string]string

	// Property editor state: one text input per field of the edited
	// element. propsFor tracks which element the inputs were built from so
	// selection changes rebuild them.
	mode       mode
	propInputs []textinput.Model
	propFields []timeline.Field
	propIndex  int
	propsFor   timeline.ElementID

	// Layout sizing
	width  int
	height int

	showHelp  bool
	helpView  string
	helpWidth int

	status    string
	saveState string
	lastTick  time.Time
}

// New prepares the initial UI model: it loads the show document named by
// the config (seeding a starter show on first run) and wires the
// save-on-commit subscriber.
func New(cfg config.Config) (*Model, error) {
	scenes := timeline.NewSceneRegistry()
	for _, s := range cfg.Scenes {
		scenes.Add(timeline.Scene{ID: s.ID, Name: s.Name, Color: theme.Color(s.Color)})
	}

	tl, err := timeline.LoadFile(cfg.ShowFile, scenes)
	if err != nil {
		return nil, err
	}
	if len(tl.Rows()) == 0 {
		seedStarterShow(tl)
	}

	m := &Model{
		cfg:       cfg,
		tl:        tl,
		status:    "Ready",
		saveState: "Saved",
	}
	m.loadKeybindings(cfg)
	tl.Committed.Subscribe(m.saveShow)
	return m, nil
}

// Timeline exposes the engine, primarily for tests.
func (m *Model) Timeline() *timeline.Timeline { return m.tl }

// Init starts the playback tick loop.
func (m *Model) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(timeline.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.tl.Advance(now.Sub(m.lastTick))
		}
		m.lastTick = now
		if m.tl.Playing() {
			m.followPlayhead()
		}
		return m, tick()
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.mode == modeProps {
			return m.handlePropsKey(msg)
		}
		return m.handleTimelineKey(msg)
	}
	return m, nil
}

// handleTimelineKey dispatches a key press through the action layer.
func (m *Model) handleTimelineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.actionForKey(msg.String()) {
	case actionPlayToggle:
		m.tl.TogglePlay()
		if m.tl.Playing() {
			m.status = "Playing"
		} else {
			m.status = "Paused"
		}
	case actionStepBack:
		m.tl.StepMarking(-1, false)
	case actionStepForward:
		m.tl.StepMarking(1, false)
	case actionStepBackCoarse:
		m.tl.StepMarking(-1, true)
	case actionStepForwardCoarse:
		m.tl.StepMarking(1, true)
	case actionNudgeBack:
		m.tl.StepRelative(-1)
	case actionNudgeForward:
		m.tl.StepRelative(1)
	case actionCueForward:
		if !m.tl.StepCue(1) {
			m.status = "No cue ahead"
		}
	case actionCueBack:
		if !m.tl.StepCue(-1) {
			m.status = "No cue behind"
		}
	case actionDelete:
		if m.tl.DeleteSelected() {
			m.status = "Deleted"
		}
	case actionAppendElement:
		m.appendElement()
	case actionEditProps:
		m.enterProps()
	case actionRowUp:
		m.selectAdjacentRow(-1)
	case actionRowDown:
		m.selectAdjacentRow(1)
	case actionZoomIn:
		m.zoomAtPlayhead(WheelStep)
	case actionZoomOut:
		m.zoomAtPlayhead(-WheelStep)
	case actionScrollLeft:
		m.scrollBy(-4 * PxPerColumn)
	case actionScrollRight:
		m.scrollBy(4 * PxPerColumn)
	case actionHelp:
		m.showHelp = true
	case actionQuit:
		m.saveShow()
		return m, tea.Quit
	}
	return m, nil
}

// appendElement adds a new element at the default position of the selected
// element's row, or of the first row that accepts a scene cue when nothing
// is selected.
func (m *Model) appendElement() {
	row := m.targetRow()
	if row == nil {
		m.status = "No row to add to"
		return
	}
	e := m.newElementFor(row)
	if e == nil {
		m.status = "No row to add to"
		return
	}
	m.tl.Append(row, e)
	m.tl.Select(e)
	m.status = "Added " + string(e.Kind())
}

func (m *Model) targetRow() *timeline.Row {
	if e := m.tl.Selected(); e != nil {
		if row, _ := m.tl.RowOf(e); row != nil {
			return row
		}
	}
	for _, row := range m.tl.Rows() {
		if row.CanContain(timeline.KindSceneCue) {
			return row
		}
	}
	if rows := m.tl.Rows(); len(rows) > 0 {
		return rows[0]
	}
	return nil
}

// selectAdjacentRow moves the selection dir rows up or down, landing on
// the element whose start is closest to the current selection's. With
// nothing selected it picks the first element of the first occupied row.
func (m *Model) selectAdjacentRow(dir int) {
	rows := m.tl.Rows()
	current := m.tl.Selected()
	if current == nil {
		for _, row := range rows {
			if es := row.Elements(); len(es) > 0 {
				m.tl.Select(es[0])
				return
			}
		}
		return
	}

	_, index := m.tl.RowOf(current)
	if index < 0 {
		return
	}
	for i := index + dir; i >= 0 && i < len(rows); i += dir {
		es := rows[i].Elements()
		if len(es) == 0 {
			continue
		}
		nearest := es[0]
		for _, e := range es[1:] {
			if math.Abs(e.Start()-current.Start()) < math.Abs(nearest.Start()-current.Start()) {
				nearest = e
			}
		}
		m.tl.Select(nearest)
		return
	}
}

// newElementFor picks the element kind a row hosts. Time rows get a clock
// segment; scene rows reference the first registered scene.
func (m *Model) newElementFor(row *timeline.Row) timeline.Element {
	switch {
	case row.CanContain(timeline.KindSceneCue):
		scenes := m.tl.Scenes().Scenes()
		if len(scenes) == 0 {
			return nil
		}
		return timeline.NewSceneCue(m.tl.Scenes(), 0, 50, "Cue", scenes[0].ID)
	case row.CanContain(timeline.KindLightingCue):
		return timeline.NewLightingCue(0, 50)
	case row.CanContain(timeline.KindTimeClock):
		return timeline.NewTimeClock(0, 30)
	case row.CanContain(timeline.KindLabel):
		return timeline.NewLabel(0, 60, "Label")
	}
	return nil
}

// zoomAtPlayhead applies a zoom step anchored at the playhead's screen
// position so it stays put while the scale changes.
func (m *Model) zoomAtPlayhead(delta float64) {
	anchor := float64(m.tl.Playhead()) * m.tl.Scale()
	m.scrollX = m.tl.Zoom(delta, anchor, m.scrollX)
	m.clampScroll()
}

func (m *Model) scrollBy(px float64) {
	m.scrollX += px
	m.clampScroll()
}

func (m *Model) clampScroll() {
	maxScroll := m.tl.Width() - float64(m.gridCols())*PxPerColumn
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.scrollX = clampFloat(m.scrollX, 0, maxScroll)
}

// followPlayhead pans the window so the moving playhead stays visible.
func (m *Model) followPlayhead() {
	x := float64(m.tl.Playhead())*m.tl.Scale() - m.scrollX
	window := float64(m.gridCols()) * PxPerColumn
	if window <= 0 {
		return
	}
	if x < 0 || x > window*0.9 {
		m.scrollX = float64(m.tl.Playhead())*m.tl.Scale() - window*0.1
		m.clampScroll()
	}
}

// gridCols is the width of the timeline grid in terminal columns.
func (m *Model) gridCols() int {
	cols := m.width
	if m.propsVisible() {
		cols -= PropsPaneWidth
	}
	return max(0, cols)
}

// gridRows is the height of the timeline grid in terminal rows.
func (m *Model) gridRows() int {
	rows := int(m.tl.Height()/PxPerRow) + 1
	avail := m.height - FooterRows
	return clamp(rows, 0, max(0, avail))
}

func (m *Model) playheadLabel() string {
	seconds := float64(m.tl.Playhead()) / timeline.PixelsPerSecond
	whole := int(seconds)
	return fmt.Sprintf("%d:%02d.%d", whole/60, whole%60, int(seconds*10)%10)
}
