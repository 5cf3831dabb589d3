package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/showctl/cueline/internal/timeline"
)

// handleMouse translates terminal mouse events into the engine's pointer
// protocol. Cell coordinates become timeline pixels through the fixed
// projection densities, with the horizontal scroll offset added back so
// the engine always works in absolute positions.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.gridRows() || msg.X >= m.gridCols() {
		return m, nil
	}
	x, y := m.pointerPos(msg)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		m.handleWheel(msg, x)
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.tl.PointerMove(x, y)
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.tl.PointerMove(x, y)
		m.tl.PointerDown(x, y)
	case tea.MouseActionRelease:
		m.tl.PointerUp(x, y)
		m.syncProps()
	}
	return m, nil
}

// pointerPos maps a mouse event's cell position to engine pixel space.
func (m *Model) pointerPos(msg tea.MouseMsg) (x, y float64) {
	x = m.scrollX + float64(msg.X)*PxPerColumn
	y = float64(msg.Y) * PxPerRow
	return x, y
}

// handleWheel implements the wheel gestures: alt+wheel zooms anchored at
// the pointer, a plain wheel pans the window.
func (m *Model) handleWheel(msg tea.MouseMsg, pointerX float64) {
	delta := wheelDelta(msg.Button)
	if msg.Alt {
		m.scrollX = m.tl.Zoom(delta, pointerX, m.scrollX)
		m.clampScroll()
		return
	}
	m.scrollBy(-delta * timeline.ScrollMoveMultiplier)
}

// wheelDelta converts a wheel button into a synthetic angle delta: the
// terminal reports discrete notches, one notch per event.
func wheelDelta(button tea.MouseButton) float64 {
	switch button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		return WheelStep
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		return -WheelStep
	}
	return 0
}
