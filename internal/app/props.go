package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/showctl/cueline/internal/timeline"
)

// The property editor pane shows one text input per field of the selected
// element. Fields come from the engine as abstract name/value/setter
// triples, so the pane needs no per-kind knowledge.

func (m *Model) propsVisible() bool {
	return m.tl.Selected() != nil
}

// syncProps rebuilds the field inputs when the selection changed.
func (m *Model) syncProps() {
	e := m.tl.Selected()
	if e == nil {
		m.propInputs = nil
		m.propFields = nil
		m.propsFor = 0
		m.mode = modeTimeline
		return
	}
	if e.ID() == m.propsFor {
		return
	}
	m.buildProps(e)
}

func (m *Model) buildProps(e timeline.Element) {
	m.propsFor = e.ID()
	m.propFields = e.Fields()
	m.propInputs = make([]textinput.Model, len(m.propFields))
	for i, f := range m.propFields {
		input := textinput.New()
		input.Placeholder = f.Name
		input.CharLimit = InputCharLimit
		input.SetValue(f.Value)
		m.propInputs[i] = input
	}
	m.propIndex = 0
}

// enterProps moves keyboard focus into the pane.
func (m *Model) enterProps() {
	e := m.tl.Selected()
	if e == nil {
		m.status = "Nothing selected"
		return
	}
	m.buildProps(e)
	m.mode = modeProps
	m.propInputs[m.propIndex].Focus()
}

// handlePropsKey routes keys while the property pane has focus: Tab cycles
// fields, Enter applies the focused field, Esc returns to the timeline.
func (m *Model) handlePropsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeTimeline
		m.propInputs[m.propIndex].Blur()
		return m, nil
	case "tab", "down":
		m.focusProp(m.propIndex + 1)
		return m, nil
	case "shift+tab", "up":
		m.focusProp(m.propIndex - 1)
		return m, nil
	case "enter":
		m.applyProp()
		return m, nil
	}
	var cmd tea.Cmd
	m.propInputs[m.propIndex], cmd = m.propInputs[m.propIndex].Update(msg)
	return m, cmd
}

func (m *Model) focusProp(index int) {
	if len(m.propInputs) == 0 {
		return
	}
	m.propInputs[m.propIndex].Blur()
	m.propIndex = (index + len(m.propInputs)) % len(m.propInputs)
	m.propInputs[m.propIndex].Focus()
}

// applyProp writes the focused input through the field's setter. A
// successful write is a persistence point.
func (m *Model) applyProp() {
	if m.propIndex >= len(m.propFields) {
		return
	}
	field := m.propFields[m.propIndex]
	value := strings.TrimSpace(m.propInputs[m.propIndex].Value())
	if err := field.Set(value); err != nil {
		m.setStatusError("Invalid "+field.Name, err, "field", field.Name, "value", value)
		return
	}
	m.tl.Commit()
	m.status = field.Name + " applied"

	// Setters can reshape dependent fields (e.g. a music ruler's length
	// after a bpm change), so refresh the pane from the element.
	if e := m.tl.Selected(); e != nil {
		index := m.propIndex
		m.buildProps(e)
		m.propIndex = clamp(index, 0, len(m.propInputs)-1)
		m.propInputs[m.propIndex].Focus()
	}
}
