package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View draws the full UI: the timeline grid, the property pane when an
// element is selected, and the status footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentHeight := max(0, m.height-FooterRows)
	var content string
	if m.showHelp {
		content = m.renderHelp(m.width, contentHeight)
	} else {
		grid := m.renderTimeline(m.gridCols(), contentHeight)
		if m.propsVisible() {
			props := m.renderProps(PropsPaneWidth, contentHeight)
			content = lipgloss.JoinHorizontal(lipgloss.Top, grid, props)
		} else {
			content = grid
		}
	}
	content = padBlock(content, m.width, contentHeight)

	view := content + "\n" + m.renderStatus(m.width, FooterRows)
	return padBlock(view, m.width, m.height)
}

// renderTimeline rasterizes the engine onto a cell surface covering the
// visible window.
func (m *Model) renderTimeline(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	gridRows := min(rows, m.gridRows())
	surface := newCellSurface(cols, max(1, gridRows), m.scrollX)
	m.tl.Render(surface, m.scrollX+float64(cols)*PxPerColumn, m.tl.Height())
	return surface.View()
}

// renderProps draws the property editor for the selected element.
func (m *Model) renderProps(width, height int) string {
	m.syncProps()
	e := m.tl.Selected()
	if e == nil {
		return ""
	}

	inner := max(0, width-propsPane.GetHorizontalFrameSize())
	lines := []string{titleStyle.Render(truncate(string(e.Kind()), inner)), ""}
	for i, f := range m.propFields {
		label := f.Name
		if m.mode == modeProps && i == m.propIndex {
			label = "› " + label
		}
		lines = append(lines, labelStyle.Render(truncate(label, inner)))
		lines = append(lines, truncate(m.propInputs[i].View(), inner))
	}
	if m.mode == modeProps {
		lines = append(lines, "", statusStyle.Render(truncate("Enter apply · Tab next · Esc back", inner)))
	} else {
		lines = append(lines, "", statusStyle.Render(truncate(m.primaryActionKey(actionEditProps, "Enter")+" edit", inner)))
	}

	body := strings.Join(lines, "\n")
	body = padBlock(body, inner, max(0, height-propsPane.GetVerticalFrameSize()))
	return propsPane.Render(body)
}
