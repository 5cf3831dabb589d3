package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatus draws the footer rows: key hints, playback context, and the
// current status message, packed left to right teacher-style.
func (m *Model) renderStatus(width, rows int) string {
	statusRows := m.buildStatusRows(width, rows)
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, statusStyle.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) buildStatusRows(width, rowLimit int) []string {
	if width <= 0 || rowLimit <= 0 {
		return nil
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()

	segments := make([]string, 0, len(help)+len(context)+1)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status := strings.TrimSpace(m.status); status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows
}

func (m *Model) statusHelpSegments() []string {
	if m.mode == modeProps {
		return []string{"Enter apply", "Tab/Shift+Tab field", "Esc timeline"}
	}
	return []string{
		m.primaryActionKey(actionPlayToggle, "p") + " play/pause",
		"←/→ step",
		"Ctrl+←/→ bars",
		"Shift+←/→ nudge",
		m.primaryActionKey(actionCueForward, "Space") + " next cue",
		m.primaryActionKey(actionAppendElement, "a") + " add",
		m.primaryActionKey(actionDelete, "d") + " delete",
		m.primaryActionKey(actionEditProps, "Enter") + " edit",
		"↑/↓ row",
		"+/- zoom",
		"h/l pan",
		m.primaryActionKey(actionHelp, "?") + " help",
		m.primaryActionKey(actionQuit, "q") + " quit",
	}
}

func (m *Model) statusContextSegments() []string {
	parts := make([]string, 0, 4)
	if m.tl.Playing() {
		parts = append(parts, playStyle.Render("▶ "+m.playheadLabel()))
	} else {
		parts = append(parts, "■ "+m.playheadLabel())
	}
	parts = append(parts, fmt.Sprintf("%.1fx", m.tl.Scale()))
	if e := m.tl.Selected(); e != nil {
		name := e.DisplayText()
		if name == "" {
			name = string(e.Kind())
		}
		parts = append(parts, truncateWithEllipsis(name, 24))
	}
	if m.saveState != "" {
		parts = append(parts, m.saveState)
	}
	return parts
}
