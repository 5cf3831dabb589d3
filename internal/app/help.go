package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown is the shortcut reference, rendered with glamour so it
// matches the dark theme. Key labels come from the live bindings so the
// overlay stays correct under user overrides.
func (m *Model) helpMarkdown() string {
	line := func(action, fallback, desc string) string {
		return fmt.Sprintf("| %s | %s |", m.primaryActionKey(action, fallback), desc)
	}
	rows := []string{
		"# cueline",
		"",
		"## Playback",
		"",
		"| Key | Action |",
		"| --- | --- |",
		line(actionPlayToggle, "p", "Play / pause"),
		line(actionStepForward, "→", "Next ruler marking (← back)"),
		line(actionStepForwardCoarse, "Ctrl+→", "Next second / bar (Ctrl+← back)"),
		line(actionNudgeForward, "Shift+→", "Nudge playhead (Shift+← back)"),
		line(actionCueForward, "Space", "Jump to next cue boundary"),
		line(actionCueBack, "Shift+Space", "Jump to previous cue boundary"),
		"",
		"## Editing",
		"",
		"| Key | Action |",
		"| --- | --- |",
		line(actionAppendElement, "a", "Append element to the selected row"),
		line(actionDelete, "d", "Delete selection (predecessor selected)"),
		line(actionEditProps, "Enter", "Edit the selection's properties"),
		line(actionRowDown, "↓", "Select in the next row (↑ previous)"),
		"| Click | Select element (empty space deselects) |",
		"| Drag body | Move element, snapping to edges and markings |",
		"| Drag edge | Resize element |",
		"| Drag gutter | Scrub the playhead |",
		"",
		"## View",
		"",
		"| Key | Action |",
		"| --- | --- |",
		line(actionZoomIn, "+", "Zoom in (- out); Alt+wheel zooms at pointer"),
		line(actionScrollLeft, "h", "Pan left (l right); wheel pans"),
		line(actionHelp, "?", "Toggle this help"),
		line(actionQuit, "q", "Save and quit"),
	}
	return strings.Join(rows, "\n")
}

// renderHelp renders the overlay, re-rendering only when the width
// changes.
func (m *Model) renderHelp(width, height int) string {
	if width != m.helpWidth || m.helpView == "" {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(max(20, width-2)),
		)
		if err != nil {
			m.helpView = m.helpMarkdown()
		} else if rendered, err := renderer.Render(m.helpMarkdown()); err != nil {
			appLog.Warn("render help", "error", err)
			m.helpView = m.helpMarkdown()
		} else {
			m.helpView = rendered
		}
		m.helpWidth = width
	}

	lines := strings.Split(m.helpView, "\n")
	visible := min(height, len(lines))
	out := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		out = append(out, truncate(lines[i], width))
	}
	return strings.Join(out, "\n")
}
