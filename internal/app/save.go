package app

import (
	"os"
	"path/filepath"

	"github.com/showctl/cueline/internal/timeline"
)

// saveShow writes the show document to the configured path. It runs as a
// Committed subscriber, so every persistence point (drag release, add,
// delete, property edit) lands on disk without an explicit save gesture.
// Failures are surfaced in the footer and logged; the session keeps
// running on the in-memory timeline.
func (m *Model) saveShow() {
	if err := os.MkdirAll(filepath.Dir(m.cfg.ShowFile), 0o755); err != nil {
		m.saveState = "Save failed"
		m.setStatusError("Error saving show", err, "path", m.cfg.ShowFile)
		return
	}
	if err := timeline.SaveFile(m.tl, m.cfg.ShowFile); err != nil {
		m.saveState = "Save failed"
		m.setStatusError("Error saving show", err, "path", m.cfg.ShowFile)
		return
	}
	m.saveState = "Saved"
	appLog.Debug("saved show", "path", m.cfg.ShowFile)
}
