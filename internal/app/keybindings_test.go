package app

import (
	"testing"

	"github.com/showctl/cueline/internal/config"
)

func TestActionForKeySupportsDefaults(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{})

	cases := map[string]string{
		"p":           actionPlayToggle,
		"left":        actionStepBack,
		"right":       actionStepForward,
		"ctrl+left":   actionStepBackCoarse,
		"shift+right": actionNudgeForward,
		" ":           actionCueForward,
		"space":       actionCueForward,
		"d":           actionDelete,
		"delete":      actionDelete,
		"+":           actionZoomIn,
		"=":           actionZoomIn,
		"-":           actionZoomOut,
		"?":           actionHelp,
		"q":           actionQuit,
		"ctrl+c":      actionQuit,
	}
	for key, want := range cases {
		if got := m.actionForKey(key); got != want {
			t.Fatalf("actionForKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestLoadKeybindingsOverrideReplacesDefaultAliases(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{
			actionDelete: "x",
		},
	})

	if got := m.actionForKey("x"); got != actionDelete {
		t.Fatalf("expected override key to map to delete, got %q", got)
	}
	if got := m.actionForKey("d"); got != "" {
		t.Fatalf("expected default alias 'd' to be replaced, got %q", got)
	}
	if got := m.actionForKey("delete"); got != "" {
		t.Fatalf("expected default alias 'delete' to be replaced, got %q", got)
	}
}

func TestLoadKeybindingsIgnoresUnknownAction(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{
			"note.new": "n",
		},
	})

	if got := m.actionForKey("n"); got != "" {
		t.Fatalf("unknown action should not claim a key, got %q", got)
	}
}

func TestNormalizeKeyString(t *testing.T) {
	cases := map[string]string{
		" ":       "space",
		"Ctrl+P":  "ctrl+p",
		" Y ":     "shift+y",
		"shift+l": "shift+l",
		"":        "",
	}
	for in, want := range cases {
		if got := normalizeKeyString(in); got != want {
			t.Fatalf("normalizeKeyString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHumanizeKeyLabel(t *testing.T) {
	cases := map[string]string{
		"ctrl+left": "Ctrl+←",
		"space":     "Space",
		"p":         "P",
		"delete":    "Del",
	}
	for in, want := range cases {
		if got := humanizeKeyLabel(in); got != want {
			t.Fatalf("humanizeKeyLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
