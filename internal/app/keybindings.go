package app

import (
	"slices"
	"strings"

	"github.com/showctl/cueline/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Each constant below identifies a user-triggerable action on the timeline.
// Actions are the abstraction layer between physical key presses and
// application behavior: the user presses a key, the key is looked up in the
// keyToAction map, and the resulting action string is dispatched in
// handleTimelineKey.
//
// Default key assignments are declared in defaultActionKeys. Users can
// override any assignment via the "keybindings" map in config.json or via an
// external keymap file named by "keymap_file".
// ---------------------------------------------------------------------------

const (
	// actionPlayToggle starts or pauses the playback clock.
	actionPlayToggle = "playback.toggle"

	// actionStepBack jumps the playhead to the previous time-ruler marking.
	actionStepBack = "playhead.step.back"

	// actionStepForward jumps the playhead to the next time-ruler marking.
	actionStepForward = "playhead.step.forward"

	// actionStepBackCoarse jumps to the previous labeled marking (whole
	// second, bar start).
	actionStepBackCoarse = "playhead.step.back_coarse"

	// actionStepForwardCoarse jumps to the next labeled marking.
	actionStepForwardCoarse = "playhead.step.forward_coarse"

	// actionNudgeBack nudges the playhead one pixel left.
	actionNudgeBack = "playhead.nudge.back"

	// actionNudgeForward nudges the playhead one pixel right.
	actionNudgeForward = "playhead.nudge.forward"

	// actionCueForward jumps the playhead to the next cue boundary.
	actionCueForward = "playhead.cue.forward"

	// actionCueBack jumps the playhead to the previous cue boundary.
	actionCueBack = "playhead.cue.back"

	// actionDelete removes the selected element; its predecessor in the
	// row becomes the new selection.
	actionDelete = "element.delete"

	// actionAppendElement appends a new element to the selected element's
	// row (or the first row that accepts one), placed at the row's end.
	actionAppendElement = "element.append"

	// actionEditProps moves keyboard focus into the property editor pane
	// for the selected element.
	actionEditProps = "element.edit"

	// actionRowUp and actionRowDown move the selection to the nearest
	// element in the previous or next occupied row.
	actionRowUp   = "selection.row.up"
	actionRowDown = "selection.row.down"

	// actionZoomIn and actionZoomOut step the zoom scale, anchored at the
	// playhead.
	actionZoomIn  = "view.zoom.in"
	actionZoomOut = "view.zoom.out"

	// actionScrollLeft and actionScrollRight pan the visible window.
	actionScrollLeft  = "view.scroll.left"
	actionScrollRight = "view.scroll.right"

	// actionHelp toggles the keyboard shortcut reference overlay.
	actionHelp = "help.toggle"

	// actionQuit exits the application after a final save.
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// They can be overridden per-user via config.json ("keybindings" object) or
// an external keymap file ("keymap_file" path).
//
// Key strings use the Bubble Tea notation:
//   - Modifier keys: "ctrl+", "alt+", "shift+"
//   - Special keys: "enter", "esc", "tab", "up", "down", "left", "right"
//   - Single characters: "p", "d", "?", etc.
var defaultActionKeys = map[string][]string{
	actionPlayToggle:        {"p"},
	actionStepBack:          {"left"},
	actionStepForward:       {"right"},
	actionStepBackCoarse:    {"ctrl+left"},
	actionStepForwardCoarse: {"ctrl+right"},
	actionNudgeBack:         {"shift+left"},
	actionNudgeForward:      {"shift+right"},
	actionCueForward:        {"space"},
	actionCueBack:           {"shift+space"},
	actionDelete:            {"d", "delete", "backspace"},
	actionAppendElement:     {"a"},
	actionEditProps:         {"enter", "tab"},
	actionRowUp:             {"up", "k"},
	actionRowDown:           {"down", "j"},
	actionZoomIn:            {"+", "="},
	actionZoomOut:           {"-"},
	actionScrollLeft:        {"h"},
	actionScrollRight:       {"l"},
	actionHelp:              {"?"},
	actionQuit:              {"q", "ctrl+c"},
}

// ---------------------------------------------------------------------------
// Keybinding initialization
// ---------------------------------------------------------------------------

// loadKeybindings initializes the bidirectional key↔action maps from three
// sources, applied in order of increasing priority:
//
//  1. defaultActionKeys: built-in factory defaults (always applied first).
//  2. cfg.Keybindings: inline overrides from the "keybindings" object in
//     ~/.cueline/config.json.
//  3. External keymap file: overrides from the JSON file at cfg.KeymapFile,
//     if configured.
//
// After all sources are merged, rebuildActionKeyIndex builds the reverse
// lookup map (key string → action) used at runtime for dispatch.
//
// Any unknown action names in user overrides are logged as warnings and
// ignored. Overrides replace an action's full default key set with the
// configured key. Key conflicts (two actions mapped to the same key) are also
// logged as warnings; the first action to claim a key wins.
func (m *Model) loadKeybindings(cfg config.Config) {
	// Start with a fresh copy of the factory defaults.
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	// Layer on inline config overrides (lower priority than keymap file).
	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	// Layer on external keymap file overrides (highest priority).
	fileOverrides, err := config.Keymap(cfg)
	if err != nil {
		appLog.Warn("load keymap file", "path", cfg.KeymapFile, "error", err)
	}
	for action, key := range fileOverrides {
		m.applyKeybindingOverride(action, key)
	}

	// Build the reverse index for runtime key → action lookups.
	m.rebuildActionKeyIndex()
}

// applyKeybindingOverride updates a single action's key binding, replacing the
// action's full default key set.
//
// Both the action and key are trimmed and normalized. If the action string
// is not recognized (i.e. it does not exist in defaultActionKeys), the
// override is ignored and a warning is logged. This prevents typos in
// config files from silently failing.
func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex constructs the reverse lookup map (keyToAction) from
// the current keyForAction map.
//
// If two actions are mapped to the same key, a warning is logged and the
// first action encountered keeps the binding. The conflicting action's key
// is effectively unbound.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	for action, keys := range m.keyForAction {
		for _, key := range keys {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// ---------------------------------------------------------------------------
// Key string normalization
// ---------------------------------------------------------------------------

// normalizeKeyString converts a user-provided key string into the canonical
// lowercase form used internally by Bubble Tea and the keybinding maps.
//
// Normalization rules:
//   - Whitespace around the key is trimmed; a bare " " means the space bar
//     and becomes "space" (the form Bubble Tea reports for it varies, so
//     both spellings collapse to one).
//   - The entire string is lowercased (Bubble Tea reports keys in lowercase).
//   - A single uppercase letter (e.g. "Y") is converted to "shift+y" because
//     Bubble Tea may report shifted letter keys as uppercase runes.
func normalizeKeyString(key string) string {
	if key == " " {
		return "space"
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	// Bubble Tea may report uppercase single rune keys for shifted letters.
	// Normalize "Y" → "shift+y" so config files can use either form.
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey looks up the action bound to the given key string.
//
// The key is normalized before lookup to ensure consistent matching
// regardless of how the terminal reports the key event. Returns an empty
// string if no action is bound to the key.
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" {
			continue
		}
		if slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"home":      "Home",
		"end":       "End",
		"pgup":      "PgUp",
		"pgdown":    "PgDn",
		"space":     "Space",
		"delete":    "Del",
		"backspace": "Backspace",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			runes := []rune(part)
			if len(runes) == 1 && runes[0] >= 'a' && runes[0] <= 'z' {
				parts[i] = strings.ToUpper(part)
			} else if len(part) > 1 {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}
