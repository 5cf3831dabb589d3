package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/showctl/cueline/internal/logging"
	"github.com/showctl/cueline/internal/theme"
)

const (
	configDirName  = ".cueline"
	configFileName = "config.json"
)

var log = logging.New("config")

// SceneConfig describes one switchable scene fed into the scene registry:
// a stable id referenced by saved shows, a display name, and a hex color
// for its cues on the timeline.
type SceneConfig struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Config stores user-defined cueline settings. A missing config file is
// not an error; Load falls back to Default so the app is usable on first
// run.
type Config struct {
	// ShowFile is the YAML show document the app edits.
	ShowFile string `json:"show_file"`

	// Scenes the show can cut between. Scene cues reference these by id.
	Scenes []SceneConfig `json:"scenes,omitempty"`

	// Keybindings maps action names (e.g. "playback.toggle") to key
	// names, overriding the built-in defaults.
	Keybindings map[string]string `json:"keybindings,omitempty"`

	// KeymapFile optionally points at a standalone JSON keybinding file
	// applied on top of Keybindings.
	KeymapFile string `json:"keymap_file,omitempty"`
}

// Default returns the configuration used when no config file exists: the
// show document under the config dir and the built-in scene set.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home dir: %w", err)
	}
	return Config{
		ShowFile: filepath.Join(home, configDirName, "show.yaml"),
		Scenes:   DefaultScenes(),
	}, nil
}

// DefaultScenes is the built-in scene set used when the config does not
// define one.
func DefaultScenes() []SceneConfig {
	return []SceneConfig{
		{ID: "camera-1", Name: "CAMERA 1", Color: string(theme.NeutralRed)},
		{ID: "media", Name: "MEDIA", Color: string(theme.NeutralGreen)},
		{ID: "camera-3", Name: "CAMERA 3", Color: string(theme.NeutralBlue)},
	}
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path: %w", err)
}

// Load reads and validates the saved configuration. A missing file yields
// Default rather than an error.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("no config file, using defaults", "path", path)
			return Default()
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	showFile, err := NormalizeShowFile(cfg.ShowFile)
	if err != nil {
		return Config{}, fmt.Errorf("invalid show_file: %w", err)
	}
	cfg.ShowFile = showFile

	if len(cfg.Scenes) == 0 {
		cfg.Scenes = DefaultScenes()
	}
	for i, s := range cfg.Scenes {
		if strings.TrimSpace(s.ID) == "" {
			return Config{}, fmt.Errorf("invalid scenes: entry %d has no id", i)
		}
		if s.Color != "" && !theme.Valid(theme.Color(s.Color)) {
			return Config{}, fmt.Errorf("invalid scenes: entry %d color %q is not a hex color", i, s.Color)
		}
	}

	if cfg.KeymapFile != "" {
		keymap, err := expandHome(cfg.KeymapFile)
		if err != nil {
			return Config{}, fmt.Errorf("invalid keymap_file: %w", err)
		}
		cfg.KeymapFile = keymap
	}

	return cfg, nil
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	showFile, err := NormalizeShowFile(cfg.ShowFile)
	if err != nil {
		return fmt.Errorf("invalid show_file: %w", err)
	}
	cfg.ShowFile = showFile

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// Keymap loads the standalone keybinding file named by the config, a flat
// JSON object of action name to key name. An empty KeymapFile yields nil.
func Keymap(cfg Config) (map[string]string, error) {
	if cfg.KeymapFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(cfg.KeymapFile)
	if err != nil {
		return nil, fmt.Errorf("read keymap %q: %w", cfg.KeymapFile, err)
	}
	var keymap map[string]string
	if err := json.Unmarshal(data, &keymap); err != nil {
		return nil, fmt.Errorf("parse keymap %q: %w", cfg.KeymapFile, err)
	}
	return keymap, nil
}

// NormalizeShowFile expands and normalizes the show document path.
func NormalizeShowFile(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
