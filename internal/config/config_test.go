package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsWhenMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load without config file: %v", err)
	}

	expected := filepath.Join(home, configDirName, "show.yaml")
	if cfg.ShowFile != expected {
		t.Fatalf("expected default show file %q, got %q", expected, cfg.ShowFile)
	}
	if len(cfg.Scenes) == 0 {
		t.Fatal("expected default scenes")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Config{
		ShowFile: "~/shows/tour.yaml",
		Scenes: []SceneConfig{
			{ID: "cam1", Name: "CAMERA 1", Color: "#cc241d"},
		},
		Keybindings: map[string]string{"playback.toggle": "space"},
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}

	exists, err := Exists()
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	expected := filepath.Join(home, "shows", "tour.yaml")
	if loaded.ShowFile != expected {
		t.Fatalf("expected show file %q, got %q", expected, loaded.ShowFile)
	}
	if len(loaded.Scenes) != 1 || loaded.Scenes[0].ID != "cam1" {
		t.Fatalf("expected saved scenes back, got %+v", loaded.Scenes)
	}
	if loaded.Keybindings["playback.toggle"] != "space" {
		t.Fatalf("expected keybinding override back, got %+v", loaded.Keybindings)
	}
}

func TestLoadFillsDefaultScenes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := Save(Config{ShowFile: "~/show.yaml"}); err != nil {
		t.Fatalf("save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(loaded.Scenes) != len(DefaultScenes()) {
		t.Fatalf("expected default scenes, got %+v", loaded.Scenes)
	}
}

func TestLoadRejectsSceneWithoutID(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, `{"show_file":"~/show.yaml","scenes":[{"name":"CAMERA 1"}]}`)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for scene without id")
	}
}

func TestLoadRejectsBadSceneColor(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeConfig(t, home, `{"show_file":"~/show.yaml","scenes":[{"id":"cam1","color":"red-ish"}]}`)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-hex scene color")
	}
}

func TestNormalizeShowFileRejectsEmpty(t *testing.T) {
	if _, err := NormalizeShowFile("   "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestKeymapFileLoads(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	keymapPath := filepath.Join(home, "keys.json")
	if err := os.WriteFile(keymapPath, []byte(`{"element.delete":"x"}`), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	if err := Save(Config{ShowFile: "~/show.yaml", KeymapFile: "~/keys.json"}); err != nil {
		t.Fatalf("save config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.KeymapFile != keymapPath {
		t.Fatalf("expected keymap file %q, got %q", keymapPath, cfg.KeymapFile)
	}

	keymap, err := Keymap(cfg)
	if err != nil {
		t.Fatalf("load keymap: %v", err)
	}
	if keymap["element.delete"] != "x" {
		t.Fatalf("expected keymap entry, got %+v", keymap)
	}
}

func TestKeymapEmptyIsNil(t *testing.T) {
	keymap, err := Keymap(Config{})
	if err != nil {
		t.Fatalf("keymap: %v", err)
	}
	if keymap != nil {
		t.Fatalf("expected nil keymap, got %+v", keymap)
	}
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	path := filepath.Join(home, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
