package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() with no config file: %v", err)
	}

	if s.DefaultDuration != 25 {
		t.Errorf("DefaultDuration = %d, want 25", s.DefaultDuration)
	}
	if s.BreakDuration != 5 {
		t.Errorf("BreakDuration = %d, want 5", s.BreakDuration)
	}
	if !s.AutoBreak {
		t.Error("AutoBreak = false, want true")
	}
	if s.Sound != "none" {
		t.Errorf("Sound = %q, want \"none\"", s.Sound)
	}
	if s.Volume != 50 {
		t.Errorf("Volume = %d, want 50", s.Volume)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "focusloop")

	want := &Settings{
		DefaultDuration: 45,
		BreakDuration:   10,
		AutoBreak:       false,
		Sound:           "rain",
		Volume:          80,
	}
	if err := Save(dir, want); err != nil {
		t.Fatalf("Save(): %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() after Save(): %v", err)
	}
	if *got != *want {
		t.Errorf("round-tripped settings = %+v, want %+v", got, want)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	toml := "default_duration = 50\nsound = 'white-noise'\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if s.DefaultDuration != 50 || s.Sound != "white-noise" {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.BreakDuration != 5 || s.Volume != 50 {
		t.Errorf("defaults not applied for unset keys: %+v", s)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() on malformed config returned nil error")
	}
}
