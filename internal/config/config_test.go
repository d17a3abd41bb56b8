package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStorePathFromXDGDataHome(t *testing.T) {
	getenv := func(key string) string {
		if key == "XDG_DATA_HOME" {
			return "/custom/share"
		}
		return ""
	}
	got := StorePathFrom(getenv)
	want := filepath.Join("/custom/share", "recently-used.xbel")
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStorePathDefault(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	getenv := func(string) string { return "" }

	got := StorePathFrom(getenv)
	want := filepath.Join("/home/tester", ".local", "share", "recently-used.xbel")
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_DATA_HOME", "")

	cfg := NewConfig()
	if cfg.Picker != PickerAuto {
		t.Fatalf("default picker = %q", cfg.Picker)
	}
	if !strings.HasSuffix(cfg.StorePath, "recently-used.xbel") {
		t.Fatalf("store path = %q", cfg.StorePath)
	}
	if !strings.HasSuffix(cfg.DBPath, filepath.Join(".recentdirs", "history.db")) {
		t.Fatalf("db path = %q", cfg.DBPath)
	}

	cfg.WithStorePath("/x.xbel").WithDBPath("/y.db").WithPicker(PickerTUI)
	if cfg.StorePath != "/x.xbel" || cfg.DBPath != "/y.db" || cfg.Picker != PickerTUI {
		t.Fatalf("setters not applied: %+v", cfg)
	}
}
