package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/depeter/isoview/internal/camera"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultCameraOptionsMatchCamera(t *testing.T) {
	got := DefaultConfig().Camera.Options()
	want := camera.DefaultOptions()
	if math.Abs(got.FollowSpeed-want.FollowSpeed) > 1e-12 {
		t.Fatalf("follow speed = %v, want %v", got.FollowSpeed, want.FollowSpeed)
	}
	got.FollowSpeed = want.FollowSpeed
	if got != want {
		t.Fatalf("options = %+v, want %+v", got, want)
	}
}

func TestConfigDirHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	if want := filepath.Join(dir, "isoview", "config.toml"); got != want {
		t.Fatalf("ConfigPath = %q, want %q", got, want)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Camera.Zoom = 72
	cfg.Keybinds.RotateLeft = "Z"
	cfg.Scene.File = "/tmp/stage.yaml"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("loaded %+v, want %+v", got, cfg)
	}
}

func TestLoadFileMissingGivesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[camera]\nzoom = 30.0\n\n[list]\ngap = 8\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Camera.Zoom != 30 || cfg.List.Gap != 8 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Camera.YFactor != 0.5 || cfg.List.Margin != 100 || cfg.Keybinds.RotateRight != "E" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadFileRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "[camera\nzoom = 1", "parse"},
		{"zero_zoom", "[camera]\nzoom = 0.0", "camera.zoom"},
		{"flat_follow", "[camera]\nfollow_base = 1.0", "follow_base"},
		{"y_factor", "[camera]\ny_factor = 2.0", "y_factor"},
		{"rotation", "[camera]\nrotation_duration = 0", "rotation_duration"},
		{"gap", "[list]\ngap = -1", "gap"},
		{"focus", "[list]\nfocus_anim_length = 0", "focus_anim_length"},
		{"speed", "[scene]\nplayer_speed = 0.0", "player_speed"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, c.body)
			_, err := LoadFile(path)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("err = %v, want mention of %q", err, c.want)
			}
		})
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[camera]\nzoom = 40.0\n")

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "[camera]\nzoom = 64.0\n")

	select {
	case cfg := <-w.Configs:
		if cfg.Camera.Zoom != 64 {
			t.Fatalf("reloaded zoom = %v, want 64", cfg.Camera.Zoom)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatchReportsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "")

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "[camera]\nzoom = -3.0\n")

	select {
	case cfg := <-w.Configs:
		t.Fatalf("bad config delivered: %+v", cfg)
	case err := <-w.Errors:
		if !strings.Contains(err.Error(), "camera.zoom") {
			t.Fatalf("err = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error after bad write")
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Configs; ok {
		t.Fatal("Configs still open after Close")
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
