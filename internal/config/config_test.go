package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Export.FrameRate != 23.976 {
		t.Fatalf("default frame rate = %v", cfg.Export.FrameRate)
	}
	if !cfg.History.Enabled {
		t.Fatal("history should default to enabled")
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
log_dir = "` + dir + `/logs"
data_dir = "` + dir + `/data"

[export]
frame_rate = 29.97
ffprobe_binary = "/opt/ffmpeg/bin/ffprobe"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved=%q exists=%v", resolved, exists)
	}
	if cfg.Export.FrameRate != 29.97 {
		t.Fatalf("frame rate = %v", cfg.Export.FrameRate)
	}
	if cfg.Export.FFprobeBinary != "/opt/ffmpeg/bin/ffprobe" {
		t.Fatalf("ffprobe binary = %q", cfg.Export.FFprobeBinary)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if !strings.HasSuffix(cfg.Paths.DataDir, "/data") {
		t.Fatalf("data dir not expanded: %q", cfg.Paths.DataDir)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("exists should be false for a missing file")
	}
	if cfg.Export.FFprobeBinary != "ffprobe" {
		t.Fatalf("ffprobe binary = %q", cfg.Export.FFprobeBinary)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n"},
		{"bad level", "[logging]\nlevel = \"loud\"\n"},
		{"negative rate", "[export]\nframe_rate = -1.0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, _, _, err := Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSupportedFrameRate(t *testing.T) {
	for _, rate := range supportedFrameRates {
		if !SupportedFrameRate(rate) {
			t.Errorf("rate %v should be supported", rate)
		}
	}
	if SupportedFrameRate(48) {
		t.Error("48 should not be a supported rate")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[export]") {
		t.Fatalf("sample config missing [export] section")
	}
}
