package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[paths]\nlog_dir = \"" + dir + "/logs\"\ndata_dir = \"" + dir + "/data\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeClipList(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clips.json")
	if err := os.WriteFile(path, []byte(`[{"start":2.0,"end":5.0},{"start":10.0,"end":12.0}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeMediaStub(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shoot.mov")
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportEDLWithoutOutputIsSkipped(t *testing.T) {
	// No --output means the destination selection was declined; the export
	// must be a clean no-op, reached before any probe runs.
	out, err := runCommand(t,
		"--config", writeTestConfig(t),
		"export", "edl", writeMediaStub(t),
		"--clips", writeClipList(t),
	)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Export skipped") {
		t.Fatalf("expected skip notice, got:\n%s", out)
	}
}

func TestExportRejectsMissingMedia(t *testing.T) {
	_, err := runCommand(t,
		"--config", writeTestConfig(t),
		"export", "edl", filepath.Join(t.TempDir(), "absent.mov"),
		"--clips", writeClipList(t),
	)
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing-media error, got %v", err)
	}
}

func TestExportRequiresClipsFlag(t *testing.T) {
	_, err := runCommand(t,
		"--config", writeTestConfig(t),
		"export", "edl", writeMediaStub(t),
	)
	if err == nil {
		t.Fatal("expected error for missing --clips flag")
	}
}

func TestExportRejectsBadClipList(t *testing.T) {
	clips := filepath.Join(t.TempDir(), "clips.json")
	if err := os.WriteFile(clips, []byte(`[{"start":5.0,"end":5.0}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	// Clip validation runs before destination selection, so the export
	// errors even without --output.
	_, err := runCommand(t,
		"--config", writeTestConfig(t),
		"export", "edl", writeMediaStub(t),
		"--clips", clips,
	)
	if err == nil || !strings.Contains(err.Error(), "not after start") {
		t.Fatalf("expected clip validation error, got %v", err)
	}
}

func TestHistoryEmpty(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t), "history")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "No exports recorded yet.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
