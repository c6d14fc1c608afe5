package main

import (
	"strings"
	"testing"
)

func TestConfigShow(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t), "config", "show")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	for _, want := range []string{"[paths]", "[export]", "frame_rate", "ffprobe_binary"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigPath(t *testing.T) {
	out, err := runCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "turbocut/config.toml") {
		t.Fatalf("unexpected path output: %q", out)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"A", "B"},
		[][]string{{"1", "2"}, {"3"}},
		[]columnAlignment{alignRight, alignLeft},
	)
	if !strings.Contains(out, "A") || !strings.Contains(out, "3") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("empty header set should render nothing")
	}
}
