package timeline

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateClips(t *testing.T) {
	cases := []struct {
		name    string
		clips   []Clip
		wantErr bool
	}{
		{"valid", []Clip{{2, 5}, {10, 12}}, false},
		{"single", []Clip{{0, 0.5}}, false},
		{"empty", nil, true},
		{"end equals start", []Clip{{2, 2}}, true},
		{"end before start", []Clip{{5, 2}}, true},
		{"negative start", []Clip{{-1, 2}}, true},
		{"nan", []Clip{{math.NaN(), 2}}, true},
		{"one bad rejects all", []Clip{{2, 5}, {8, 8}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateClips(tc.clips)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateClips(%v) error = %v, wantErr %v", tc.clips, err, tc.wantErr)
			}
		})
	}
}

func TestClipDuration(t *testing.T) {
	clip := Clip{Start: 2.5, End: 6.0}
	if got := clip.Duration(); got != 3.5 {
		t.Fatalf("Duration() = %v, want 3.5", got)
	}
}

func TestLoadClips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clips.json")
	if err := os.WriteFile(path, []byte(`[{"start":2.0,"end":5.0},{"start":10.0,"end":12.0}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	clips, err := LoadClips(path)
	if err != nil {
		t.Fatalf("LoadClips: %v", err)
	}
	if len(clips) != 2 || clips[0].Start != 2 || clips[1].End != 12 {
		t.Fatalf("unexpected clips: %v", clips)
	}
}

func TestLoadClipsErrors(t *testing.T) {
	if _, err := LoadClips(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadClips(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
