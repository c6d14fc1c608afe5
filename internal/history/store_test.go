package history

import (
	"context"
	"testing"
	"time"

	"turbocut/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.DataDir = dir
	cfg.Paths.LogDir = dir
	return &cfg
}

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "a", Format: "edl", SourcePath: "/m/a.mov", Destination: "/out/a.edl", ClipCount: 3, FrameRate: 30, StartTimecode: "01:00:00:00", CreatedAt: base},
		{ID: "b", Format: "fcpxml", SourcePath: "/m/b.mov", Destination: "/out/b.fcpxmld", ClipCount: 5, FrameRate: 23.976, CreatedAt: base.Add(time.Minute)},
	}
	for _, entry := range entries {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Newest first.
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
	if got[1].StartTimecode != "01:00:00:00" || got[1].ClipCount != 3 || got[1].FrameRate != 30 {
		t.Fatalf("unexpected entry: %+v", got[1])
	}
	if !got[1].CreatedAt.Equal(base) {
		t.Fatalf("created at = %v, want %v", got[1].CreatedAt, base)
	}
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		entry := Entry{
			ID: string(rune('a' + i)), Format: "edl", SourcePath: "/m/x.mov",
			Destination: "/out/x.edl", ClipCount: 1, FrameRate: 30,
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	got, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	store, err = Open(cfg)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer store.Close()
	if _, err := store.Recent(context.Background(), 1); err != nil {
		t.Fatalf("Recent after reopen: %v", err)
	}
}
