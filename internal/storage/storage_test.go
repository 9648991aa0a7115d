package storage

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTest(t)

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rec := SessionRecord{
		ID:        "abc",
		FEN:       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
		CreatedAt: now,
		UpdatedAt: now.Add(time.Minute),
	}

	t.Run("Save and load", func(t *testing.T) {
		if err := s.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
		got, err := s.LoadSession("abc")
		if err != nil {
			t.Fatalf("LoadSession: %v", err)
		}
		if got.ID != rec.ID || got.FEN != rec.FEN {
			t.Errorf("Loaded %+v, want %+v", got, rec)
		}
		if !got.CreatedAt.Equal(rec.CreatedAt) || !got.UpdatedAt.Equal(rec.UpdatedAt) {
			t.Errorf("Timestamps changed: %+v", got)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		rec.FEN = "4k3/8/8/8/8/8/8/4K3 b - - 0 1"
		if err := s.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
		got, err := s.LoadSession("abc")
		if err != nil {
			t.Fatalf("LoadSession: %v", err)
		}
		if got.FEN != rec.FEN {
			t.Errorf("Expected overwritten FEN %q, got %q", rec.FEN, got.FEN)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := s.LoadSession("nope")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.DeleteSession("abc"); err != nil {
			t.Fatalf("DeleteSession: %v", err)
		}
		if _, err := s.LoadSession("abc"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := s.DeleteSession("abc"); err != nil {
			t.Errorf("Deleting a missing session should succeed, got %v", err)
		}
	})

	t.Run("Empty id", func(t *testing.T) {
		if err := s.SaveSession(SessionRecord{}); err == nil {
			t.Error("Expected error for record without id")
		}
	})
}

func TestListSessions(t *testing.T) {
	s := openTest(t)

	for _, id := range []string{"b", "a", "c"} {
		if err := s.SaveSession(SessionRecord{ID: id, FEN: "8/8/8/8/8/8/8/8 w - - 0 1"}); err != nil {
			t.Fatalf("SaveSession(%s): %v", id, err)
		}
	}

	recs, err := s.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(recs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if recs[i].ID != want {
			t.Errorf("recs[%d].ID = %q, want %q", i, recs[i].ID, want)
		}
	}
}

func TestOpenOnDisk(t *testing.T) {
	tmpDir := t.TempDir()
	dbDir := filepath.Join(tmpDir, "db")

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	s, err := Open(Options{Dir: dbDir, Logger: logger})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveSession(SessionRecord{ID: "persisted", FEN: "8/8/8/8/8/8/8/8 w - - 0 1"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := os.Stat(dbDir); err != nil {
		t.Fatalf("Database directory missing: %v", err)
	}

	s, err = Open(Options{Dir: dbDir})
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	defer s.Close()

	got, err := s.LoadSession("persisted")
	if err != nil {
		t.Fatalf("LoadSession after reopen: %v", err)
	}
	if got.ID != "persisted" {
		t.Errorf("Unexpected record %+v", got)
	}

	t.Logf("badger log:\n%s", buf.String())
}

func TestBadgerLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(log.New(&buf, "", 0), false)
	l.Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Debug output should be suppressed, got %q", buf.String())
	}
	l.Warningf("shown %d", 2)
	if !strings.Contains(buf.String(), "badger: WARNING: shown 2") {
		t.Errorf("Unexpected output %q", buf.String())
	}

	buf.Reset()
	newLogger(log.New(&buf, "", 0), true).Debugf("visible")
	if !strings.Contains(buf.String(), "DEBUG: visible") {
		t.Errorf("Debug output should be forwarded, got %q", buf.String())
	}
}

func TestDataPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}

func TestOpenDefaultDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on Linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	s, err := Open(Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(base, appName, "db")); err != nil {
		t.Errorf("Expected database under XDG_DATA_HOME: %v", err)
	}
}
