package history

import (
	"path/filepath"
	"testing"
)

func openTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRecordAndRecent(t *testing.T) {
	repo := openTestRepo(t)

	if err := repo.Record("/home/u/docs/"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := repo.Record("/srv/media/"); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries want 2", len(entries))
	}
	if entries[0].Path != "/srv/media/" {
		t.Fatalf("newest first expected, got %q", entries[0].Path)
	}
}

func TestRecentLimit(t *testing.T) {
	repo := openTestRepo(t)
	for _, p := range []string{"/a/", "/b/", "/c/"} {
		if err := repo.Record(p); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries want 2", len(entries))
	}
}

func TestRecentEmpty(t *testing.T) {
	repo := openTestRepo(t)
	entries, err := repo.Recent(5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}
