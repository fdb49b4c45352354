package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kanavgoyal898/idacube/internal/heuristic"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	table := heuristic.Table{"AAA": 0, "AAB": 1}

	if err := Save(root, 3, table); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(root, 3) {
		t.Fatal("Exists should report true after Save")
	}

	got, err := Load(root, 3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(table) {
		t.Fatalf("loaded table has %d entries, want %d", len(got), len(table))
	}
	for k, v := range table {
		if got[k] != v {
			t.Errorf("table[%q] = %d, want %d", k, got[k], v)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	root := t.TempDir()
	if _, err := Load(root, 3); err == nil {
		t.Fatal("expected ErrHeuristicIO for a missing table")
	}
}

func TestLoadDetectsChecksumMismatch(t *testing.T) {
	root := t.TempDir()
	table := heuristic.Table{"AAA": 0}
	if err := Save(root, 3, table); err != nil {
		t.Fatalf("Save: %v", err)
	}

	tablePath := filepath.Join(Dir(root, 3), tableFileName)
	if err := os.WriteFile(tablePath, []byte(`{"AAA":0,"TAMPERED":99}`), 0o644); err != nil {
		t.Fatalf("tampering with table file: %v", err)
	}

	if _, err := Load(root, 3); err == nil {
		t.Fatal("expected ErrHeuristicIO after tampering with the table file")
	}
}

func TestExistsFalseForUnbuiltSize(t *testing.T) {
	root := t.TempDir()
	if Exists(root, 4) {
		t.Error("Exists should be false before any Save for that size")
	}
}
