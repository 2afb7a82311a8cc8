package history

import (
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openStore(t)

	words := []string{"việt", "nam", "chào"}
	for _, w := range words {
		if err := store.Record(w, "telex", "new"); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent returned %d entries, want 3", len(entries))
	}
	for _, e := range entries {
		if e.Count != 1 {
			t.Errorf("%q count = %d, want 1", e.Word, e.Count)
		}
		if e.Method != "telex" || e.Style != "new" {
			t.Errorf("%q method/style = %s/%s", e.Word, e.Method, e.Style)
		}
	}
}

func TestRecordBumpsCount(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 3; i++ {
		if err := store.Record("việt", "telex", "new"); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.Record("nam", "telex", "new"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Top(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("Top returned %d entries, want 2", len(entries))
	}
	if entries[0].Word != "việt" || entries[0].Count != 3 {
		t.Errorf("top entry = %q/%d, want việt/3", entries[0].Word, entries[0].Count)
	}
}

func TestSameWordDifferentMethod(t *testing.T) {
	store := openStore(t)

	if err := store.Record("việt", "telex", "new"); err != nil {
		t.Fatal(err)
	}
	if err := store.Record("việt", "vni", "new"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("Recent returned %d entries, want 2", len(entries))
	}
}

func TestClear(t *testing.T) {
	store := openStore(t)

	if err := store.Record("việt", "telex", "new"); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Recent after Clear returned %d entries, want 0", len(entries))
	}
}

func TestLimit(t *testing.T) {
	store := openStore(t)

	for _, w := range []string{"một", "hai", "ba", "bốn"} {
		if err := store.Record(w, "telex", "new"); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("Recent(2) returned %d entries", len(entries))
	}
}
