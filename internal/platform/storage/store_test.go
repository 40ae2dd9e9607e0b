package storage

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type record struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// conformanceBackends builds every backend over a fresh location so the
// same behavioral suite runs against all of them.
func conformanceBackends(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := NewSQLiteSlotStore(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"file":   NewFileSlotStore(t.TempDir()),
		"sqlite": sqlite,
		"memory": NewMemorySlotStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	for name, store := range conformanceBackends(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			saved := []record{{ID: 1, Code: "CS101"}, {ID: 2, Code: "MA201"}}
			if err := store.Save(ctx, SlotExams, saved); err != nil {
				t.Fatalf("save: %v", err)
			}

			var loaded []record
			if err := store.Load(ctx, SlotExams, &loaded); err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(loaded, saved) {
				t.Fatalf("round trip mismatch: %+v vs %+v", loaded, saved)
			}
		})
	}
}

func TestStoreMissingSlotKeepsDefault(t *testing.T) {
	t.Parallel()
	for name, store := range conformanceBackends(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			value := "dashboard"
			if err := store.Load(context.Background(), SlotLastSection, &value); err != nil {
				t.Fatalf("missing slot must not error: %v", err)
			}
			if value != "dashboard" {
				t.Fatalf("missing slot must leave the default, got %q", value)
			}
		})
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	t.Parallel()
	for name, store := range conformanceBackends(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			if err := store.Save(ctx, SlotTheme, "nord"); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := store.Save(ctx, SlotTheme, "matrix"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}

			var value string
			if err := store.Load(ctx, SlotTheme, &value); err != nil {
				t.Fatalf("load: %v", err)
			}
			if value != "matrix" {
				t.Fatalf("expected overwritten value, got %q", value)
			}
		})
	}
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	for name, store := range conformanceBackends(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			if err := store.Save(ctx, SlotTasks, []string{"a"}); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := store.Delete(ctx, SlotTasks); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if err := store.Delete(ctx, SlotTasks); err != nil {
				t.Fatalf("repeat delete must be a no-op: %v", err)
			}

			var tasks []string
			if err := store.Load(ctx, SlotTasks, &tasks); err != nil {
				t.Fatalf("load after delete: %v", err)
			}
			if len(tasks) != 0 {
				t.Fatalf("deleted slot must read as absent, got %v", tasks)
			}
		})
	}
}

func TestFileStoreCorruptSlotFallsBack(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := NewFileSlotStore(dir)
	ctx := context.Background()

	if err := store.Save(ctx, SlotTasks, []string{"a"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slots", SlotTasks+".json"), []byte("{corrupt"), 0o644); err != nil {
		t.Fatalf("corrupt slot file: %v", err)
	}

	var tasks []string
	if err := store.Load(ctx, SlotTasks, &tasks); err != nil {
		t.Fatalf("corrupt slot must not surface an error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("corrupt slot must fall back to the default, got %v", tasks)
	}
}
