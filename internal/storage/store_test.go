package storage

import (
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := OpenSQLite(filepath.Join(dir, "taskpad.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })

	boltStore, err := OpenBolt(filepath.Join(dir, "taskpad.bolt"))
	if err != nil {
		t.Fatalf("open bolt: %v", err)
	}
	t.Cleanup(func() { _ = boltStore.Close() })

	return map[string]Store{
		"sqlite": sqlite,
		"bolt":   boltStore,
		"memory": NewMemStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.Load(TasksKey); err != nil || ok {
				t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
			}

			payload := []byte(`[{"id":"task-1"}]`)
			if err := store.Save(TasksKey, payload); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, ok, err := store.Load(TasksKey)
			if err != nil || !ok {
				t.Fatalf("load after save: ok=%v err=%v", ok, err)
			}
			if string(got) != string(payload) {
				t.Fatalf("payload mismatch: %q", got)
			}

			if err := store.Save(TasksKey, []byte(`[]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, _, _ = store.Load(TasksKey)
			if string(got) != "[]" {
				t.Fatalf("expected last write to win, got %q", got)
			}

			if err := store.Delete(TasksKey); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := store.Load(TasksKey); ok {
				t.Fatal("expected key gone after delete")
			}
			// deleting an absent key is a no-op
			if err := store.Delete(TasksKey); err != nil {
				t.Fatalf("second delete: %v", err)
			}
		})
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Save(SessionKey, []byte(`{"id":"12345"}`)); err != nil {
				t.Fatalf("save session: %v", err)
			}
			if err := store.Save(LanguageKey, []byte("hi")); err != nil {
				t.Fatalf("save lang: %v", err)
			}
			if err := store.Delete(SessionKey); err != nil {
				t.Fatalf("delete session: %v", err)
			}
			lang, ok, err := store.Load(LanguageKey)
			if err != nil || !ok || string(lang) != "hi" {
				t.Fatalf("language key disturbed: ok=%v err=%v val=%q", ok, err, lang)
			}
		})
	}
}

func TestSQLiteMigrateDown(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "taskpad.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := MigrateDown(store.db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	if err := MigrateUp(store.db); err != nil {
		t.Fatalf("migrate up after down: %v", err)
	}
	if err := store.Save(TasksKey, []byte("[]")); err != nil {
		t.Fatalf("save after re-migrate: %v", err)
	}
}
