package storage_test

import (
	"path/filepath"
	"testing"

	"dental-center-management/internal/storage"
)

func testKV(t *testing.T, kv storage.KV) {
	t.Helper()

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("absent key: ok=%v err=%v", ok, err)
	}

	if err := kv.Put("k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := kv.Get("k")
	if err != nil || !ok || string(got) != `{"a":1}` {
		t.Fatalf("get: %q ok=%v err=%v", got, ok, err)
	}

	// a second put rewrites the whole entry
	if err := kv.Put("k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = kv.Get("k")
	if string(got) != `{"a":2}` {
		t.Fatalf("overwrite not applied: %q", got)
	}

	if err := kv.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Fatal("key survived delete")
	}
	// deleting an absent key is fine
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	testKV(t, storage.NewMemory())
}

func TestSQLiteKV(t *testing.T) {
	kv, err := storage.NewSQLite(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer kv.Close()
	testKV(t, kv)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	kv, err := storage.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := kv.Put(storage.KeyPatients, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	kv2, err := storage.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer kv2.Close()
	got, ok, err := kv2.Get(storage.KeyPatients)
	if err != nil || !ok || string(got) != `[]` {
		t.Fatalf("entry lost across reopen: %q ok=%v err=%v", got, ok, err)
	}
}

func TestMemoryCopiesBuffers(t *testing.T) {
	kv := storage.NewMemory()
	buf := []byte("abc")
	if err := kv.Put("k", buf); err != nil {
		t.Fatal(err)
	}
	buf[0] = 'z'
	got, _, _ := kv.Get("k")
	if string(got) != "abc" {
		t.Fatalf("store aliased caller buffer: %q", got)
	}
	got[0] = 'z'
	again, _, _ := kv.Get("k")
	if string(again) != "abc" {
		t.Fatalf("caller aliased store buffer: %q", again)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := storage.Open("etcd", ""); err == nil {
		t.Fatal("want error for unknown driver")
	}
}
