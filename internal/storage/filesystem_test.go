package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(t.TempDir(), "https://files.local/static")
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return store
}

func TestSaveReadRemoveRoundTrip(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save("generations", "gen-1-0-123.png", []byte("payload"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if url != "https://files.local/static/generations/gen-1-0-123.png" {
		t.Fatalf("url = %q", url)
	}

	data, err := store.Read(url)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("read data = %q", data)
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.BasePath(), "generations", "gen-1-0-123.png")); !os.IsNotExist(err) {
		t.Fatalf("file still present after remove: %v", err)
	}
	if err := store.Remove(url); err != nil {
		t.Fatalf("second remove should be a no-op: %v", err)
	}
}

func TestSaveRejectsTraversal(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Save("generations", "../../etc/passwd", []byte("x")); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
}

func TestRemoveRejectsForeignURL(t *testing.T) {
	store := newTestStore(t)
	err := store.Remove("https://elsewhere.example/static/generations/a.png")
	if err == nil || !strings.Contains(err.Error(), "not managed") {
		t.Fatalf("err = %v, want unmanaged url rejection", err)
	}
}

func TestNewFileStoreValidation(t *testing.T) {
	if _, err := NewFileStore("", "https://files.local"); err == nil {
		t.Fatalf("empty base path accepted")
	}
	if _, err := NewFileStore(t.TempDir(), "  "); err == nil {
		t.Fatalf("empty base URL accepted")
	}
}
