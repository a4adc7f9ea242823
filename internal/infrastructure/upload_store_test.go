package infrastructure_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baccarifarah/spendLog/config"
	appErrors "github.com/baccarifarah/spendLog/internal/errors"
	"github.com/baccarifarah/spendLog/internal/infrastructure"
)

func newTestStore(t *testing.T) *infrastructure.UploadStore {
	t.Helper()
	cfg := &config.Config{}
	cfg.Upload.Dir = t.TempDir()
	store, err := infrastructure.NewUploadStore(cfg)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}

func TestUploadStoreSaveAndResolve(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	name, err := store.Save("user-a", "receipt.jpg", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(name) != ".jpg" {
		t.Fatalf("expected .jpg extension, got %s", name)
	}
	if strings.Contains(name, "receipt") {
		t.Fatalf("expected a randomized name, got %s", name)
	}

	path, err := store.Resolve("user-a", name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("stored content mismatch")
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestUploadStoreCleansUpAfterFailedCopy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Upload.Dir = dir
	store, err := infrastructure.NewUploadStore(cfg)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	_, err = store.Save("user-a", "receipt.jpg", io.MultiReader(strings.NewReader("partial"), failingReader{}))
	if err == nil {
		t.Fatalf("expected error")
	}

	entries, err := os.ReadDir(filepath.Join(dir, "user-a"))
	if err != nil {
		t.Fatalf("reading user dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no leftover partial file, found %d entries", len(entries))
	}
}

func TestUploadStoreRejectsUnknownExtension(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Save("user-a", "script.sh", strings.NewReader("#!/bin/sh"))
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %s", appErr.Code)
	}
}

func TestUploadStoreIsolatesUsers(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	name, err := store.Save("user-a", "receipt.png", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Resolve("user-b", name); err == nil {
		t.Fatalf("expected another user's file to be unreachable")
	}
	if _, err := store.Resolve("user-b", "../user-a/"+name); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
}

func TestUploadStoreRemove(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	name, err := store.Save("user-a", "receipt.pdf", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Remove("user-a", name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Resolve("user-a", name); err == nil {
		t.Fatalf("expected file to be gone")
	}
}
