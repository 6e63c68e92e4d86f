package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func collectPaths(t *testing.T, paths <-chan string, want int, deadline time.Duration) map[string]bool {
	t.Helper()
	got := map[string]bool{}
	timeout := time.After(deadline)
	for len(got) < want {
		select {
		case p, ok := <-paths:
			if !ok {
				t.Fatalf("path channel closed after %d of %d paths", len(got), want)
			}
			got[filepath.Base(p)] = true
		case <-timeout:
			t.Fatalf("timed out with %d of %d paths: %v", len(got), want, got)
		}
	}
	return got
}

func TestWatcher_RapidBurstDebounced(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	go func() {
		for range errs {
		}
	}()

	const n = 25
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, fmt.Sprintf("doc-%02d.json", i))
		if err := os.WriteFile(name, []byte(`{"pages":[]}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := collectPaths(t, paths, n, 5*time.Second)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("doc-%02d.json", i)
		if !got[name] {
			t.Errorf("file %s never emitted", name)
		}
	}
}

func TestWatcher_InitialScanEmitsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// Not an allowed extension; must never be emitted.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	paths, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	go func() {
		for range errs {
		}
	}()

	got := collectPaths(t, paths, 2, 5*time.Second)
	if !got["a.pdf"] || !got["b.json"] {
		t.Errorf("initial scan incomplete: %v", got)
	}
	if got["notes.txt"] {
		t.Error("disallowed extension emitted")
	}
}

func TestWatcher_NoRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	if err == nil {
		t.Fatal("expected an error with no roots")
	}
}
