package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var errStop = errors.New("stop watching")

func TestFileInvokesCallbackOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.hcl")
	if err := os.WriteFile(path, []byte("domain {}\n"), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	called := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func() error {
			called <- struct{}{}
			return errStop
		})
	}()

	// Give the watcher time to attach before touching the file.
	time.Sleep(300 * time.Millisecond)
	if err := os.WriteFile(path, []byte("domain {\n  points = 20\n}\n"), 0644); err != nil {
		t.Fatalf("rewrite scenario: %v", err)
	}

	select {
	case <-called:
	case <-ctx.Done():
		t.Fatal("callback was not invoked after file change")
	}

	if err := <-done; !errors.Is(err, errStop) {
		t.Fatalf("watch returned %v, want errStop", err)
	}
}

func TestFileStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.hcl")
	if err := os.WriteFile(path, []byte("domain {}\n"), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, func() error { return nil })
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("watch returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}
