// © 2026 AuroraHeart Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icongen

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func writeEvent(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}

func TestWatch(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "logo.png")
	writeTestPNG(t, src, testImage(64, 64))

	// Discard progress lines: the debounced regeneration may log from a
	// timer goroutine.
	c := &Config{
		Src:  src,
		Root: root,
		Logf: func(format string, args ...any) {},
	}

	ready := make(chan struct{})
	watchReadyHook = func() { close(ready) }
	defer func() { watchReadyHook = nil }()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		errCh <- Watch(ctx, c)
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not become ready")
	}

	icon := filepath.Join(c.iconsDir(), "icon.png")
	before, err := os.Stat(icon)
	if err != nil {
		t.Fatal(err)
	}

	// Replace the source image and wait for the debounced regeneration
	// to rewrite the outputs.
	writeTestPNG(t, src, testImage(96, 96))

	deadline := time.Now().Add(10 * time.Second)
	for {
		fi, err := os.Stat(icon)
		if err == nil && fi.ModTime().After(before.ModTime()) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("icons were not regenerated after the source changed")
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	wg.Wait()
	if err := <-errCh; err != nil {
		t.Fatal(err)
	}
}

// A regeneration scheduled right before shutdown must never fire after
// Watch returns.
func TestWatchShutdownCancelsPendingRegeneration(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "logo.png")
	writeTestPNG(t, src, testImage(64, 64))

	c := &Config{
		Src:  src,
		Root: root,
		Logf: func(format string, args ...any) {},
	}

	ready := make(chan struct{})
	watchReadyHook = func() { close(ready) }
	defer func() { watchReadyHook = nil }()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		errCh <- Watch(ctx, c)
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not become ready")
	}

	icon := filepath.Join(c.iconsDir(), "icon.png")
	before, err := os.Stat(icon)
	if err != nil {
		t.Fatal(err)
	}

	// Schedule a regeneration, then shut down before the debounce
	// interval elapses.
	writeTestPNG(t, src, testImage(96, 96))
	time.Sleep(100 * time.Millisecond)
	cancel()
	wg.Wait()
	if err := <-errCh; err != nil {
		t.Fatal(err)
	}

	// Give a leaked timer ample time to prove it doesn't exist.
	time.Sleep(400 * time.Millisecond)
	after, err := os.Stat(icon)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("icons were rewritten after shutdown")
	}
}

func TestDebouncerStop(t *testing.T) {
	var (
		mu  sync.Mutex
		ran int
	)
	d := newDebouncer(50*time.Millisecond, func() {
		mu.Lock()
		ran++
		mu.Unlock()
	})

	d.Do()
	d.Stop()
	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if ran != 0 {
		t.Fatalf("function ran %d times after Stop", ran)
	}
}

func TestShouldRegenerate(t *testing.T) {
	// Covered indirectly by TestWatch for the positive path; the
	// filters matter more.
	for _, tc := range []struct {
		name string
		want bool
	}{
		{"logo.png", true},
		{".DS_Store", false},
		{"logo.png~", false},
		{"32x32.png", false},
	} {
		got := shouldRegenerate("logo.png", writeEvent(tc.name))
		if got != tc.want {
			t.Errorf("shouldRegenerate(%q): want %v, got %v", tc.name, tc.want, got)
		}
	}
}
