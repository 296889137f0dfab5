// © 2026 AuroraHeart Authors. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icongen

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.astrophena.name/base/logger"

	"github.com/fsnotify/fsnotify"
)

var watchReadyHook func() // used in tests, called when Watch started watching the source image

// debouncer delays execution of a function until a specified duration
// has passed without any new events.
type debouncer struct {
	d       time.Duration
	mu      sync.Mutex
	f       func()
	t       *time.Timer
	stopped bool
	wg      sync.WaitGroup
}

// newDebouncer creates a new debouncer.
func newDebouncer(d time.Duration, f func()) *debouncer {
	return &debouncer{
		d: d,
		f: f,
	}
}

// Do schedules a function to be executed. It does nothing after Stop.
func (d *debouncer) Do() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.t != nil {
		d.t.Stop()
	}

	d.t = time.AfterFunc(d.d, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		d.wg.Add(1)
		d.mu.Unlock()
		defer d.wg.Done()

		d.f()
	})
}

// Stop cancels any pending execution and waits for a running one to
// finish. No function runs after Stop returns.
func (d *debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.t != nil {
		d.t.Stop()
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Watch generates the icon set, then keeps watching the source image
// and regenerates it after every change until ctx is canceled.
func Watch(ctx context.Context, c *Config) error {
	c.setDefaults()

	logger.Info(ctx, "performing an initial generation")
	if err := Generate(c); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save
	// and a watch on the old inode would be lost.
	if err := watcher.Add(filepath.Dir(c.Src)); err != nil {
		return err
	}

	regenerate := func() {
		if ctx.Err() != nil {
			return
		}
		logger.Info(ctx, "source changed, regenerating icons", slog.String("src", c.Src))
		if err := Generate(c); err != nil {
			logger.Error(ctx, "failed to regenerate icons", slog.Any("err", err))
		}
	}
	// It's better to have a bit of delay, so that we don't regenerate
	// while the editor is still writing the file out.
	debouncer := newDebouncer(250*time.Millisecond, regenerate)
	defer debouncer.Stop()

	if watchReadyHook != nil {
		watchReadyHook()
	}
	logger.Info(ctx, "watching for changes", slog.String("src", c.Src))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRegenerate(c.Src, event) {
				continue
			}
			logger.Info(ctx, "detected change, scheduling generation",
				slog.String("name", event.Name),
				slog.Any("op", event.Op),
			)
			debouncer.Do()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(ctx, "watch error", slog.Any("err", err))
		case <-ctx.Done():
			return nil
		}
	}
}

func shouldRegenerate(src string, event fsnotify.Event) bool {
	base := filepath.Base(event.Name)

	// Mac OS' worst mistake.
	if base == ".DS_Store" {
		return false
	}

	// Ignore files that look like editor backups.
	if strings.HasSuffix(base, "~") {
		return false
	}

	// Only the source image itself matters; everything else in its
	// directory (including our own output, if it lives there) is noise.
	if base != filepath.Base(src) {
		return false
	}

	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove) != 0
}
