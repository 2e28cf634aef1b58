package gen

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/syssam/scriptgen/compiler/load"
)

// NotifyFunc receives the outcome of one regeneration cycle: the written
// paths on success, or the error that stopped the cycle.
type NotifyFunc func(written []string, err error)

// Watch regenerates the scripts whenever the descriptor at path changes.
// It generates once immediately, then blocks until ctx is done. Descriptor
// or generation errors are reported through notify and do not stop the
// watch; only ctx cancellation or a watcher failure ends it.
func Watch(ctx context.Context, path string, notify NotifyFunc, opts ...Option) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	regenerate := func() {
		d, err := load.Load(path)
		if err != nil {
			notify(nil, err)
			return
		}
		g, err := New(d, opts...)
		if err != nil {
			notify(nil, err)
			return
		}
		notify(g.Generate(ctx))
	}

	regenerate()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				regenerate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			notify(nil, err)
		}
	}
}
