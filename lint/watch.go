// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lint

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files for changes. It watches the
// directories containing the files so that files replaced by
// editors through a rename are still seen.
type Watcher struct {
	fw    *fsnotify.Watcher
	files map[string]bool
}

// NewWatcher returns a new [Watcher] for the given files.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fw: fw, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run calls fn with the path of each watched file that is written or
// created, until the context is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, fn func(path string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if errors.Log(err) != nil || !w.files[abs] {
				continue
			}
			slog.Debug("lint: file changed", "path", abs, "op", ev.Op.String())
			fn(abs)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("lint: watch error", "err", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
