// Copyright (c) 2024-present BrainMark Labs. All Rights Reserved.
// See LICENSE.txt for license information.

// Package watcher re-runs the preflight checks when the target directory
// changes.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brainmark/extension-preflight/logger"

	"github.com/fsnotify/fsnotify"
)

// Watcher triggers a callback after filesystem activity in a directory
// settles down.
type Watcher struct {
	dir      string
	debounce time.Duration
	onChange func()
	fsw      *fsnotify.Watcher
}

// New creates a watcher over dir. onChange runs after events stop for the
// debounce interval.
func New(dir string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("onChange should not be nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
		fsw:      fsw,
	}

	if err := w.addRecursive(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run blocks delivering events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	logger.Info("watcher: started", logger.String("dir", w.dir))

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.skipEvent(ev.Name) {
				continue
			}
			// New directories need their own watch.
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(ev.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", logger.Err(err))
		}
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != root && skip(filepath.Base(path)) {
				return filepath.SkipDir
			}
			return w.fsw.Add(path)
		}
		return nil
	})
}

// skipEvent applies skip to the event path relative to the watched root, so
// a dotted ancestor of the root itself does not suppress everything.
func (w *Watcher) skipEvent(name string) bool {
	rel, err := filepath.Rel(w.dir, name)
	if err != nil {
		rel = filepath.Base(name)
	}
	return skip(rel)
}

// skip filters out editor and VCS noise, anywhere in the path.
func skip(path string) bool {
	for _, elem := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(elem, ".") && elem != "." && elem != ".." {
			return true
		}
	}
	base := filepath.Base(path)
	return strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp")
}
