// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resource resolves asset paths to instantiable [Model]s.
// Loading is asynchronous: requesting a model yields a [Pending] future
// that resolves on its own goroutine, and callers await it at the point
// where they need the result. Parsed models are cached by their
// normalized path; a [Manager] built over a real directory watches it
// and drops cache entries when the backing files change.
package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ModelExt is the file extension of model documents.
const ModelExt = ".model.yaml"

// Errors returned through [Pending.Await].
var (
	// ErrNotFound means the resource path does not exist in the
	// manager's filesystem.
	ErrNotFound = errors.New("resource: not found")

	// ErrBadFormat means the resource exists but could not be parsed.
	ErrBadFormat = errors.New("resource: bad format")
)

// Manager loads and caches [Model]s from a filesystem. It is safe for
// concurrent use.
type Manager struct {
	fsys    fs.FS
	mu      sync.Mutex
	cache   map[string]*Model
	watcher *fsnotify.Watcher
	dir     string
}

// NewManager returns a manager reading from the given filesystem.
// Paths passed to [Manager.TryRequest] are slash paths relative to the
// filesystem root, as produced by [NormalizePath].
func NewManager(fsys fs.FS) *Manager {
	return &Manager{fsys: fsys, cache: map[string]*Model{}}
}

// NewDirManager returns a manager reading from the given directory and
// watching it, so edits to model documents on disk invalidate the cache.
func NewDirManager(dir string) (*Manager, error) {
	m := NewManager(os.DirFS(dir))
	m.dir = dir
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("resource: starting watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("resource: watching %s: %w", dir, err)
	}
	m.watcher = w
	go m.watch()
	return m, nil
}

// Close stops the directory watcher, if any.
func (m *Manager) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

// watch drops cache entries for files reported changed or removed.
func (m *Manager) watch() {
	for {
		select {
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			rel, err := filepath.Rel(m.dir, ev.Name)
			if err != nil {
				continue
			}
			key := filepath.ToSlash(rel)
			m.mu.Lock()
			if _, had := m.cache[key]; had {
				delete(m.cache, key)
				slog.Debug("resource: cache invalidated", "path", key, "op", ev.Op)
			}
			m.mu.Unlock()
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("resource: watcher", "err", err)
		}
	}
}

// Pending is an in-flight model load. It resolves exactly once; Await
// may be called any number of times.
type Pending struct {
	done  chan struct{}
	model *Model
	err   error
}

// Await blocks until the load resolves or the context is canceled,
// returning the model or the load error.
func (p *Pending) Await(ctx context.Context) (*Model, error) {
	select {
	case <-p.done:
		return p.model, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// TryRequest begins loading the model at the given normalized path,
// returning a [Pending] future, or nil if the path cannot name a model
// document (wrong extension). A nil return means the caller should
// treat the path as not instantiable, not as an error.
func (m *Manager) TryRequest(path string) *Pending {
	if !strings.HasSuffix(path, ModelExt) {
		return nil
	}
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		p.model, p.err = m.load(path)
	}()
	return p
}

// load returns the cached model for the path or reads and parses it.
func (m *Manager) load(path string) (*Model, error) {
	m.mu.Lock()
	if cached, ok := m.cache[path]; ok {
		m.mu.Unlock()
		return cached, nil
	}
	m.mu.Unlock()

	data, err := fs.ReadFile(m.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	model, err := parseModel(path, data)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.cache[path] = model
	m.mu.Unlock()
	return model, nil
}
