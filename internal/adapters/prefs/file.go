package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// List names stored in a preferences file.
const (
	ListFavorites   = "favorites"
	ListImplemented = "implemented"
)

// DefaultFileName is the file created under the user's config directory.
const DefaultFileName = "preferences.json"

// DefaultPath returns <user config dir>/ecotips/preferences.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}

	return filepath.Join(dir, "ecotips", DefaultFileName), nil
}

// FileConfig configures a File store.
type FileConfig struct {
	// Path of the JSON document. Parent directories are created on first write.
	Path string

	Logger *slog.Logger
}

// File keeps named lists of tip ids in one JSON document:
//
//	{"favorites": [1, 4], "implemented": [2]}
//
// Writes replace the document atomically. File is safe for concurrent use.
type File struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	lists map[string]map[int]struct{}

	// version counts local writes so Reload can detect a Set that raced its read.
	version uint64

	// afterRead runs between reading the document and applying it. Tests only.
	afterRead func()
}

// OpenFile loads the document at cfg.Path. A missing file is an empty document.
func OpenFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, errors.New("prefs: path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	f := &File{
		path:   cfg.Path,
		logger: logger.With(slog.String("component", "prefs.File")),
		lists:  make(map[string]map[int]struct{}),
	}

	if err := f.Reload(); err != nil {
		return nil, err
	}

	return f, nil
}

// Path returns the location of the document.
func (f *File) Path() string {
	return f.path
}

// List returns the store for one named list. Lists are created on first Set.
func (f *File) List(name string) *FileList {
	return &FileList{file: f, name: name}
}

// Reload replaces the in-memory state with the document on disk. A Set that
// lands while the document is being read wins; its write is newer than the read.
func (f *File) Reload() error {
	f.mu.RLock()
	version := f.version
	f.mu.RUnlock()

	lists, err := f.read()
	if err != nil {
		return err
	}

	if f.afterRead != nil {
		f.afterRead()
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.version != version {
		f.logger.Debug("skipping stale preferences reload", slog.String("path", f.path))
		return nil
	}

	f.lists = lists

	return nil
}

// read decodes the document. A missing or empty file is an empty document.
func (f *File) read() (map[string]map[int]struct{}, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]map[int]struct{}), nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var doc map[string][]int
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing preferences %s: %w", f.path, err)
		}
	}

	lists := make(map[string]map[int]struct{}, len(doc))
	for name, ids := range doc {
		set := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}

		lists[name] = set
	}

	return lists, nil
}

// Watch reloads the document whenever another process replaces or rewrites it.
// The watcher is running when Watch returns; the returned channel is closed once
// ctx is done and the watcher has been released.
func (f *File) Watch(ctx context.Context) (<-chan struct{}, error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating preferences dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Atomic writes swap the inode, so the directory is watched rather than the file.
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		defer watcher.Close()

		f.watchLoop(ctx, watcher)
	}()

	return done, nil
}

func (f *File) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	target := filepath.Clean(f.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			if err := f.Reload(); err != nil {
				// Usually a half-written file from a non-atomic writer; the next event retries.
				f.logger.Warn("preferences reload failed", slog.Any("error", err))
				continue
			}

			f.logger.Debug("preferences reloaded", slog.String("op", event.Op.String()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			f.logger.Warn("preferences watcher error", slog.Any("error", err))
		}
	}
}

// Name identifies the store in health results.
func (f *File) Name() string {
	return "preferences"
}

// Check verifies that the document's directory is usable.
func (f *File) Check(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(f.path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("preferences dir: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("preferences dir %s is not a directory", filepath.Dir(f.path))
	}

	return nil
}

func (f *File) get(list string, id int) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	_, ok := f.lists[list][id]

	return ok
}

func (f *File) ids(list string) []int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return sortedIDs(f.lists[list])
}

func (f *File) set(list string, id int, on bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	set, existed := f.lists[list]
	if !existed {
		if !on {
			return nil
		}

		set = make(map[int]struct{})
		f.lists[list] = set
	}

	_, had := set[id]
	if had == on {
		return nil
	}

	if on {
		set[id] = struct{}{}
	} else {
		delete(set, id)
	}

	if err := f.writeLocked(); err != nil {
		// Keep memory in step with disk.
		switch {
		case !existed:
			delete(f.lists, list)
		case on:
			delete(set, id)
		default:
			set[id] = struct{}{}
		}

		return err
	}

	f.version++

	return nil
}

// writeLocked persists the lists via a temp file and rename. f.mu must be held.
func (f *File) writeLocked() error {
	doc := make(map[string][]int, len(f.lists))
	for name, set := range f.lists {
		doc[name] = sortedIDs(set)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating preferences dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing preferences: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing preferences: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing preferences: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replacing preferences: %w", err)
	}

	return nil
}

// FileList is one named list of a File. It implements ports.PreferenceStore.
type FileList struct {
	file *File
	name string
}

// Get reports whether tipID is in the list.
func (l *FileList) Get(tipID int) bool {
	return l.file.get(l.name, tipID)
}

// Set adds or removes tipID and persists the whole document.
func (l *FileList) Set(tipID int, on bool) error {
	if err := l.file.set(l.name, tipID, on); err != nil {
		return fmt.Errorf("updating %s: %w", l.name, err)
	}

	return nil
}

// IDs returns the ids in the list in ascending order.
func (l *FileList) IDs() []int {
	return l.file.ids(l.name)
}
