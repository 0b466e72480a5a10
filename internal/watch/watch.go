// Package watch reports debounced file changes so `weekplan solve --watch`
// can re-solve when the plan or the section data is edited.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 150 * time.Millisecond

// Change is one debounced file change.
type Change struct {
	File    string // cleaned path
	Removed bool
}

// Watcher monitors directories and reports changes to files accepted by
// its filter. Editors that save by rename are covered because whole
// directories are watched.
type Watcher struct {
	Changes <-chan Change // closed by Stop

	changes  chan Change
	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	accept   func(string) bool
	debounce time.Duration
	fw       *fsnotify.Watcher
	log      *zap.Logger
}

// New watches dirs. accept selects the files of interest; nil accepts all.
// debounce <= 0 uses DefaultDebounce. A nil logger discards watch errors.
func New(dirs []string, accept func(string) bool, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if err = fw.Add(d); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	if accept == nil {
		accept = func(string) bool { return true }
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = zap.NewNop()
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes:  ch,
		changes:  ch,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		accept:   accept,
		debounce: debounce,
		fw:       fw,
		log:      log,
	}
	go w.loop()

	return w, nil
}

// Files returns an accept filter matching exactly the given paths.
func Files(paths ...string) func(string) bool {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = struct{}{}
	}

	return func(name string) bool {
		_, ok := set[filepath.Clean(name)]
		return ok
	}
}

// Ext returns an accept filter matching file extensions such as ".json".
func Ext(exts ...string) func(string) bool {
	return func(name string) bool {
		e := filepath.Ext(name)
		for _, x := range exts {
			if e == x {
				return true
			}
		}

		return false
	}
}

// Any accepts a name accepted by at least one filter.
func Any(filters ...func(string) bool) func(string) bool {
	return func(name string) bool {
		for _, f := range filters {
			if f(name) {
				return true
			}
		}

		return false
	}
}

// Stop closes the watcher, waits for the loop to exit and closes Changes.
// It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.quit)
		<-w.done
		_ = w.fw.Close()
		close(w.changes)
	})
}

type pendingChange struct {
	at      time.Time
	removed bool
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]pendingChange)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.quit:
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			name := filepath.Clean(event.Name)
			if !w.accept(name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[name] = pendingChange{at: time.Now(), removed: event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)}
			}

		case <-ticker.C:
			now := time.Now()
			for name, p := range pending {
				if now.Sub(p.at) < w.debounce {
					continue
				}
				delete(pending, name)
				select {
				case w.changes <- Change{File: name, Removed: p.removed}:
				case <-w.quit:
					return
				}
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
