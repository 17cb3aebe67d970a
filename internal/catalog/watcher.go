package catalog

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/devfolio-app/portfolio-backend/internal/debounce"
)

// Watcher reloads a file-backed catalog when the file changes on disk.
// Editors and deploy scripts tend to produce bursts of write events, so
// reloads go through a trailing-edge debouncer: only the last event in a
// burst triggers a reload.
type Watcher struct {
	loader *Loader
	store  *Store
	deb    *debounce.Debouncer
	fsw    *fsnotify.Watcher
	done   chan struct{}
}

func NewWatcher(loader *Loader, store *Store, delay time.Duration) (*Watcher, error) {
	if !loader.IsFile() {
		return nil, fmt.Errorf("watch requires a file-backed catalog source, got %s", loader.Source())
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	return &Watcher{
		loader: loader,
		store:  store,
		deb:    debounce.New(delay),
		fsw:    fsw,
		done:   make(chan struct{}),
	}, nil
}

// Start begins watching. Watching the containing directory instead of the
// file survives editors that replace the file via rename.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.loader.Source())
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(w.loader.Source())

	go func() {
		for {
			select {
			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				w.deb.Trigger(w.reload)
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				log.Printf("[catalog] watch error: %v", err)
			case <-w.done:
				return
			}
		}
	}()

	log.Printf("[catalog] watching %s for changes", w.loader.Source())
	return nil
}

func (w *Watcher) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records, err := w.loader.Load(ctx)
	if err != nil {
		// Keep serving the previous snapshot.
		log.Printf("[catalog] reload failed: %v", err)
		return
	}

	w.store.SetRecords(records)
	log.Printf("[catalog] reloaded %d records from %s", len(records), w.loader.Source())
}

func (w *Watcher) Close() error {
	close(w.done)
	w.deb.Stop()
	return w.fsw.Close()
}
