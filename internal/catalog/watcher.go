package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the catalog when snippet files change. Reloads are
// out-of-band with respect to expansion: each reload builds a fresh snapshot
// and hands it to the callback, existing snapshots are never touched.
type Watcher struct {
	fs      *fsnotify.Watcher
	sources []Source
	done    chan struct{}
}

// Watch starts watching the source directories (and their subdirectories)
// and invokes onReload with a freshly built catalog after every change to a
// markdown file. Errors during a reload are reported through onError.
func Watch(sources []Source, onReload func(*Catalog), onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fs:      fsw,
		sources: sources,
		done:    make(chan struct{}),
	}

	for _, src := range sources {
		if err := w.addRecursive(src.Path); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.loop(onReload, onError)
	return w, nil
}

// addRecursive registers a directory tree with the underlying watcher.
// Missing directories are skipped so a project without local snippets still
// watches the global tier.
func (w *Watcher) addRecursive(root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) loop(onReload func(*Catalog), onError func(error)) {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}

			// new subdirectories need to be picked up too
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(event.Name)
				}
			}

			if !strings.HasSuffix(event.Name, ".md") {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			cat, err := LoadDirs(w.sources...)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onReload(cat)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
