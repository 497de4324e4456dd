// internal/words/watch.go
//
// Hot reload of the word list file. The containing directory is watched
// (editors often replace files by rename) and events are filtered to the
// list's own path.

package words

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher reloads a word list file whenever it changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	length  int
}

// NewWatcher prepares a watcher for path.
func NewWatcher(path string, length int) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{watcher: w, path: abs, length: length}, nil
}

// Watch starts monitoring and calls onChange with every successfully
// reloaded list. Lists that fail to parse are logged and skipped, leaving
// the caller on its previous list. Watch returns once monitoring is set up;
// the loop ends when ctx is done or Stop is called.
func (w *Watcher) Watch(ctx context.Context, onChange func(*List)) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				list, err := Load(w.path, w.length)
				if err != nil {
					log.Warn().Err(err).Str("path", w.path).Msg("word list reload failed")
					continue
				}
				a, g := list.Stats()
				log.Info().Str("path", w.path).Int("answers", a).Int("allowed", g).
					Str("version", list.Version()).Msg("word list reloaded")
				onChange(list)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("word list watcher")
			}
		}
	}()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
