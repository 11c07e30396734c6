package assets

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// debounce drops repeated events for the same file; editors tend to write a
// file in several steps.
const debounce = 100 * time.Millisecond

// Watcher reports changed entity type files in a set of directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// WatchCatalog reloads the catalog in dir after every change to one of its
// type files and delivers each catalog that loads cleanly. Broken edits are
// logged and skipped. The channel is closed once ctx is done.
func WatchCatalog(ctx context.Context, dir string, log logrus.FieldLogger) (<-chan *Catalog, error) {
	w, err := NewWatcher(dir)
	if err != nil {
		return nil, err
	}

	out := make(chan *Catalog, 1)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-w.Errors:
				log.WithError(err).Warn("asset watcher error")
			case name := <-w.Events:
				log.WithField("file", name).Info("entity type changed, reloading catalog")
				catalog, err := LoadCatalog(dir, log)
				if err != nil {
					log.WithError(err).Error("reload failed, keeping previous catalog")
					continue
				}
				select {
				case out <- catalog:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
