package metrics

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rileyhilliard/mqttdash/internal/logger"
)

// Watcher signals when a sample data file changes on disk.
//
// The parent directory is watched rather than the file itself so that editors
// which save by rename-and-replace keep producing events.
type Watcher struct {
	fsw     *fsnotify.Watcher
	target  string
	changes chan struct{}
	log     logger.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher starts watching path.
func NewWatcher(path string, log logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:     fsw,
		target:  abs,
		changes: make(chan struct{}, 1),
		log:     log,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes returns a channel that receives a value after the file is written,
// created or replaced. Bursts of events coalesce into a single signal. The
// channel is closed when the watcher stops.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("data file changed: %s", ev)
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watching %s: %v", w.target, err)
		}
	}
}
