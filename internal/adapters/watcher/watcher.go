package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/imagecheck/qcreview/internal/domain"
	"github.com/imagecheck/qcreview/internal/logging"
	"github.com/imagecheck/qcreview/internal/ports"
)

// DefaultBufferSize is how many unread events are queued before new ones
// are dropped.
const DefaultBufferSize = 64

// Option configures a DirectoryWatcher.
type Option func(*DirectoryWatcher)

// WithBufferSize sets the event channel capacity.
func WithBufferSize(n int) Option {
	return func(w *DirectoryWatcher) {
		w.bufferSize = n
	}
}

// DirectoryWatcher reports images created in (or moved into) a directory.
type DirectoryWatcher struct {
	bufferSize int
	cancel     context.CancelFunc
	dir        string
	errors     chan error
	events     chan string
	fsWatcher  *fsnotify.Watcher
	once       sync.Once
	wg         sync.WaitGroup
}

// Verify interface compliance at compile time
var _ ports.ImageWatcher = (*DirectoryWatcher)(nil)

// New starts watching dir.
func New(dir string, opts ...Option) (*DirectoryWatcher, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	w := &DirectoryWatcher{
		bufferSize: DefaultBufferSize,
		dir:        absDir,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.events = make(chan string, w.bufferSize)
	w.errors = make(chan error, 1)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(absDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absDir, err)
	}
	w.fsWatcher = fsw

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	go w.loop(ctx)

	logging.Logger.Debug("Watching directory for new images", "dir", absDir)
	return w, nil
}

// Events delivers the full path of each new image.
func (w *DirectoryWatcher) Events() <-chan string {
	return w.events
}

// Errors delivers watcher failures. Only the latest unread error is kept.
func (w *DirectoryWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels.
func (w *DirectoryWatcher) Close() error {
	var err error
	w.once.Do(func() {
		w.cancel()
		err = w.fsWatcher.Close()
		w.wg.Wait()
		close(w.events)
		close(w.errors)
	})
	return err
}

func (w *DirectoryWatcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !domain.IsImageFile(event.Name) || filepath.Dir(event.Name) != w.dir {
				continue
			}
			select {
			case w.events <- event.Name:
			default:
				logging.Logger.Warn("Dropping image event, buffer full", "path", event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				logging.Logger.Warn("Dropping watcher error", "error", err)
			}
		}
	}
}
