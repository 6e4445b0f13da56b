package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is how often the fallback poller checks the file.
const pollInterval = time.Second

// Renderer produces output text from template source. template.Engine
// satisfies this interface.
type Renderer interface {
	Render(template string) (string, error)
}

// Result is one render of the watched file.
type Result struct {
	// Output is the rendered text.
	Output string

	// Err is set when reading or rendering failed; Output is then empty.
	Err error
}

// Watcher renders a template file and re-renders it on every change.
type Watcher struct {
	path     string
	renderer Renderer
}

// New creates a watcher for the given template file.
func New(path string, renderer Renderer) *Watcher {
	return &Watcher{path: path, renderer: renderer}
}

// Path returns the file being watched.
func (w *Watcher) Path() string { return w.path }

// Run renders the file once, then again after every write, sending each
// Result on the returned channel. The channel is closed when the context
// is cancelled. Uses fsnotify for efficient file watching with a polling
// fallback.
func (w *Watcher) Run(ctx context.Context) <-chan Result {
	ch := make(chan Result, 1)

	go func() {
		defer close(ch)

		w.emit(ctx, ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			slog.Debug("fsnotify unavailable, polling instead", "error", err)
			w.runPolling(ctx, ch)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching the file
		// directly, and survives editors that replace the file).
		if err := watcher.Add(filepath.Dir(w.path)); err != nil {
			slog.Debug("watch directory failed, polling instead", "error", err)
			w.runPolling(ctx, ch)
			return
		}

		w.runWithWatcher(ctx, ch, watcher)
	}()

	return ch
}

// runWithWatcher re-renders on fsnotify write/create events for the file.
func (w *Watcher) runWithWatcher(ctx context.Context, ch chan<- Result, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.emit(ctx, ch)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
			slog.Debug("watch error", "path", w.path, "error", err)
		}
	}
}

// runPolling re-renders when the file's modification time moves.
func (w *Watcher) runPolling(ctx context.Context, ch chan<- Result) {
	var lastMod time.Time
	if info, err := os.Stat(w.path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if !info.ModTime().Equal(lastMod) {
				lastMod = info.ModTime()
				w.emit(ctx, ch)
			}
		}
	}
}

// emit reads and renders the file, delivering the result unless the
// context ends first.
func (w *Watcher) emit(ctx context.Context, ch chan<- Result) {
	var res Result

	data, err := os.ReadFile(w.path)
	if err != nil {
		res.Err = fmt.Errorf("read template: %w", err)
	} else {
		res.Output, res.Err = w.renderer.Render(string(data))
	}

	select {
	case ch <- res:
	case <-ctx.Done():
	}
}
