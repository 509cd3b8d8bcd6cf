package cli

import (
	"context"
	"sync"

	"github.com/alvinbaena/pwd-advisor/internal/feedback"
)

// viewWatcher is a feedback.Renderer that lets a caller wait for the display to settle
// after an action.
type viewWatcher struct {
	mu     sync.Mutex
	last   feedback.View
	count  uint64
	notify chan struct{}
}

func newViewWatcher() *viewWatcher {
	return &viewWatcher{notify: make(chan struct{}, 1)}
}

func (w *viewWatcher) Render(v feedback.View) {
	w.mu.Lock()
	w.last = v
	w.count++
	w.mu.Unlock()

	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// mark returns a token for views rendered so far. Call it before triggering an action.
func (w *viewWatcher) mark() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

func (w *viewWatcher) current() feedback.View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// wait blocks until a view rendered after mark is no longer waiting on a request.
func (w *viewWatcher) wait(ctx context.Context, mark uint64) (feedback.View, error) {
	for {
		w.mu.Lock()
		v, count := w.last, w.count
		w.mu.Unlock()

		if count > mark && settled(v) {
			return v, nil
		}

		select {
		case <-ctx.Done():
			return v, ctx.Err()
		case <-w.notify:
		}
	}
}

func settled(v feedback.View) bool {
	return !v.Pending && (v.FeedbackVisible || v.Error != "" || v.Input == "")
}
