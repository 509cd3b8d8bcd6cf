// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package feedback

import (
	"context"
	"errors"
	"sync"

	"github.com/alvinbaena/pwd-advisor/pkg/client"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
)

var ErrStopped = errors.New("feedback controller is stopped")

// Renderer writes a view to the display. It is only ever called from the controller loop.
type Renderer interface {
	Render(View)
}

type RendererFunc func(View)

func (f RendererFunc) Render(v View) {
	f(v)
}

type Options struct {
	Policy  Policy
	Workers int
	// RequestsPerSecond throttles outgoing requests. Zero means no limit.
	RequestsPerSecond int
}

// Controller keeps a display in sync with the evaluation service. All state changes and
// renders happen on a single loop goroutine; requests run on a worker pool and post their
// completions back to the loop.
type Controller struct {
	dispatcher *Dispatcher
	renderer   Renderer
	pool       *executor.Executor
	events     chan Event

	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once

	// Guards publishing against the pool being closed.
	mu     sync.RWMutex
	closed bool

	state State
}

type snapshotRequest struct {
	reply chan State
}

func (snapshotRequest) isEvent() {}

func NewController(evaluator client.Evaluator, suggester client.Suggester, renderer Renderer, opts Options) (*Controller, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	pool, err := executor.New(executor.Config{
		ReqPerSeconds: opts.RequestsPerSecond,
		QueueSize:     2 * workers,
		NumWorkers:    workers,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		dispatcher: NewDispatcher(evaluator, suggester, opts.Policy),
		renderer:   renderer,
		pool:       pool,
		events:     make(chan Event, 64),
		ctx:        ctx,
		cancel:     cancel,
		stopped:    make(chan struct{}),
		state:      NewState(opts.Policy),
	}, nil
}

// Start renders the initial, fully hidden view and begins processing events.
func (c *Controller) Start() {
	c.startOnce.Do(func() {
		go c.loop()
	})
}

// Stop cancels in-flight requests and waits for the loop and the workers to finish. It can
// be called more than once, and a controller that was never started cannot be started after.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		c.cancel()
		c.startOnce.Do(func() {
			close(c.stopped)
		})
		<-c.stopped

		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.pool.Wait()
		c.pool.Close()
	})
}

func (c *Controller) OnPasswordChanged(password string) {
	c.post(PasswordChanged{Password: password})
}

func (c *Controller) OnSuggestRequested() {
	c.post(SuggestRequested{})
}

func (c *Controller) OnCheckAnotherRequested() {
	c.post(CheckAnotherRequested{})
}

func (c *Controller) OnRevealToggled() {
	c.post(RevealToggled{})
}

// Snapshot returns the state once every event posted before the call has been applied.
func (c *Controller) Snapshot(ctx context.Context) (State, error) {
	req := snapshotRequest{reply: make(chan State, 1)}
	select {
	case c.events <- req:
	case <-c.ctx.Done():
		return State{}, ErrStopped
	case <-ctx.Done():
		return State{}, ctx.Err()
	}

	select {
	case s := <-req.reply:
		return s, nil
	case <-c.ctx.Done():
		return State{}, ErrStopped
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
}

func (c *Controller) post(ev Event) {
	select {
	case c.events <- ev:
	case <-c.ctx.Done():
	}
}

func (c *Controller) loop() {
	defer close(c.stopped)
	c.renderer.Render(c.state.View())

	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.events:
			if req, ok := ev.(snapshotRequest); ok {
				req.reply <- c.state
				continue
			}

			if c.state.Stale(ev) {
				log.Debug().Msgf("discarding stale completion %T", ev)
				continue
			}

			next, effects := Reduce(c.state, ev)
			c.dispatcher.Advance(next.Seq)
			c.state = next

			for _, eff := range effects {
				// Publishing blocks while the queue is full, the loop has to keep
				// draining completions meanwhile.
				go c.publish(eff)
			}

			c.renderer.Render(c.state.View())
		}
	}
}

func (c *Controller) publish(eff Effect) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}

	if err := c.pool.Publish(c.run, eff); err != nil {
		log.Error().Err(err).Msg("error publishing request")
		c.post(completionError(eff, err))
	}
}

func (c *Controller) run(eff Effect) {
	c.post(c.dispatcher.Run(c.ctx, eff))
}

func completionError(eff Effect, err error) Event {
	if eff.Kind == Suggest {
		return SuggestionCompleted{Seq: eff.Seq, Err: err}
	}
	return EvaluationCompleted{Seq: eff.Seq, Password: eff.Password, Err: err}
}
