package feedback

import (
	"context"
	"fmt"
	"sync"

	"github.com/alvinbaena/pwd-advisor/pkg/client"
)

// Dispatcher issues the requests described by effects. It is safe for concurrent use;
// under LatestOnly it cancels requests that a newer one superseded.
type Dispatcher struct {
	evaluator client.Evaluator
	suggester client.Suggester
	policy    Policy

	mu     sync.Mutex
	latest uint64
	cancel context.CancelFunc
}

func NewDispatcher(evaluator client.Evaluator, suggester client.Suggester, policy Policy) *Dispatcher {
	return &Dispatcher{
		evaluator: evaluator,
		suggester: suggester,
		policy:    policy,
	}
}

// Run performs the request and returns its completion event.
func (d *Dispatcher) Run(ctx context.Context, eff Effect) Event {
	ctx, done := d.track(ctx, eff.Seq)
	defer done()

	switch eff.Kind {
	case Evaluate:
		result, err := d.evaluator.Evaluate(ctx, eff.Password)
		return EvaluationCompleted{Seq: eff.Seq, Password: eff.Password, Result: result, Err: err}
	case Suggest:
		result, err := d.suggester.Suggest(ctx)
		return SuggestionCompleted{Seq: eff.Seq, Result: result, Err: err}
	}

	panic(fmt.Sprintf("unknown effect kind %d", eff.Kind))
}

// Advance tells the dispatcher seq is now the latest request. Anything older still in
// flight is cancelled.
func (d *Dispatcher) Advance(seq uint64) {
	if d.policy != LatestOnly {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.advance(seq)
}

func (d *Dispatcher) advance(seq uint64) {
	if seq <= d.latest {
		return
	}

	d.latest = seq
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Dispatcher) track(parent context.Context, seq uint64) (context.Context, func()) {
	ctx, cancel := context.WithCancel(parent)
	if d.policy != LatestOnly {
		return ctx, cancel
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq < d.latest {
		// Superseded before it even started.
		cancel()
		return ctx, cancel
	}

	d.advance(seq)
	d.cancel = cancel

	return ctx, func() {
		d.mu.Lock()
		if d.latest == seq {
			d.cancel = nil
		}
		d.mu.Unlock()
		cancel()
	}
}
