package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Run(t *testing.T) {
	services := newFakeServices()
	services.results["abc"] = weakResult
	services.suggestion = advisor.Suggestion{SuggestedPassword: "K7$qLp9#Tz2!"}
	d := NewDispatcher(services, services, LatestOnly)

	ev := d.Run(context.Background(), Effect{Kind: Evaluate, Seq: 1, Password: "abc"})
	assert.Equal(t, EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult}, ev)

	ev = d.Run(context.Background(), Effect{Kind: Suggest, Seq: 2})
	assert.Equal(t, SuggestionCompleted{Seq: 2, Result: services.suggestion}, ev)
}

func TestDispatcher_AdvanceCancelsOlderRequest(t *testing.T) {
	services := newFakeServices()
	services.gate("a")
	d := NewDispatcher(services, services, LatestOnly)

	done := make(chan Event, 1)
	go func() {
		done <- d.Run(context.Background(), Effect{Kind: Evaluate, Seq: 1, Password: "a"})
	}()
	require.Eventually(t, func() bool { return len(services.evaluatedPasswords()) == 1 }, waitFor, tick)

	d.Advance(2)

	select {
	case ev := <-done:
		completed, ok := ev.(EvaluationCompleted)
		require.True(t, ok)
		assert.True(t, errors.Is(completed.Err, context.Canceled))
	case <-time.After(waitFor):
		t.Fatal("superseded request should be cancelled")
	}
}

func TestDispatcher_SupersededBeforeStart(t *testing.T) {
	services := newFakeServices()
	services.gate("a")
	d := NewDispatcher(services, services, LatestOnly)
	d.Advance(5)

	ev := d.Run(context.Background(), Effect{Kind: Evaluate, Seq: 3, Password: "a"})
	completed, ok := ev.(EvaluationCompleted)
	require.True(t, ok)
	assert.ErrorIs(t, completed.Err, context.Canceled)
}

func TestDispatcher_ApplyAllNeverCancels(t *testing.T) {
	services := newFakeServices()
	gate := services.gate("a")
	services.results["a"] = weakResult
	d := NewDispatcher(services, services, ApplyAll)

	done := make(chan Event, 1)
	go func() {
		done <- d.Run(context.Background(), Effect{Kind: Evaluate, Seq: 1, Password: "a"})
	}()
	require.Eventually(t, func() bool { return len(services.evaluatedPasswords()) == 1 }, waitFor, tick)

	d.Advance(2)
	close(gate)

	ev := <-done
	assert.Equal(t, EvaluationCompleted{Seq: 1, Password: "a", Result: weakResult}, ev)
}
