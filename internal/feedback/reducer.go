// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package feedback

import (
	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
)

// Event is anything that changes the feedback state: user actions and request completions.
type Event interface {
	isEvent()
}

type PasswordChanged struct {
	Password string
}

type SuggestRequested struct{}

type CheckAnotherRequested struct{}

type RevealToggled struct{}

type EvaluationCompleted struct {
	Seq      uint64
	Password string
	Result   advisor.Evaluation
	Err      error
}

type SuggestionCompleted struct {
	Seq    uint64
	Result advisor.Suggestion
	Err    error
}

func (PasswordChanged) isEvent()       {}
func (SuggestRequested) isEvent()      {}
func (CheckAnotherRequested) isEvent() {}
func (RevealToggled) isEvent()         {}
func (EvaluationCompleted) isEvent()   {}
func (SuggestionCompleted) isEvent()   {}

type EffectKind int

const (
	Evaluate EffectKind = iota + 1
	Suggest
)

// Effect is a request the reducer wants issued. Its Seq comes back in the completion.
type Effect struct {
	Kind     EffectKind
	Seq      uint64
	Password string
}

// Stale reports whether a completion belongs to a request that is no longer the latest
// and the policy says to drop it.
func (s State) Stale(ev Event) bool {
	if s.Policy != LatestOnly {
		return false
	}

	switch ev := ev.(type) {
	case EvaluationCompleted:
		return ev.Seq != s.Seq
	case SuggestionCompleted:
		return ev.Seq != s.Seq
	}
	return false
}

// Reduce applies an event and returns the next state along with the requests to issue.
func Reduce(s State, ev Event) (State, []Effect) {
	if s.Stale(ev) {
		return s, nil
	}

	switch ev := ev.(type) {
	case PasswordChanged:
		s.Input = ev.Password
		s.Seq++
		if ev.Password == "" {
			// The error line, if any, stays until a request succeeds or the user resets.
			s.Phase = Empty
			s.Result = nil
			return s, nil
		}

		s.Phase = Pending
		return s, []Effect{{Kind: Evaluate, Seq: s.Seq, Password: ev.Password}}

	case SuggestRequested:
		s.Seq++
		if s.Phase != Failed {
			s.Phase = Pending
		}
		return s, []Effect{{Kind: Suggest, Seq: s.Seq}}

	case CheckAnotherRequested:
		s.Seq++
		s.Input = ""
		s.Revealed = true
		s.Phase = Empty
		s.Result = nil
		s.Err = ""
		return s, nil

	case RevealToggled:
		s.Revealed = !s.Revealed
		return s, nil

	case EvaluationCompleted:
		if ev.Err != nil {
			return failed(s, ev.Err), nil
		}

		result := ev.Result
		s.Phase = Displayed
		s.Result = &result
		s.Err = ""
		return s, nil

	case SuggestionCompleted:
		if ev.Err != nil {
			return suggestionFailed(s, ev.Err), nil
		}

		// The suggestion becomes the input and goes through the regular evaluation.
		password := ev.Result.SuggestedPassword
		s.Input = password
		s.Revealed = true
		s.Err = ""
		s.Result = nil
		s.Seq++
		s.Phase = Pending
		return s, []Effect{{Kind: Evaluate, Seq: s.Seq, Password: password}}
	}

	return s, nil
}

func failed(s State, err error) State {
	s.Phase = Failed
	s.Result = nil
	s.Err = err.Error()
	return s
}

// suggestionFailed only adds the error line. The feedback shown before the request stays,
// so the suggestion can be asked for again.
func suggestionFailed(s State, err error) State {
	s.Err = err.Error()
	if s.Result != nil {
		s.Phase = Displayed
	} else {
		s.Phase = Failed
	}
	return s
}
