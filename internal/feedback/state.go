// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package feedback

import (
	"fmt"
	"strings"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
)

const (
	SuggestionPrefix = "Suggested Strong Password: "
	ErrorPrefix      = "Error: "
)

// Policy decides what happens with completions of requests that are no longer the
// latest one issued.
type Policy int

const (
	// LatestOnly drops completions of superseded requests and cancels them in flight.
	LatestOnly Policy = iota
	// ApplyAll applies every completion as it arrives, stale or not. A slow response for
	// an older input can overwrite the feedback of the current one.
	ApplyAll
)

func (p Policy) String() string {
	if p == ApplyAll {
		return "all"
	}
	return "latest"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "latest":
		return LatestOnly, nil
	case "all":
		return ApplyAll, nil
	}
	return LatestOnly, fmt.Errorf("unknown ordering policy %q, use latest or all", s)
}

// Phase is the display configuration the feedback is in.
type Phase int

const (
	Empty Phase = iota
	Pending
	Displayed
	Failed
)

func (p Phase) String() string {
	switch p {
	case Empty:
		return "empty"
	case Pending:
		return "pending"
	case Displayed:
		return "displayed"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is the whole UI state. It is a value: Reduce returns a new one for every event and
// never modifies the Result it points to.
type State struct {
	Policy   Policy
	Input    string
	Revealed bool
	Phase    Phase
	// Result is the last applied evaluation. It stays while Pending so the panels keep
	// their pre-request content, and is cleared by failed evaluations, resets and injected
	// suggestions.
	Result *advisor.Evaluation
	// Err is the error line. A failed suggestion sets it next to a Displayed result.
	Err string
	// Seq identifies the latest issued request.
	Seq uint64
}

func NewState(policy Policy) State {
	return State{Policy: policy}
}

// View is what gets written to the display regions.
type View struct {
	Input    string
	Revealed bool
	Pending  bool

	FeedbackVisible      bool
	SuggestionVisible    bool
	SuggestButtonVisible bool
	CheckAnotherVisible  bool

	Criteria     []advisor.Criterion
	CrackingTime string
	Risk         advisor.Risk
	Strength     advisor.Style
	BarWidth     int
	Suggestion   string
	Error        string
}

// View projects the state onto the display. Visibility is derived from the phase only, so
// a suggestion can never show without its feedback panel.
func (s State) View() View {
	v := View{
		Input:    s.Input,
		Revealed: s.Revealed,
		Pending:  s.Phase == Pending,
	}

	if s.Err != "" {
		v.Error = ErrorPrefix + s.Err
	}

	if s.Result == nil || (s.Phase != Displayed && s.Phase != Pending) {
		return v
	}

	r := *s.Result
	v.FeedbackVisible = true
	v.SuggestButtonVisible = true
	v.CheckAnotherVisible = true
	v.Criteria = advisor.Criteria(r)
	v.CrackingTime = advisor.FormatDuration(r.CrackingTimeYears)
	v.Risk = advisor.ClassifyRisk(r.CrackingTimeYears)
	v.Strength = advisor.StyleFor(r.Strength)
	v.BarWidth = v.Strength.BarWidth

	if r.SuggestedPassword != "" {
		v.SuggestionVisible = true
		v.Suggestion = SuggestionPrefix + r.SuggestedPassword
	}

	return v
}
