package feedback

import (
	"errors"
	"testing"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/alvinbaena/pwd-advisor/pkg/client"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weakResult = advisor.Evaluation{
	LengthValid:       false,
	HasUppercase:      false,
	HasLowercase:      true,
	HasNumber:         false,
	HasSpecial:        false,
	HasCommonPattern:  true,
	CrackingTimeYears: 0.0000001,
	Strength:          advisor.Weak,
	SuggestedPassword: "Tr0ub4dor&3!",
}

var mediumResult = advisor.Evaluation{
	LengthValid:       true,
	HasUppercase:      true,
	HasLowercase:      true,
	HasNumber:         true,
	CrackingTimeYears: 50,
	Strength:          advisor.Medium,
}

// reduceAll applies events in order and returns the final state with every effect issued.
func reduceAll(s State, events ...Event) (State, []Effect) {
	var all []Effect
	for _, ev := range events {
		var effects []Effect
		s, effects = Reduce(s, ev)
		all = append(all, effects...)
	}
	return s, all
}

func TestInitialView(t *testing.T) {
	got := NewState(LatestOnly).View()
	want := View{}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("initial view mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_EmptyInput(t *testing.T) {
	s, effects := Reduce(NewState(LatestOnly), PasswordChanged{Password: ""})
	assert.Empty(t, effects, "empty input should not issue a request")

	v := s.View()
	assert.False(t, v.FeedbackVisible)
	assert.False(t, v.SuggestButtonVisible)
	assert.False(t, v.CheckAnotherVisible)
}

func TestReduce_EmptyInputHidesPreviousFeedback(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
		PasswordChanged{Password: ""},
	)

	assert.Equal(t, Empty, s.Phase)
	v := s.View()
	assert.False(t, v.FeedbackVisible)
	assert.False(t, v.SuggestionVisible)
	assert.False(t, v.SuggestButtonVisible)
	assert.False(t, v.CheckAnotherVisible)
}

func TestReduce_PasswordChangedIssuesEvaluation(t *testing.T) {
	s, effects := Reduce(NewState(LatestOnly), PasswordChanged{Password: "abc"})
	require.Len(t, effects, 1)
	assert.Equal(t, Effect{Kind: Evaluate, Seq: 1, Password: "abc"}, effects[0])
	assert.Equal(t, Pending, s.Phase)
	assert.True(t, s.View().Pending)
}

func TestReduce_WeakEvaluation(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
	)

	want := View{
		Input:                "abc",
		FeedbackVisible:      true,
		SuggestionVisible:    true,
		SuggestButtonVisible: true,
		CheckAnotherVisible:  true,
		Criteria: []advisor.Criterion{
			{Name: "Length (≥12)", Met: false, Text: "Length (≥12): ❌ Too short"},
			{Name: "Uppercase", Met: false, Text: "Uppercase: ❌ Missing"},
			{Name: "Lowercase", Met: true, Text: "Lowercase: ✅ Present"},
			{Name: "Numbers", Met: false, Text: "Numbers: ❌ Missing"},
			{Name: "Special Characters (@#$)", Met: false, Text: "Special Characters (@#$): ❌ Missing"},
			{Name: "Common Patterns", Met: false, Text: "Common Patterns: ❌ Detected"},
		},
		CrackingTime: "less than a second",
		Risk:         advisor.Unsafe,
		Strength:     advisor.Style{Label: "Strength: Weak", TextColor: advisor.Red, BarWidth: 33, BarColor: advisor.Red},
		BarWidth:     33,
		Suggestion:   "Suggested Strong Password: Tr0ub4dor&3!",
	}

	if diff := cmp.Diff(want, s.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_SuggestionPanelFollowsResult(t *testing.T) {
	tests := []struct {
		name       string
		suggestion string
		visible    bool
	}{
		{"absent", "", false},
		{"present", "K7$qLp9#Tz2!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mediumResult
			result.SuggestedPassword = tt.suggestion
			s, _ := reduceAll(NewState(LatestOnly),
				PasswordChanged{Password: "abc"},
				EvaluationCompleted{Seq: 1, Password: "abc", Result: result},
			)

			v := s.View()
			assert.Equal(t, tt.visible, v.SuggestionVisible)
			if tt.visible {
				assert.Equal(t, SuggestionPrefix+tt.suggestion, v.Suggestion)
			} else {
				assert.Empty(t, v.Suggestion)
			}
		})
	}
}

func TestReduce_StrengthAndRiskStayIndependent(t *testing.T) {
	result := mediumResult
	result.Strength = advisor.Strong
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: result},
	)

	v := s.View()
	assert.Equal(t, 100, v.BarWidth)
	assert.Equal(t, advisor.Moderate, v.Risk)
}

func TestReduce_EvaluationFailure(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
		PasswordChanged{Password: "abcd"},
		EvaluationCompleted{Seq: 2, Password: "abcd", Err: &client.RequestError{StatusCode: 500}},
	)

	v := s.View()
	assert.Equal(t, "Error: HTTP error 500", v.Error)
	assert.False(t, v.FeedbackVisible)
	assert.False(t, v.SuggestionVisible)
	assert.False(t, v.SuggestButtonVisible)
	assert.False(t, v.CheckAnotherVisible)
	assert.Zero(t, v.BarWidth)
	assert.Equal(t, "abcd", v.Input)
}

func TestReduce_SuccessClearsError(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Err: errors.New("offline")},
		PasswordChanged{Password: "abcd"},
		EvaluationCompleted{Seq: 2, Password: "abcd", Result: mediumResult},
	)

	v := s.View()
	assert.Empty(t, v.Error)
	assert.True(t, v.FeedbackVisible)
}

func TestReduce_PendingKeepsPreviousFeedback(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
		PasswordChanged{Password: "abcd"},
	)

	v := s.View()
	assert.True(t, v.Pending)
	assert.True(t, v.FeedbackVisible)
	assert.Equal(t, 33, v.BarWidth)
}

func TestReduce_SuggestCycle(t *testing.T) {
	s, effects := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
		SuggestRequested{},
	)
	require.Len(t, effects, 2)
	assert.Equal(t, Effect{Kind: Suggest, Seq: 2}, effects[1])

	s, effects = Reduce(s, SuggestionCompleted{Seq: 2, Result: advisor.Suggestion{SuggestedPassword: "K7$qLp9#Tz2!"}})
	require.Len(t, effects, 1)
	assert.Equal(t, Effect{Kind: Evaluate, Seq: 3, Password: "K7$qLp9#Tz2!"}, effects[0])

	v := s.View()
	assert.Equal(t, "K7$qLp9#Tz2!", v.Input)
	assert.True(t, v.Revealed)
	assert.Empty(t, v.Error)
	assert.False(t, v.SuggestionVisible)
	assert.Zero(t, v.BarWidth)
}

func TestReduce_SuggestFailure(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
		SuggestRequested{},
		SuggestionCompleted{Seq: 2, Err: errors.New("HTTP error 503")},
	)

	assert.Equal(t, Displayed, s.Phase)
	v := s.View()
	assert.Equal(t, "Error: HTTP error 503", v.Error)
	assert.Equal(t, "abc", v.Input)
	assert.False(t, v.Pending)
	assert.True(t, v.FeedbackVisible)
	assert.True(t, v.SuggestionVisible)
	assert.True(t, v.SuggestButtonVisible)
	assert.True(t, v.CheckAnotherVisible)
	assert.Equal(t, 33, v.BarWidth)
}

func TestReduce_SuggestRetryAfterFailure(t *testing.T) {
	s, effects := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
		SuggestRequested{},
		SuggestionCompleted{Seq: 2, Err: errors.New("HTTP error 503")},
		SuggestRequested{},
		SuggestionCompleted{Seq: 3, Result: advisor.Suggestion{SuggestedPassword: "K7$qLp9#Tz2!"}},
	)

	assert.Equal(t, []Effect{
		{Kind: Evaluate, Seq: 1, Password: "abc"},
		{Kind: Suggest, Seq: 2},
		{Kind: Suggest, Seq: 3},
		{Kind: Evaluate, Seq: 4, Password: "K7$qLp9#Tz2!"},
	}, effects)
	assert.Equal(t, "K7$qLp9#Tz2!", s.Input)
	assert.Empty(t, s.View().Error)
}

func TestReduce_SuggestFailureWithoutResult(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		SuggestRequested{},
		SuggestionCompleted{Seq: 1, Err: errors.New("offline")},
	)

	assert.Equal(t, Failed, s.Phase)
	v := s.View()
	assert.Equal(t, "Error: offline", v.Error)
	assert.False(t, v.FeedbackVisible)
	assert.False(t, v.SuggestButtonVisible)
}

func TestReduce_EmptyInputKeepsError(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Err: errors.New("offline")},
		PasswordChanged{Password: ""},
	)

	assert.Equal(t, Empty, s.Phase)
	v := s.View()
	assert.Equal(t, "Error: offline", v.Error)
	assert.False(t, v.FeedbackVisible)
	assert.False(t, v.SuggestButtonVisible)
	assert.False(t, v.CheckAnotherVisible)

	s, _ = Reduce(s, CheckAnotherRequested{})
	assert.Empty(t, s.View().Error)
}

func TestReduce_CheckAnother(t *testing.T) {
	s, effects := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
		CheckAnotherRequested{},
	)
	assert.Len(t, effects, 1, "check another should not issue requests")

	want := View{Revealed: true}
	if diff := cmp.Diff(want, s.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_CheckAnotherDropsInFlightResult(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		CheckAnotherRequested{},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
	)

	assert.False(t, s.View().FeedbackVisible)
}

func TestReduce_RevealToggled(t *testing.T) {
	s, _ := Reduce(NewState(LatestOnly), RevealToggled{})
	assert.True(t, s.Revealed)
	s, _ = Reduce(s, RevealToggled{})
	assert.False(t, s.Revealed)
}

// "a" is answered after "ab". Only the latest request may reach the display.
func TestReduce_OutOfOrderLatestOnly(t *testing.T) {
	s, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "a"},
		PasswordChanged{Password: "ab"},
		EvaluationCompleted{Seq: 2, Password: "ab", Result: mediumResult},
		EvaluationCompleted{Seq: 1, Password: "a", Result: weakResult},
	)

	assert.Equal(t, "ab", s.Input)
	assert.Equal(t, advisor.Medium, s.Result.Strength)
}

// Legacy ordering: the late response for "a" overwrites the feedback for "ab".
func TestReduce_OutOfOrderApplyAll(t *testing.T) {
	s, _ := reduceAll(NewState(ApplyAll),
		PasswordChanged{Password: "a"},
		PasswordChanged{Password: "ab"},
		EvaluationCompleted{Seq: 2, Password: "ab", Result: mediumResult},
		EvaluationCompleted{Seq: 1, Password: "a", Result: weakResult},
	)

	assert.Equal(t, "ab", s.Input)
	assert.Equal(t, advisor.Weak, s.Result.Strength)
}

func TestReduce_DoesNotMutatePreviousState(t *testing.T) {
	first, _ := reduceAll(NewState(LatestOnly),
		PasswordChanged{Password: "abc"},
		EvaluationCompleted{Seq: 1, Password: "abc", Result: weakResult},
	)
	kept := *first.Result

	_, _ = reduceAll(first,
		PasswordChanged{Password: "abcd"},
		EvaluationCompleted{Seq: 2, Password: "abcd", Result: mediumResult},
	)

	assert.Equal(t, kept, *first.Result)
	assert.Equal(t, "abc", first.Input)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("all")
	require.NoError(t, err)
	assert.Equal(t, ApplyAll, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, LatestOnly, p)

	_, err = ParsePolicy("newest")
	assert.Error(t, err)
}
