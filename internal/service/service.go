// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"

	"github.com/alvinbaena/pwd-advisor/pkg/advisor"
	"github.com/alvinbaena/pwd-advisor/pkg/client"
)

// Service evaluates passwords with the advisor rules. It satisfies client.Evaluator and
// client.Suggester, so the controller can run against it without a server in between.
type Service struct {
	estimator Estimator
	words     *WordList
}

type Option func(*Service)

func WithEstimator(e Estimator) Option {
	return func(s *Service) {
		s.estimator = e
	}
}

func WithWordList(w *WordList) Option {
	return func(s *Service) {
		s.words = w
	}
}

func New(opts ...Option) *Service {
	s := &Service{estimator: BruteForce{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Evaluate(_ context.Context, password string) (advisor.Evaluation, error) {
	if password == "" {
		return advisor.Evaluation{}, client.ErrEmptyPassword
	}

	v := CheckVariety(password)
	common := DetectCommonPatterns(password, s.words)
	years := s.estimator.Years(password)

	result := advisor.Evaluation{
		LengthValid:       v.LengthValid,
		HasUppercase:      v.HasUppercase,
		HasLowercase:      v.HasLowercase,
		HasNumber:         v.HasNumber,
		HasSpecial:        v.HasSpecial,
		HasCommonPattern:  common,
		CrackingTimeYears: years,
		Strength:          CalculateStrength(v, common, years),
	}

	if result.Strength == advisor.Weak {
		suggestion, err := GeneratePassword()
		if err != nil {
			return advisor.Evaluation{}, fmt.Errorf("error generating suggestion: %w", err)
		}
		result.SuggestedPassword = suggestion
	}

	return result, nil
}

func (s *Service) Suggest(_ context.Context) (advisor.Suggestion, error) {
	password, err := GeneratePassword()
	if err != nil {
		return advisor.Suggestion{}, fmt.Errorf("error generating suggestion: %w", err)
	}
	return advisor.Suggestion{SuggestedPassword: password}, nil
}

// CalculateStrength needs every criterion and over a millennium for Strong, and four
// criteria with more than a year for Medium.
func CalculateStrength(v Variety, hasCommonPattern bool, years float64) advisor.Strength {
	met := v.met(hasCommonPattern)
	switch {
	case met == 6 && years > 1000:
		return advisor.Strong
	case met >= 4 && years > 1:
		return advisor.Medium
	}
	return advisor.Weak
}
