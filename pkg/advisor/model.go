// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package advisor

// Strength is the coarse verdict computed by the evaluation service.
type Strength string

const (
	Weak   Strength = "Weak"
	Medium Strength = "Medium"
	Strong Strength = "Strong"
)

// Evaluation is the response of the evaluation service for a single password.
type Evaluation struct {
	LengthValid       bool     `json:"lengthValid"`
	HasUppercase      bool     `json:"hasUppercase"`
	HasLowercase      bool     `json:"hasLowercase"`
	HasNumber         bool     `json:"hasNumber"`
	HasSpecial        bool     `json:"hasSpecial"`
	HasCommonPattern  bool     `json:"hasCommonPattern"`
	CrackingTimeYears float64  `json:"crackingTimeYears"`
	Strength          Strength `json:"strength"`
	SuggestedPassword string   `json:"suggestedPassword,omitempty"`
}

// Suggestion is the response of the suggestion service.
type Suggestion struct {
	SuggestedPassword string `json:"suggestedPassword"`
}

type EvaluationRequest struct {
	Password string `json:"password" binding:"required"`
}
