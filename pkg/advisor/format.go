// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package advisor

import (
	"fmt"
	"math"
)

// Anything below this is shown as "less than a second". It is roughly 31 seconds, the
// rounding of the seconds bucket takes over right above it.
const lessThanASecond = 0.000001

// Folded into a single constant so years*secondsPerYear is one multiplication.
// Chaining years*365*24*60*60 drifts below whole seconds (60s becomes 59.99...).
const secondsPerYear = 365 * 24 * 60 * 60

// Color is a presentation token. Renderers map it to whatever their surface supports.
type Color string

const (
	Red    Color = "red"
	Yellow Color = "yellow"
	Green  Color = "green"
)

// Risk is the band computed locally from the crack-time estimate. It is not reconciled
// with the Strength reported by the service.
type Risk int

const (
	Unsafe Risk = iota
	Moderate
	Safe
)

func (r Risk) String() string {
	switch r {
	case Unsafe:
		return "Unsafe"
	case Moderate:
		return "Moderate"
	case Safe:
		return "Safe"
	}
	return fmt.Sprintf("Risk(%d)", int(r))
}

// Color of the badge for the risk band.
func (r Risk) Color() Color {
	switch r {
	case Moderate:
		return Yellow
	case Safe:
		return Green
	default:
		return Red
	}
}

// Style is how a Strength is displayed: the label text, its color and the strength bar.
type Style struct {
	Label     string
	TextColor Color
	BarWidth  int
	BarColor  Color
}

// FormatDuration converts a crack-time estimate in years into the largest unit that keeps
// the value readable, rounded to a whole number. Unit selection happens before rounding,
// so 59.6 seconds still reads "60 seconds".
func FormatDuration(years float64) string {
	if years < lessThanASecond {
		return "less than a second"
	}

	seconds := years * secondsPerYear
	if seconds < 60 {
		return fmt.Sprintf("%.0f seconds", math.Round(seconds))
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%.0f minutes", math.Round(minutes))
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%.0f hours", math.Round(hours))
	}

	days := hours / 24
	if days < 365 {
		return fmt.Sprintf("%.0f days", math.Round(days))
	}

	return fmt.Sprintf("%.0f years", math.Round(years))
}

// ClassifyRisk bands are half-open: exactly 1 year is Moderate, exactly 100 is Safe.
func ClassifyRisk(years float64) Risk {
	if years < 1 {
		return Unsafe
	} else if years < 100 {
		return Moderate
	}
	return Safe
}

// StyleFor maps anything that is not Strong or Medium to the Weak style.
func StyleFor(strength Strength) Style {
	label := fmt.Sprintf("Strength: %s", strength)
	switch strength {
	case Strong:
		return Style{Label: label, TextColor: Green, BarWidth: 100, BarColor: Green}
	case Medium:
		return Style{Label: label, TextColor: Yellow, BarWidth: 66, BarColor: Yellow}
	default:
		return Style{Label: label, TextColor: Red, BarWidth: 33, BarColor: Red}
	}
}
