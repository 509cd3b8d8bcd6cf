package advisor

import "fmt"

const (
	passMark = "✅"
	failMark = "❌"
)

// Criterion is one line of the character-class checklist.
type Criterion struct {
	Name string
	Met  bool
	Text string
}

// Criteria lists the six indicators of an evaluation in display order. The common
// pattern line is inverted: a detected pattern is the failing state.
func Criteria(e Evaluation) []Criterion {
	return []Criterion{
		criterion("Length (≥12)", e.LengthValid, "Valid", "Too short"),
		criterion("Uppercase", e.HasUppercase, "Present", "Missing"),
		criterion("Lowercase", e.HasLowercase, "Present", "Missing"),
		criterion("Numbers", e.HasNumber, "Present", "Missing"),
		criterion("Special Characters (@#$)", e.HasSpecial, "Present", "Missing"),
		criterion("Common Patterns", !e.HasCommonPattern, "None", "Detected"),
	}
}

func criterion(name string, met bool, pass, fail string) Criterion {
	var text string
	if met {
		text = fmt.Sprintf("%s: %s %s", name, passMark, pass)
	} else {
		text = fmt.Sprintf("%s: %s %s", name, failMark, fail)
	}

	return Criterion{Name: name, Met: met, Text: text}
}
