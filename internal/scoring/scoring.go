// Package scoring implements the DASS-21 and PHQ-9 questionnaires:
// aggregation of Likert responses, severity classification, and the
// canned narrative and recommendation text shown with each result.
//
// Every function here is pure and safe for concurrent use.
package scoring

import (
	"errors"
	"fmt"
)

// Severity is the Persian label of an ordinal severity bucket.
type Severity string

const (
	SeverityNormal           Severity = "عادی"
	SeverityMinimal          Severity = "حداقل"
	SeverityMild             Severity = "خفیف"
	SeverityModerate         Severity = "متوسط"
	SeverityModeratelySevere Severity = "نسبتاً شدید"
	SeveritySevere           Severity = "شدید"
	SeverityExtremelySevere  Severity = "بسیار شدید"
)

const (
	MinResponse = 0
	MaxResponse = 3

	// MaxRecommendations caps the advice list returned for any result.
	MaxRecommendations = 5
)

var (
	// ErrInvalidResponses is wrapped by every validation failure below.
	ErrInvalidResponses = errors.New("invalid survey responses")

	ErrInvalidResponseCount = fmt.Errorf("%w: wrong number of responses", ErrInvalidResponses)
	ErrInvalidQuestionIndex = fmt.Errorf("%w: question index out of range", ErrInvalidResponses)
	ErrInvalidResponseValue = fmt.Errorf("%w: response value out of range", ErrInvalidResponses)
)

// ResponseSet maps a 1-based question index to a Likert value in 0..3.
type ResponseSet map[int]int

// Validate checks that r holds exactly n answers keyed 1..n with values in range.
// Because keys are unique, a set with the right size and every key in 1..n
// covers each question exactly once.
func (r ResponseSet) Validate(n int) error {
	if len(r) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidResponseCount, len(r), n)
	}
	for q, v := range r {
		if q < 1 || q > n {
			return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidQuestionIndex, q, n)
		}
		if v < MinResponse || v > MaxResponse {
			return fmt.Errorf("%w: question %d has %d", ErrInvalidResponseValue, q, v)
		}
	}
	return nil
}

// StringKeys returns a copy keyed by decimal strings, the form stored with submissions.
func (r ResponseSet) StringKeys() map[string]int {
	out := make(map[string]int, len(r))
	for q, v := range r {
		out[fmt.Sprint(q)] = v
	}
	return out
}

func (r ResponseSet) sum(questions []int) int {
	total := 0
	for _, q := range questions {
		total += r[q]
	}
	return total
}

// cutoff is an inclusive upper bound for a severity bucket.
type cutoff struct {
	max      int
	severity Severity
}

func classify(score int, table []cutoff, top Severity) Severity {
	for _, c := range table {
		if score <= c.max {
			return c.severity
		}
	}
	return top
}

func capRecommendations(items []string) []string {
	if len(items) > MaxRecommendations {
		items = items[:MaxRecommendations]
	}
	return items
}
