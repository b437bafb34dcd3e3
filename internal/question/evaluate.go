package question

import "strings"

// IsCorrect reports whether a submitted answer matches the question's
// expected one. Matching cascades: two numbers compare numerically, two
// strings compare case-insensitively, and a mixed pair falls back to
// comparing display forms. The fallback is what lets a selected choice
// like "12" match a numeric answer of 12.
func IsCorrect(q Question, submitted Answer) bool {
	correct := q.Correct()
	switch {
	case correct.numeric && submitted.numeric:
		return correct.number == submitted.number
	case !correct.numeric && !submitted.numeric:
		return strings.EqualFold(correct.text, submitted.text)
	default:
		return correct.String() == submitted.String()
	}
}
