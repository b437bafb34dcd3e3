package question

import "strconv"

// Answer is either a number or a piece of text. Keeping the two kinds
// distinct lets the evaluator compare numbers exactly while still
// accepting a textual rendering of the same value.
type Answer struct {
	number  float64
	text    string
	numeric bool
}

// Number builds a numeric answer.
func Number(n float64) Answer {
	return Answer{number: n, numeric: true}
}

// Text builds a textual answer. An empty string is the "no answer"
// submission used when the timer runs out.
func Text(s string) Answer {
	return Answer{text: s}
}

// IsNumeric reports whether the answer carries a number.
func (a Answer) IsNumeric() bool { return a.numeric }

// Value returns the numeric value; zero for textual answers.
func (a Answer) Value() float64 { return a.number }

// String renders the answer for display. Numbers use the shortest
// decimal form, so 7 renders as "7" and 3.5 as "3.5".
func (a Answer) String() string {
	if a.numeric {
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	}
	return a.text
}
