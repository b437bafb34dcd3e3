package question

import "testing"

func TestIsCorrect(t *testing.T) {
	numeric := Question{Math: &MathContent{Answer: Number(12)}}
	fractional := Question{Math: &MathContent{Answer: Number(37.5)}}
	textual := Question{Quiz: &QuizContent{Answer: "Tiger"}}

	tests := []struct {
		name      string
		question  Question
		submitted Answer
		want      bool
	}{
		{"number matches number", numeric, Number(12), true},
		{"number mismatch", numeric, Number(13), false},
		{"text matches numeric via display form", numeric, Text("12"), true},
		{"text mismatch against numeric", numeric, Text("twelve"), false},
		{"fractional display form", fractional, Text("37.5"), true},
		{"text matches text", textual, Text("Tiger"), true},
		{"text matches case-insensitively", textual, Text("tiger"), true},
		{"text mismatch", textual, Text("Lion"), false},
		{"empty answer is wrong", textual, Text(""), false},
		{"numeric against textual falls back to display", textual, Number(5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCorrect(tt.question, tt.submitted); got != tt.want {
				t.Errorf("IsCorrect(%v) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestAnswerString(t *testing.T) {
	tests := []struct {
		answer Answer
		want   string
	}{
		{Number(7), "7"},
		{Number(3.5), "3.5"},
		{Number(0), "0"},
		{Text("Diwali"), "Diwali"},
		{Text(""), ""},
	}
	for _, tt := range tests {
		if got := tt.answer.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
