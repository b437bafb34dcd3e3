package question

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

func TestGenerateMathCount(t *testing.T) {
	g := newTestGenerator(1)
	for _, d := range Difficulties() {
		qs := g.Generate(TopicMath, d, 10)
		if len(qs) != 10 {
			t.Fatalf("Generate(math, %s, 10) returned %d questions", d, len(qs))
		}
		for _, q := range qs {
			if q.Math == nil {
				t.Fatalf("math question has no math content")
			}
			if q.Points != d.Points() {
				t.Errorf("Points = %d, want %d", q.Points, d.Points())
			}
			if q.TimeLimit != d.TimeLimit() {
				t.Errorf("TimeLimit = %d, want %d", q.TimeLimit, d.TimeLimit())
			}
			if q.ID == "" {
				t.Errorf("question has empty ID")
			}
		}
	}
}

func TestMathChoices(t *testing.T) {
	g := newTestGenerator(2)
	for i := 0; i < 200; i++ {
		q := g.mathQuestion(Medium)
		choices := q.Math.Choices
		if len(choices) != 4 {
			t.Fatalf("got %d choices, want 4", len(choices))
		}
		seen := map[string]bool{}
		found := false
		for _, c := range choices {
			if seen[c] {
				t.Errorf("duplicate choice %q in %v", c, choices)
			}
			seen[c] = true
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				t.Fatalf("choice %q is not numeric: %v", c, err)
			}
			if v < 0 {
				t.Errorf("negative choice %q", c)
			}
			if c == q.Math.Answer.String() {
				found = true
			}
		}
		if !found {
			t.Errorf("answer %s missing from choices %v", q.Math.Answer, choices)
		}
	}
}

func TestMathEasyOperations(t *testing.T) {
	g := newTestGenerator(3)
	extended := map[Operation]bool{
		OpFractions: true, OpDecimals: true, OpPercentages: true,
	}
	for i := 0; i < 200; i++ {
		q := g.mathQuestion(Easy)
		if extended[q.Math.Operation] {
			t.Fatalf("easy question used operation %s", q.Math.Operation)
		}
	}
}

func TestDivisionQuotientIsWhole(t *testing.T) {
	g := newTestGenerator(4)
	checked := 0
	for i := 0; i < 500 && checked < 20; i++ {
		q := g.mathQuestion(Hard)
		if q.Math.Operation != OpDivision {
			continue
		}
		checked++
		var dividend, divisor int
		if _, err := fmt.Sscanf(q.Math.Prompt, "%d ÷ %d = ?", &dividend, &divisor); err != nil {
			t.Fatalf("unexpected division prompt %q: %v", q.Math.Prompt, err)
		}
		if dividend%divisor != 0 {
			t.Errorf("%d is not a multiple of %d", dividend, divisor)
		}
		if got := q.Math.Answer.Value(); got != float64(divisor) {
			t.Errorf("division answer = %v, want %d", got, divisor)
		}
	}
	if checked == 0 {
		t.Fatal("no division questions generated")
	}
}

func TestSubtractionNeverNegative(t *testing.T) {
	g := newTestGenerator(5)
	for i := 0; i < 500; i++ {
		q := g.mathQuestion(Medium)
		if q.Math.Operation != OpSubtraction {
			continue
		}
		if q.Math.Answer.Value() < 0 {
			t.Fatalf("subtraction answer %v is negative (%s)", q.Math.Answer, q.Math.Prompt)
		}
	}
}

func TestQuizDifficultyCategories(t *testing.T) {
	g := newTestGenerator(6)
	tests := []struct {
		difficulty Difficulty
		categories []string
	}{
		{Easy, []string{"general", "culture"}},
		{Medium, []string{"geography", "sports"}},
		{Hard, []string{"science", "history"}},
	}
	for _, tt := range tests {
		qs := g.Generate(TopicQuiz, tt.difficulty, 3)
		if len(qs) != 3 {
			t.Fatalf("Generate(quiz, %s, 3) returned %d questions", tt.difficulty, len(qs))
		}
		for _, q := range qs {
			if !inCategories(q.Quiz.Category, tt.categories) {
				t.Errorf("%s quiz question has category %q, want one of %v",
					tt.difficulty, q.Quiz.Category, tt.categories)
			}
		}
	}
}

func TestQuizShortPool(t *testing.T) {
	g := newTestGenerator(7)
	// The easy pool holds four entries; asking for more must not error.
	qs := g.Generate(TopicQuiz, Easy, 50)
	if len(qs) != 4 {
		t.Errorf("Generate(quiz, easy, 50) returned %d questions, want 4", len(qs))
	}
}

func TestGuessChoices(t *testing.T) {
	g := newTestGenerator(8)
	for i := 0; i < 50; i++ {
		qs := g.Generate(TopicGuess, Hard, 2)
		for _, q := range qs {
			if len(q.Guess.Choices) != 4 {
				t.Fatalf("got %d choices, want 4", len(q.Guess.Choices))
			}
			found := false
			seen := map[string]bool{}
			for _, c := range q.Guess.Choices {
				if seen[c] {
					t.Errorf("duplicate choice %q", c)
				}
				seen[c] = true
				if c == q.Guess.Answer {
					found = true
				}
			}
			if !found {
				t.Errorf("answer %q missing from choices %v", q.Guess.Answer, q.Guess.Choices)
			}
		}
	}
}

func TestGenerateUnknownTopic(t *testing.T) {
	g := newTestGenerator(9)
	if qs := g.Generate(Topic("riddles"), Easy, 5); qs != nil {
		t.Errorf("Generate(riddles) = %v, want nil", qs)
	}
}

func TestDecimalPromptFormat(t *testing.T) {
	g := newTestGenerator(10)
	for i := 0; i < 500; i++ {
		q := g.mathQuestion(Medium)
		if q.Math.Operation != OpDecimals {
			continue
		}
		parts := strings.Split(q.Math.Prompt, " + ")
		if len(parts) != 2 {
			t.Fatalf("unexpected decimals prompt %q", q.Math.Prompt)
		}
		if !strings.Contains(parts[0], ".") {
			t.Errorf("decimals prompt %q has no decimal point", q.Math.Prompt)
		}
		return
	}
}
