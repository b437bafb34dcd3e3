package question

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

var easyOperations = []Operation{
	OpAddition, OpSubtraction, OpMultiplication, OpDivision, OpSequence,
}

var allOperations = []Operation{
	OpAddition, OpSubtraction, OpMultiplication, OpDivision, OpSequence,
	OpFractions, OpDecimals, OpPercentages,
}

func (g *Generator) mathQuestion(d Difficulty) Question {
	ops := allOperations
	if d == Easy {
		ops = easyOperations
	}
	op := ops[g.rng.Intn(len(ops))]

	num1 := byLevel(d, 1, 10, 20) + g.rng.Intn(byLevel(d, 10, 50, 100))
	num2 := byLevel(d, 1, 5, 10) + g.rng.Intn(byLevel(d, 10, 20, 50))

	var prompt string
	var answer float64
	switch op {
	case OpAddition:
		answer = float64(num1 + num2)
		prompt = fmt.Sprintf("%d + %d = ?", num1, num2)
	case OpSubtraction:
		// Swap so the result is never negative.
		if num1 < num2 {
			num1, num2 = num2, num1
		}
		answer = float64(num1 - num2)
		prompt = fmt.Sprintf("%d - %d = ?", num1, num2)
	case OpMultiplication:
		answer = float64(num1 * num2)
		prompt = fmt.Sprintf("%d × %d = ?", num1, num2)
	case OpDivision:
		// The dividend is a multiple of the divisor so the quotient
		// is always whole.
		answer = float64(num2)
		prompt = fmt.Sprintf("%d ÷ %d = ?", num1*num2, num2)
	case OpSequence:
		step := byLevel(d, 2, 3, 5)
		start := num1 * byLevel(d, 1, 2, 3)
		answer = float64(start + 4*step)
		prompt = fmt.Sprintf("What comes next: %d, %d, %d, %d, ...?",
			start, start+step, start+2*step, start+3*step)
	case OpFractions:
		den := byLevel(d, 4, 6, 8)
		num := 1 + g.rng.Intn(den)
		answer = float64(num) / float64(den) * 100
		prompt = fmt.Sprintf("Convert the fraction %d/%d to a percentage", num, den)
	case OpDecimals:
		scale := float64(byLevel(d, 10, 100, 1000))
		a := math.Floor(g.rng.Float64()*scale*10) / scale
		b := math.Floor(g.rng.Float64()*scale*10) / scale
		answer = a + b
		prompt = fmt.Sprintf("%.2f + %.2f = ?", a, b)
	case OpPercentages:
		pct := byLevel(d, 10, 25, 75)
		value := 1 + g.rng.Intn(byLevel(d, 100, 1000, 10000))
		answer = float64(pct) * float64(value) / 100
		prompt = fmt.Sprintf("What is %d%% of %d?", pct, value)
	}

	return Question{
		ID:         uuid.NewString(),
		Topic:      TopicMath,
		Difficulty: d,
		Points:     d.Points(),
		TimeLimit:  d.TimeLimit(),
		Math: &MathContent{
			Operation: op,
			Prompt:    prompt,
			Choices:   g.numericChoices(answer, d),
			Answer:    Number(answer),
		},
	}
}

// numericChoices builds four distinct non-negative options including
// the answer, offset by small amounts scaled to the difficulty, then
// shuffles them.
func (g *Generator) numericChoices(answer float64, d Difficulty) []string {
	spread := byLevel(d, 5, 10, 20)
	values := []float64{answer}
	seen := map[string]bool{Number(answer).String(): true}
	for len(values) < 4 {
		cand := answer + float64(g.rng.Intn(2*spread)-spread)
		key := Number(cand).String()
		if cand < 0 || seen[key] {
			continue
		}
		seen[key] = true
		values = append(values, cand)
	}
	g.rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	choices := make([]string, len(values))
	for i, v := range values {
		choices[i] = Number(v).String()
	}
	return choices
}
