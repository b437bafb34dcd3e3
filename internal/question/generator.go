package question

import (
	"math/rand"
	"time"
)

// Generator produces questions for a topic and difficulty. The random
// source is injectable so tests can run deterministically.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. Passing nil seeds one from the clock.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate builds up to count questions for the topic. Bank-backed
// topics may return fewer when the difficulty's categories hold fewer
// matching entries than requested.
func (g *Generator) Generate(topic Topic, difficulty Difficulty, count int) []Question {
	switch topic {
	case TopicMath:
		qs := make([]Question, 0, count)
		for i := 0; i < count; i++ {
			qs = append(qs, g.mathQuestion(difficulty))
		}
		return qs
	case TopicQuiz:
		return g.quizQuestions(difficulty, count)
	case TopicGuess:
		return g.guessQuestions(difficulty, count)
	}
	return nil
}

// byLevel selects one of three values by difficulty, ascending.
func byLevel[T any](d Difficulty, easy, medium, hard T) T {
	switch d {
	case Medium:
		return medium
	case Hard:
		return hard
	default:
		return easy
	}
}
