// Package game runs a single play session: it walks a fixed list of
// questions, scores answers, tracks lives in challenge mode, and feeds
// results into the player's profile on completion.
package game

import "gyanguru/internal/question"

// Mode is how a session is played.
type Mode string

const (
	// Practice has unlimited lives; wrong answers cost nothing.
	Practice Mode = "practice"
	// Challenge starts with three lives and ends when they run out.
	Challenge Mode = "challenge"
	// Multiplayer is reserved; it is accepted but plays like practice.
	Multiplayer Mode = "multiplayer"
)

// ChallengeLives is the starting life count in challenge mode.
const ChallengeLives = 3

// UnlimitedLives marks a session whose lives never deplete.
const UnlimitedLives = -1

// Session is the state of one game in progress. Current stays on the
// final answered question once the session completes, so the summary
// can still show it.
type Session struct {
	Mode       Mode
	Topic      question.Topic
	Difficulty question.Difficulty
	Questions  []question.Question
	Answers    []*question.Answer
	Current    int
	Score      int
	Lives      int
	Complete   bool
}

// CurrentQuestion returns the question awaiting an answer, or nil when
// the session holds no questions.
func (s *Session) CurrentQuestion() *question.Question {
	if s == nil || s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Current]
}

// CorrectCount reports how many recorded answers were right.
func (s *Session) CorrectCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for i, a := range s.Answers {
		if a != nil && question.IsCorrect(s.Questions[i], *a) {
			n++
		}
	}
	return n
}

// AnsweredCount reports how many questions have been answered.
func (s *Session) AnsweredCount() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, a := range s.Answers {
		if a != nil {
			n++
		}
	}
	return n
}
