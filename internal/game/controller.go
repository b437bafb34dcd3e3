package game

import "gyanguru/internal/question"

// QuestionSource produces the questions a session plays. It is an
// interface so tests can hand the controller a fixed script.
type QuestionSource interface {
	Generate(topic question.Topic, difficulty question.Difficulty, count int) []question.Question
}

// ProfileSink receives the results of a completed session. The
// controller mutates the profile but never persists it; saving is the
// caller's job.
type ProfileSink interface {
	AddXP(amount int) bool
	RecordCompletion(topic string)
}

// Result describes what one Submit call did.
type Result struct {
	Answered  bool
	Correct   bool
	Awarded   int
	Completed bool
	LeveledUp bool
}

// Controller owns the active session.
type Controller struct {
	source  QuestionSource
	profile ProfileSink
	session *Session
}

// NewController builds a controller. The profile may be nil, in which
// case completed sessions simply aren't recorded anywhere.
func NewController(source QuestionSource, profile ProfileSink) *Controller {
	return &Controller{source: source, profile: profile}
}

// SetProfile swaps the profile results are recorded against. Used when
// the player is created after the controller.
func (c *Controller) SetProfile(profile ProfileSink) {
	c.profile = profile
}

// Session returns the active session, or nil when none is running.
func (c *Controller) Session() *Session {
	return c.session
}

// Start begins a new session, replacing any existing one. Challenge
// mode starts with three lives; every other mode plays unbounded.
func (c *Controller) Start(mode Mode, topic question.Topic, difficulty question.Difficulty, count int) *Session {
	questions := c.source.Generate(topic, difficulty, count)
	lives := UnlimitedLives
	if mode == Challenge {
		lives = ChallengeLives
	}
	c.session = &Session{
		Mode:       mode,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
		Answers:    make([]*question.Answer, len(questions)),
		Lives:      lives,
	}
	return c.session
}

// Submit records an answer for the current question and advances the
// session. Submissions after completion, or with no session running,
// are ignored.
func (c *Controller) Submit(answer question.Answer) Result {
	s := c.session
	if s == nil || s.Complete {
		return Result{}
	}
	q := s.CurrentQuestion()
	if q == nil {
		return Result{}
	}

	a := answer
	s.Answers[s.Current] = &a

	res := Result{Answered: true}
	if question.IsCorrect(*q, answer) {
		res.Correct = true
		res.Awarded = q.Points * q.Difficulty.Multiplier()
		s.Score += res.Awarded
	} else if s.Mode == Challenge {
		s.Lives--
	}

	lastQuestion := s.Current == len(s.Questions)-1
	livesGone := s.Mode == Challenge && s.Lives <= 0
	if lastQuestion || livesGone {
		s.Complete = true
		res.Completed = true
		if c.profile != nil {
			c.profile.RecordCompletion(string(s.Topic))
			res.LeveledUp = c.profile.AddXP(s.Score)
		}
	} else {
		s.Current++
	}
	return res
}

// Abandon marks the running session complete without recording it.
func (c *Controller) Abandon() {
	if c.session != nil {
		c.session.Complete = true
	}
}

// Reset discards the session.
func (c *Controller) Reset() {
	c.session = nil
}
