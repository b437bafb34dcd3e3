// Package question generates the questions the game asks: procedurally
// built arithmetic problems plus curated quiz and picture-guess banks.
package question

// Topic identifies one of the three game types.
type Topic string

const (
	TopicMath  Topic = "math"
	TopicQuiz  Topic = "quiz"
	TopicGuess Topic = "guess"
)

// Topics lists every playable topic in menu order.
func Topics() []Topic {
	return []Topic{TopicMath, TopicQuiz, TopicGuess}
}

// Difficulty controls operand ranges, point values and time limits.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists all levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Points returns the base score awarded for a correct answer.
func (d Difficulty) Points() int {
	switch d {
	case Medium:
		return 10
	case Hard:
		return 15
	default:
		return 5
	}
}

// TimeLimit returns the per-question countdown in seconds.
func (d Difficulty) TimeLimit() int {
	switch d {
	case Medium:
		return 45
	case Hard:
		return 60
	default:
		return 30
	}
}

// Multiplier returns the score multiplier applied on top of Points.
func (d Difficulty) Multiplier() int {
	switch d {
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 1
	}
}

// Operation names an arithmetic question family.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
	OpSequence       Operation = "sequence"
	OpFractions      Operation = "fractions"
	OpDecimals       Operation = "decimals"
	OpPercentages    Operation = "percentages"
)

// Question is a single playable question. Exactly one of the content
// fields is set, matching Topic.
type Question struct {
	ID         string
	Topic      Topic
	Difficulty Difficulty
	Points     int
	TimeLimit  int

	Math  *MathContent
	Quiz  *QuizContent
	Guess *GuessContent
}

// MathContent holds a generated arithmetic problem.
type MathContent struct {
	Operation Operation
	Prompt    string
	Choices   []string
	Answer    Answer
}

// QuizContent holds a general-knowledge question.
type QuizContent struct {
	Prompt      string
	Choices     []string
	Answer      string
	Category    string
	Explanation string
	ImageURL    string
}

// GuessContent holds a picture-guess question: the player identifies
// the subject from a hint and image.
type GuessContent struct {
	Hint     string
	Choices  []string
	Answer   string
	Category string
	ImageURL string
}

// Prompt returns the display text regardless of topic.
func (q Question) Prompt() string {
	switch {
	case q.Math != nil:
		return q.Math.Prompt
	case q.Quiz != nil:
		return q.Quiz.Prompt
	case q.Guess != nil:
		return q.Guess.Hint
	}
	return ""
}

// Choices returns the selectable options regardless of topic.
func (q Question) Choices() []string {
	switch {
	case q.Math != nil:
		return q.Math.Choices
	case q.Quiz != nil:
		return q.Quiz.Choices
	case q.Guess != nil:
		return q.Guess.Choices
	}
	return nil
}

// Correct returns the expected answer regardless of topic.
func (q Question) Correct() Answer {
	switch {
	case q.Math != nil:
		return q.Math.Answer
	case q.Quiz != nil:
		return Text(q.Quiz.Answer)
	case q.Guess != nil:
		return Text(q.Guess.Answer)
	}
	return Answer{}
}

// Explanation returns the post-answer explanation, if the question has one.
func (q Question) Explanation() string {
	if q.Quiz != nil {
		return q.Quiz.Explanation
	}
	return ""
}
