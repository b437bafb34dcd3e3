package question

import "github.com/google/uuid"

// QuizItem is one entry in the general-knowledge bank.
type QuizItem struct {
	Prompt      string   `json:"question" yaml:"question"`
	Choices     []string `json:"options" yaml:"options"`
	Answer      string   `json:"correctAnswer" yaml:"answer"`
	Category    string   `json:"category" yaml:"category"`
	ImageURL    string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Explanation string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// GuessItem is one entry in the picture-guess bank. Choices are not
// stored; they are drawn from the category's distractor pool at
// generation time.
type GuessItem struct {
	Hint     string `json:"hint" yaml:"hint"`
	Answer   string `json:"correctAnswer" yaml:"answer"`
	Category string `json:"category" yaml:"category"`
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// quizCategories maps each difficulty to the categories it draws from.
var quizCategories = map[Difficulty][]string{
	Easy:   {"general", "culture"},
	Medium: {"geography", "sports"},
	Hard:   {"science", "history"},
}

var guessCategories = map[Difficulty][]string{
	Easy:   {"fruits", "animals"},
	Medium: {"festivals", "sports"},
	Hard:   {"monuments", "geography"},
}

// guessDistractors pools the candidate wrong answers per category.
var guessDistractors = map[string][]string{
	"monuments": {"Taj Mahal", "Red Fort", "Qutub Minar", "India Gate", "Gateway of India", "Hawa Mahal", "Meenakshi Temple", "Konark Sun Temple"},
	"animals":   {"Tiger", "Lion", "Elephant", "Peacock", "Monkey", "Cow", "Deer", "Rhinoceros"},
	"fruits":    {"Mango", "Banana", "Apple", "Orange", "Grapes", "Watermelon", "Papaya", "Pomegranate"},
	"festivals": {"Diwali", "Holi", "Dussehra", "Eid", "Christmas", "Navratri", "Janmashtami", "Onam"},
	"sports":    {"Cricket", "Football", "Hockey", "Badminton", "Kabaddi", "Tennis", "Chess", "Kalaripayattu"},
	"geography": {"Ganga", "Yamuna", "Brahmaputra", "Himalaya", "Thar Desert", "Western Ghats", "Eastern Ghats", "Sundarbans"},
}

var quizBank = []QuizItem{
	{
		Prompt:      "Which is the national animal of India?",
		Choices:     []string{"Lion", "Tiger", "Elephant", "Peacock"},
		Answer:      "Tiger",
		Category:    "general",
		ImageURL:    "https://images.unsplash.com/photo-1615824996195-f780bba7f32b",
		Explanation: "The Bengal Tiger was declared as the national animal of India in 1973.",
	},
	{
		Prompt:      "Which festival is known as the 'Festival of Lights'?",
		Choices:     []string{"Holi", "Diwali", "Durga Puja", "Eid"},
		Answer:      "Diwali",
		Category:    "culture",
		ImageURL:    "https://images.unsplash.com/photo-1574265932589-955bdbb0b3a3",
		Explanation: "Diwali symbolizes the spiritual victory of light over darkness and good over evil.",
	},
	{
		Prompt:      "Which is the largest state in India by area?",
		Choices:     []string{"Maharashtra", "Madhya Pradesh", "Uttar Pradesh", "Rajasthan"},
		Answer:      "Rajasthan",
		Category:    "geography",
		ImageURL:    "https://images.unsplash.com/photo-1599661046289-e31897846e41",
		Explanation: "Rajasthan, covering 342,239 square kilometers, is India's largest state by area.",
	},
	{
		Prompt:      "Which planet is known as the Red Planet?",
		Choices:     []string{"Venus", "Jupiter", "Mars", "Saturn"},
		Answer:      "Mars",
		Category:    "science",
		ImageURL:    "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9",
		Explanation: "Mars appears red due to iron oxide (rust) on its surface.",
	},
	{
		Prompt:      "Which is the national flower of India?",
		Choices:     []string{"Rose", "Lotus", "Sunflower", "Lily"},
		Answer:      "Lotus",
		Category:    "general",
		ImageURL:    "https://images.unsplash.com/photo-1606293926249-ed2331ab6558",
		Explanation: "The Lotus represents purity, prosperity, and spirituality in Indian culture.",
	},
	{
		Prompt:      "Which Indian city is known as the 'Pink City'?",
		Choices:     []string{"Jaipur", "Jodhpur", "Udaipur", "Bikaner"},
		Answer:      "Jaipur",
		Category:    "geography",
		ImageURL:    "https://images.unsplash.com/photo-1599661046289-e31897846e41",
		Explanation: "Jaipur is called the Pink City due to the pink-colored buildings in its old city area.",
	},
	{
		Prompt:      "Which sport is Sachin Tendulkar associated with?",
		Choices:     []string{"Hockey", "Cricket", "Football", "Badminton"},
		Answer:      "Cricket",
		Category:    "sports",
		ImageURL:    "https://images.unsplash.com/photo-1531415074968-036ba1b575da",
		Explanation: "Sachin Tendulkar is known as the 'God of Cricket' and holds numerous cricket records.",
	},
	{
		Prompt:      "Which is the longest river in India?",
		Choices:     []string{"Yamuna", "Brahmaputra", "Ganga", "Godavari"},
		Answer:      "Ganga",
		Category:    "geography",
		ImageURL:    "https://images.unsplash.com/photo-1591018533273-5a45e534a05d",
		Explanation: "The Ganga River, stretching over 2,525 kilometers, is India's longest river.",
	},
	{
		Prompt:      "Which is the smallest planet in our solar system?",
		Choices:     []string{"Mars", "Mercury", "Venus", "Pluto"},
		Answer:      "Mercury",
		Category:    "science",
		ImageURL:    "https://images.unsplash.com/photo-1614732414444-096e5f1122d5",
		Explanation: "Mercury is the smallest and innermost planet in the Solar System.",
	},
	{
		Prompt:      "Which gas do plants absorb from the air?",
		Choices:     []string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Hydrogen"},
		Answer:      "Carbon Dioxide",
		Category:    "science",
		ImageURL:    "https://images.unsplash.com/photo-1523712999610-f77fbcfc3843",
		Explanation: "Plants absorb carbon dioxide during photosynthesis to produce food and oxygen.",
	},
	{
		Prompt:      "Who wrote India's national anthem?",
		Choices:     []string{"Rabindranath Tagore", "Bankim Chandra Chattopadhyay", "Sarojini Naidu", "Mahatma Gandhi"},
		Answer:      "Rabindranath Tagore",
		Category:    "culture",
		ImageURL:    "https://images.unsplash.com/photo-1532375810709-75b1da00537c",
		Explanation: "Jana Gana Mana was written by Rabindranath Tagore in Bengali and adopted as India's national anthem in 1950.",
	},
	{
		Prompt:      "Which is the hardest natural substance?",
		Choices:     []string{"Gold", "Iron", "Diamond", "Platinum"},
		Answer:      "Diamond",
		Category:    "science",
		ImageURL:    "https://images.unsplash.com/photo-1615655406736-b37c4fabf923",
		Explanation: "Diamond is the hardest known natural material on Earth.",
	},
}

var guessBank = []GuessItem{
	{Hint: "One of the seven wonders of the world", Answer: "Taj Mahal", Category: "monuments", ImageURL: "https://images.unsplash.com/photo-1564507592333-c60657eea523"},
	{Hint: "National bird of India", Answer: "Peacock", Category: "animals", ImageURL: "https://images.unsplash.com/photo-1511208687438-2c5a5abb810c"},
	{Hint: "King of fruits", Answer: "Mango", Category: "fruits", ImageURL: "https://images.unsplash.com/photo-1553279768-865429fa0078"},
	{Hint: "Festival of colors", Answer: "Holi", Category: "festivals", ImageURL: "https://images.unsplash.com/photo-1592234403516-69701d156517"},
	{Hint: "Most popular sport in India", Answer: "Cricket", Category: "sports", ImageURL: "https://images.unsplash.com/photo-1531415074968-036ba1b575da"},
	{Hint: "Famous fort in Delhi", Answer: "Red Fort", Category: "monuments", ImageURL: "https://images.unsplash.com/photo-1585135497273-1a86b09fe70e"},
	{Hint: "Sacred river in India", Answer: "Ganga", Category: "geography", ImageURL: "https://images.unsplash.com/photo-1591018533273-5a45e534a05d"},
	{Hint: "Yellow curved fruit", Answer: "Banana", Category: "fruits", ImageURL: "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e"},
	{Hint: "Festival of lights", Answer: "Diwali", Category: "festivals", ImageURL: "https://images.unsplash.com/photo-1574265932589-955bdbb0b3a3"},
	{Hint: "National animal of India", Answer: "Tiger", Category: "animals", ImageURL: "https://images.unsplash.com/photo-1615824996195-f780bba7f32b"},
	{Hint: "Famous temple in South India", Answer: "Meenakshi Temple", Category: "monuments", ImageURL: "https://images.unsplash.com/photo-1582651957695-5c1c3c21fdf0"},
	{Hint: "Traditional Indian martial art", Answer: "Kalaripayattu", Category: "sports", ImageURL: "https://images.unsplash.com/photo-1583321500900-82807e458f3c"},
}

func inCategories(cat string, cats []string) bool {
	for _, c := range cats {
		if c == cat {
			return true
		}
	}
	return false
}

func (g *Generator) quizQuestions(d Difficulty, count int) []Question {
	var pool []QuizItem
	for _, item := range quizBank {
		if inCategories(item.Category, quizCategories[d]) {
			pool = append(pool, item)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}
	qs := make([]Question, 0, count)
	for _, item := range pool[:count] {
		qs = append(qs, Question{
			ID:         uuid.NewString(),
			Topic:      TopicQuiz,
			Difficulty: d,
			Points:     d.Points(),
			TimeLimit:  d.TimeLimit(),
			Quiz: &QuizContent{
				Prompt:      item.Prompt,
				Choices:     item.Choices,
				Answer:      item.Answer,
				Category:    item.Category,
				Explanation: item.Explanation,
				ImageURL:    item.ImageURL,
			},
		})
	}
	return qs
}

func (g *Generator) guessQuestions(d Difficulty, count int) []Question {
	var pool []GuessItem
	for _, item := range guessBank {
		if inCategories(item.Category, guessCategories[d]) {
			pool = append(pool, item)
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}
	qs := make([]Question, 0, count)
	for _, item := range pool[:count] {
		qs = append(qs, Question{
			ID:         uuid.NewString(),
			Topic:      TopicGuess,
			Difficulty: d,
			Points:     d.Points(),
			TimeLimit:  d.TimeLimit(),
			Guess: &GuessContent{
				Hint:     item.Hint,
				Choices:  g.guessChoices(item.Answer, item.Category),
				Answer:   item.Answer,
				Category: item.Category,
				ImageURL: item.ImageURL,
			},
		})
	}
	return qs
}

// guessChoices picks three distractors from the category pool and mixes
// in the answer.
func (g *Generator) guessChoices(answer, category string) []string {
	pool, ok := guessDistractors[category]
	if !ok {
		pool = guessDistractors["monuments"]
	}
	var others []string
	for _, opt := range pool {
		if opt != answer {
			others = append(others, opt)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	if len(others) > 3 {
		others = others[:3]
	}
	choices := append(others, answer)
	g.rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })
	return choices
}
