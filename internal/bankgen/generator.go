package bankgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gyanguru/internal/question"
)

// Categories the quiz bank recognizes, by difficulty tier.
var knownCategories = []string{
	"general", "culture", "geography", "sports", "science", "history",
}

const systemPrompt = `You write multiple-choice general-knowledge questions for children aged 6 to 12.
Questions must be factual, age-appropriate, and answerable without regional context.
Each question has exactly four options, one of which is the correct answer.
Keep explanations to a single friendly sentence a child can understand.`

// quizItemsSchema constrains the LLM output to a reviewable batch of
// bank entries.
func quizItemsSchema(category string) *Schema {
	return &Schema{
		// The category is baked into the schema enum, so the compiled
		// schema cache needs a per-category name.
		Name:        "quiz-items-" + category,
		Description: "A batch of multiple-choice quiz questions for children",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{
								"type":        "string",
								"description": "The question text",
							},
							"options": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 4,
								"maxItems": 4,
							},
							"correctAnswer": map[string]any{
								"type":        "string",
								"description": "Must be one of the options, verbatim",
							},
							"category": map[string]any{
								"type": "string",
								"enum": []any{category},
							},
							"explanation": map[string]any{
								"type":        "string",
								"description": "One-sentence explanation of the answer",
							},
						},
						"required": []any{"question", "options", "correctAnswer", "category", "explanation"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

type quizItemsPayload struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
		Category      string   `json:"category"`
		Explanation   string   `json:"explanation"`
	} `json:"questions"`
}

// Generator drafts quiz bank entries through a Provider.
type Generator struct {
	provider Provider
}

// NewGenerator creates a bank entry generator.
func NewGenerator(provider Provider) *Generator {
	return &Generator{provider: provider}
}

// Draft asks the LLM for count new questions in the category and
// returns them as bank entries. Entries whose correct answer is not
// among the options are rejected as invalid rather than silently fixed.
func (g *Generator) Draft(ctx context.Context, category string, count int) ([]question.QuizItem, error) {
	if !validCategory(category) {
		return nil, fmt.Errorf("unknown category %q (known: %s)",
			category, strings.Join(knownCategories, ", "))
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	req := Request{
		System: systemPrompt,
		Messages: []Message{
			{
				Role: RoleUser,
				Content: fmt.Sprintf(
					"Generate %d new quiz questions in the %q category. "+
						"Avoid questions about current events or living public figures.",
					count, category),
			},
		},
		Schema:      quizItemsSchema(category),
		MaxTokens:   4096,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("draft questions: %w", err)
	}

	var payload quizItemsPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, &ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("decode questions: %w", err),
		}
	}

	items := make([]question.QuizItem, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		if !containsOption(q.Options, q.CorrectAnswer) {
			return nil, &ErrInvalidResponse{
				Content: resp.Content,
				Err:     fmt.Errorf("correct answer %q is not among the options", q.CorrectAnswer),
			}
		}
		items = append(items, question.QuizItem{
			Prompt:      q.Question,
			Choices:     q.Options,
			Answer:      q.CorrectAnswer,
			Category:    q.Category,
			Explanation: q.Explanation,
		})
	}
	return items, nil
}

func validCategory(category string) bool {
	for _, c := range knownCategories {
		if c == category {
			return true
		}
	}
	return false
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
