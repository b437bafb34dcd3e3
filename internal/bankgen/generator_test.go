package bankgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func validBatch() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"question": "Which is the tallest mountain in the world?",
				"options": ["K2", "Mount Everest", "Kanchenjunga", "Nanda Devi"],
				"correctAnswer": "Mount Everest",
				"category": "geography",
				"explanation": "Mount Everest rises 8,849 meters above sea level."
			},
			{
				"question": "Which ocean lies to the south of India?",
				"options": ["Atlantic", "Arctic", "Indian", "Pacific"],
				"correctAnswer": "Indian",
				"category": "geography",
				"explanation": "The Indian Ocean is named after India."
			}
		]
	}`)
}

func TestDraft(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: validBatch()})
	g := NewGenerator(mock)

	items, err := g.Draft(context.Background(), "geography", 2)
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Answer != "Mount Everest" {
		t.Errorf("Answer = %q", items[0].Answer)
	}
	if items[0].Category != "geography" {
		t.Errorf("Category = %q", items[0].Category)
	}
	if len(items[1].Choices) != 4 {
		t.Errorf("Choices = %v", items[1].Choices)
	}

	// The request should carry the schema and system prompt.
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-items-geography" {
		t.Errorf("Schema = %+v", req.Schema)
	}
	if req.System == "" {
		t.Error("request has no system prompt")
	}
}

func TestDraftRejectsAnswerOutsideOptions(t *testing.T) {
	bad := json.RawMessage(`{
		"questions": [{
			"question": "Which is the tallest mountain?",
			"options": ["K2", "Kanchenjunga", "Nanda Devi", "Annapurna"],
			"correctAnswer": "Mount Everest",
			"category": "geography",
			"explanation": "It is the tallest."
		}]
	}`)
	g := NewGenerator(NewMockProvider(MockResponse{Content: bad}))

	_, err := g.Draft(context.Background(), "geography", 1)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestDraftUnknownCategory(t *testing.T) {
	g := NewGenerator(NewMockProvider())
	if _, err := g.Draft(context.Background(), "astrology", 2); err == nil {
		t.Error("Draft accepted an unknown category")
	}
}

func TestDraftInvalidCount(t *testing.T) {
	g := NewGenerator(NewMockProvider())
	if _, err := g.Draft(context.Background(), "science", 0); err == nil {
		t.Error("Draft accepted a zero count")
	}
}

func TestDraftProviderError(t *testing.T) {
	g := NewGenerator(NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	))
	_, err := g.Draft(context.Background(), "science", 1)
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
