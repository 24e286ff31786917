package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

type fakeGeminiClient struct {
	calls          int
	lastDifficulty string
	questions      []string
	err            error
}

func (f *fakeGeminiClient) GenerateQuestions(_ context.Context, jobTitle, category, difficulty string) ([]string, error) {
	f.calls++
	f.lastDifficulty = difficulty
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

func TestGenerateValidatesRequiredFields(t *testing.T) {
	client := &fakeGeminiClient{}
	svc := NewGenerationService(testLogger(), client)

	_, err := svc.Generate(context.Background(), "", "dsa", "easy")
	wantStatus(t, err, http.StatusBadRequest, "validation_error")
	_, err = svc.Generate(context.Background(), "backend engineer", "", "easy")
	wantStatus(t, err, http.StatusBadRequest, "validation_error")
	if client.calls != 0 {
		t.Fatalf("gateway was called %d times despite validation failures", client.calls)
	}
}

func TestGenerateRejectsUnknownTiers(t *testing.T) {
	client := &fakeGeminiClient{}
	svc := NewGenerationService(testLogger(), client)

	_, err := svc.Generate(context.Background(), "backend engineer", "dsa", "extreme")
	wantStatus(t, err, http.StatusBadRequest, "validation_error")
	if client.calls != 0 {
		t.Fatal("gateway should not see an unknown tier")
	}
}

func TestGenerateDefaultsDifficultyToEasy(t *testing.T) {
	client := &fakeGeminiClient{questions: []string{"What is Go?"}}
	svc := NewGenerationService(testLogger(), client)

	questions, err := svc.Generate(context.Background(), "backend engineer", "dsa", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastDifficulty != "easy" {
		t.Fatalf("unexpected difficulty: got=%q want=%q", client.lastDifficulty, "easy")
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestGeneratePassesRequestedDifficultyThrough(t *testing.T) {
	client := &fakeGeminiClient{questions: []string{"q"}}
	svc := NewGenerationService(testLogger(), client)

	if _, err := svc.Generate(context.Background(), "backend engineer", "dsa", "hard"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastDifficulty != "hard" {
		t.Fatalf("unexpected difficulty: got=%q want=%q", client.lastDifficulty, "hard")
	}
}

func TestGenerateWrapsGatewayFailures(t *testing.T) {
	client := &fakeGeminiClient{err: errors.New("api quota exceeded")}
	svc := NewGenerationService(testLogger(), client)

	_, err := svc.Generate(context.Background(), "backend engineer", "dsa", "easy")
	wantStatus(t, err, http.StatusInternalServerError, "gateway_error")
}

func TestGenerateNeverReturnsNilQuestions(t *testing.T) {
	client := &fakeGeminiClient{questions: nil}
	svc := NewGenerationService(testLogger(), client)

	questions, err := svc.Generate(context.Background(), "backend engineer", "dsa", "easy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
