package explain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/quizdeck/internal/catalog"
)

func sampleQuestion() catalog.Question {
	return catalog.Question{
		ID:      "q003",
		Grade:   catalog.GradeElementary,
		Prompt:  "What causes wind to blow?",
		Choices: map[string]string{"a": "Tides", "b": "Trees", "c": "Air pressure differences", "d": "Moonlight"},
		Correct: "c",
		Topic:   "weather",
	}
}

func TestBuildPrompt_IncludesChoicesAndCorrectAnswer(t *testing.T) {
	prompt := buildPrompt(Input{Question: sampleQuestion(), ChosenKey: "c"})

	for _, want := range []string{
		"What causes wind to blow?",
		"a) Tides",
		"d) Moonlight",
		"Correct answer: c) Air pressure differences",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "The learner picked") {
		t.Error("prompt mentions the learner's pick for a correct answer")
	}
}

func TestBuildPrompt_MentionsWrongPick(t *testing.T) {
	prompt := buildPrompt(Input{Question: sampleQuestion(), ChosenKey: "a"})
	if !strings.Contains(prompt, "The learner picked: a) Tides") {
		t.Errorf("prompt missing learner's wrong pick:\n%s", prompt)
	}
}

func TestNewProvider_Unconfigured(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestNewProvider_UnknownBackend(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "watson"})
	if err == nil || errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected unknown-provider error, got %v", err)
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	for _, backend := range []string{"anthropic", "openai", "gemini"} {
		cfg := DefaultConfig()
		cfg.Provider = backend
		if _, err := NewProvider(context.Background(), cfg); err == nil {
			t.Errorf("%s: expected missing API key error", backend)
		}
	}
}

func TestMockProvider_FIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Err: errors.New("boom")},
	)

	got, err := m.Explain(context.Background(), Input{Question: sampleQuestion()})
	if err != nil || got != "first" {
		t.Errorf("first call = (%q, %v), want (first, nil)", got, err)
	}
	if _, err := m.Explain(context.Background(), Input{Question: sampleQuestion()}); err == nil {
		t.Error("second call: expected canned error")
	}
	if len(m.Calls) != 2 {
		t.Errorf("recorded calls = %d, want 2", len(m.Calls))
	}
}

func TestWithRetry_RecoversFromTransientError(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Err: errors.New("transient")},
		MockResponse{Text: "recovered"},
	)
	p := WithRetry(m, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, Multiplier: 2})

	got, err := p.Explain(context.Background(), Input{Question: sampleQuestion()})
	if err != nil || got != "recovered" {
		t.Errorf("Explain = (%q, %v), want (recovered, nil)", got, err)
	}
}

func TestWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Err: errors.New("one")},
		MockResponse{Err: errors.New("two")},
	)
	p := WithRetry(m, RetryConfig{MaxAttempts: 2, InitialWait: time.Millisecond, Multiplier: 2})

	if _, err := p.Explain(context.Background(), Input{Question: sampleQuestion()}); err == nil {
		t.Error("expected failure after exhausting attempts")
	}
	if len(m.Calls) != 2 {
		t.Errorf("attempts = %d, want 2", len(m.Calls))
	}
}

func TestWithRetry_DoesNotRetryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMockProvider(MockResponse{Err: context.Canceled})
	p := WithRetry(m, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, Multiplier: 2})

	if _, err := p.Explain(ctx, Input{Question: sampleQuestion()}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(m.Calls) != 1 {
		t.Errorf("attempts = %d, want 1", len(m.Calls))
	}
}
