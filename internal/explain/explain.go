// Package explain fetches a short worked explanation for a catalog
// question that ships without one. The catalog itself stays static; a
// provider only ever explains an existing question and its known answer.
package explain

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/catalog"
)

// Provider produces an explanation for an answered question.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Explain returns a short plain-text explanation of why the correct
	// choice is right. ChosenKey may equal the correct key.
	Explain(ctx context.Context, in Input) (string, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Input carries everything a provider needs to explain one question.
type Input struct {
	Question  catalog.Question
	ChosenKey string
}

const systemPrompt = "You are a friendly tutor inside a quiz app. " +
	"Explain in two or three short sentences why the correct answer is right. " +
	"If the learner picked a wrong choice, briefly say why that choice is tempting but wrong. " +
	"Plain text only, no markdown."

// buildPrompt renders the user message sent to every backend.
func buildPrompt(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", in.Question.Prompt)
	for _, key := range catalog.ChoiceKeys {
		fmt.Fprintf(&b, "%s) %s\n", key, in.Question.Choices[key])
	}
	fmt.Fprintf(&b, "Correct answer: %s) %s\n", in.Question.Correct, in.Question.Choices[in.Question.Correct])

	if in.ChosenKey != "" && in.ChosenKey != in.Question.Correct {
		fmt.Fprintf(&b, "The learner picked: %s) %s\n", in.ChosenKey, in.Question.Choices[in.ChosenKey])
	}

	b.WriteString("Explain the correct answer.")
	return b.String()
}
