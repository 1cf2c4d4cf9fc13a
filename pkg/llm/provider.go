// Package llm provides the provider adapters for the parallel research
// stage and the refinement planner.
package llm

import (
	"context"
	"fmt"
)

// ResearchSystemPrompt is the fixed system instruction for the research
// call. Both providers receive the identical instruction so their findings
// are comparable.
const ResearchSystemPrompt = "You are a thorough research assistant. " +
	"Provide a comprehensive, well-structured answer to the user's research " +
	"question. Include sources and citations where possible."

// Provider is the narrow adapter for one LLM provider. Implementations
// issue exactly one completion request per call and normalize the result
// to plain text. They do not retry research failures; the orchestrator
// decides retry/abort policy.
type Provider interface {
	// Name identifies the provider in logs and errors ("openai", "gemini").
	Name() string

	// Research issues the single research completion call with the fixed
	// research instruction. An empty string return with nil error means
	// the provider itself returned an empty body.
	Research(ctx context.Context, prompt string) (string, error)

	// Generate issues a completion call with a caller-supplied system
	// instruction. Used by the refinement planner.
	Generate(ctx context.Context, system, user string) (string, error)
}

// ProviderError wraps a failure with the provider it came from, so the
// orchestrator can record which side of the fan-out failed.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
