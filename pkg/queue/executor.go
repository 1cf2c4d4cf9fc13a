package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/inquira/inquira/ent"
	"github.com/inquira/inquira/ent/researchsession"
	"github.com/inquira/inquira/pkg/llm"
	"github.com/inquira/inquira/pkg/mailer"
	"github.com/inquira/inquira/pkg/report"
	"github.com/inquira/inquira/pkg/services"
)

// ResearchExecutor runs the research phase for one claimed session: both
// providers in parallel, result persistence, report rendering, delivery.
type ResearchExecutor struct {
	sessions *services.SessionService
	openai   llm.Provider
	gemini   llm.Provider
	renderer report.Renderer
	notifier *mailer.Service
	logger   *slog.Logger
}

// NewResearchExecutor creates the executor used by the worker pool.
func NewResearchExecutor(sessions *services.SessionService, openai, gemini llm.Provider, renderer report.Renderer, notifier *mailer.Service) *ResearchExecutor {
	return &ResearchExecutor{
		sessions: sessions,
		openai:   openai,
		gemini:   gemini,
		renderer: renderer,
		notifier: notifier,
		logger:   slog.Default().With("component", "research-executor"),
	}
}

// providerResult is one leg of the fan-out.
type providerResult struct {
	provider string
	text     string
	err      error
}

// Execute runs research end to end for a claimed session. The session must
// have its refined prompt set; processing sessions always do.
func (e *ResearchExecutor) Execute(ctx context.Context, session *ent.ResearchSession) *ExecutionResult {
	log := e.logger.With("session_id", session.ID)

	if session.RefinedPrompt == nil || *session.RefinedPrompt == "" {
		return &ExecutionResult{
			Status: researchsession.StatusFailed,
			Error:  errors.New("session has no refined prompt"),
		}
	}
	prompt := *session.RefinedPrompt

	var openaiText, geminiText string
	if session.OpenaiResult != nil && session.GeminiResult != nil {
		// Delivery retry: research already ran and both results are
		// persisted, so skip the providers and go straight to delivery.
		openaiText = *session.OpenaiResult
		geminiText = *session.GeminiResult
		log.Info("Reusing persisted results, skipping research")
	} else {
		// Fan out to both providers. All-settle: wait for both legs before
		// deciding, so the error message names every provider that failed.
		results := e.runProviders(ctx, prompt)

		var failures []error
		for _, r := range results {
			if r.err != nil {
				failures = append(failures, fmt.Errorf("%s: %w", r.provider, r.err))
				continue
			}
			switch r.provider {
			case e.openai.Name():
				openaiText = r.text
			case e.gemini.Name():
				geminiText = r.text
			}
		}
		if len(failures) > 0 {
			// All-or-nothing: a single provider failure fails the session
			// and no partial result is persisted.
			return &ExecutionResult{
				Status: researchsession.StatusFailed,
				Error:  fmt.Errorf("research failed: %w", errors.Join(failures...)),
			}
		}

		log.Info("Both providers returned results",
			"openai_chars", len(openaiText),
			"gemini_chars", len(geminiText))
	}

	// Conditional update: exactly one writer moves the session to completed.
	won, err := e.sessions.CompleteResearch(ctx, session.ID, openaiText, geminiText)
	if err != nil {
		return &ExecutionResult{Status: researchsession.StatusFailed, Error: err}
	}
	if !won {
		log.Warn("Session was completed by another writer, skipping delivery")
		return &ExecutionResult{Status: researchsession.StatusCompleted}
	}

	// Refetch for the persisted results and completed_at, which the report
	// and email both display.
	session, err = e.sessions.GetSessionByID(ctx, session.ID)
	if err != nil {
		return &ExecutionResult{Status: researchsession.StatusFailed, Error: err}
	}

	pdf, err := e.renderer.Render(session)
	if err != nil {
		return &ExecutionResult{
			Status: researchsession.StatusFailed,
			Error:  fmt.Errorf("render report: %w", err),
		}
	}

	if err := e.notifier.SendReport(ctx, session, pdf); err != nil {
		return &ExecutionResult{
			Status: researchsession.StatusFailed,
			Error:  fmt.Errorf("deliver report: %w", err),
		}
	}

	return &ExecutionResult{Status: researchsession.StatusEmailSent}
}

// runProviders queries both providers concurrently and waits for both.
func (e *ResearchExecutor) runProviders(ctx context.Context, prompt string) []providerResult {
	providers := []llm.Provider{e.openai, e.gemini}
	resultCh := make(chan providerResult, len(providers))

	var wg sync.WaitGroup
	for _, p := range providers {
		wg.Add(1)
		go func(p llm.Provider) {
			defer wg.Done()
			text, err := p.Research(ctx, prompt)
			resultCh <- providerResult{provider: p.Name(), text: text, err: err}
		}(p)
	}
	wg.Wait()
	close(resultCh)

	results := make([]providerResult, 0, len(providers))
	for r := range resultCh {
		results = append(results, r)
	}
	return results
}
