// Package refine implements the refinement planner: it decides whether a
// research prompt needs clarifying questions, parses them out of the LLM
// response, and folds answers back into the final refined prompt.
package refine

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/inquira/inquira/pkg/llm"
	"github.com/inquira/inquira/pkg/models"
)

// NoRefinementToken is the sentinel the planner instruction asks the model
// to emit when the prompt is already specific enough. Its presence anywhere
// in the response suppresses all questions.
const NoRefinementToken = "NO_REFINEMENT_NEEDED"

const plannerSystemPrompt = "You help refine research questions. Given a " +
	"research question, decide whether clarifying questions would improve " +
	"the research. If the question is already specific enough, reply with " +
	"exactly " + NoRefinementToken + ". Otherwise reply with 2-3 numbered " +
	"clarifying questions, one per line, and nothing else."

// questionLine matches "1. text" or "2) text": digits, a dot or closing
// parenthesis, whitespace, then the question text.
var questionLine = regexp.MustCompile(`^(\d+)[.)]\s+(.+)$`)

// Planner produces clarifying questions for an initial prompt.
type Planner struct {
	provider     llm.Provider
	maxQuestions int
	logger       *slog.Logger
}

// NewPlanner creates a planner backed by the given provider.
func NewPlanner(provider llm.Provider, maxQuestions int) *Planner {
	return &Planner{
		provider:     provider,
		maxQuestions: maxQuestions,
		logger:       slog.Default().With("component", "refine-planner"),
	}
}

// Plan asks the provider for clarifying questions. Fail-open: any provider
// error yields zero questions so one provider hiccup never blocks the user
// from proceeding to research. Errors are logged, never returned.
func (p *Planner) Plan(ctx context.Context, prompt string) []models.RefinementQuestion {
	response, err := p.provider.Generate(ctx, plannerSystemPrompt, prompt)
	if err != nil {
		p.logger.Warn("Refinement planning failed, skipping refinement", "error", err)
		return nil
	}
	return ParseQuestions(response, p.maxQuestions)
}

// ParseQuestions extracts numbered questions from a planner response.
// If the sentinel token appears anywhere, the result is empty regardless
// of any numbered lines also present.
func ParseQuestions(response string, max int) []models.RefinementQuestion {
	if strings.Contains(response, NoRefinementToken) {
		return nil
	}

	var questions []models.RefinementQuestion
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		m := questionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		questions = append(questions, models.RefinementQuestion{
			ID:       fmt.Sprintf("q%d", len(questions)+1),
			Question: strings.TrimSpace(m[2]),
		})
		if max > 0 && len(questions) == max {
			break
		}
	}
	return questions
}

// ComposeRefinedPrompt folds answered questions into the initial prompt.
// Pure and deterministic: zero questions returns the prompt verbatim;
// otherwise an "Additional context:" section lists each question and its
// answer in original question order, regardless of answer submission order.
func ComposeRefinedPrompt(initialPrompt string, questions []models.RefinementQuestion) string {
	if len(questions) == 0 {
		return initialPrompt
	}

	var b strings.Builder
	b.WriteString(initialPrompt)
	b.WriteString("\n\nAdditional context:\n")
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Q: ")
		b.WriteString(q.Question)
		b.WriteString("\nA: ")
		b.WriteString(q.Answer)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
