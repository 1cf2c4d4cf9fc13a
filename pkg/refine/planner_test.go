package refine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquira/inquira/pkg/models"
)

// fakeProvider returns a canned response or error.
type fakeProvider struct {
	response string
	err      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Research(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, system, user string) (string, error) {
	return f.response, f.err
}

func TestParseQuestions(t *testing.T) {
	t.Run("numbered with dots", func(t *testing.T) {
		questions := ParseQuestions("1. What time period?\n2. Which region?\n3. What depth of detail?", 5)
		require.Len(t, questions, 3)
		assert.Equal(t, "q1", questions[0].ID)
		assert.Equal(t, "What time period?", questions[0].Question)
		assert.Equal(t, "q3", questions[2].ID)
		assert.Equal(t, "What depth of detail?", questions[2].Question)
	})

	t.Run("numbered with parentheses", func(t *testing.T) {
		questions := ParseQuestions("1) First?\n2) Second?", 5)
		require.Len(t, questions, 2)
		assert.Equal(t, "First?", questions[0].Question)
	})

	t.Run("sentinel suppresses questions", func(t *testing.T) {
		questions := ParseQuestions("NO_REFINEMENT_NEEDED", 5)
		assert.Empty(t, questions)
	})

	t.Run("sentinel wins over numbered lines", func(t *testing.T) {
		questions := ParseQuestions("1. A question?\nNO_REFINEMENT_NEEDED", 5)
		assert.Empty(t, questions)
	})

	t.Run("non-numbered lines ignored", func(t *testing.T) {
		questions := ParseQuestions("Here are some questions:\n1. Real question?\nThanks!", 5)
		require.Len(t, questions, 1)
		assert.Equal(t, "Real question?", questions[0].Question)
	})

	t.Run("capped at max", func(t *testing.T) {
		questions := ParseQuestions("1. A?\n2. B?\n3. C?\n4. D?", 2)
		require.Len(t, questions, 2)
		assert.Equal(t, "B?", questions[1].Question)
	})

	t.Run("empty response", func(t *testing.T) {
		assert.Empty(t, ParseQuestions("", 5))
	})
}

func TestPlan_FailOpen(t *testing.T) {
	planner := NewPlanner(&fakeProvider{err: errors.New("provider down")}, 3)

	questions := planner.Plan(context.Background(), "Why is the sky blue?")
	assert.Empty(t, questions, "provider error must yield zero questions, not block the user")
}

func TestPlan_ReturnsParsedQuestions(t *testing.T) {
	planner := NewPlanner(&fakeProvider{response: "1. For what audience?\n2. How long?"}, 3)

	questions := planner.Plan(context.Background(), "Write about batteries")
	require.Len(t, questions, 2)
	assert.Equal(t, "For what audience?", questions[0].Question)
	assert.False(t, questions[0].Answered())
}

func TestComposeRefinedPrompt(t *testing.T) {
	t.Run("zero questions returns prompt verbatim", func(t *testing.T) {
		assert.Equal(t, "original prompt", ComposeRefinedPrompt("original prompt", nil))
	})

	t.Run("folds answers in question order", func(t *testing.T) {
		questions := []models.RefinementQuestion{
			{ID: "q1", Question: "Which region?", Answer: "Europe"},
			{ID: "q2", Question: "What period?", Answer: "1990s"},
		}

		got := ComposeRefinedPrompt("Economic history", questions)
		want := "Economic history\n\nAdditional context:\nQ: Which region?\nA: Europe\n\nQ: What period?\nA: 1990s"
		assert.Equal(t, want, got)
	})

	t.Run("deterministic", func(t *testing.T) {
		questions := []models.RefinementQuestion{
			{ID: "q1", Question: "A?", Answer: "a"},
		}
		first := ComposeRefinedPrompt("p", questions)
		second := ComposeRefinedPrompt("p", questions)
		assert.Equal(t, first, second)
	})
}
