package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAnswered(t *testing.T) {
	assert.True(t, AllAnswered(nil), "empty set is vacuously answered")

	questions := []RefinementQuestion{
		{ID: "q1", Question: "A?", Answer: "a"},
		{ID: "q2", Question: "B?"},
	}
	assert.False(t, AllAnswered(questions))

	questions[1].Answer = "b"
	assert.True(t, AllAnswered(questions))
}

func TestNextUnanswered(t *testing.T) {
	questions := []RefinementQuestion{
		{ID: "q1", Question: "A?", Answer: "a"},
		{ID: "q2", Question: "B?"},
		{ID: "q3", Question: "C?"},
	}

	next := NextUnanswered(questions)
	require.NotNil(t, next)
	assert.Equal(t, "q2", next.ID, "first unanswered in original order")

	// Out-of-order answering: q3 answered before q2
	questions[2].Answer = "c"
	next = NextUnanswered(questions)
	require.NotNil(t, next)
	assert.Equal(t, "q2", next.ID)

	questions[1].Answer = "b"
	assert.Nil(t, NextUnanswered(questions))
}
