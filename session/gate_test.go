package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	g := NewGate()
	assert.False(t, g.Loading())

	askToken, ok := g.Acquire(KindAsk)
	require.True(t, ok)
	assert.True(t, g.Loading())
	assert.True(t, g.InFlight(KindAsk))

	_, ok = g.Acquire(KindAsk)
	assert.False(t, ok)
	_, ok = g.Acquire(KindSubmit)
	assert.False(t, ok)

	commentsToken, ok := g.Acquire(KindComments)
	require.True(t, ok)
	assert.NotEqual(t, askToken, commentsToken)

	assert.False(t, g.Release(KindAsk, commentsToken), "wrong token")
	assert.True(t, g.Release(KindAsk, askToken))
	assert.False(t, g.Release(KindAsk, askToken), "already released")
	assert.True(t, g.Loading())

	assert.True(t, g.Release(KindComments, commentsToken))
	assert.False(t, g.Loading())

	submitToken, ok := g.Acquire(KindSubmit)
	require.True(t, ok)
	assert.False(t, g.CanAcquire(KindAsk))
	assert.False(t, g.CanAcquire(KindComments))
	assert.True(t, g.Holds(KindSubmit, submitToken))
}

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func TestHistory(t *testing.T) {
	var h History
	assert.Equal(t, 0, h.Len())

	h.appendExchange("q", fixedTime, "a", fixedTime)
	entries := h.Entries()
	entries[0].Content = "changed"

	assert.Equal(t, "q", h.Entries()[0].Content, "Entries returns a copy")
	assert.Equal(t, 1, h.Questions())
	assert.Equal(t, "question", EntryQuestion.String())
	assert.Equal(t, "answer", EntryAnswer.String())

	h.reset()
	assert.Equal(t, 0, h.Len())
}
