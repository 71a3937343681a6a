package ai

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// scriptedStream returns the given fragments for every Send and records
// the history snapshots it was called with.
func scriptedStream(fragments []Fragment, histories *[][]model.ChatMessage) StreamFunc {
	return func(_ context.Context, history []model.ChatMessage, _ string) (<-chan Fragment, error) {
		if histories != nil {
			*histories = append(*histories, history)
		}
		ch := make(chan Fragment, len(fragments))
		for _, f := range fragments {
			ch <- f
		}
		close(ch)
		return ch, nil
	}
}

func collect(t *testing.T, ch <-chan Fragment) (string, error) {
	t.Helper()
	var full string
	for frag := range ch {
		if frag.Err != nil {
			return full, frag.Err
		}
		full += frag.Text
	}
	return full, nil
}

func TestChatSession_SendAccumulatesInOrder(t *testing.T) {
	s := NewChatSession(scriptedStream([]Fragment{
		{Text: "Focus "}, {Text: "on "}, {Text: "margins."},
	}, nil))

	ch, err := s.Send(context.Background(), "Where should I focus?")
	require.NoError(t, err)

	full, err := collect(t, ch)
	require.NoError(t, err)
	assert.Equal(t, "Focus on margins.", full)

	// History holds the user turn then the accumulated model turn, in
	// creation order.
	hist := s.History()
	require.Len(t, hist, 2)
	assert.Equal(t, model.ChatRoleUser, hist[0].Role)
	assert.Equal(t, "Where should I focus?", hist[0].Text)
	assert.Equal(t, model.ChatRoleModel, hist[1].Role)
	assert.Equal(t, "Focus on margins.", hist[1].Text)
	assert.LessOrEqual(t, hist[0].Timestamp, hist[1].Timestamp)
	assert.NotEqual(t, hist[0].ID, hist[1].ID)
}

func TestChatSession_MultiTurnHistory(t *testing.T) {
	var histories [][]model.ChatMessage
	s := NewChatSession(scriptedStream([]Fragment{{Text: "Answer."}}, &histories))

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		ch, err := s.Send(ctx, fmt.Sprintf("question %d", i))
		require.NoError(t, err)
		_, err = collect(t, ch)
		require.NoError(t, err)
	}

	// The first call sees an empty conversation, the second sees both
	// turns of the first exchange.
	require.Len(t, histories, 2)
	assert.Empty(t, histories[0])
	require.Len(t, histories[1], 2)
	assert.Equal(t, "question 0", histories[1][0].Text)

	assert.Len(t, s.History(), 4)
}

func TestChatSession_MidStreamError(t *testing.T) {
	streamErr := fmt.Errorf("%w: connection reset", ErrGeneration)
	s := NewChatSession(scriptedStream([]Fragment{
		{Text: "partial "}, {Err: streamErr},
	}, nil))

	ch, err := s.Send(context.Background(), "hello")
	require.NoError(t, err)

	full, err := collect(t, ch)
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Equal(t, "partial ", full)

	// The partial reply is kept; the session stays usable for a retry.
	hist := s.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "partial ", hist[1].Text)

	ch, err = s.Send(context.Background(), "retry")
	require.NoError(t, err)
	for range ch {
	}
}

func TestChatSession_StreamOpenFailure(t *testing.T) {
	s := NewChatSession(func(context.Context, []model.ChatMessage, string) (<-chan Fragment, error) {
		return nil, fmt.Errorf("%w: dial failed", ErrGeneration)
	})

	_, err := s.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrGeneration)
	// Nothing was recorded for the failed exchange.
	assert.Empty(t, s.History())
}

func TestHub_PutGet(t *testing.T) {
	h := NewHub(time.Hour)
	s := NewChatSession(scriptedStream(nil, nil))
	h.Put(s)

	got, ok := h.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = h.Get("missing")
	assert.False(t, ok)
}
