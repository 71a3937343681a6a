package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// fakeBackend returns canned payloads and records the prompts it saw.
type fakeBackend struct {
	payload    string
	err        error
	prompts    []string
	lastSchema *genai.Schema
}

func (f *fakeBackend) generate(_ context.Context, prompt string, schema *genai.Schema) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.lastSchema = schema
	if f.err != nil {
		return "", f.err
	}
	return f.payload, nil
}

func (f *fakeBackend) stream(context.Context, []model.ChatMessage, string) (<-chan Fragment, error) {
	ch := make(chan Fragment)
	close(ch)
	return ch, nil
}

func TestClient_GenerateVenueDescription(t *testing.T) {
	fb := &fakeBackend{payload: `{"text":"A cozy corner bistro."}`}
	c := &Client{backend: fb}

	out, err := c.GenerateVenueDescription(context.Background(), "Lumière", "cozy, candlelit", "bistro")
	require.NoError(t, err)
	assert.Equal(t, "A cozy corner bistro.", out.Text)

	require.Len(t, fb.prompts, 1)
	assert.Contains(t, fb.prompts[0], "Lumière")
	assert.Contains(t, fb.prompts[0], "bistro")
	assert.Contains(t, fb.prompts[0], "cozy, candlelit")
	assert.Equal(t, []string{"text"}, fb.lastSchema.Required)
}

func TestClient_AnalyzeMarketTrends(t *testing.T) {
	fb := &fakeBackend{payload: `{"summary":"Growing.","keyPoints":["delivery up"],"recommendation":"Invest.","sentiment":"positive"}`}
	c := &Client{backend: fb}

	out, err := c.AnalyzeMarketTrends(context.Background(), "fine dining")
	require.NoError(t, err)
	assert.Equal(t, "Growing.", out.Summary)
	assert.Equal(t, []string{"delivery up"}, out.KeyPoints)
	assert.Equal(t, SentimentPositive, out.Sentiment)
}

func TestClient_AnalyzeMarketTrends_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		// A payload without sentiment is a contract violation, never a
		// silent default.
		{"missing_sentiment", `{"summary":"s","keyPoints":[],"recommendation":"r"}`},
		{"invalid_sentiment", `{"summary":"s","keyPoints":[],"recommendation":"r","sentiment":"mixed"}`},
		{"missing_summary", `{"keyPoints":[],"recommendation":"r","sentiment":"neutral"}`},
		{"missing_key_points", `{"summary":"s","recommendation":"r","sentiment":"neutral"}`},
		{"not_json", `analysis follows: things look good`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{backend: &fakeBackend{payload: tt.payload}}
			_, err := c.AnalyzeMarketTrends(context.Background(), "topic")
			assert.ErrorIs(t, err, ErrGeneration)
		})
	}
}

func TestClient_GenerateMarketingCopy(t *testing.T) {
	fb := &fakeBackend{payload: `{"headline":"Eat here","body":"Great food.","ctas":["Book now"]}`}
	c := &Client{backend: fb}

	out, err := c.GenerateMarketingCopy(context.Background(), "tasting menu", "foodies", "playful")
	require.NoError(t, err)
	assert.Equal(t, "Eat here", out.Headline)
	assert.Equal(t, []string{"Book now"}, out.CTAs)

	// A payload missing the CTA list is rejected.
	c = &Client{backend: &fakeBackend{payload: `{"headline":"h","body":"b"}`}}
	_, err = c.GenerateMarketingCopy(context.Background(), "p", "a", "t")
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestClient_ProviderFailurePassesThrough(t *testing.T) {
	wrapped := errors.New("provider down")
	c := &Client{backend: &fakeBackend{err: wrapped}}

	_, err := c.GenerateVenueDescription(context.Background(), "n", "v", "t")
	assert.ErrorIs(t, err, wrapped)
}

func TestParseDescription_EmptyText(t *testing.T) {
	_, err := parseDescription(`{"text":""}`)
	assert.ErrorIs(t, err, ErrGeneration)
}
