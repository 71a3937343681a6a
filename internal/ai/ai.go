// Package ai shapes requests and responses for the Gemini generative API:
// three one-shot generation tasks constrained to explicit output schemas,
// and a multi-turn strategy-advisor chat streamed fragment by fragment.
// Declaring the output schema up front lets the package fail fast on
// malformed provider output instead of attempting free-text extraction.
package ai

import (
	"context"
	"errors"
)

// ErrGeneration is returned when the provider yields no usable payload,
// the payload does not parse against the requested schema, or a chat
// stream terminates abnormally. There is no automatic retry; callers
// report the failure and let the user try again.
var ErrGeneration = errors.New("generation failed")

// Sentiment values the market analysis is constrained to.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Description is the result of the venue-description task.
type Description struct {
	Text string `json:"text"`
}

// Analysis is the result of the market-trends task. KeyPoints is an
// ordered sequence of short strings; Sentiment is one of the Sentiment*
// constants.
type Analysis struct {
	Summary        string   `json:"summary"`
	KeyPoints      []string `json:"keyPoints"`
	Recommendation string   `json:"recommendation"`
	Sentiment      string   `json:"sentiment"`
}

// Copy is the result of the marketing-copy task. CTAs is an ordered
// sequence of short call-to-action strings.
type Copy struct {
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	CTAs     []string `json:"ctas"`
}

// Generator is the façade the handlers depend on. Client is the production
// implementation; tests substitute a fake.
type Generator interface {
	GenerateVenueDescription(ctx context.Context, name, vibe, venueType string) (Description, error)
	AnalyzeMarketTrends(ctx context.Context, topic string) (Analysis, error)
	GenerateMarketingCopy(ctx context.Context, product, audience, tone string) (Copy, error)
	NewStrategyChat() *ChatSession
}
