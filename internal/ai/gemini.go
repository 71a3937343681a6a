package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// advisorPersona is the fixed system instruction for the strategy chat.
const advisorPersona = "You are a strategic business advisor. Provide concise, high-impact advice."

// backend is the raw provider boundary: one-shot schema-constrained JSON
// generation and streamed chat. Production uses geminiBackend; package
// tests substitute a fake to exercise parsing and session behavior.
type backend interface {
	generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	stream(ctx context.Context, history []model.ChatMessage, message string) (<-chan Fragment, error)
}

// Client implements Generator on top of the Gemini API.
type Client struct {
	backend backend
}

// NewClient dials the Gemini API with the given key and model identifier.
func NewClient(ctx context.Context, apiKey, modelID string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{backend: &geminiBackend{client: gc, model: modelID}}, nil
}

// GenerateVenueDescription produces a short website description for the
// venue from its name, type and vibe keywords.
func (c *Client) GenerateVenueDescription(ctx context.Context, name, vibe, venueType string) (Description, error) {
	prompt := fmt.Sprintf(`Write a welcoming, professional, and attractive website description for a venue.
Venue Name: %s
Type: %s
Vibe/Keywords: %s

Keep it under 60 words. Make it sound inviting to customers looking to make a reservation.`, name, venueType, vibe)

	raw, err := c.backend.generate(ctx, prompt, descriptionSchema())
	if err != nil {
		return Description{}, err
	}
	return parseDescription(raw)
}

// AnalyzeMarketTrends produces a structured market analysis for the topic.
func (c *Client) AnalyzeMarketTrends(ctx context.Context, topic string) (Analysis, error) {
	prompt := fmt.Sprintf("Analyze current market trends for: %s.", topic)
	raw, err := c.backend.generate(ctx, prompt, analysisSchema())
	if err != nil {
		return Analysis{}, err
	}
	return parseAnalysis(raw)
}

// GenerateMarketingCopy produces headline, body and call-to-action copy.
func (c *Client) GenerateMarketingCopy(ctx context.Context, product, audience, tone string) (Copy, error) {
	prompt := fmt.Sprintf("Write marketing copy for %s. Target audience: %s. Tone: %s.", product, audience, tone)
	raw, err := c.backend.generate(ctx, prompt, copySchema())
	if err != nil {
		return Copy{}, err
	}
	return parseCopy(raw)
}

// NewStrategyChat opens a fresh advisor session with empty history.
func (c *Client) NewStrategyChat() *ChatSession {
	return NewChatSession(c.backend.stream)
}

// ----- output schemas -----

func descriptionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"text": {Type: genai.TypeString},
		},
		Required: []string{"text"},
	}
}

func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary":        {Type: genai.TypeString},
			"keyPoints":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"recommendation": {Type: genai.TypeString},
			"sentiment": {
				Type: genai.TypeString,
				Enum: []string{SentimentPositive, SentimentNegative, SentimentNeutral},
			},
		},
		Required: []string{"summary", "keyPoints", "recommendation", "sentiment"},
	}
}

func copySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headline": {Type: genai.TypeString},
			"body":     {Type: genai.TypeString},
			"ctas":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"headline", "body", "ctas"},
	}
}

// ----- response parsing -----
//
// The schema constrains the provider, but the payload is still re-checked
// here: a field the provider omitted is a contract violation surfaced as
// ErrGeneration, never silently defaulted.

func parseDescription(raw string) (Description, error) {
	var d Description
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Description{}, fmt.Errorf("%w: malformed payload: %v", ErrGeneration, err)
	}
	if d.Text == "" {
		return Description{}, fmt.Errorf("%w: missing field text", ErrGeneration)
	}
	return d, nil
}

func parseAnalysis(raw string) (Analysis, error) {
	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return Analysis{}, fmt.Errorf("%w: malformed payload: %v", ErrGeneration, err)
	}
	switch {
	case a.Summary == "":
		return Analysis{}, fmt.Errorf("%w: missing field summary", ErrGeneration)
	case a.KeyPoints == nil:
		return Analysis{}, fmt.Errorf("%w: missing field keyPoints", ErrGeneration)
	case a.Recommendation == "":
		return Analysis{}, fmt.Errorf("%w: missing field recommendation", ErrGeneration)
	}
	switch a.Sentiment {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		return Analysis{}, fmt.Errorf("%w: missing or invalid field sentiment", ErrGeneration)
	}
	return a, nil
}

func parseCopy(raw string) (Copy, error) {
	var c Copy
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Copy{}, fmt.Errorf("%w: malformed payload: %v", ErrGeneration, err)
	}
	switch {
	case c.Headline == "":
		return Copy{}, fmt.Errorf("%w: missing field headline", ErrGeneration)
	case c.Body == "":
		return Copy{}, fmt.Errorf("%w: missing field body", ErrGeneration)
	case c.CTAs == nil:
		return Copy{}, fmt.Errorf("%w: missing field ctas", ErrGeneration)
	}
	return c, nil
}

// ----- gemini-backed provider -----

type geminiBackend struct {
	client *genai.Client
	model  string
}

func (g *geminiBackend) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return text, nil
}

func (g *geminiBackend) stream(ctx context.Context, history []model.ChatMessage, message string) (<-chan Fragment, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == model.ChatRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	chat, err := g.client.Chats.Create(ctx, g.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(advisorPersona, genai.RoleUser),
	}, contents)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	out := make(chan Fragment)
	go func() {
		defer close(out)
		for resp, err := range chat.SendMessageStream(ctx, genai.Part{Text: message}) {
			if err != nil {
				select {
				case out <- Fragment{Err: fmt.Errorf("%w: %v", ErrGeneration, err)}:
				case <-ctx.Done():
				}
				return
			}
			if t := resp.Text(); t != "" {
				select {
				case out <- Fragment{Text: t}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
