package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lumina-dev/venue-reserve/internal/ai"
)

// chatFallback is appended to the conversation view when a stream fails;
// the session itself stays usable so the admin can simply retry.
const chatFallback = "I encountered an error processing your request. Please try again."

// ToolsHandler serves the AI business tools: venue description generation,
// market analysis, marketing copy and the streamed strategy-advisor chat.
// All endpoints sit behind admin auth; a generation failure re-enables the
// client's trigger by answering 502 without retrying.
type ToolsHandler struct {
	Gen ai.Generator
	Hub *ai.Hub
}

// NewToolsHandler constructs a ToolsHandler.
func NewToolsHandler(gen ai.Generator, hub *ai.Hub) *ToolsHandler {
	if gen == nil || hub == nil {
		panic("nil dependency passed to NewToolsHandler")
	}
	return &ToolsHandler{Gen: gen, Hub: hub}
}

// ----- DTOs -----

type describeReq struct {
	Name string `json:"name"`
	Vibe string `json:"vibe"`
	Type string `json:"type"`
}
type analysisReq struct {
	Topic string `json:"topic"`
}
type copyReq struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
	Tone     string `json:"tone"`
}
type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Describe generates a short public description for the venue.
func (h *ToolsHandler) Describe(c echo.Context) error {
	var req describeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	out, err := h.Gen.GenerateVenueDescription(c.Request().Context(), req.Name, req.Vibe, req.Type)
	if err != nil {
		return generationError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Analyze produces a structured market-trend analysis for a topic.
func (h *ToolsHandler) Analyze(c echo.Context) error {
	var req analysisReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Topic) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "topic is required"})
	}

	out, err := h.Gen.AnalyzeMarketTrends(c.Request().Context(), req.Topic)
	if err != nil {
		return generationError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Copy produces marketing copy for a product, audience and tone.
func (h *ToolsHandler) Copy(c echo.Context) error {
	var req copyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Product) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is required"})
	}

	out, err := h.Gen.GenerateMarketingCopy(c.Request().Context(), req.Product, req.Audience, req.Tone)
	if err != nil {
		return generationError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Chat sends a message to the strategy advisor and streams the reply as
// server-sent events. Without a session_id a new session is opened; its id
// is returned in the X-Chat-Session header so the client can continue the
// conversation. Fragments arrive as `data:` events in order; the stream
// ends with `event: done`, or `event: error` carrying a fallback message
// when the provider fails mid-reply.
func (h *ToolsHandler) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
	}

	var sess *ai.ChatSession
	if req.SessionID != "" {
		var ok bool
		if sess, ok = h.Hub.Get(req.SessionID); !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown session"})
		}
	} else {
		sess = h.Gen.NewStrategyChat()
		h.Hub.Put(sess)
	}

	ctx := c.Request().Context()
	fragments, err := sess.Send(ctx, req.Message)
	if err != nil {
		return generationError(c, err)
	}

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.Header().Set("X-Chat-Session", sess.ID())
	resp.WriteHeader(http.StatusOK)

	for frag := range fragments {
		if frag.Err != nil {
			writeEvent(resp, "error", echo.Map{"error": "generation failed", "fallback": chatFallback})
			return nil
		}
		writeEvent(resp, "", echo.Map{"text": frag.Text})
	}
	writeEvent(resp, "done", echo.Map{})
	return nil
}

// writeEvent emits one SSE event and flushes it to the client. The payload
// is JSON so fragment text survives newlines intact. A marshal failure is
// logged and the event skipped; the stream itself stays open.
func writeEvent(resp *echo.Response, event string, payload echo.Map) {
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("tools: marshal sse payload failed: %v", err)
		return
	}
	if event != "" {
		fmt.Fprintf(resp, "event: %s\n", event)
	}
	fmt.Fprintf(resp, "data: %s\n\n", b)
	resp.Flush()
}

// generationError maps provider failures to 502 and anything else to 500.
func generationError(c echo.Context, err error) error {
	if errors.Is(err, ai.ErrGeneration) {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "generation failed"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "generation failed"})
}
