package ai

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumina-dev/venue-reserve/internal/model"
)

// Fragment is one increment of a streamed chat reply. Either Text carries
// the next chunk, or Err carries a terminal ErrGeneration; after an Err the
// channel is closed. Channel close without Err marks normal end of stream.
type Fragment struct {
	Text string
	Err  error
}

// StreamFunc produces the reply stream for a message given the prior
// conversation. The history passed in does not include the new message.
type StreamFunc func(ctx context.Context, history []model.ChatMessage, message string) (<-chan Fragment, error)

// ChatSession is one advisor conversation. History is append-only, ordered
// by timestamp and held in memory only; it is lost when the session is
// discarded. A session must not have two Sends in flight at once — the
// caller disables its trigger while a reply streams, and the mutex keeps a
// misbehaving caller from corrupting history.
type ChatSession struct {
	id     string
	stream StreamFunc

	mu       sync.Mutex
	history  []model.ChatMessage
	lastUsed time.Time
}

// NewChatSession opens a session fed by the given stream source. Production
// sessions come from Client.NewStrategyChat; tests supply a scripted stream.
func NewChatSession(stream StreamFunc) *ChatSession {
	return &ChatSession{
		id:       uuid.NewString(),
		stream:   stream,
		lastUsed: time.Now(),
	}
}

// ID returns the opaque session identifier clients use to continue the
// conversation.
func (s *ChatSession) ID() string { return s.id }

// History returns a copy of the conversation so far.
func (s *ChatSession) History() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Send records the user message and returns the reply as a finite ordered
// sequence of fragments. The caller accumulates fragments in arrival order;
// the channel closes when the provider signals completion. On a mid-stream
// failure the last fragment carries ErrGeneration and whatever text arrived
// before the failure is kept in history.
func (s *ChatSession) Send(ctx context.Context, text string) (<-chan Fragment, error) {
	s.mu.Lock()
	prior := make([]model.ChatMessage, len(s.history))
	copy(prior, s.history)
	s.mu.Unlock()

	upstream, err := s.stream(ctx, prior, text)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().UnixMilli()
	s.mu.Lock()
	s.history = append(s.history, model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleUser,
		Text:      text,
		Timestamp: now,
	})
	s.lastUsed = time.Now()
	s.mu.Unlock()

	out := make(chan Fragment)
	go func() {
		defer close(out)
		var full string
		for frag := range upstream {
			if frag.Err == nil {
				full += frag.Text
			}
			select {
			case out <- frag:
			case <-ctx.Done():
				s.appendModel(full)
				return
			}
			if frag.Err != nil {
				break
			}
		}
		s.appendModel(full)
	}()
	return out, nil
}

// appendModel records the accumulated reply, if any, as a model turn.
func (s *ChatSession) appendModel(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleModel,
		Text:      text,
		Timestamp: time.Now().UTC().UnixMilli(),
	})
	s.lastUsed = time.Now()
}

// Hub keeps live chat sessions in memory, keyed by session id. Sessions are
// never persisted; a background sweep drops sessions idle longer than the
// configured TTL, since a server outlives any single page visit.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*ChatSession
	idleTTL  time.Duration
}

// NewHub returns a Hub whose sweeper runs for the life of the process.
func NewHub(idleTTL time.Duration) *Hub {
	h := &Hub{
		sessions: make(map[string]*ChatSession),
		idleTTL:  idleTTL,
	}
	go h.sweep()
	return h
}

// Get returns the session with the given id, if still live.
func (h *Hub) Get(id string) (*ChatSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Put registers a session under its id.
func (h *Hub) Put(s *ChatSession) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID()] = s
}

func (h *Hub) sweep() {
	interval := h.idleTTL / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		cutoff := time.Now().Add(-h.idleTTL)
		h.mu.Lock()
		for id, s := range h.sessions {
			s.mu.Lock()
			stale := s.lastUsed.Before(cutoff)
			s.mu.Unlock()
			if stale {
				delete(h.sessions, id)
			}
		}
		h.mu.Unlock()
	}
}
