package model

// Chat message roles as reported by the advisor session.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatMessage is a single turn in an advisor chat session. Messages live
// only in the running session: the sequence is append-only, ordered by
// Timestamp and never persisted.
//
// Fields:
//  ID        – opaque identifier of the message.
//  Role      – ChatRoleUser or ChatRoleModel.
//  Text      – message text; for model messages, the accumulated stream.
//  Timestamp – creation time in Unix milliseconds.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
