package domain

import "context"

// ChatEndpoint is a hosted conversational model able to open stateful chats.
type ChatEndpoint interface {
	OpenChat(ctx context.Context, cfg ChatConfig) (ChatHandle, error)
}

// ChatHandle is one remote conversation. It keeps whatever turn context the
// endpoint needs; callers must not overlap Send calls.
type ChatHandle interface {
	Send(ctx context.Context, text string) (*EndpointReply, error)
}

// ChatConfig is the fixed configuration a chat is opened with.
type ChatConfig struct {
	Model             string
	SystemInstruction string
	MapsGrounding     bool
}

// EndpointReply is the raw answer of the endpoint for a single turn.
// Grounding entries may miss a title or a URI.
type EndpointReply struct {
	Text      string
	Grounding []Citation
}

// SessionStore defines UI session bookkeeping
type SessionStore interface {
	CreateSession(session *Session) error
	UpdateSession(session *Session) error
	GetSession(id SessionID) (*Session, error)
	DeleteSession(id SessionID) error
}

// MessageStore defines transcript storage
type MessageStore interface {
	AppendMessage(msg *Message) error
	GetMessagesBySession(sessionID SessionID, limit int) ([]*Message, error)
	DeleteMessagesBySession(sessionID SessionID) error
}
