package domain

import "time"

type SessionID string
type MessageID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ContentType tells a client how a transcript entry came to be.
type ContentType string

const (
	ContentText     ContentType = "text"     // Regular turn
	ContentNotice   ContentType = "notice"   // Persistent system notice (e.g. assistant unavailable)
	ContentFallback ContentType = "fallback" // Synthesized turn replacing a failed exchange
)

type Timestamp = time.Time
