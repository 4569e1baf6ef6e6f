package domain

// Message represents one transcript turn (user or assistant)
type Message struct {
	ID        MessageID
	SessionID SessionID
	Author    Role
	Text      string
	CreatedAt Timestamp

	// Citations holds the grounding references already rendered into Text.
	Citations   []Citation
	ContentType ContentType
}

// AssistantState is the lifecycle state of an assistant session.
type AssistantState string

const (
	AssistantUnopened AssistantState = "unopened"
	AssistantOpen     AssistantState = "open"
	AssistantFailed   AssistantState = "failed"
)

// Session represents one UI session: the visitor's stay in the assistant view.
type Session struct {
	ID        SessionID
	CreatedAt Timestamp
	UpdatedAt Timestamp

	AssistantState AssistantState
}
