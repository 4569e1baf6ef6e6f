package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/PabloGalante/bright-road/internal/assistant"
	"github.com/PabloGalante/bright-road/internal/domain"
	"github.com/PabloGalante/bright-road/internal/observability"
)

// evictionNotifier is implemented by session stores that drop sessions on
// their own (idle expiry).
type evictionNotifier interface {
	OnEvict(fn func(id domain.SessionID))
}

// Service owns UI sessions: their transcripts and their assistant sessions.
type Service struct {
	endpoint     domain.ChatEndpoint
	catalog      domain.CatalogReader
	opts         assistant.Options
	sessionStore domain.SessionStore
	messageStore domain.MessageStore
	now          func() time.Time

	mu   sync.Mutex
	live map[domain.SessionID]*liveSession
}

type liveSession struct {
	assistant *assistant.Session
	busy      atomic.Bool
}

func NewService(
	endpoint domain.ChatEndpoint,
	catalog domain.CatalogReader,
	opts assistant.Options,
	sessionStore domain.SessionStore,
	messageStore domain.MessageStore,
) *Service {
	s := &Service{
		endpoint:     endpoint,
		catalog:      catalog,
		opts:         opts,
		sessionStore: sessionStore,
		messageStore: messageStore,
		now:          time.Now,
		live:         make(map[domain.SessionID]*liveSession),
	}

	if n, ok := sessionStore.(evictionNotifier); ok {
		n.OnEvict(s.forget)
	}

	return s
}

type StartSessionOutput struct {
	Session  *domain.Session
	Messages []*domain.Message
}

// StartSession creates a UI session, greets the visitor and opens the
// assistant. A failed open is not an error for the caller: the session
// lives on with a notice in its transcript.
func (s *Service) StartSession(ctx context.Context) (*StartSessionOutput, error) {
	now := s.now()

	session := &domain.Session{
		ID:             domain.SessionID(generateID()),
		CreatedAt:      now,
		UpdatedAt:      now,
		AssistantState: domain.AssistantUnopened,
	}

	log := observability.LoggerFromContext(ctx).With("session_id", session.ID)
	log.Info("starting new session")

	if err := s.sessionStore.CreateSession(session); err != nil {
		log.Error("failed to create session", "error", err)
		return nil, err
	}

	welcome := s.newMessage(session.ID, domain.RoleAssistant, domain.ContentText, assistant.WelcomeText)
	if err := s.messageStore.AppendMessage(welcome); err != nil {
		log.Error("failed to append welcome message", "error", err)
		s.discard(session.ID)
		return nil, err
	}
	out := &StartSessionOutput{Session: session, Messages: []*domain.Message{welcome}}

	ls := &liveSession{assistant: assistant.New(s.endpoint, s.catalog, s.opts)}
	s.mu.Lock()
	s.live[session.ID] = ls
	s.mu.Unlock()

	if err := ls.assistant.Open(ctx); err != nil {
		log.Warn("assistant unavailable for session", "error", err)

		notice := s.newMessage(session.ID, domain.RoleAssistant, domain.ContentNotice, assistant.UnavailableNoticeText)
		if err := s.messageStore.AppendMessage(notice); err != nil {
			log.Error("failed to append notice message", "error", err)
			s.discard(session.ID)
			return nil, err
		}
		out.Messages = append(out.Messages, notice)
	}

	session.AssistantState = ls.assistant.State()
	session.UpdatedAt = s.now()
	if err := s.sessionStore.UpdateSession(session); err != nil {
		log.Error("failed to update session", "error", err)
		s.discard(session.ID)
		return nil, err
	}

	log.Info("session started", "state", session.AssistantState)
	return out, nil
}

type SendMessageInput struct {
	SessionID domain.SessionID
	Text      string
}

// SendMessageOutput carries the turns appended by one send. UserMessage is
// nil when the assistant was never ready.
type SendMessageOutput struct {
	Session          *domain.Session
	UserMessage      *domain.Message
	AssistantMessage *domain.Message
}

func (s *Service) SendMessage(ctx context.Context, in SendMessageInput) (*SendMessageOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, domain.ErrEmptyMessage
	}

	session, err := s.sessionStore.GetSession(in.SessionID)
	if err != nil {
		return nil, err
	}
	ls := s.lookup(session.ID)
	if ls == nil {
		return nil, domain.ErrSessionNotFound
	}

	log := observability.LoggerFromContext(ctx).With(
		"session_id", session.ID,
		"state", ls.assistant.State(),
	)

	if !ls.busy.CompareAndSwap(false, true) {
		log.Warn("rejected message while another is in flight")
		return nil, domain.ErrSessionBusy
	}
	defer ls.busy.Store(false)

	out := &SendMessageOutput{Session: session}

	if !ls.assistant.Ready() {
		log.Info("assistant not ready, answering with fallback")
		out.AssistantMessage = s.newMessage(session.ID, domain.RoleAssistant, domain.ContentFallback, assistant.NotReadyText)
		if err := s.appendLive(ls, out.AssistantMessage); err != nil {
			log.Error("failed to append fallback message", "error", err)
			return nil, err
		}
		return out, s.touch(session, ls)
	}

	out.UserMessage = s.newMessage(session.ID, domain.RoleUser, domain.ContentText, in.Text)
	if err := s.appendLive(ls, out.UserMessage); err != nil {
		log.Error("failed to append user message", "error", err)
		return nil, err
	}

	log.Info("sending message", "text_len", len(in.Text))

	reply, err := ls.assistant.SendMessage(ctx, in.Text)
	switch {
	case err == nil:
		out.AssistantMessage = s.newMessage(session.ID, domain.RoleAssistant, domain.ContentText, reply.Text)
		out.AssistantMessage.Citations = reply.Citations
	case errors.Is(err, domain.ErrTransport):
		log.Error("assistant transport error", "error", err)
		out.AssistantMessage = s.newMessage(session.ID, domain.RoleAssistant, domain.ContentFallback, assistant.TransportErrorText)
	default:
		log.Error("assistant send failed", "error", err)
		return nil, err
	}

	// the session may have ended or expired while the reply was in flight
	if err := s.appendLive(ls, out.AssistantMessage); err != nil {
		log.Warn("dropping assistant reply", "error", err)
		return nil, err
	}

	log.Info("send message completed", "citations", len(out.AssistantMessage.Citations))
	return out, s.touch(session, ls)
}

func (s *Service) GetSessionTimeline(
	ctx context.Context,
	sessionID domain.SessionID,
	limit int,
) (*domain.Session, []*domain.Message, error) {

	log := observability.LoggerFromContext(ctx).With(
		"session_id", sessionID,
		"limit", limit,
	)

	session, err := s.sessionStore.GetSession(sessionID)
	if err != nil {
		log.Warn("failed to get session", "error", err)
		return nil, nil, err
	}

	msgs, err := s.messageStore.GetMessagesBySession(sessionID, limit)
	if err != nil {
		log.Error("failed to get messages", "error", err)
		return nil, nil, err
	}

	log.Debug("fetched session timeline", "message_count", len(msgs))

	return session, msgs, nil
}

// EndSession drops the transcript and the assistant session.
func (s *Service) EndSession(ctx context.Context, sessionID domain.SessionID) error {
	log := observability.LoggerFromContext(ctx).With("session_id", sessionID)

	if err := s.sessionStore.DeleteSession(sessionID); err != nil {
		return err
	}
	s.forget(sessionID)

	log.Info("session ended")
	return nil
}

// appendLive appends msg only while ls is still the live session for its
// id. Holding s.mu orders the append before any forget of that session, so a
// discarded transcript is never recreated.
func (s *Service) appendLive(ls *liveSession, msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.live[msg.SessionID] != ls {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, msg.SessionID)
	}
	return s.messageStore.AppendMessage(msg)
}

// discard undoes a half-started session.
func (s *Service) discard(id domain.SessionID) {
	_ = s.sessionStore.DeleteSession(id)
	s.forget(id)
}

// forget releases everything held for a session. Safe to call twice.
func (s *Service) forget(id domain.SessionID) {
	s.mu.Lock()
	_, had := s.live[id]
	delete(s.live, id)
	s.mu.Unlock()

	if err := s.messageStore.DeleteMessagesBySession(id); err != nil {
		observability.Logger().Error("failed to discard transcript", "session_id", id, "error", err)
		return
	}
	if had {
		observability.Logger().Info("session discarded", "session_id", id)
	}
}

func (s *Service) lookup(id domain.SessionID) *liveSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live[id]
}

// touch records activity, which also pushes back idle expiry.
func (s *Service) touch(session *domain.Session, ls *liveSession) error {
	session.AssistantState = ls.assistant.State()
	session.UpdatedAt = s.now()
	return s.sessionStore.UpdateSession(session)
}

func (s *Service) newMessage(id domain.SessionID, author domain.Role, kind domain.ContentType, text string) *domain.Message {
	return &domain.Message{
		ID:          domain.MessageID(generateID()),
		SessionID:   id,
		Author:      author,
		Text:        text,
		CreatedAt:   s.now(),
		ContentType: kind,
	}
}

func generateID() string {
	return uuid.NewString()
}
