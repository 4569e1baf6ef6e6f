package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/PabloGalante/bright-road/internal/app/conversation"
	"github.com/PabloGalante/bright-road/internal/domain"
)

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type sessionResponse struct {
	ID             string    `json:"id"`
	AssistantState string    `json:"assistant_state"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type citationResponse struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	URI   string `json:"uri"`
}

type messageResponse struct {
	ID          string             `json:"id"`
	SessionID   string             `json:"session_id"`
	Author      string             `json:"author"`
	Text        string             `json:"text"`
	ContentType string             `json:"content_type"`
	Citations   []citationResponse `json:"citations,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type createSessionResponse struct {
	Session  sessionResponse   `json:"session"`
	Messages []messageResponse `json:"messages"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type sendMessageResponse struct {
	Session          sessionResponse  `json:"session"`
	UserMessage      *messageResponse `json:"user_message,omitempty"`
	AssistantMessage messageResponse  `json:"assistant_message"`
}

type getSessionResponse struct {
	Session  sessionResponse   `json:"session"`
	Messages []messageResponse `json:"messages"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	out, err := s.conv.StartSession(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createSessionResponse{
		Session:  toSessionResponse(out.Session),
		Messages: toMessagesResponse(out.Messages),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(mux.Vars(r)["id"])

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	session, msgs, err := s.conv.GetSessionTimeline(r.Context(), id, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, getSessionResponse{
		Session:  toSessionResponse(session),
		Messages: toMessagesResponse(msgs),
	})
}

// handleSendMessage answers 200 for not-ready and transport outcomes too;
// the fallback turn is in assistant_message.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(mux.Vars(r)["id"])

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	// a send runs to completion even if the client goes away
	out, err := s.conv.SendMessage(context.WithoutCancel(r.Context()), conversation.SendMessageInput{
		SessionID: id,
		Text:      req.Text,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := sendMessageResponse{
		Session:          toSessionResponse(out.Session),
		AssistantMessage: toMessageResponse(out.AssistantMessage),
	}
	if out.UserMessage != nil {
		m := toMessageResponse(out.UserMessage)
		resp.UserMessage = &m
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(mux.Vars(r)["id"])

	if err := s.conv.EndSession(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Conversation Helpers
// ─────────────────────────────────────────────

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:             string(s.ID),
		AssistantState: string(s.AssistantState),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toMessageResponse(m *domain.Message) messageResponse {
	resp := messageResponse{
		ID:          string(m.ID),
		SessionID:   string(m.SessionID),
		Author:      string(m.Author),
		Text:        m.Text,
		ContentType: string(m.ContentType),
		CreatedAt:   m.CreatedAt,
	}
	for _, c := range m.Citations {
		resp.Citations = append(resp.Citations, citationResponse{
			Kind:  string(c.Kind),
			Title: c.Title,
			URI:   c.URI,
		})
	}
	return resp
}

func toMessagesResponse(msgs []*domain.Message) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}
