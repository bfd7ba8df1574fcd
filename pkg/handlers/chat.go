package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/softerio/chatbot-engine/pkg/chat"
	"github.com/softerio/chatbot-engine/pkg/models"
	"github.com/softerio/chatbot-engine/pkg/security"
)

// ChatRequest is the body of POST /chat. Language is optional:
// "english"/"urdu" pin the session locale for this and later turns,
// "auto" (or absent) keeps per-query detection.
type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
}

// ChatResponse is the answer payload. Status reflects transport
// success only; a default-message answer is still "success".
type ChatResponse struct {
	Response string `json:"response"`
	Language string `json:"language"`
	Source   string `json:"source"`
	Status   string `json:"status"`
}

// ChatHandler serves the conversational endpoint.
type ChatHandler struct {
	engine   *chat.Engine
	sessions *SessionStore
	logger   *zap.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(engine *chat.Engine, sessions *SessionStore, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{engine: engine, sessions: sessions, logger: logger}
}

// RegisterRoutes registers the chat endpoint on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /chat", h.Chat)
}

// Chat handles POST /chat. HTTP status reflects only transport-level
// failures (malformed body, blank message, bad locale value); the chat
// pipeline always yields a usable answer.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be JSON")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "message is required")
		return
	}

	state := h.sessions.Get(r)

	if req.Language != "" {
		locale, err := models.ParseLocale(req.Language)
		if err != nil {
			_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "language must be english, urdu, or auto")
			return
		}
		state.Locale = locale
	}

	sess := &chat.Session{ID: state.ID}
	sess.SetLocale(state.Locale)

	answer := h.respond(r, req.Message, sess)

	// Persist locale changes made by the request parameter or a lang
	// command in the message itself.
	state.Locale = sess.Locale()
	if err := h.sessions.Save(r, w, state); err != nil {
		h.logger.Warn("failed to save session cookie", zap.Error(err))
	}

	resp := ChatResponse{
		Response: answer.Text,
		Language: string(answer.Locale),
		Source:   string(answer.Source),
		Status:   "success",
	}
	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode chat response", zap.Error(err))
	}
}

// respond screens the message and maps engine outcomes to answers. Web
// clients get a textual confirmation for session commands instead of a
// control signal.
func (h *ChatHandler) respond(r *http.Request, message string, sess *chat.Session) *models.AnswerResult {
	if hit := security.ScreenMessage(message); hit != nil {
		h.logger.Warn("injection pattern in chat message, answering with default",
			zap.Bool("sqli", hit.IsSQLi),
			zap.Bool("xss", hit.IsXSS),
			zap.String("fingerprint", hit.Fingerprint),
			zap.String("remote_addr", r.RemoteAddr))
		locale := sess.Locale()
		if !locale.IsConcrete() {
			locale = models.LocaleEnglish
		}
		return &models.AnswerResult{
			Text:   chat.DefaultMessage(locale),
			Locale: locale,
			Source: models.AnswerSourceDefault,
		}
	}

	outcome := h.engine.Handle(r.Context(), message, sess)
	if outcome.Answer != nil {
		return outcome.Answer
	}

	// Control outcome: lang commands changed the session above; quit
	// has no process to end over HTTP.
	locale := sess.Locale()
	if !locale.IsConcrete() {
		locale = models.LocaleEnglish
	}

	var text string
	switch outcome.Command {
	case chat.CommandQuit:
		if locale == models.LocaleUrdu {
			text = "شکریہ! پھر ملیں گے۔"
		} else {
			text = "Thank you for chatting with us. Goodbye!"
		}
	case chat.CommandLangEnglish:
		text = "Language set to English."
	case chat.CommandLangUrdu:
		text = "زبان اردو میں تبدیل کر دی گئی ہے۔"
	default:
		text = chat.DefaultMessage(locale)
	}

	return &models.AnswerResult{
		Text:   text,
		Locale: locale,
		Source: models.AnswerSourceDefault,
	}
}
