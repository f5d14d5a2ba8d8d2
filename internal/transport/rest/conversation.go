package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

type insightDispatcher interface {
	Dispatch(ctx context.Context, turns []domain.ConversationTurn)
}

// ConversationHandler accepts conversation windows for insight extraction.
type ConversationHandler struct {
	insights insightDispatcher
	log      *slog.Logger
}

// NewConversationHandler creates a ConversationHandler.
func NewConversationHandler(insights insightDispatcher, logger *slog.Logger) *ConversationHandler {
	return &ConversationHandler{insights: insights, log: logger.With("handler", "conversation")}
}

type insightsRequest struct {
	Turns []domain.ConversationTurn `json:"turns"`
}

// Insights handles POST /api/v1/conversations/insights. The window is handed
// off and the request answers 202 whatever extraction later does.
func (h *ConversationHandler) Insights(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	var req insightsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.insights.Dispatch(r.Context(), req.Turns)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
