package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/alert"
)

type alertService interface {
	List(ctx context.Context, input alert.ListInput) ([]domain.RiskAlert, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Dismiss(ctx context.Context, id uuid.UUID) error
}

// AlertHandler serves the alert ledger.
type AlertHandler struct {
	svc alertService
	log *slog.Logger
}

// NewAlertHandler creates an AlertHandler.
func NewAlertHandler(svc alertService, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{svc: svc, log: logger.With("handler", "alert")}
}

type alertResponse struct {
	ID              string              `json:"id"`
	Type            string              `json:"type"`
	Title           string              `json:"title"`
	Message         string              `json:"message"`
	Severity        int                 `json:"severity"`
	RelatedEntryIDs []string            `json:"relatedEntryIds"`
	SuggestedAction *string             `json:"suggestedAction,omitempty"`
	Payload         domain.AlertPayload `json:"payload"`
	Read            bool                `json:"read"`
	AlertDate       string              `json:"alertDate"`
	CreatedAt       time.Time           `json:"createdAt"`
}

type alertListResponse struct {
	Alerts      []alertResponse `json:"alerts"`
	UnreadCount int             `json:"unreadCount"`
}

// List handles GET /api/v1/alerts?unread=true&date=YYYY-MM-DD.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	q := r.URL.Query()
	in := alert.ListInput{UnreadOnly: q.Get("unread") == "true"}
	if v := q.Get("date"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("date", "must be YYYY-MM-DD"))
			return
		}
		in.Date = &d
	}

	alerts, err := h.svc.List(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	unread, err := h.svc.UnreadCount(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, alertListResponse{
		Alerts:      toAlertResponses(alerts),
		UnreadCount: unread,
	})
}

// MarkRead handles POST /api/v1/alerts/{id}/read.
func (h *AlertHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.MarkRead)
}

// Dismiss handles POST /api/v1/alerts/{id}/dismiss.
func (h *AlertHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Dismiss)
}

func (h *AlertHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) error) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := fn(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAlertResponses(alerts []domain.RiskAlert) []alertResponse {
	out := make([]alertResponse, 0, len(alerts))
	for _, a := range alerts {
		related := a.RelatedEntryIDs
		if related == nil {
			related = []string{}
		}
		out = append(out, alertResponse{
			ID:              a.ID.String(),
			Type:            a.Type.String(),
			Title:           a.Title,
			Message:         a.Message,
			Severity:        int(a.Severity),
			RelatedEntryIDs: related,
			SuggestedAction: a.SuggestedAction,
			Payload:         a.Payload,
			Read:            a.Read,
			AlertDate:       a.AlertDate.Format(time.DateOnly),
			CreatedAt:       a.CreatedAt,
		})
	}
	return out
}
