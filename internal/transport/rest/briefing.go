package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/briefing"
)

type briefingService interface {
	Compose(ctx context.Context, input briefing.ComposeInput) (*domain.Briefing, error)
}

// BriefingHandler serves briefing composition.
type BriefingHandler struct {
	svc briefingService
	log *slog.Logger
}

// NewBriefingHandler creates a BriefingHandler.
func NewBriefingHandler(svc briefingService, logger *slog.Logger) *BriefingHandler {
	return &BriefingHandler{svc: svc, log: logger.With("handler", "briefing")}
}

type contentItemRequest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type composeRequest struct {
	Goal  string               `json:"goal"`
	Items []contentItemRequest `json:"items"`
}

type briefingItemResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	URL        string  `json:"url,omitempty"`
	Source     string  `json:"source,omitempty"`
	Importance string  `json:"importance"`
	Relevance  float64 `json:"relevance"`
	Reason     string  `json:"reason,omitempty"`
}

type briefingResponse struct {
	Summary      string                 `json:"summary"`
	Critical     []briefingItemResponse `json:"critical"`
	Important    []briefingItemResponse `json:"important"`
	Normal       []briefingItemResponse `json:"normal"`
	MemoriesUsed int                    `json:"memoriesUsed"`
	GeneratedAt  time.Time              `json:"generatedAt"`
}

// Compose handles POST /api/v1/briefings.
func (h *BriefingHandler) Compose(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	var req composeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	items := make([]domain.ContentItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.ContentItem{
			ID:          it.ID,
			Title:       it.Title,
			Summary:     it.Summary,
			Source:      it.Source,
			URL:         it.URL,
			PublishedAt: it.PublishedAt,
		})
	}

	b, err := h.svc.Compose(r.Context(), briefing.ComposeInput{Items: items, Goal: req.Goal})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, briefingResponse{
		Summary:      b.Summary,
		Critical:     toBriefingItems(b.Critical),
		Important:    toBriefingItems(b.Important),
		Normal:       toBriefingItems(b.Normal),
		MemoriesUsed: b.MemoriesUsed,
		GeneratedAt:  b.GeneratedAt,
	})
}

func toBriefingItems(items []domain.BriefingItem) []briefingItemResponse {
	out := make([]briefingItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, briefingItemResponse{
			ID:         it.Item.ID,
			Title:      it.Item.Title,
			URL:        it.Item.URL,
			Source:     it.Item.Source,
			Importance: string(it.Importance),
			Relevance:  it.Relevance,
			Reason:     it.Reason,
		})
	}
	return out
}
