package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
)

type memoryService interface {
	Save(ctx context.Context, input memory.SaveInput) (uuid.UUID, error)
	Search(ctx context.Context, input memory.SearchInput) ([]domain.ScoredMemory, error)
	Recent(ctx context.Context, limit int) ([]domain.Memory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryHandler serves the semantic memory endpoints.
type MemoryHandler struct {
	svc memoryService
	log *slog.Logger
}

// NewMemoryHandler creates a MemoryHandler.
func NewMemoryHandler(svc memoryService, logger *slog.Logger) *MemoryHandler {
	return &MemoryHandler{svc: svc, log: logger.With("handler", "memory")}
}

type saveMemoryRequest struct {
	Content    string         `json:"content"`
	Type       string         `json:"type"`
	Importance *float64       `json:"importance"`
	MemoryDate *string        `json:"memoryDate"`
	Metadata   map[string]any `json:"metadata"`
}

type searchMemoryRequest struct {
	Query         string   `json:"query"`
	Limit         int      `json:"limit"`
	Type          *string  `json:"type"`
	MinSimilarity *float64 `json:"minSimilarity"`
}

type memoryResponse struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Content    string         `json:"content"`
	Importance float64        `json:"importance"`
	MemoryDate *string        `json:"memoryDate,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	Similarity *float64       `json:"similarity,omitempty"`
}

// Save handles POST /api/v1/memories.
func (h *MemoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	var req saveMemoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := memory.SaveInput{
		Content:    req.Content,
		Type:       domain.MemoryType(req.Type),
		Importance: req.Importance,
		Metadata:   req.Metadata,
	}
	if req.MemoryDate != nil {
		d, err := time.Parse(time.DateOnly, *req.MemoryDate)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("memoryDate", "must be YYYY-MM-DD"))
			return
		}
		in.MemoryDate = &d
	}

	id, err := h.svc.Save(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// Search handles POST /api/v1/memories/search.
func (h *MemoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	var req searchMemoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := memory.SearchInput{
		Query:         req.Query,
		Limit:         req.Limit,
		MinSimilarity: req.MinSimilarity,
	}
	if req.Type != nil {
		t := domain.MemoryType(*req.Type)
		in.Type = &t
	}

	hits, err := h.svc.Search(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]memoryResponse, 0, len(hits))
	for _, hit := range hits {
		m := toMemoryResponse(hit.Memory)
		sim := hit.Similarity
		m.Similarity = &sim
		out = append(out, m)
	}
	writeJSON(w, http.StatusOK, out)
}

// Recent handles GET /api/v1/memories/recent?limit=20.
func (h *MemoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be a number"))
			return
		}
		limit = n
	}

	list, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]memoryResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMemoryResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/memories/{id}. Unknown ids also answer 204.
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toMemoryResponse(m domain.Memory) memoryResponse {
	out := memoryResponse{
		ID:         m.ID.String(),
		Type:       m.Type.String(),
		Content:    m.Content,
		Importance: m.Importance,
		Metadata:   m.Metadata,
		CreatedAt:  m.CreatedAt,
	}
	if m.MemoryDate != nil {
		d := m.MemoryDate.Format(time.DateOnly)
		out.MemoryDate = &d
	}
	return out
}
