package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/entitlement"
)

type entitlementService interface {
	GetPlan(ctx context.Context, accountID uuid.UUID) (*domain.Plan, error)
	CanUseFeature(ctx context.Context, accountID uuid.UUID, feature domain.Feature) bool
	TryConsumeCall(ctx context.Context, accountID uuid.UUID, callType string) domain.CallDecision
	Usage(ctx context.Context, accountID uuid.UUID) (*entitlement.UsageReport, error)
}

// PlanHandler serves plan and usage endpoints for the calling account.
type PlanHandler struct {
	svc entitlementService
	log *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(svc entitlementService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{svc: svc, log: logger.With("handler", "plan")}
}

type planResponse struct {
	AccountID         string          `json:"accountId"`
	Tier              string          `json:"tier"`
	Active            bool            `json:"active"`
	DailyCallLimit    int             `json:"dailyCallLimit"`
	Unlimited         bool            `json:"unlimited"`
	StorageQuotaBytes int64           `json:"storageQuotaBytes"`
	Features          map[string]bool `json:"features"`
	ExpiresAt         *time.Time      `json:"expiresAt,omitempty"`
}

type featureResponse struct {
	Feature string `json:"feature"`
	Enabled bool   `json:"enabled"`
}

type consumeRequest struct {
	CallType string `json:"callType"`
}

type decisionResponse struct {
	Allowed   bool `json:"allowed"`
	Unlimited bool `json:"unlimited"`
	Remaining int  `json:"remaining"`
}

type usageResponse struct {
	Tier       string         `json:"tier"`
	Day        string         `json:"day"`
	TotalCalls int            `json:"totalCalls"`
	Breakdown  map[string]int `json:"breakdown"`
	Limit      int            `json:"limit"`
	Remaining  int            `json:"remaining"`
	Unlimited  bool           `json:"unlimited"`
}

// GetPlan handles GET /api/v1/plan.
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	plan, err := h.svc.GetPlan(r.Context(), accountID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// Feature handles GET /api/v1/plan/features/{feature}.
func (h *PlanHandler) Feature(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	f := domain.Feature(r.PathValue("feature"))
	if !f.IsValid() {
		writeCodedError(w, http.StatusNotFound, codeNotFound, "unknown feature")
		return
	}

	writeJSON(w, http.StatusOK, featureResponse{
		Feature: f.String(),
		Enabled: h.svc.CanUseFeature(r.Context(), accountID, f),
	})
}

// Consume handles POST /api/v1/usage/consume. A denied call answers 429.
func (h *PlanHandler) Consume(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req consumeRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	d := h.svc.TryConsumeCall(r.Context(), accountID, req.CallType)
	if !d.Allowed {
		handleError(w, r, h.log, domain.ErrQuotaExceeded)
		return
	}

	writeJSON(w, http.StatusOK, decisionResponse{
		Allowed:   d.Allowed,
		Unlimited: d.Unlimited,
		Remaining: d.Remaining,
	})
}

// Usage handles GET /api/v1/usage.
func (h *PlanHandler) Usage(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	u, err := h.svc.Usage(r.Context(), accountID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	breakdown := u.Breakdown
	if breakdown == nil {
		breakdown = map[string]int{}
	}
	writeJSON(w, http.StatusOK, usageResponse{
		Tier:       u.Tier.String(),
		Day:        u.Day.Format(time.DateOnly),
		TotalCalls: u.TotalCalls,
		Breakdown:  breakdown,
		Limit:      u.Limit,
		Remaining:  u.Remaining,
		Unlimited:  u.Unlimited,
	})
}

func toPlanResponse(p *domain.Plan) planResponse {
	features := make(map[string]bool, len(p.Features))
	for f, on := range p.Features {
		features[f.String()] = on
	}
	return planResponse{
		AccountID:         p.AccountID.String(),
		Tier:              p.Tier.String(),
		Active:            p.Active,
		DailyCallLimit:    p.DailyCallLimit,
		Unlimited:         p.IsUnlimited(),
		StorageQuotaBytes: p.StorageQuotaBytes,
		Features:          features,
		ExpiresAt:         p.ExpiresAt,
	}
}
