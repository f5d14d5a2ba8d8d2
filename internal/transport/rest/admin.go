package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/entitlement"
	"github.com/heartmarshall/assistant-core/internal/transport/middleware"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
)

type planUpgrader interface {
	UpgradePlan(ctx context.Context, input entitlement.UpgradePlanInput) (*domain.Plan, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	plans planUpgrader
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(plans planUpgrader, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		plans: plans,
		log:   logger.With("handler", "admin"),
	}
}

type upgradePlanRequest struct {
	Tier      string     `json:"tier"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// UpgradePlan sets the tier of an account. Billing callbacks use it.
// POST /admin/plans/{accountID}
func (h *AdminHandler) UpgradePlan(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	accountID, ok := pathUUID(w, r, "accountID")
	if !ok {
		return
	}

	var req upgradePlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	plan, err := h.plans.UpgradePlan(r.Context(), entitlement.UpgradePlanInput{
		AccountID: accountID,
		Tier:      domain.PlanTier(req.Tier),
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "plan changed by admin",
		slog.String("account_id", accountID.String()),
		slog.String("tier", plan.Tier.String()))

	writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.AccountIDFromCtx(r.Context()); !ok {
		writeCodedError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
		return false
	}
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return false
	}
	return true
}
