package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/risk"
)

type riskService interface {
	Analyze(ctx context.Context, input risk.AnalyzeInput) ([]domain.RiskAlert, error)
}

// ScheduleHandler serves schedule risk analysis.
type ScheduleHandler struct {
	svc riskService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc riskService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

type scheduleEntryRequest struct {
	ID                 string  `json:"id"`
	Label              string  `json:"label"`
	Start              string  `json:"start"`
	End                string  `json:"end"`
	Date               *string `json:"date"`
	Weekdays           []int   `json:"weekdays"`
	PreparationMinutes *int    `json:"preparationMinutes"`
}

type analyzeRequest struct {
	Date      *string                `json:"date"`
	Candidate scheduleEntryRequest   `json:"candidate"`
	Existing  []scheduleEntryRequest `json:"existing"`
}

// Analyze handles POST /api/v1/schedule/analyze.
func (h *ScheduleHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAccount(w, r); !ok {
		return
	}

	var req analyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in, err := toAnalyzeInput(req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	alerts, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAlertResponses(alerts))
}

func toAnalyzeInput(req analyzeRequest) (risk.AnalyzeInput, error) {
	var in risk.AnalyzeInput

	if req.Date != nil {
		d, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			return in, domain.NewValidationError("date", "must be YYYY-MM-DD")
		}
		in.Date = d
	}

	cand, err := toScheduleEntry(req.Candidate, "candidate")
	if err != nil {
		return in, err
	}
	in.Candidate = cand

	in.Existing = make([]domain.ScheduleEntry, 0, len(req.Existing))
	for i, e := range req.Existing {
		entry, err := toScheduleEntry(e, fmt.Sprintf("existing[%d]", i))
		if err != nil {
			return in, err
		}
		in.Existing = append(in.Existing, entry)
	}
	return in, nil
}

func toScheduleEntry(e scheduleEntryRequest, field string) (domain.ScheduleEntry, error) {
	out := domain.ScheduleEntry{
		ID:                 e.ID,
		Label:              e.Label,
		Start:              e.Start,
		End:                e.End,
		PreparationMinutes: e.PreparationMinutes,
	}
	if e.Date != nil {
		d, err := time.Parse(time.DateOnly, *e.Date)
		if err != nil {
			return out, domain.NewValidationError(field+".date", "must be YYYY-MM-DD")
		}
		out.Date = &d
	}
	for _, wd := range e.Weekdays {
		if wd < int(time.Sunday) || wd > int(time.Saturday) {
			return out, domain.NewValidationError(field+".weekdays", "must be 0 (Sunday) to 6 (Saturday)")
		}
		out.Weekdays = append(out.Weekdays, time.Weekday(wd))
	}
	return out, nil
}
