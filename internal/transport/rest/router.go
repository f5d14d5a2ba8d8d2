package rest

import "net/http"

// Handlers groups every handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Plan         *PlanHandler
	Memory       *MemoryHandler
	Conversation *ConversationHandler
	Schedule     *ScheduleHandler
	Alert        *AlertHandler
	Briefing     *BriefingHandler
	Admin        *AdminHandler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("GET /api/v1/plan", h.Plan.GetPlan)
	mux.HandleFunc("GET /api/v1/plan/features/{feature}", h.Plan.Feature)
	mux.HandleFunc("POST /api/v1/usage/consume", h.Plan.Consume)
	mux.HandleFunc("GET /api/v1/usage", h.Plan.Usage)

	mux.HandleFunc("POST /api/v1/memories", h.Memory.Save)
	mux.HandleFunc("POST /api/v1/memories/search", h.Memory.Search)
	mux.HandleFunc("GET /api/v1/memories/recent", h.Memory.Recent)
	mux.HandleFunc("DELETE /api/v1/memories/{id}", h.Memory.Delete)

	mux.HandleFunc("POST /api/v1/conversations/insights", h.Conversation.Insights)

	mux.HandleFunc("POST /api/v1/schedule/analyze", h.Schedule.Analyze)

	mux.HandleFunc("GET /api/v1/alerts", h.Alert.List)
	mux.HandleFunc("POST /api/v1/alerts/{id}/read", h.Alert.MarkRead)
	mux.HandleFunc("POST /api/v1/alerts/{id}/dismiss", h.Alert.Dismiss)

	mux.HandleFunc("POST /api/v1/briefings", h.Briefing.Compose)

	mux.HandleFunc("POST /admin/plans/{accountID}", h.Admin.UpgradePlan)

	return mux
}
