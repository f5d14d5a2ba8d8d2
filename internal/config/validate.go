package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Entitlement.validate(); err != nil {
		return fmt.Errorf("entitlement: %w", err)
	}
	if err := c.Memory.validate(); err != nil {
		return fmt.Errorf("memory: %w", err)
	}
	if err := c.Insight.validate(); err != nil {
		return fmt.Errorf("insight: %w", err)
	}
	if err := c.Risk.validate(); err != nil {
		return fmt.Errorf("risk: %w", err)
	}

	if c.Alerts.PageSize <= 0 {
		return fmt.Errorf("alerts: page_size must be > 0 (got %d)", c.Alerts.PageSize)
	}
	if c.Briefing.MemoryTopK < 0 {
		return fmt.Errorf("briefing: memory_top_k must be >= 0 (got %d)", c.Briefing.MemoryTopK)
	}
	if c.Briefing.MaxItems <= 0 {
		return fmt.Errorf("briefing: max_items must be > 0 (got %d)", c.Briefing.MaxItems)
	}

	return nil
}

func (e *EntitlementConfig) validate() error {
	for name, limit := range map[string]int{
		"standard_daily_calls": e.StandardDailyCalls,
		"pro_daily_calls":      e.ProDailyCalls,
		"max_daily_calls":      e.MaxDailyCalls,
	} {
		if limit < 0 && limit != domain.UnlimitedCalls {
			return fmt.Errorf("%s must be >= 0 or %d for unlimited (got %d)", name, domain.UnlimitedCalls, limit)
		}
	}
	if e.UsageRetentionDays <= 0 {
		return fmt.Errorf("usage_retention_days must be > 0 (got %d)", e.UsageRetentionDays)
	}
	return nil
}

func (m *MemoryConfig) validate() error {
	if m.EmbeddingDims <= 0 {
		return fmt.Errorf("embedding_dims must be > 0 (got %d)", m.EmbeddingDims)
	}
	if m.DefaultMinSimilarity < -1 || m.DefaultMinSimilarity > 1 {
		return fmt.Errorf("default_min_similarity must be in [-1, 1] (got %v)", m.DefaultMinSimilarity)
	}
	if m.DefaultSearchLimit <= 0 || m.DefaultSearchLimit > m.MaxSearchLimit {
		return fmt.Errorf("default_search_limit must be in [1, %d] (got %d)", m.MaxSearchLimit, m.DefaultSearchLimit)
	}
	if m.DefaultRecentLimit <= 0 {
		return fmt.Errorf("default_recent_limit must be > 0 (got %d)", m.DefaultRecentLimit)
	}
	return nil
}

func (i *InsightConfig) validate() error {
	switch i.Dispatcher {
	case DispatcherInProcess, DispatcherAsynq:
	default:
		return fmt.Errorf("dispatcher must be %q or %q (got %q)", DispatcherInProcess, DispatcherAsynq, i.Dispatcher)
	}
	if i.WindowSize <= 0 {
		return fmt.Errorf("window_size must be > 0 (got %d)", i.WindowSize)
	}
	if i.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be > 0 (got %d)", i.MaxCandidates)
	}
	if i.MinImportance < 0 || i.MinImportance > 1 {
		return fmt.Errorf("min_importance must be in [0, 1] (got %v)", i.MinImportance)
	}
	if i.MaxInFlight <= 0 {
		return fmt.Errorf("max_in_flight must be > 0 (got %d)", i.MaxInFlight)
	}
	return nil
}

func (r *RiskConfig) validate() error {
	if r.DefaultPreparationMinutes < 0 {
		return fmt.Errorf("default_preparation_minutes must be >= 0 (got %d)", r.DefaultPreparationMinutes)
	}
	if r.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("default_duration_minutes must be > 0 (got %d)", r.DefaultDurationMinutes)
	}
	if r.OverloadThresholdMinutes <= 0 {
		return fmt.Errorf("overload_threshold_minutes must be > 0 (got %d)", r.OverloadThresholdMinutes)
	}
	r.HighStakesKeywords = ParseKeywords(r.HighStakesKeywordsRaw)
	return nil
}

// ParseKeywords splits a comma-separated list, trimming and lowercasing
// each item and dropping empties. An empty string returns a nil slice.
func ParseKeywords(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		keywords = append(keywords, p)
	}
	return keywords
}
