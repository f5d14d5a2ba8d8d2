package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// SeedPlan stores a plan for a fresh account built from the default catalogue.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, tier domain.PlanTier) domain.Plan {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.DefaultPlanCatalog().Build(uuid.New(), tier, now)

	features, err := json.Marshal(p.Features)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan encode features: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO account_plans (account_id, tier, active, daily_call_limit, storage_quota_bytes, features, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.AccountID, string(p.Tier), p.Active, p.DailyCallLimit, p.StorageQuotaBytes, features, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan insert: %v", err)
	}

	return p
}

// SeedMemory stores a memory with the given content and embedding.
func SeedMemory(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, content string, embedding []float32) domain.Memory {
	t.Helper()

	m := domain.Memory{
		ID:         uuid.New(),
		AccountID:  accountID,
		Type:       domain.MemoryTypeMemo,
		Content:    content,
		Embedding:  embedding,
		Importance: 0.5,
		Metadata:   map[string]any{},
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO memories (id, account_id, type, content, embedding, importance, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.AccountID, string(m.Type), m.Content, pgvector.NewVector(m.Embedding), m.Importance, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMemory insert: %v", err)
	}

	return m
}

// SeedAlert stores an unread schedule-conflict alert dated day.
func SeedAlert(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID, day time.Time) domain.RiskAlert {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.NewRiskAlert(accountID,
		domain.ConflictPayload{ConflictingEntryID: "e1", ConflictingLabel: "Standup", SuggestedStart: "10:00"},
		"Schedule conflict", "Overlaps with Standup", 4, []string{"e1"}, nil, day, now)

	payload, err := json.Marshal(a.Payload)
	if err != nil {
		t.Fatalf("testhelper: SeedAlert encode payload: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO risk_alerts (id, account_id, type, title, message, severity, related_entry_ids, payload, alert_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID, a.AccountID, string(a.Type), a.Title, a.Message, int(a.Severity), a.RelatedEntryIDs, payload, a.AlertDate, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAlert insert: %v", err)
	}

	return a
}
