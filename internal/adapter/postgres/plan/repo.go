// Package plan implements the account plan repository using PostgreSQL.
package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

const planColumns = `account_id, tier, active, daily_call_limit, storage_quota_bytes,
	features, expires_at, created_at, updated_at`

const getSQL = `SELECT ` + planColumns + ` FROM account_plans WHERE account_id = $1`

const insertIfAbsentSQL = `INSERT INTO account_plans (` + planColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (account_id) DO NOTHING`

const upsertSQL = `INSERT INTO account_plans (` + planColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (account_id) DO UPDATE SET
		tier                = EXCLUDED.tier,
		active              = EXCLUDED.active,
		daily_call_limit    = EXCLUDED.daily_call_limit,
		storage_quota_bytes = EXCLUDED.storage_quota_bytes,
		features            = EXCLUDED.features,
		expires_at          = EXCLUDED.expires_at,
		updated_at          = EXCLUDED.updated_at
	RETURNING ` + planColumns

// Repo provides plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByAccount returns the plan of an account.
// Returns domain.ErrNotFound if the account has no plan yet.
func (r *Repo) GetByAccount(ctx context.Context, accountID uuid.UUID) (*domain.Plan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPlan(q.QueryRow(ctx, getSQL, accountID))
	if err != nil {
		return nil, postgres.MapError(err, "plan", accountID)
	}
	return p, nil
}

// CreateIfAbsent inserts the plan unless the account already has one and
// returns whichever row is stored afterwards. Concurrent callers for the same
// account all observe the same row.
func (r *Repo) CreateIfAbsent(ctx context.Context, p domain.Plan) (*domain.Plan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	args, err := planArgs(p)
	if err != nil {
		return nil, err
	}
	if _, err := q.Exec(ctx, insertIfAbsentSQL, args...); err != nil {
		return nil, postgres.MapError(err, "plan", p.AccountID)
	}

	stored, err := scanPlan(q.QueryRow(ctx, getSQL, p.AccountID))
	if err != nil {
		return nil, postgres.MapError(err, "plan", p.AccountID)
	}
	return stored, nil
}

// Upsert replaces the plan of an account, keeping its original created_at.
func (r *Repo) Upsert(ctx context.Context, p domain.Plan) (*domain.Plan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	args, err := planArgs(p)
	if err != nil {
		return nil, err
	}
	stored, err := scanPlan(q.QueryRow(ctx, upsertSQL, args...))
	if err != nil {
		return nil, postgres.MapError(err, "plan", p.AccountID)
	}
	return stored, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func planArgs(p domain.Plan) ([]any, error) {
	features := p.Features
	if features == nil {
		features = map[domain.Feature]bool{}
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil, fmt.Errorf("plan %s: encode features: %w", p.AccountID, err)
	}
	return []any{
		p.AccountID, string(p.Tier), p.Active, p.DailyCallLimit, p.StorageQuotaBytes,
		raw, p.ExpiresAt, p.CreatedAt, p.UpdatedAt,
	}, nil
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var (
		p        domain.Plan
		tier     string
		features []byte
	)
	err := row.Scan(
		&p.AccountID, &tier, &p.Active, &p.DailyCallLimit, &p.StorageQuotaBytes,
		&features, &p.ExpiresAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Tier = domain.PlanTier(tier)
	p.Features = map[domain.Feature]bool{}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &p.Features); err != nil {
			return nil, fmt.Errorf("decode features: %w", err)
		}
	}
	return &p, nil
}
