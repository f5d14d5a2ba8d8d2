// Package usage implements the daily AI-call counter repository using PostgreSQL.
package usage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

const upsertCounterSQL = `INSERT INTO usage_counters (account_id, day, total_calls, breakdown, updated_at)
	VALUES ($1, $2, 1,
		CASE WHEN $3::text = '' THEN '{}'::jsonb ELSE jsonb_build_object($3::text, 1) END,
		now())
	ON CONFLICT (account_id, day) DO UPDATE SET
		total_calls = usage_counters.total_calls + 1,
		breakdown = CASE WHEN $3::text = '' THEN usage_counters.breakdown
			ELSE jsonb_set(usage_counters.breakdown, ARRAY[$3::text],
				to_jsonb(COALESCE((usage_counters.breakdown ->> $3::text)::int, 0) + 1))
			END,
		updated_at = now()`

// The row lock taken by ON CONFLICT DO UPDATE serialises concurrent callers
// and the WHERE clause sees the latest committed count, so the stored total
// never exceeds $4.
const incrementSQL = upsertCounterSQL + `
	WHERE usage_counters.total_calls < $4
	RETURNING total_calls`

const getSQL = `SELECT account_id, day, total_calls, breakdown, updated_at
	FROM usage_counters WHERE account_id = $1 AND day = $2`

const deleteBeforeSQL = `DELETE FROM usage_counters WHERE day < $1`

// Repo provides usage counter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// IncrementIfBelow adds one call to the account's counter for day, but only
// if the stored total is below limit. It returns the total after the call and
// whether the call was counted. A non-positive limit never counts.
// callType, when non-empty, is also counted in the per-type breakdown.
func (r *Repo) IncrementIfBelow(ctx context.Context, accountID uuid.UUID, day time.Time, callType string, limit int) (int, bool, error) {
	if limit <= 0 {
		return 0, false, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	err := q.QueryRow(ctx, incrementSQL, accountID, day, callType, limit).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return limit, false, nil
	}
	if err != nil {
		return 0, false, postgres.MapError(err, "usage_counter", accountID)
	}
	return total, true, nil
}

// Get returns the counter of an account for day. A day without calls yields
// a zero counter rather than an error.
func (r *Repo) Get(ctx context.Context, accountID uuid.UUID, day time.Time) (*domain.UsageCounter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		c         domain.UsageCounter
		breakdown []byte
	)
	err := q.QueryRow(ctx, getSQL, accountID, day).Scan(&c.AccountID, &c.Day, &c.TotalCalls, &breakdown, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.UsageCounter{AccountID: accountID, Day: day, Breakdown: map[string]int{}}, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "usage_counter", accountID)
	}

	c.Breakdown = map[string]int{}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &c.Breakdown); err != nil {
			return nil, fmt.Errorf("usage_counter %s: decode breakdown: %w", accountID, err)
		}
	}
	return &c, nil
}

// DeleteBefore removes all counters older than day and returns how many were removed.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteBefore(ctx context.Context, day time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBeforeSQL, day)
	if err != nil {
		return 0, postgres.MapError(err, "usage_counter", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}
