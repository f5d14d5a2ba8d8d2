// Package alert implements the risk alert ledger repository using PostgreSQL.
package alert

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

var alertColumns = []string{
	"id", "account_id", "type", "title", "message", "severity", "related_entry_ids",
	"suggested_action", "payload", "is_read", "is_dismissed", "alert_date", "created_at",
}

const insertSQL = `INSERT INTO risk_alerts
	(id, account_id, type, title, message, severity, related_entry_ids,
	 suggested_action, payload, is_read, is_dismissed, alert_date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// Repo provides alert persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new alert repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CreateBatch inserts all alerts in one round trip. Callers wanting
// all-or-nothing semantics run it inside TxManager.RunInTx.
func (r *Repo) CreateBatch(ctx context.Context, alerts []domain.RiskAlert) error {
	if len(alerts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, a := range alerts {
		payload, err := json.Marshal(a.Payload)
		if err != nil {
			return fmt.Errorf("risk_alert %s: encode payload: %w", a.ID, err)
		}
		related := a.RelatedEntryIDs
		if related == nil {
			related = []string{}
		}
		batch.Queue(insertSQL,
			a.ID, a.AccountID, string(a.Type), a.Title, a.Message, int(a.Severity), related,
			a.SuggestedAction, payload, a.Read, a.Dismissed, a.AlertDate, a.CreatedAt,
		)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	for _, a := range alerts {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "risk_alert", a.ID)
		}
	}
	if err := br.Close(); err != nil {
		return postgres.MapError(err, "risk_alert", uuid.Nil)
	}
	return nil
}

// List returns the account's non-dismissed alerts, newest first.
func (r *Repo) List(ctx context.Context, accountID uuid.UUID, filter domain.AlertListFilter) ([]domain.RiskAlert, error) {
	b := postgres.Builder().
		Select(alertColumns...).
		From("risk_alerts").
		Where(squirrel.Eq{"account_id": accountID, "is_dismissed": false}).
		OrderBy("created_at DESC", "id ASC")

	if filter.UnreadOnly {
		b = b.Where(squirrel.Eq{"is_read": false})
	}
	if filter.Date != nil {
		b = b.Where(squirrel.Eq{"alert_date": *filter.Date})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build alert list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "risk_alert", accountID)
	}
	defer rows.Close()

	result := make([]domain.RiskAlert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, postgres.MapError(err, "risk_alert", accountID)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "risk_alert", accountID)
	}
	return result, nil
}

// CountUnread returns how many of the account's alerts are neither read nor dismissed.
func (r *Repo) CountUnread(ctx context.Context, accountID uuid.UUID) (int, error) {
	sql, args, err := postgres.Builder().
		Select("count(*)").
		From("risk_alerts").
		Where(squirrel.Eq{"account_id": accountID, "is_read": false, "is_dismissed": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build unread count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "risk_alert", accountID)
	}
	return n, nil
}

// MarkRead flags an alert of the account as read.
// Already-read, unknown and foreign ids are left untouched without error.
func (r *Repo) MarkRead(ctx context.Context, accountID, id uuid.UUID) error {
	return r.setFlag(ctx, accountID, id, "is_read")
}

// Dismiss hides an alert of the account from every later listing.
// Already-dismissed, unknown and foreign ids are left untouched without error.
func (r *Repo) Dismiss(ctx context.Context, accountID, id uuid.UUID) error {
	return r.setFlag(ctx, accountID, id, "is_dismissed")
}

func (r *Repo) setFlag(ctx context.Context, accountID, id uuid.UUID, column string) error {
	sql, args, err := postgres.Builder().
		Update("risk_alerts").
		Set(column, true).
		Where(squirrel.Eq{"id": id, "account_id": accountID, column: false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build alert update: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "risk_alert", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanAlert(row pgx.Row) (*domain.RiskAlert, error) {
	var (
		a         domain.RiskAlert
		alertType string
		severity  int
		payload   []byte
	)
	err := row.Scan(
		&a.ID, &a.AccountID, &alertType, &a.Title, &a.Message, &severity, &a.RelatedEntryIDs,
		&a.SuggestedAction, &payload, &a.Read, &a.Dismissed, &a.AlertDate, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Type = domain.AlertType(alertType)
	a.Severity = domain.Severity(severity)
	a.Payload, err = decodePayload(a.Type, payload)
	if err != nil {
		return nil, fmt.Errorf("risk_alert %s: %w", a.ID, err)
	}
	return &a, nil
}

// decodePayload restores the typed payload stored for an alert type.
func decodePayload(t domain.AlertType, raw []byte) (domain.AlertPayload, error) {
	switch t {
	case domain.AlertTypeScheduleConflict:
		return decodeAs[domain.ConflictPayload](t, raw)
	case domain.AlertTypePreparationShortage:
		return decodeAs[domain.PreparationPayload](t, raw)
	case domain.AlertTypeOverworkWarning:
		return decodeAs[domain.OverworkPayload](t, raw)
	case domain.AlertTypeDeadlineRisk:
		return decodeAs[domain.DeadlinePayload](t, raw)
	case domain.AlertTypeHealthConcern:
		return decodeAs[domain.HealthPayload](t, raw)
	}
	return nil, fmt.Errorf("unknown alert type %q", t)
}

func decodeAs[T domain.AlertPayload](t domain.AlertType, raw []byte) (domain.AlertPayload, error) {
	var v T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", t, err)
		}
	}
	return v, nil
}
