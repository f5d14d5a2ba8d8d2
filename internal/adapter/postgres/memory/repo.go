// Package memory implements the semantic memory repository using PostgreSQL
// with the pgvector extension.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	postgres "github.com/heartmarshall/assistant-core/internal/adapter/postgres"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

var memoryColumns = []string{
	"id", "account_id", "type", "content", "importance", "memory_date", "metadata", "created_at",
}

const insertSQL = `INSERT INTO memories
	(id, account_id, type, content, embedding, importance, memory_date, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Repo provides memory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new memory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new memory. Each call writes a distinct row.
func (r *Repo) Create(ctx context.Context, m domain.Memory) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metadata := m.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("memory %s: encode metadata: %w", m.ID, err)
	}

	_, err = q.Exec(ctx, insertSQL,
		m.ID, m.AccountID, string(m.Type), m.Content, pgvector.NewVector(m.Embedding),
		m.Importance, m.MemoryDate, raw, m.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "memory", m.ID)
	}
	return nil
}

// Search returns the account's memories whose cosine similarity to query is
// at least filter.MinSimilarity, most similar first, at most filter.Limit.
// Memories stored with a different dimensionality are never compared.
func (r *Repo) Search(ctx context.Context, accountID uuid.UUID, query []float32, filter domain.MemorySearchFilter) ([]domain.ScoredMemory, error) {
	vec := pgvector.NewVector(query)

	b := postgres.Builder().
		Select(memoryColumns...).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", vec)).
		From("memories").
		Where(squirrel.Eq{"account_id": accountID}).
		Where("vector_dims(embedding) = ?", len(query)).
		Where("1 - (embedding <=> ?) >= ?", vec, filter.MinSimilarity).
		OrderByClause("embedding <=> ? ASC, created_at DESC, id ASC", vec)

	if filter.Type != nil {
		b = b.Where(squirrel.Eq{"type": string(*filter.Type)})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build memory search: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "memory", accountID)
	}
	defer rows.Close()

	result := make([]domain.ScoredMemory, 0)
	for rows.Next() {
		var sm domain.ScoredMemory
		m, err := scanMemory(rows, &sm.Similarity)
		if err != nil {
			return nil, postgres.MapError(err, "memory", accountID)
		}
		sm.Memory = *m
		result = append(result, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "memory", accountID)
	}
	return result, nil
}

// Recent returns the account's newest memories first.
func (r *Repo) Recent(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Memory, error) {
	b := postgres.Builder().
		Select(memoryColumns...).
		From("memories").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recent memories: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "memory", accountID)
	}
	defer rows.Close()

	result := make([]domain.Memory, 0)
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			return nil, postgres.MapError(err, "memory", accountID)
		}
		result = append(result, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "memory", accountID)
	}
	return result, nil
}

// Delete removes a memory owned by the account. Deleting an id that does not
// exist or belongs to another account affects nothing and is not an error.
// Reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, accountID, id uuid.UUID) (bool, error) {
	sql, args, err := postgres.Builder().
		Delete("memories").
		Where(squirrel.Eq{"id": id, "account_id": accountID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build memory delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "memory", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanMemory(row pgx.Row, extra ...any) (*domain.Memory, error) {
	var (
		m          domain.Memory
		memType    string
		memoryDate *time.Time
		metadata   []byte
	)
	dest := append([]any{
		&m.ID, &m.AccountID, &memType, &m.Content, &m.Importance, &memoryDate, &metadata, &m.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	m.Type = domain.MemoryType(memType)
	m.MemoryDate = memoryDate
	m.Metadata = map[string]any{}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &m.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &m, nil
}
