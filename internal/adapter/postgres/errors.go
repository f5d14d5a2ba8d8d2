package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514" // also raised by the alert flag trigger
	codeDataException        = "22000" // pgvector dimension mismatch
	codeInvalidText          = "22P02"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// MapError converts pgx/pgconn errors to domain errors for the repositories
// under this package. Context errors are wrapped but not translated.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target := domainErrorFor(pgErr.Code); target != nil {
			return fmt.Errorf("%s %s: %w: %s", entity, id, target, pgErr.Message)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func domainErrorFor(code string) error {
	switch code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		return domain.ErrNotFound
	case codeCheckViolation, codeDataException, codeInvalidText:
		return domain.ErrValidation
	case codeSerializationFailure, codeDeadlockDetected:
		return domain.ErrConflict
	}
	return nil
}
