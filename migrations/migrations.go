// Package migrations embeds the goose SQL migrations and opens a provider
// over them for the migrate command and the integration test harness.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
)

// FS holds every *.sql migration in apply order.
//
//go:embed *.sql
var FS embed.FS

// Open connects to dsn through database/sql, which goose requires, and
// returns a provider bound to the embedded migrations. Closing the returned
// *sql.DB is the caller's job.
func Open(dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("migrations.Open: %w", err)
	}

	// goose.NewProvider honours StatementBegin/End around $$-delimited functions.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrations.Open: %w", err)
	}
	return provider, db, nil
}
