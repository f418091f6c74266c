// Package db provides optional PostgreSQL access: loading business records
// from a table and persisting computed KPI bundles.
package db

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/kpi-dashboard/internal/dataset"
	"github.com/jonathan/kpi-dashboard/internal/types"
)

// DefaultRecordsTable is the table records are loaded from when the caller
// does not name one.
const DefaultRecordsTable = "business_records"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// LoadRecords reads every business record from the named table, in insertion
// order. NULL columns become nil fields, matching the CSV loader's handling
// of absent values.
func (db *DB) LoadRecords(ctx context.Context, table string) ([]types.Record, error) {
	if table == "" {
		table = DefaultRecordsTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid records table name: %q", table)
	}

	query := fmt.Sprintf(
		`SELECT date, nps_score, satisfaction_score, converted, visitors, sales, status
		 FROM %s ORDER BY id`, table)
	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records from %s: %w", table, err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var rec types.Record
		if err := rows.Scan(
			&rec.Date,
			&rec.NPSScore,
			&rec.SatisfactionScore,
			&rec.Converted,
			&rec.Visitors,
			&rec.Sales,
			&rec.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		// Same range policy as the file loaders: out-of-range values are
		// treated as absent, not rejected.
		dataset.DropOutOfRange(&rec)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

// SaveBundle stores a computed bundle as a JSONB row keyed by its ID, so
// downstream consumers can fetch past analysis runs.
func (db *DB) SaveBundle(ctx context.Context, bundle *types.KPIBundle) error {
	content, err := bundle.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal bundle: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO kpi_bundles (id, generated_at, record_count, content)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET generated_at = $2, record_count = $3, content = $4`,
		bundle.ID, bundle.GeneratedAt, bundle.RecordCount, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save bundle %s: %w", bundle.ID, err)
	}
	return nil
}
