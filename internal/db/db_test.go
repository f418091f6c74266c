package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/kpi-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecords_RejectsInvalidTableName(t *testing.T) {
	db := &DB{}
	_, err := db.LoadRecords(context.Background(), "records; DROP TABLE x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid records table name")
}

// Integration tests run only when TEST_DATABASE_URL points at a database with
// the business_records and kpi_bundles tables.
func TestDB_Integration(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database integration tests")
	}

	ctx := context.Background()
	db, err := Connect(ctx, databaseURL)
	require.NoError(t, err)
	defer db.Close()

	t.Run("load records from default table", func(t *testing.T) {
		_, err := db.LoadRecords(ctx, "")
		assert.NoError(t, err)
	})

	t.Run("save bundle is idempotent per id", func(t *testing.T) {
		bundle := &types.KPIBundle{
			ID:          uuid.New(),
			GeneratedAt: time.Now().UTC(),
			RecordCount: 1,
			NPS:         &types.NPSResult{Score: 50, Promoters: 1, TotalResponses: 1, PctPromoters: 100},
		}
		require.NoError(t, db.SaveBundle(ctx, bundle))
		require.NoError(t, db.SaveBundle(ctx, bundle))
	})
}
