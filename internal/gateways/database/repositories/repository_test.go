package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/database"
)

const (
	testGuild  = 1000
	testQuota  = 20
	testMaxBal = 1_000_000
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *bun.DB {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLite(ctx, filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.InitializeSchema(ctx))
	return db.BunDB()
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func toID(v uint64) snowflake.ID {
	return snowflake.ID(v)
}
