package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSchema_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLite(ctx, filepath.Join(t.TempDir(), "roles.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.False(t, db.IsPostgres())

	version, err := db.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, db.InitializeSchema(ctx))
	require.NoError(t, db.InitializeSchema(ctx), "schema init is idempotent")

	version, err = db.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)

	_, err = db.ExecWithLog(ctx, "INSERT INTO users (user_id, guild_id, balance) VALUES (1, 2, 3)")
	require.NoError(t, err)
	require.NoError(t, db.ResetAppTables(ctx))

	var count int
	require.NoError(t, db.BunDB().NewRaw("SELECT COUNT(*) FROM users").Scan(ctx, &count))
	assert.Zero(t, count)
}
