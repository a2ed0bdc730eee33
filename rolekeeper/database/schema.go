package database

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
)

const schemaVersion = 1 // bump when tables or indexes change

var appTables = []string{"user_roles", "roles", "users", "guilds"}

// InitializeSchema creates the tables and indexes if they do not exist yet.
// The same DDL runs on Postgres and SQLite.
func (db *DB) InitializeSchema(ctx context.Context) error {
	tables := []any{
		(*models.AppMeta)(nil),
		(*models.Guild)(nil),
		(*models.Role)(nil),
		(*models.UserRole)(nil),
		(*models.User)(nil),
	}

	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_roles_guild_owner ON roles(guild_id, owner_id);",
		"CREATE INDEX IF NOT EXISTS idx_roles_guild_deadline ON roles(guild_id, deadline) WHERE deadline IS NOT NULL;",
		"CREATE INDEX IF NOT EXISTS idx_user_roles_guild_user ON user_roles(guild_id, user_id);",
		"CREATE INDEX IF NOT EXISTS idx_user_roles_guild_role ON user_roles(guild_id, role_id);",
		"CREATE INDEX IF NOT EXISTS idx_users_balance ON users(balance);",
	}
	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	meta := &models.AppMeta{Key: "schema_version", Value: strconv.Itoa(schemaVersion)}
	if _, err := db.bunDB.NewInsert().
		Model(meta).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	slog.Info("Database schema ready",
		slog.String("type", "db"),
		slog.Int("schema_version", schemaVersion))
	return nil
}

// SchemaVersion reads the recorded schema version, or 0 before the first init.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	meta := new(models.AppMeta)
	err := db.bunDB.NewSelect().Model(meta).Where("key = ?", "schema_version").Scan(ctx)
	if err != nil {
		return 0, nil
	}
	return strconv.Atoi(meta.Value)
}

// ResetAppTables empties every application table.
func (db *DB) ResetAppTables(ctx context.Context) error {
	for _, table := range appTables {
		if _, err := db.ExecWithLog(ctx, fmt.Sprintf("DELETE FROM %q", table)); err != nil {
			return fmt.Errorf("failed to reset %s: %w", table, err)
		}
	}
	slog.Info("App tables reset", slog.String("type", "db"), slog.Any("tables", appTables))
	return nil
}
