package roles_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/repositories"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/config"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/database"
)

func TestExtendAgainstStore_OneCurrencyBuysOneSecond(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLite(ctx, filepath.Join(t.TempDir(), "extend.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.InitializeSchema(ctx))

	now := time.Unix(1_700_000_000, 0)
	roleRepo := repositories.NewRoleRepository(db.BunDB(), repositories.Horizons{Day: 24 * time.Hour, Hour: time.Hour})
	roleRepo.SetClock(func() time.Time { return now })
	userRepo := repositories.NewUserRepository(db.BunDB(), config.DefaultMaxBalance)

	const (
		guild snowflake.ID = 1
		role  snowflake.ID = 10
		owner snowflake.ID = 5
	)
	ownerID := owner
	inserted, err := roleRepo.CreateRole(ctx, guild, role, "Gold", &ownerID, nil, config.DefaultMaxOwnedRoles)
	require.NoError(t, err)
	require.True(t, inserted)

	svc := roles.NewService(roles.Config{
		Quota:            config.DefaultMaxOwnedRoles,
		MaxExtendSeconds: config.DefaultMaxExtendSeconds,
		MaxBalance:       userRepo.MaxBalance(),
	}, roles.Deps{
		Owners:    roleRepo,
		Economy:   userRepo,
		Deadlines: roleRepo,
	})

	before, err := userRepo.GetBalance(ctx, guild, owner)
	require.NoError(t, err)

	deadline, err := svc.Extend(ctx, guild, owner, role, 2_000_000)
	require.NoError(t, err)

	after, err := userRepo.GetBalance(ctx, guild, owner)
	require.NoError(t, err)

	paid := before - after
	added := int64(deadline.Sub(now) / time.Second)
	assert.Equal(t, config.DefaultMaxBalance, paid)
	assert.Equal(t, paid, added)
}
