package economy

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/repositories"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/database"
)

type failingLedger struct{}

func (failingLedger) Grant(context.Context, int64) (int64, error) {
	return 0, errors.New("db down")
}

func TestIncome_Tick(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLite(ctx, filepath.Join(t.TempDir(), "income.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.InitializeSchema(ctx))

	users := repositories.NewUserRepository(db.BunDB(), 1000)
	_, ok, err := users.Withdraw(ctx, 1, 7, 950)
	require.NoError(t, err)
	require.True(t, ok)

	income := NewIncome(users, 100)
	moved, err := income.Tick(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, moved)

	balance, err := users.GetBalance(ctx, 1, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 150, balance)

	_, err = NewIncome(failingLedger{}, 100).Tick(ctx)
	assert.Error(t, err)
}
