package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
)

func newUserRepo(t *testing.T) *UserRepository {
	t.Helper()
	return NewUserRepository(openTestDB(t), testMaxBal)
}

// seedBalance brings a fresh user down to balance.
func seedBalance(t *testing.T, repo *UserRepository, userID uint64, balance int64) {
	t.Helper()
	got, ok, err := repo.Withdraw(context.Background(), testGuild, toID(userID), testMaxBal-balance)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, balance, got)
}

func TestUserRepository_DefaultsToCeiling(t *testing.T) {
	repo := newUserRepo(t)

	balance, err := repo.GetBalance(context.Background(), testGuild, 1)
	require.NoError(t, err)
	assert.EqualValues(t, testMaxBal, balance)
}

func TestUserRepository_Withdraw(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t)
	seedBalance(t, repo, 1, 100)

	_, ok, err := repo.Withdraw(ctx, testGuild, 1, 150)
	require.NoError(t, err)
	assert.False(t, ok)

	balance, err := repo.GetBalance(ctx, testGuild, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance, "a refused withdraw leaves the balance alone")

	left, ok, err := repo.Withdraw(ctx, testGuild, 1, 100)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, left)

	left, ok, err = repo.Withdraw(ctx, testGuild, 2, -50)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, testMaxBal, left, "negative amounts clamp to zero")
}

func TestUserRepository_WithdrawNeverNegative(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t)
	seedBalance(t, repo, 1, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			left, ok, err := repo.Withdraw(ctx, testGuild, 1, 90)
			assert.NoError(t, err)
			if ok {
				assert.GreaterOrEqual(t, left, int64(0))
			}
		}()
	}
	wg.Wait()

	balance, err := repo.GetBalance(ctx, testGuild, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1000-11*90, balance)
}

func TestUserRepository_DepositAndGrant(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t)
	seedBalance(t, repo, 1, 100)
	seedBalance(t, repo, 2, testMaxBal-10)

	balance, err := repo.Deposit(ctx, testGuild, 1, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 150, balance)

	balance, err = repo.Deposit(ctx, testGuild, 3, 50)
	require.NoError(t, err)
	assert.EqualValues(t, testMaxBal, balance, "unseen users already sit at the ceiling")

	moved, err := repo.Grant(ctx, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, moved)

	balance, err = repo.GetBalance(ctx, testGuild, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 250, balance)

	balance, err = repo.GetBalance(ctx, testGuild, 2)
	require.NoError(t, err)
	assert.EqualValues(t, testMaxBal, balance, "income is clamped")
}

func TestUserRepository_Transfer(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo(t)
	seedBalance(t, repo, 1, 500)
	seedBalance(t, repo, 2, testMaxBal-100)

	_, err := repo.Transfer(ctx, testGuild, 1, 1, 10)
	assert.ErrorIs(t, err, roles.ErrSelfTransfer)

	result, err := repo.Transfer(ctx, testGuild, 1, 2, 600)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.EqualValues(t, 500, result.SenderBalance)

	result, err = repo.Transfer(ctx, testGuild, 1, 2, 300)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.EqualValues(t, 100, result.Sent)
	assert.EqualValues(t, 200, result.Refunded)
	assert.EqualValues(t, 400, result.SenderBalance)
	assert.EqualValues(t, testMaxBal, result.RecipientBalance)

	sender, err := repo.GetBalance(ctx, testGuild, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 400, sender)

	result, err = repo.Transfer(ctx, testGuild, 2, 1, 1000)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.EqualValues(t, 1400, result.RecipientBalance)
}
