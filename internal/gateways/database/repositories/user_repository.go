package repositories

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/logger"
	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
)

// UserRepository is the economy ledger. Balances live in [0, maxBalance]
// and a user with no row is treated as holding maxBalance.
type UserRepository struct {
	*BaseRepository
	maxBalance int64
}

var _ roles.EconomyLedger = (*UserRepository)(nil)

func NewUserRepository(db *bun.DB, maxBalance int64) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
		maxBalance:     maxBalance,
	}
}

func (r *UserRepository) MaxBalance() int64 {
	return r.maxBalance
}

func (r *UserRepository) clamp(amount int64) int64 {
	return min(max(amount, 0), r.maxBalance)
}

func (r *UserRepository) GetBalance(ctx context.Context, guildID, userID snowflake.ID) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var balances []int64
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("balance").
		Where("guild_id = ? AND user_id = ?", id64(guildID), id64(userID)).
		Scan(ctx, &balances)
	if err != nil {
		return 0, r.HandleError("get_balance", "user", err)
	}
	if len(balances) == 0 {
		return r.maxBalance, nil
	}
	return balances[0], nil
}

// Withdraw debits amount if the balance covers it and returns the new
// balance. false means insufficient funds and nothing changed.
func (r *UserRepository) Withdraw(ctx context.Context, guildID, userID snowflake.ID, amount int64) (int64, bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	amount = r.clamp(amount)

	ql := logger.NewQueryLogger("withdraw", uint64(guildID))
	var balances []int64
	err := r.db.NewRaw(
		"INSERT INTO users (user_id, guild_id, balance) VALUES (?, ?, ?) "+
			"ON CONFLICT (user_id, guild_id) DO UPDATE SET balance = users.balance - ? "+
			"WHERE users.balance >= ? "+
			"RETURNING balance",
		id64(userID), id64(guildID), r.maxBalance-amount, amount, amount,
	).Scan(ctx, &balances)
	ql.Log(err, len(balances) == 1, int64(len(balances)))
	if err != nil {
		return 0, false, r.HandleError("withdraw", "user", err)
	}
	if len(balances) == 0 {
		return 0, false, nil
	}
	return balances[0], true, nil
}

// Deposit credits amount, clamping at the ceiling, and returns the new balance.
func (r *UserRepository) Deposit(ctx context.Context, guildID, userID snowflake.ID, amount int64) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	amount = r.clamp(amount)

	ql := logger.NewQueryLogger("deposit", uint64(guildID))
	var balances []int64
	err := r.db.NewRaw(
		"INSERT INTO users (user_id, guild_id, balance) VALUES (?0, ?1, ?2) "+
			"ON CONFLICT (user_id, guild_id) DO UPDATE SET "+
			"balance = CASE WHEN users.balance + ?3 > ?2 THEN ?2 ELSE users.balance + ?3 END "+
			"RETURNING balance",
		id64(userID), id64(guildID), r.maxBalance, amount,
	).Scan(ctx, &balances)
	ql.Log(err, len(balances) == 1, int64(len(balances)))
	if err != nil {
		return 0, r.HandleError("deposit", "user", err)
	}
	if len(balances) == 0 {
		return 0, fmt.Errorf("deposit returned no balance")
	}
	return balances[0], nil
}

// Grant adds amount to every stored balance below the ceiling, in every
// guild, clamped. Returns how many balances moved.
func (r *UserRepository) Grant(ctx context.Context, amount int64) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	amount = r.clamp(amount)

	ql := logger.NewQueryLogger("grant_income", 0)
	res, err := r.db.NewRaw(
		"UPDATE users SET balance = CASE WHEN balance + ?0 > ?1 THEN ?1 ELSE balance + ?0 END "+
			"WHERE balance < ?1",
		amount, r.maxBalance,
	).Exec(ctx)
	n := rowsAffected(res)
	ql.Log(err, n > 0, n)
	return n, r.HandleError("grant", "user", err)
}

// Transfer moves amount from one user to another. The sender must cover the
// whole amount; whatever would push the recipient over the ceiling goes back
// to the sender. Both rows are touched in id order so concurrent transfers
// between the same pair cannot deadlock.
func (r *UserRepository) Transfer(ctx context.Context, guildID, fromID, toID snowflake.ID, amount int64) (models.Transfer, error) {
	if fromID == toID {
		return models.Transfer{}, roles.ErrSelfTransfer
	}

	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	amount = r.clamp(amount)

	ql := logger.NewQueryLogger("transfer", uint64(guildID))
	var result models.Transfer
	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		result = models.Transfer{}

		first, second := fromID, toID
		if second < first {
			first, second = second, first
		}
		balances := make(map[snowflake.ID]int64, 2)
		for _, id := range []snowflake.ID{first, second} {
			balance, err := r.touch(ctx, tx, guildID, id)
			if err != nil {
				return err
			}
			balances[id] = balance
		}

		if balances[fromID] < amount {
			result.SenderBalance = balances[fromID]
			result.RecipientBalance = balances[toID]
			return nil
		}

		accepted := min(amount, r.maxBalance-balances[toID])
		result = models.Transfer{
			Applied:          true,
			Sent:             accepted,
			Refunded:         amount - accepted,
			SenderBalance:    balances[fromID] - accepted,
			RecipientBalance: balances[toID] + accepted,
		}
		if accepted == 0 {
			return nil
		}

		for id, delta := range map[snowflake.ID]int64{fromID: -accepted, toID: accepted} {
			if _, err := tx.NewRaw(
				"UPDATE users SET balance = balance + ? WHERE guild_id = ? AND user_id = ?",
				delta, id64(guildID), id64(id),
			).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	ql.Log(err, result.Applied, 0)
	if err != nil {
		return models.Transfer{}, r.HandleError("transfer", "user", err)
	}
	return result, nil
}

// touch makes sure a row exists and returns its balance. The no-op update
// takes the row lock on Postgres.
func (r *UserRepository) touch(ctx context.Context, tx bun.Tx, guildID, userID snowflake.ID) (int64, error) {
	var balances []int64
	err := tx.NewRaw(
		"INSERT INTO users (user_id, guild_id, balance) VALUES (?, ?, ?) "+
			"ON CONFLICT (user_id, guild_id) DO UPDATE SET balance = users.balance "+
			"RETURNING balance",
		id64(userID), id64(guildID), r.maxBalance,
	).Scan(ctx, &balances)
	if err != nil {
		return 0, err
	}
	if len(balances) == 0 {
		return 0, fmt.Errorf("no balance row for user %s", userID)
	}
	return balances[0], nil
}
