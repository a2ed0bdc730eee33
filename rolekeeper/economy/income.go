// Package economy pays the periodic income tick.
package economy

import (
	"context"
	"log/slog"
	"time"
)

type IncomeLedger interface {
	Grant(ctx context.Context, amount int64) (int64, error)
}

// Income credits every balance below the ceiling on each tick.
type Income struct {
	ledger IncomeLedger
	amount int64
}

func NewIncome(ledger IncomeLedger, amount int64) *Income {
	return &Income{ledger: ledger, amount: amount}
}

// Tick pays one round of income and returns how many balances moved.
func (i *Income) Tick(ctx context.Context) (int64, error) {
	start := time.Now()
	moved, err := i.ledger.Grant(ctx, i.amount)
	if err != nil {
		slog.Error("Income tick failed",
			slog.String("type", "db"),
			slog.Int64("amount", i.amount),
			slog.Any("error", err))
		return 0, err
	}

	slog.Debug("Income paid",
		slog.String("type", "sys"),
		slog.Int64("amount", i.amount),
		slog.Int64("balances", moved),
		slog.Duration("took", time.Since(start)))
	return moved, nil
}
