package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultTimeout  = 10 * time.Second
	maxTxAttempts   = 5
	txRetryInterval = 20 * time.Millisecond
)

// serializationFailure is the Postgres SQLSTATE for a serializable conflict.
const serializationFailure = "40001"

// BaseRepository carries what every ledger shares: the bun handle, the
// statement timeout and the clock used for deadline arithmetic.
type BaseRepository struct {
	db             *bun.DB
	defaultTimeout time.Duration
	now            func() time.Time
}

func NewBaseRepository(db *bun.DB) *BaseRepository {
	return &BaseRepository{
		db:             db,
		defaultTimeout: defaultTimeout,
		now:            time.Now,
	}
}

// SetClock replaces the wall clock. Tests only.
func (br *BaseRepository) SetClock(now func() time.Time) {
	br.now = now
}

// RepositoryError represents a repository-level error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

func (br *BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.defaultTimeout)
}

func (br *BaseRepository) HandleError(operation, entity string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// Serializable runs fn in a transaction that Postgres executes at
// SERIALIZABLE isolation, retrying on serialization conflicts. SQLite runs a
// single writer, so its transactions take the default options.
func (br *BaseRepository) Serializable(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	var opts *sql.TxOptions
	if br.db.Dialect().Name() == dialect.PG {
		opts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = br.db.RunInTx(ctx, opts, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryInterval):
		}
	}
	return fmt.Errorf("transaction retries exhausted: %w", err)
}

// Transaction runs fn with the store's default isolation.
func (br *BaseRepository) Transaction(ctx context.Context, fn func(context.Context, bun.Tx) error) error {
	return br.db.RunInTx(ctx, nil, fn)
}

func isSerializationFailure(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == serializationFailure
	}
	return false
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}

func id64(id snowflake.ID) int64 {
	return int64(id)
}
