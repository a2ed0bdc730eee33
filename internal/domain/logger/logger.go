package logger

import (
	"log/slog"
	"time"
)

// QueryLogger times one ledger statement and logs its outcome.
type QueryLogger struct {
	Operation string
	GuildID   uint64
	StartTime time.Time
}

func NewQueryLogger(operation string, guildID uint64) *QueryLogger {
	return &QueryLogger{
		Operation: operation,
		GuildID:   guildID,
		StartTime: time.Now(),
	}
}

// Log records the statement. applied distinguishes a write whose condition
// held from one that matched no rows.
func (l *QueryLogger) Log(err error, applied bool, rowsAffected int64) {
	duration := time.Since(l.StartTime)

	if err != nil {
		slog.Error("Ledger query failed",
			slog.String("type", "db"),
			slog.String("operation", l.Operation),
			slog.Uint64("guild_id", l.GuildID),
			slog.Duration("took", duration),
			slog.Any("error", err),
		)
		return
	}

	slog.Debug("Ledger query executed",
		slog.String("type", "db"),
		slog.String("operation", l.Operation),
		slog.Uint64("guild_id", l.GuildID),
		slog.Bool("applied", applied),
		slog.Duration("took", duration),
		slog.Int64("affected_rows", rowsAffected),
	)
}
