package logger

import (
	"context"
	"log/slog"
	"time"
)

// CommandStatus is the outcome attached to a finished slash command.
type CommandStatus string

const (
	StatusSuccess CommandStatus = "success"
	StatusSlow    CommandStatus = "slow"
	StatusFailed  CommandStatus = "failed"
	StatusTimeout CommandStatus = "timeout"
)

var commandMessages = map[CommandStatus]struct {
	level slog.Level
	msg   string
}{
	StatusSuccess: {slog.LevelInfo, "Command completed"},
	StatusSlow:    {slog.LevelWarn, "Command executed slowly"},
	StatusFailed:  {slog.LevelError, "Command failed"},
	StatusTimeout: {slog.LevelError, "Command timed out"},
}

// LogCommand records how a command ended. err is only attached when set.
func LogCommand(name string, status CommandStatus, took time.Duration, err error, attrs ...any) {
	out, ok := commandMessages[status]
	if !ok {
		out = commandMessages[StatusFailed]
	}

	base := []any{
		slog.String("type", "cmd"),
		slog.String("name", name),
		slog.String("status", string(status)),
		slog.Duration("took", took),
	}
	if err != nil {
		base = append(base, slog.Any("error", err))
	}
	slog.Log(context.Background(), out.level, out.msg, append(base, attrs...)...)
}

// LogSystem records a process lifecycle event.
func LogSystem(msg string, attrs ...any) {
	slog.Info(msg, tagged("sys", attrs)...)
}

// LogError records a failure that is not tied to a single command.
func LogError(msg string, err error, attrs ...any) {
	slog.Error(msg, tagged("error", append([]any{slog.Any("error", err)}, attrs...))...)
}

func tagged(kind string, attrs []any) []any {
	return append([]any{slog.String("type", kind)}, attrs...)
}
