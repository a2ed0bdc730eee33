package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/logger"
)

const (
	slowCommand    = 2 * time.Second
	commandTimeout = 45 * time.Second
)

// CommandRecorder receives the duration of every handled command.
type CommandRecorder interface {
	CommandHandled(command string, took time.Duration)
}

// WrapWithLogging wraps a command handler with logging and timing.
func WrapWithLogging(name string, recorder CommandRecorder, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := ""
		if id := e.GuildID(); id != nil {
			guildID = id.String()
		}

		slog.Info("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
			slog.String("guild_id", guildID),
			slog.String("channel_id", e.ChannelID().String()),
		)

		return observe(name, commandTimeout, recorder, func() error { return h(e) },
			slog.String("user_id", e.User().ID.String()),
			slog.String("guild_id", guildID),
		)
	}
}

// observe runs fn and logs its outcome. A run that exceeds timeout is
// reported as failed; fn keeps running in the background.
func observe(name string, timeout time.Duration, recorder CommandRecorder, fn func() error, extra ...any) error {
	start := time.Now()

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		duration := time.Since(start)
		recorder.CommandHandled(name, duration)

		status := logger.StatusSuccess
		switch {
		case err != nil:
			status = logger.StatusFailed
		case duration > slowCommand:
			status = logger.StatusSlow
		}
		logger.LogCommand(name, status, duration, err, extra...)
		return err

	case <-time.After(timeout):
		recorder.CommandHandled(name, timeout)
		logger.LogCommand(name, logger.StatusTimeout, timeout, nil, extra...)
		return fmt.Errorf("command timed out after %s", timeout)
	}
}
