package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// DelayedRunner runs fn once after delay. utils.BackgroundProcessManager
// satisfies it.
type DelayedRunner interface {
	After(delay time.Duration, fn func(ctx context.Context))
}

type InteractionDeleter interface {
	DeleteInteractionResponse(applicationID snowflake.ID, interactionToken string, opts ...rest.RequestOpt) error
}

// WithAutoDelete removes the reply of h once ttl has passed. Failed commands
// keep their reply. Deletion is best effort and does not survive a restart.
func WithAutoDelete(runner DelayedRunner, ttl time.Duration, h handler.CommandHandler) handler.CommandHandler {
	if ttl <= 0 {
		return h
	}
	return func(e *handler.CommandEvent) error {
		if err := h(e); err != nil {
			return err
		}
		ScheduleDelete(runner, e.Client().Rest(), ttl, e.ApplicationID(), e.Token())
		return nil
	}
}

func ScheduleDelete(runner DelayedRunner, api InteractionDeleter, ttl time.Duration, applicationID snowflake.ID, token string) {
	runner.After(ttl, func(ctx context.Context) {
		if err := api.DeleteInteractionResponse(applicationID, token, rest.WithCtx(ctx)); err != nil {
			slog.Debug("Failed to delete interaction response",
				slog.String("type", "cmd"),
				slog.Any("error", err))
		}
	})
}
