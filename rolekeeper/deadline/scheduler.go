// Package deadline warns role owners before their roles run out. Nothing is
// deleted when a deadline passes; removal stays with owners and admins.
package deadline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/utils"
)

//go:generate mockgen -source=scheduler.go -destination=mock/scheduler.go -package=mock

type Store interface {
	GuildsWithDeadlines(ctx context.Context) ([]snowflake.ID, error)
	SweepWarnings(ctx context.Context, guildID snowflake.ID, horizon time.Duration, flag models.WarningFlag) ([]models.Role, error)
}

// Notifier delivers warning text to a guild. Delivery is best effort.
type Notifier interface {
	SendBatch(ctx context.Context, guildID snowflake.ID, text string) error
}

// Window is one warning horizon and the flag that marks it as sent.
type Window struct {
	Horizon time.Duration
	Flag    models.WarningFlag
	Label   string
}

func DefaultWindows(day, hour time.Duration) []Window {
	return []Window{
		{Horizon: day, Flag: models.WarningDay, Label: "in less than a day"},
		{Horizon: hour, Flag: models.WarningHour, Label: "in less than an hour"},
	}
}

// Recorder counts swept warnings.
type Recorder interface {
	WarningsSent(flag models.WarningFlag, n int)
}

type Scheduler struct {
	store       Store
	notifier    Notifier
	windows     []Window
	budget      int
	concurrency int
	metrics     Recorder
}

type Option func(*Scheduler)

func WithConcurrency(n int) Option {
	return func(s *Scheduler) { s.concurrency = n }
}

func WithRecorder(r Recorder) Option {
	return func(s *Scheduler) { s.metrics = r }
}

func NewScheduler(store Store, notifier Notifier, windows []Window, budget int, opts ...Option) *Scheduler {
	s := &Scheduler{
		store:       store,
		notifier:    notifier,
		windows:     windows,
		budget:      budget,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sweep runs every window over every guild that has deadlines. Guilds are
// swept concurrently; a failing guild does not stop the others.
func (s *Scheduler) Sweep(ctx context.Context) error {
	start := time.Now()
	guilds, err := s.store.GuildsWithDeadlines(ctx)
	if err != nil {
		return fmt.Errorf("failed to list guilds with deadlines: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, guildID := range guilds {
		g.Go(func() error {
			if err := s.SweepGuild(ctx, guildID); err != nil {
				slog.Error("Deadline sweep failed",
					slog.String("type", "sys"),
					slog.String("guild_id", guildID.String()),
					slog.Any("error", err))
			}
			return nil
		})
	}
	err = g.Wait()

	slog.Debug("Deadline sweep finished",
		slog.String("type", "sys"),
		slog.Int("guilds", len(guilds)),
		slog.Duration("took", time.Since(start)))
	return err
}

// SweepGuild flips and reports each window's due warnings for one guild.
// Flags are flipped before sending, so a failed send is not retried.
func (s *Scheduler) SweepGuild(ctx context.Context, guildID snowflake.ID) error {
	for _, w := range s.windows {
		roles, err := s.store.SweepWarnings(ctx, guildID, w.Horizon, w.Flag)
		if err != nil {
			return err
		}
		if len(roles) == 0 {
			continue
		}
		if s.metrics != nil {
			s.metrics.WarningsSent(w.Flag, len(roles))
		}

		for _, text := range utils.BatchLines(warningLines(roles, w.Label), s.budget) {
			if err := s.notifier.SendBatch(ctx, guildID, text); err != nil {
				slog.Warn("Failed to deliver deadline warning",
					slog.String("type", "sys"),
					slog.String("guild_id", guildID.String()),
					slog.String("window", string(w.Flag)),
					slog.Any("error", err))
			}
		}
	}
	return nil
}

// Run sweeps every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				slog.Error("Deadline sweep failed",
					slog.String("type", "sys"),
					slog.Any("error", err))
			}
		}
	}
}

func warningLines(roles []models.Role, label string) []string {
	lines := make([]string, 0, len(roles)+1)
	lines = append(lines, fmt.Sprintf("**roles expiring %s:**", label))
	for _, role := range roles {
		line := fmt.Sprintf("- <@&%d>", role.RoleID)
		if deadline, ok := role.DeadlineTime(); ok {
			line += fmt.Sprintf(" expires <t:%d:R>", deadline.Unix())
		}
		if role.OwnerID != nil {
			line += fmt.Sprintf(", owner <@%d>", *role.OwnerID)
		}
		lines = append(lines, line)
	}
	return lines
}
