// Package guildstate keeps the per-guild index of managed roles and who
// wears them, hydrated lazily from the membership source.
package guildstate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/singleflight"
)

// HydrateHook runs once after a guild has been hydrated, before the state is
// published to other callers.
type HydrateHook func(ctx context.Context, state *GuildState, roles []RoleInfo)

type Option func(*Cache)

func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithHydrationTimeout bounds a single hydration, independent of the caller
// that started it.
func WithHydrationTimeout(d time.Duration) Option {
	return func(c *Cache) { c.hydrationTimeout = d }
}

func WithHydrateHook(hook HydrateHook) Option {
	return func(c *Cache) { c.hooks = append(c.hooks, hook) }
}

// Cache maps guild IDs to their GuildState. States live for the process
// lifetime unless invalidated.
type Cache struct {
	source           MembershipSource
	backdate         time.Duration
	hydrationTimeout time.Duration
	states           *xsync.MapOf[snowflake.ID, *GuildState]
	flights          singleflight.Group
	hooks            []HydrateHook
	now              func() time.Time
}

const defaultHydrationTimeout = 5 * time.Minute

// NewCache builds a cache over source. Hydrated grants are stamped backdate
// in the past so they are immediately eligible for revoke.
func NewCache(source MembershipSource, backdate time.Duration, opts ...Option) *Cache {
	c := &Cache{
		source:           source,
		backdate:         backdate,
		hydrationTimeout: defaultHydrationTimeout,
		states:           xsync.NewMapOf[snowflake.ID, *GuildState](),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the guild's state, hydrating it on first use. Concurrent first
// callers share one hydration; a failed hydration is not cached. The
// hydration is detached from ctx, so a caller that gives up only stops
// waiting and the others still get the result.
func (c *Cache) Get(ctx context.Context, guildID snowflake.ID) (*GuildState, error) {
	if state, ok := c.states.Load(guildID); ok {
		return state, nil
	}

	ch := c.flights.DoChan(guildID.String(), func() (any, error) {
		if state, ok := c.states.Load(guildID); ok {
			return state, nil
		}
		hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.hydrationTimeout)
		defer cancel()

		state, err := c.hydrate(hctx, guildID)
		if err != nil {
			return nil, err
		}
		actual, _ := c.states.LoadOrStore(guildID, state)
		return actual, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*GuildState), nil
	}
}

// Peek returns the state only if the guild is already hydrated.
func (c *Cache) Peek(guildID snowflake.ID) (*GuildState, bool) {
	return c.states.Load(guildID)
}

// Invalidate drops the guild so the next Get re-hydrates from the source.
func (c *Cache) Invalidate(guildID snowflake.ID) {
	c.states.Delete(guildID)
}

func (c *Cache) hydrate(ctx context.Context, guildID snowflake.ID) (*GuildState, error) {
	start := time.Now()
	slog.Debug("Hydrating guild state",
		slog.String("type", "sys"),
		slog.String("guild_id", guildID.String()))

	roles, err := c.source.ListRoles(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles for guild %s: %w", guildID, err)
	}

	state := newGuildState(guildID, c.now)
	kept := make([]RoleInfo, 0, len(roles))
	for _, role := range roles {
		if !Manageable(guildID, role) {
			slog.Debug("Discarding privileged role",
				slog.String("type", "sys"),
				slog.String("guild_id", guildID.String()),
				slog.String("role", role.Name))
			continue
		}
		state.AddManagedRole(role.ID, role.Name)
		kept = append(kept, role)
	}

	stamp := c.now().Add(-c.backdate)
	members := 0
	for member, err := range c.source.StreamMembers(ctx, guildID) {
		if err != nil {
			slog.Warn("Skipping member during hydration",
				slog.String("type", "sys"),
				slog.String("guild_id", guildID.String()),
				slog.Any("error", err))
			continue
		}
		members++
		for _, roleID := range member.RoleIDs {
			if state.IsManaged(roleID) {
				state.seed(member.UserID, roleID, stamp)
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("hydration of guild %s interrupted: %w", guildID, err)
	}

	for _, hook := range c.hooks {
		hook(ctx, state, kept)
	}

	slog.Info("Guild state hydrated",
		slog.String("type", "sys"),
		slog.String("guild_id", guildID.String()),
		slog.Int("managed_roles", len(kept)),
		slog.Int("members", members),
		slog.Duration("took", time.Since(start)))
	return state, nil
}

// Manageable reports whether the bot may administer role: it must carry no
// permissions at all, must not be an integration role, and must not be the
// guild's @everyone role.
func Manageable(guildID snowflake.ID, role RoleInfo) bool {
	return role.Permissions == discord.PermissionsNone &&
		!role.Managed &&
		role.ID != guildID
}
