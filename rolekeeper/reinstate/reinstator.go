// Package reinstate puts managed roles back on members who leave and rejoin.
package reinstate

import (
	"context"
	"log/slog"
	"slices"

	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
)

const reason = "prevented rejoin role removal"

// GrantLister reads the durable record of worn roles.
type GrantLister interface {
	ListByUser(ctx context.Context, guildID, userID snowflake.ID) ([]snowflake.ID, error)
}

// Granter is the platform action that puts a role on a member.
type Granter interface {
	AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID, reason string) error
}

// Reinstator reapplies a rejoining member's roles. It never goes through the
// cooldown gate: this is not a new grant and must not open or honour one.
type Reinstator struct {
	cache   *guildstate.Cache
	grants  GrantLister
	granter Granter
}

func New(cache *guildstate.Cache, grants GrantLister, granter Granter) *Reinstator {
	return &Reinstator{cache: cache, grants: grants, granter: granter}
}

// OnJoin reapplies every managed role userID was known to wear. It returns
// how many roles were put back; failures are logged and skipped.
func (r *Reinstator) OnJoin(ctx context.Context, guildID, userID snowflake.ID) int {
	state, err := r.cache.Get(ctx, guildID)
	if err != nil {
		slog.Error("Failed to load guild for rejoin",
			slog.String("type", "sys"),
			slog.String("guild_id", guildID.String()),
			slog.Any("error", err))
		return 0
	}

	known := state.RolesOf(userID)
	if r.grants != nil {
		stored, err := r.grants.ListByUser(ctx, guildID, userID)
		if err != nil {
			slog.Warn("Failed to read stored grants",
				slog.String("type", "db"),
				slog.String("guild_id", guildID.String()),
				slog.String("user_id", userID.String()),
				slog.Any("error", err))
		}
		for _, roleID := range stored {
			if state.IsManaged(roleID) && !slices.Contains(known, roleID) {
				known = append(known, roleID)
			}
		}
	}
	if len(known) == 0 {
		return 0
	}

	restored := 0
	for _, roleID := range known {
		if err := r.granter.AddRole(ctx, guildID, userID, roleID, reason); err != nil {
			slog.Error("Failed to reinstate role",
				slog.String("type", "sys"),
				slog.String("guild_id", guildID.String()),
				slog.String("user_id", userID.String()),
				slog.String("role_id", roleID.String()),
				slog.Any("error", err))
			continue
		}
		restored++
	}

	slog.Info("Reinstated roles on rejoin",
		slog.String("type", "sys"),
		slog.String("guild_id", guildID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("restored", restored),
		slog.Int("known", len(known)))
	return restored
}
