package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
)

const listenerTimeout = 30 * time.Second

// MemberJoinHandler puts remembered roles back on a member who rejoined.
func MemberJoinHandler(b *rolekeeper.Bot) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.GuildMemberJoin) {
		if e.Member.User.Bot {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), listenerTimeout)
		defer cancel()

		if n := b.Reinstator.OnJoin(ctx, e.GuildID, e.Member.User.ID); n > 0 {
			slog.Info("Reinstated roles on rejoin",
				slog.String("type", "sys"),
				slog.String("guild_id", e.GuildID.String()),
				slog.String("user_id", e.Member.User.ID.String()),
				slog.Int("roles", n))
		}
	})
}

// RoleUpdateHandler drops roles from the managed set as soon as they gain
// permissions on the platform.
func RoleUpdateHandler(b *rolekeeper.Bot) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.RoleUpdate) {
		applyRoleChange(b.Cache, e.GuildID, guildstate.RoleInfo{
			ID:          e.RoleID,
			Name:        e.Role.Name,
			Permissions: e.Role.Permissions,
			Managed:     e.Role.Managed,
		}, false)
	})
}

func RoleDeleteHandler(b *rolekeeper.Bot) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.RoleDelete) {
		applyRoleChange(b.Cache, e.GuildID, guildstate.RoleInfo{ID: e.RoleID, Name: e.Role.Name}, true)
	})
}

// applyRoleChange only touches guilds that are already hydrated; the next
// hydration reads the platform directly.
func applyRoleChange(cache *guildstate.Cache, guildID snowflake.ID, role guildstate.RoleInfo, deleted bool) {
	state, ok := cache.Peek(guildID)
	if !ok || !state.IsManaged(role.ID) {
		return
	}

	switch {
	case deleted:
		state.RemoveManagedRole(role.ID, role.Name)
	case !guildstate.Manageable(guildID, role):
		// The role still exists, so its name stays taken.
		state.RemoveManagedRole(role.ID, "")
	default:
		return
	}

	slog.Info("Role left the managed set",
		slog.String("type", "sys"),
		slog.String("guild_id", guildID.String()),
		slog.String("role_id", role.ID.String()),
		slog.Bool("deleted", deleted))
}
