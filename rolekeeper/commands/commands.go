package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
)

// Commands is everything synced to Discord.
var Commands = []discord.ApplicationCommandCreate{
	Add,
	Remove,
	NewRole,
	Create,
	Delete,
	TakeOwnership,
	Query,
	List,
	Orphaned,
	Balance,
	Transfer,
	Extend,
	MainChannel,
	Resync,
}

const commandTimeout = 30 * time.Second

var errNotInGuild = errors.New("not in a guild")

// action is the body of a command that replies with a single line.
type action func(ctx context.Context, guildID snowflake.ID) (string, error)

// run defers the reply, since the first command in a guild hydrates its
// state, then edits in the outcome of fn.
func run(e *handler.CommandEvent, name string, fn action) error {
	guildID := e.GuildID()
	if guildID == nil {
		return respond(e, errNotInGuild.Error())
	}

	if err := e.DeferCreateMessage(false); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	content, err := fn(ctx, *guildID)
	if err != nil {
		content = failure(name, err)
	}

	_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
		Content:         &content,
		AllowedMentions: &discord.AllowedMentions{},
	})
	return err
}

func respond(e *handler.CommandEvent, content string) error {
	return e.CreateMessage(discord.MessageCreate{
		Content:         content,
		AllowedMentions: &discord.AllowedMentions{},
	})
}

// failure renders err for the user. Policy refusals are expected and only
// the rest is logged.
func failure(name string, err error) string {
	if !roles.IsPolicy(err) {
		slog.Error("Command failed",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.Any("error", err))
	}
	return roles.UserMessage(err)
}

func isAdmin(e *handler.CommandEvent) bool {
	member := e.Member()
	return member != nil && member.Permissions.Has(discord.PermissionAdministrator)
}
