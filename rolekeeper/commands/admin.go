package commands

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper"
)

var MainChannel = discord.SlashCommandCreate{
	Name:        "main_channel",
	Description: "Set this channel as the guild main channel",
}

var Resync = discord.SlashCommandCreate{
	Name:        "resync",
	Description: "Reload roles and members from Discord",
}

func MainChannelHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		channelID := e.ChannelID()
		admin := isAdmin(e)

		return run(e, "main_channel", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			if err := b.Roles.SetMainChannel(ctx, guildID, channelID, admin); err != nil {
				return "", err
			}
			b.Notifier.Forget(guildID)
			return fmt.Sprintf("deadline warnings go to <#%s> now", channelID), nil
		})
	}
}

func ResyncHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		admin := isAdmin(e)

		return run(e, "resync", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			n, err := b.Roles.Resync(ctx, guildID, admin)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("resynced, %d managed roles", n), nil
		})
	}
}
