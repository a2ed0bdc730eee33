package commands

import (
	"context"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper"
)

var Add = discord.SlashCommandCreate{
	Name:        "add",
	Description: "Add a role to a user",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "target user",
			Required:    true,
		},
		discord.ApplicationCommandOptionRole{
			Name:        "role",
			Description: "role to be applied",
			Required:    true,
		},
	},
}

var Remove = discord.SlashCommandCreate{
	Name:        "remove",
	Description: "Remove a role from a user, 2 day cooldown after adding",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "target user",
			Required:    true,
		},
		discord.ApplicationCommandOptionRole{
			Name:        "role",
			Description: "role to be removed",
			Required:    true,
		},
	},
}

func AddHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		userID := data.User("user").ID
		roleID := data.Role("role").ID

		return run(e, "add", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			if err := b.Roles.Grant(ctx, guildID, userID, roleID); err != nil {
				return "", err
			}
			return "ok", nil
		})
	}
}

func RemoveHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		userID := data.User("user").ID
		roleID := data.Role("role").ID

		return run(e, "remove", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			if err := b.Roles.Revoke(ctx, guildID, userID, roleID); err != nil {
				return "", err
			}
			return "ok", nil
		})
	}
}
