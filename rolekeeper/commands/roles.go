package commands

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper"
)

var nameAndColour = []discord.ApplicationCommandOption{
	discord.ApplicationCommandOptionString{
		Name:        "name",
		Description: "role name",
		Required:    true,
	},
	discord.ApplicationCommandOptionString{
		Name:        "colour",
		Description: "role colour, format: #FFFFFF",
		Required:    false,
	},
}

var NewRole = discord.SlashCommandCreate{
	Name:        "new_role",
	Description: "Create a new role",
	Options:     nameAndColour,
}

var Create = discord.SlashCommandCreate{
	Name:        "create",
	Description: "Create a new role that you own",
	Options:     nameAndColour,
}

var Delete = discord.SlashCommandCreate{
	Name:        "delete",
	Description: "Delete an owned role",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionRole{
			Name:        "role",
			Description: "role to be deleted",
			Required:    true,
		},
	},
}

var TakeOwnership = discord.SlashCommandCreate{
	Name:        "take_ownership",
	Description: "Take ownership of a legacy role",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionRole{
			Name:        "role",
			Description: "role to be taken",
			Required:    true,
		},
	},
}

var Query = discord.SlashCommandCreate{
	Name:        "query",
	Description: "Check who owns the role",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionRole{
			Name:        "role",
			Description: "target role",
			Required:    true,
		},
	},
}

func NewRoleHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		name := data.String("name")
		colour := data.String("colour")
		actorID := e.User().ID

		return run(e, "new_role", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			roleID, err := b.Roles.NewRole(ctx, guildID, actorID, name, colour)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("ok, created role <@&%s>", roleID), nil
		})
	}
}

func CreateHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		name := data.String("name")
		colour := data.String("colour")
		actorID := e.User().ID

		return run(e, "create", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			roleID, deadline, err := b.Roles.CreateRole(ctx, guildID, actorID, name, colour)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("new role <@&%s> created, expires <t:%d:R>", roleID, deadline.Unix()), nil
		})
	}
}

func DeleteHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		roleID := e.SlashCommandInteractionData().Role("role").ID
		actorID := e.User().ID

		return run(e, "delete", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			name, err := b.Roles.DeleteRole(ctx, guildID, actorID, roleID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted role %s", name), nil
		})
	}
}

func TakeOwnershipHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		role := e.SlashCommandInteractionData().Role("role")
		actor := e.User()

		return run(e, "take_ownership", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			if err := b.Roles.TakeOwnership(ctx, guildID, actor.ID, role.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf("role %s ownership moved to %s", role.Name, actor.Username), nil
		})
	}
}

func QueryHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		roleID := e.SlashCommandInteractionData().Role("role").ID

		return run(e, "query", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			ownership, err := b.Roles.Query(ctx, guildID, roleID)
			if err != nil {
				return "", err
			}
			return describeOwnership(roleID, ownership), nil
		})
	}
}

func describeOwnership(roleID snowflake.ID, ownership models.Ownership) string {
	switch ownership.Status {
	case models.OwnerOwned:
		return fmt.Sprintf("role <@&%s> is owned by <@%d>", roleID, ownership.OwnerID)
	case models.OwnerOrphan:
		return fmt.Sprintf("role <@&%s> is an orphan", roleID)
	default:
		return fmt.Sprintf("role <@&%s> is not controlled by me", roleID)
	}
}
