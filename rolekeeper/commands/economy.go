package commands

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/utils"
)

var minAmount = 1

var Balance = discord.SlashCommandCreate{
	Name:        "balance",
	Description: "Check the balance",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "user whose balance to check",
			Required:    false,
		},
	},
}

var Transfer = discord.SlashCommandCreate{
	Name:        "transfer",
	Description: "Transfer money to someone else",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "destination user",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "amount of money to transfer",
			Required:    true,
			MinValue:    &minAmount,
		},
	},
}

var Extend = discord.SlashCommandCreate{
	Name:        "extend",
	Description: "1 = 1 sec, 60 = 1 min, 3600 = 1 hour, 86400 = 1 day, 604800 = 1 week",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionRole{
			Name:        "role",
			Description: "target role",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "money to spend, one per second",
			Required:    true,
			MinValue:    &minAmount,
		},
	},
}

func BalanceHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		userID := e.User().ID
		if target, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			userID = target.ID
		}

		return run(e, "balance", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			balance, err := b.Roles.Balance(ctx, guildID, userID)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("<@%s>'s balance: %s€", userID, utils.FormatBalance(balance)), nil
		})
	}
}

func TransferHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		targetID := data.User("user").ID
		amount := int64(data.Int("amount"))
		actorID := e.User().ID

		return run(e, "transfer", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			result, err := b.Roles.Transfer(ctx, guildID, actorID, targetID, amount)
			if err != nil {
				return "", err
			}
			return describeTransfer(targetID, result), nil
		})
	}
}

func describeTransfer(targetID snowflake.ID, result models.Transfer) string {
	msg := fmt.Sprintf("<@%s>'s balance: %s€", targetID, utils.FormatBalance(result.RecipientBalance))
	if result.Refunded > 0 {
		msg += fmt.Sprintf(", %s€ refunded", utils.FormatBalance(result.Refunded))
	}
	return msg
}

func ExtendHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		roleID := data.Role("role").ID
		amount := int64(data.Int("amount"))
		actorID := e.User().ID

		return run(e, "extend", func(ctx context.Context, guildID snowflake.ID) (string, error) {
			deadline, err := b.Roles.Extend(ctx, guildID, actorID, roleID, amount)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("deadline extended, now expires <t:%d:R>", deadline.Unix()), nil
		})
	}
}
