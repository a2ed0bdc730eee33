package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/sahilm/fuzzy"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/config"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/utils"
)

const listColor = 0x2B2D31

var List = discord.SlashCommandCreate{
	Name:        "list",
	Description: "List owned roles",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "target user",
			Required:    false,
		},
	},
}

var Orphaned = discord.SlashCommandCreate{
	Name:        "orphaned",
	Description: "List orphaned roles",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "count",
			Description: "return a list or just count",
			Required:    false,
		},
		discord.ApplicationCommandOptionString{
			Name:        "filter",
			Description: "fuzzy match on role names",
			Required:    false,
		},
	},
}

func ListHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return respond(e, errNotInGuild.Error())
		}

		user := e.User()
		if target, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			user = target
		}

		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		names, err := b.Roles.ListOwned(ctx, *guildID, user.ID)
		if err != nil {
			return respond(e, failure("list", err))
		}
		if len(names) == 0 {
			return respond(e, "there are none")
		}

		return b.Paginator.Create(e.Respond, namePages(e, fmt.Sprintf("Roles owned by %s", user.Username), names), false)
	}
}

func OrphanedHandler(b *rolekeeper.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		guildID := e.GuildID()
		if guildID == nil {
			return respond(e, errNotInGuild.Error())
		}

		data := e.SlashCommandInteractionData()
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		if data.Bool("count") {
			count, err := b.Roles.CountOrphaned(ctx, *guildID)
			if err != nil {
				return respond(e, failure("orphaned", err))
			}
			return respond(e, fmt.Sprintf("there are %d orphaned roles", count))
		}

		names, err := b.Roles.Orphaned(ctx, *guildID)
		if err != nil {
			return respond(e, failure("orphaned", err))
		}

		query := strings.TrimSpace(data.String("filter"))
		if query != "" {
			names = filterNames(names, query)
		}
		if len(names) == 0 {
			return respond(e, "there are 0 orphaned roles")
		}

		title := "Orphaned roles"
		if query != "" {
			title = fmt.Sprintf("Orphaned roles matching %q", query)
		}
		return b.Paginator.Create(e.Respond, namePages(e, title, names), false)
	}
}

// filterNames keeps the names that fuzzily match query, best match first.
func filterNames(names []string, query string) []string {
	matches := fuzzy.Find(query, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

// pageNames splits names into message-sized pages of bullet lines.
func pageNames(names []string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, " - "+name)
	}
	return utils.BatchLines(lines, config.MessageBudget)
}

func namePages(e *handler.CommandEvent, title string, names []string) paginator.Pages {
	pages := pageNames(names)
	return paginator.Pages{
		ID:      e.ID().String(),
		Creator: e.User().ID,
		PageFunc: func(page int, embed *discord.EmbedBuilder) {
			embed.
				SetTitle(title).
				SetDescription(pages[page]).
				SetColor(listColor).
				SetFooter(fmt.Sprintf("Page %d/%d • Total: %d", page+1, len(pages), len(names)), "")
		},
		Pages:      len(pages),
		ExpireMode: paginator.ExpireModeAfterLastUsage,
	}
}
