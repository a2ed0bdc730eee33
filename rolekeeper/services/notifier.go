package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru"
)

const channelCacheSize = 1024

// MessageAPI is the slice of the REST client used to post warnings.
type MessageAPI interface {
	CreateMessage(channelID snowflake.ID, messageCreate discord.MessageCreate, opts ...rest.RequestOpt) (*discord.Message, error)
}

// ChannelLookup resolves a guild's configured main channel.
type ChannelLookup interface {
	MainChannel(ctx context.Context, guildID snowflake.ID) (snowflake.ID, bool, error)
}

// ChannelNotifier posts text to a guild's main channel. Guilds without one
// are skipped.
type ChannelNotifier struct {
	api      MessageAPI
	channels ChannelLookup
	cache    *lru.Cache
}

func NewChannelNotifier(api MessageAPI, channels ChannelLookup) *ChannelNotifier {
	cache, _ := lru.New(channelCacheSize)
	return &ChannelNotifier{
		api:      api,
		channels: channels,
		cache:    cache,
	}
}

// Forget drops the cached channel for guildID. Call it after the main
// channel changes.
func (n *ChannelNotifier) Forget(guildID snowflake.ID) {
	n.cache.Remove(guildID)
}

func (n *ChannelNotifier) SendBatch(ctx context.Context, guildID snowflake.ID, text string) error {
	channelID, ok, err := n.mainChannel(ctx, guildID)
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("No main channel configured, skipping notification",
			slog.String("type", "sys"),
			slog.String("guild_id", guildID.String()))
		return nil
	}

	_, err = n.api.CreateMessage(channelID, discord.MessageCreate{
		Content: text,
		// Owners are pinged, role wearers are not.
		AllowedMentions: &discord.AllowedMentions{
			Parse: []discord.AllowedMentionType{discord.AllowedMentionTypeUsers},
		},
	}, rest.WithCtx(ctx))
	if err != nil {
		// The channel may have been deleted; resolve it again next time.
		n.cache.Remove(guildID)
		return fmt.Errorf("failed to post to channel %s: %w", channelID, err)
	}
	return nil
}

func (n *ChannelNotifier) mainChannel(ctx context.Context, guildID snowflake.ID) (snowflake.ID, bool, error) {
	if cached, ok := n.cache.Get(guildID); ok {
		return cached.(snowflake.ID), true, nil
	}

	channelID, ok, err := n.channels.MainChannel(ctx, guildID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up main channel: %w", err)
	}
	if ok {
		n.cache.Add(guildID, channelID)
	}
	return channelID, ok, nil
}
