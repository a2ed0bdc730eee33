package models

import "github.com/uptrace/bun"

// Guild holds per-guild settings.
type Guild struct {
	bun.BaseModel `bun:"table:guilds,alias:g"`

	GuildID       int64  `bun:"guild_id,pk"`
	MainChannelID *int64 `bun:"main_channel_id"`
}
