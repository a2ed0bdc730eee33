package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
)

type GuildRepository struct {
	*BaseRepository
}

var _ roles.GuildSettings = (*GuildRepository)(nil)

func NewGuildRepository(db *bun.DB) *GuildRepository {
	return &GuildRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *GuildRepository) SetMainChannel(ctx context.Context, guildID, channelID snowflake.ID) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	channel := id64(channelID)
	_, err := r.db.NewInsert().
		Model(&models.Guild{GuildID: id64(guildID), MainChannelID: &channel}).
		On("CONFLICT (guild_id) DO UPDATE").
		Set("main_channel_id = EXCLUDED.main_channel_id").
		Exec(ctx)
	return r.HandleError("set_main_channel", "guild", err)
}

// MainChannel reports the configured channel, false if none is set.
func (r *GuildRepository) MainChannel(ctx context.Context, guildID snowflake.ID) (snowflake.ID, bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	guild := new(models.Guild)
	err := r.db.NewSelect().
		Model(guild).
		Where("guild_id = ?", id64(guildID)).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, r.HandleError("main_channel", "guild", err)
	}
	if guild.MainChannelID == nil {
		return 0, false, nil
	}
	return snowflake.ID(*guild.MainChannelID), true, nil
}
