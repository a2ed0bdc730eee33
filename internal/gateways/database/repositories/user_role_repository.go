package repositories

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
)

// UserRoleRepository stores which managed roles a user wears.
type UserRoleRepository struct {
	*BaseRepository
}

var _ roles.GrantStore = (*UserRoleRepository)(nil)

func NewUserRoleRepository(db *bun.DB) *UserRoleRepository {
	return &UserRoleRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *UserRoleRepository) Add(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().
		Model(&models.UserRole{
			UserID:    id64(userID),
			RoleID:    id64(roleID),
			GuildID:   id64(guildID),
			GrantedAt: r.now().UTC(),
		}).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return r.HandleError("add", "user_role", err)
}

func (r *UserRoleRepository) Remove(ctx context.Context, guildID, userID, roleID snowflake.ID) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.db.NewDelete().
		Model((*models.UserRole)(nil)).
		Where("guild_id = ? AND user_id = ? AND role_id = ?", id64(guildID), id64(userID), id64(roleID)).
		Exec(ctx)
	return r.HandleError("remove", "user_role", err)
}

// RemoveRole drops every wearer of a deleted role.
func (r *UserRoleRepository) RemoveRole(ctx context.Context, guildID, roleID snowflake.ID) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model((*models.UserRole)(nil)).
		Where("guild_id = ? AND role_id = ?", id64(guildID), id64(roleID)).
		Exec(ctx)
	return rowsAffected(res), r.HandleError("remove_role", "user_role", err)
}

func (r *UserRoleRepository) ListByUser(ctx context.Context, guildID, userID snowflake.ID) ([]snowflake.ID, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var ids []int64
	err := r.db.NewSelect().
		Model((*models.UserRole)(nil)).
		Column("role_id").
		Where("guild_id = ? AND user_id = ?", id64(guildID), id64(userID)).
		Order("role_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, r.HandleError("list_by_user", "user_role", err)
	}

	roleIDs := make([]snowflake.ID, len(ids))
	for i, id := range ids {
		roleIDs[i] = snowflake.ID(id)
	}
	return roleIDs, nil
}
