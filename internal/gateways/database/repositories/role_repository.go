package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/rolekeeper/internal/domain/logger"
	"github.com/ellavondegurechaff/rolekeeper/internal/domain/roles"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
)

const roleColumns = "role_id, guild_id, name, owner_id, deadline, warning_day_sent, warning_hour_sent"

// Horizons tells ExtendDeadline when a pushed-out deadline has left a
// warning window, so that window's flag can fire again.
type Horizons struct {
	Day  time.Duration
	Hour time.Duration
}

type RoleRepository struct {
	*BaseRepository
	horizons Horizons
}

var (
	_ roles.OwnershipLedger = (*RoleRepository)(nil)
	_ roles.DeadlineLedger  = (*RoleRepository)(nil)
)

func NewRoleRepository(db *bun.DB, horizons Horizons) *RoleRepository {
	return &RoleRepository{
		BaseRepository: NewBaseRepository(db),
		horizons:       horizons,
	}
}

// CreateRole inserts a role record. With an owner, the insert only happens
// while the owner holds fewer than quota roles; the count and the insert are
// the same statement. A duplicate key or a full quota both report false.
func (r *RoleRepository) CreateRole(ctx context.Context, guildID, roleID snowflake.ID, name string, owner *snowflake.ID, deadline *time.Time, quota int) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var ownerID, deadlineUnix *int64
	if owner != nil {
		v := id64(*owner)
		ownerID = &v
	}
	if deadline != nil {
		v := deadline.Unix()
		deadlineUnix = &v
	}

	ql := logger.NewQueryLogger("create_role", uint64(guildID))
	var affected int64
	err := r.Serializable(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewRaw(
			"INSERT INTO roles ("+roleColumns+") "+
				"SELECT ?, ?, ?, CAST(? AS BIGINT), CAST(? AS BIGINT), FALSE, FALSE "+
				"WHERE ? IS NULL OR (SELECT COUNT(*) FROM roles WHERE guild_id = ? AND owner_id = ?) < ? "+
				"ON CONFLICT DO NOTHING",
			id64(roleID), id64(guildID), name, ownerID, deadlineUnix,
			ownerID, id64(guildID), ownerID, quota,
		).Exec(ctx)
		affected = rowsAffected(res)
		return err
	})
	ql.Log(err, affected == 1, affected)
	if err != nil {
		return false, r.HandleError("create", "role", err)
	}
	return affected == 1, nil
}

// ImportRoles records roles that already exist on the platform as orphans.
// Rows already present are left untouched.
func (r *RoleRepository) ImportRoles(ctx context.Context, guildID snowflake.ID, records []models.Role) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	for i := range records {
		records[i].GuildID = id64(guildID)
		records[i].OwnerID = nil
	}

	ql := logger.NewQueryLogger("import_roles", uint64(guildID))
	res, err := r.db.NewInsert().
		Model(&records).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	n := rowsAffected(res)
	ql.Log(err, n > 0, n)
	return n, r.HandleError("import", "role", err)
}

// DeleteRole removes the record only if callerID owns it and returns the
// removed row, or nil when nothing matched.
func (r *RoleRepository) DeleteRole(ctx context.Context, guildID, roleID, callerID snowflake.ID) (*models.Role, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	ql := logger.NewQueryLogger("delete_role", uint64(guildID))
	var deleted []models.Role
	err := r.db.NewRaw(
		"DELETE FROM roles WHERE guild_id = ? AND role_id = ? AND owner_id = ? RETURNING "+roleColumns,
		id64(guildID), id64(roleID), id64(callerID),
	).Scan(ctx, &deleted)
	ql.Log(err, len(deleted) == 1, int64(len(deleted)))
	if err != nil {
		return nil, r.HandleError("delete", "role", err)
	}
	if len(deleted) == 0 {
		return nil, nil
	}
	return &deleted[0], nil
}

// RestoreRole puts back a row removed by DeleteRole.
func (r *RoleRepository) RestoreRole(ctx context.Context, role *models.Role) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	_, err := r.db.NewInsert().
		Model(role).
		On("CONFLICT DO NOTHING").
		Exec(ctx)
	return r.HandleError("restore", "role", err)
}

// TakeOwnership claims an orphan for userID under the same quota condition
// as CreateRole.
func (r *RoleRepository) TakeOwnership(ctx context.Context, guildID, roleID, userID snowflake.ID, quota int) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	ql := logger.NewQueryLogger("take_ownership", uint64(guildID))
	var affected int64
	err := r.Serializable(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewRaw(
			"UPDATE roles SET owner_id = ? "+
				"WHERE guild_id = ? AND role_id = ? AND owner_id IS NULL "+
				"AND (SELECT COUNT(*) FROM roles WHERE guild_id = ? AND owner_id = ?) < ?",
			id64(userID), id64(guildID), id64(roleID), id64(guildID), id64(userID), quota,
		).Exec(ctx)
		affected = rowsAffected(res)
		return err
	})
	ql.Log(err, affected == 1, affected)
	if err != nil {
		return false, r.HandleError("take_ownership", "role", err)
	}
	return affected == 1, nil
}

func (r *RoleRepository) QueryOwner(ctx context.Context, guildID, roleID snowflake.ID) (models.Ownership, error) {
	role, err := r.Get(ctx, guildID, roleID)
	if err != nil {
		return models.Ownership{}, err
	}
	switch {
	case role == nil:
		return models.Ownership{Status: models.OwnerNotFound}, nil
	case role.OwnerID == nil:
		return models.Ownership{Status: models.OwnerOrphan}, nil
	default:
		return models.Ownership{Status: models.OwnerOwned, OwnerID: *role.OwnerID}, nil
	}
}

// Get returns the record, or nil when the role is not tracked.
func (r *RoleRepository) Get(ctx context.Context, guildID, roleID snowflake.ID) (*models.Role, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	role := new(models.Role)
	err := r.db.NewSelect().
		Model(role).
		Where("guild_id = ? AND role_id = ?", id64(guildID), id64(roleID)).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.HandleError("get", "role", err)
	}
	return role, nil
}

func (r *RoleRepository) ListOwned(ctx context.Context, guildID, userID snowflake.ID) ([]string, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var names []string
	err := r.db.NewSelect().
		Model((*models.Role)(nil)).
		Column("name").
		Where("guild_id = ? AND owner_id = ?", id64(guildID), id64(userID)).
		Order("name ASC").
		Scan(ctx, &names)
	return names, r.HandleError("list_owned", "role", err)
}

func (r *RoleRepository) CountOwned(ctx context.Context, guildID, userID snowflake.ID) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	count, err := r.db.NewSelect().
		Model((*models.Role)(nil)).
		Where("guild_id = ? AND owner_id = ?", id64(guildID), id64(userID)).
		Count(ctx)
	return count, r.HandleError("count_owned", "role", err)
}

func (r *RoleRepository) ListOrphaned(ctx context.Context, guildID snowflake.ID) ([]string, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var names []string
	err := r.db.NewSelect().
		Model((*models.Role)(nil)).
		Column("name").
		Where("guild_id = ? AND owner_id IS NULL", id64(guildID)).
		Order("name ASC").
		Scan(ctx, &names)
	return names, r.HandleError("list_orphaned", "role", err)
}

func (r *RoleRepository) CountOrphaned(ctx context.Context, guildID snowflake.ID) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	count, err := r.db.NewSelect().
		Model((*models.Role)(nil)).
		Where("guild_id = ? AND owner_id IS NULL", id64(guildID)).
		Count(ctx)
	return count, r.HandleError("count_orphaned", "role", err)
}

// ExtendDeadline adds seconds to the role's deadline. A missing or already
// passed deadline counts from now. Warning flags whose window the new
// deadline has left are cleared. Reports false if the role does not exist.
func (r *RoleRepository) ExtendDeadline(ctx context.Context, guildID, roleID snowflake.ID, seconds int64) (time.Time, bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := r.now().Unix()
	dayEdge := now + int64(r.horizons.Day/time.Second)
	hourEdge := now + int64(r.horizons.Hour/time.Second)

	const next = "(CASE WHEN deadline IS NULL OR deadline < ?0 THEN ?0 ELSE deadline END + ?1)"

	ql := logger.NewQueryLogger("extend_deadline", uint64(guildID))
	var deadlines []int64
	err := r.db.NewRaw(
		"UPDATE roles SET "+
			"deadline = "+next+", "+
			"warning_day_sent = CASE WHEN "+next+" > ?2 THEN FALSE ELSE warning_day_sent END, "+
			"warning_hour_sent = CASE WHEN "+next+" > ?3 THEN FALSE ELSE warning_hour_sent END "+
			"WHERE guild_id = ?4 AND role_id = ?5 RETURNING deadline",
		now, seconds, dayEdge, hourEdge, id64(guildID), id64(roleID),
	).Scan(ctx, &deadlines)
	ql.Log(err, len(deadlines) == 1, int64(len(deadlines)))
	if err != nil {
		return time.Time{}, false, r.HandleError("extend", "role", err)
	}
	if len(deadlines) == 0 {
		return time.Time{}, false, nil
	}
	return time.Unix(deadlines[0], 0), true, nil
}

// SweepWarnings flips flag on every role whose deadline falls inside
// (now, now+horizon] and returns exactly the rows it flipped. A row is never
// returned by two sweeps for the same flag.
func (r *RoleRepository) SweepWarnings(ctx context.Context, guildID snowflake.ID, horizon time.Duration, flag models.WarningFlag) ([]models.Role, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := r.now().Unix()
	edge := now + int64(horizon/time.Second)

	ql := logger.NewQueryLogger("sweep_"+string(flag), uint64(guildID))
	var swept []models.Role
	err := r.db.NewRaw(
		"UPDATE roles SET ? = TRUE "+
			"WHERE guild_id = ? AND deadline IS NOT NULL AND deadline > ? AND deadline <= ? AND ? = FALSE "+
			"RETURNING "+roleColumns,
		bun.Ident(flag), id64(guildID), now, edge, bun.Ident(flag),
	).Scan(ctx, &swept)
	ql.Log(err, len(swept) > 0, int64(len(swept)))
	return swept, r.HandleError("sweep", "role", err)
}

// GuildsWithDeadlines lists guilds that have at least one role with a deadline.
func (r *RoleRepository) GuildsWithDeadlines(ctx context.Context) ([]snowflake.ID, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var ids []int64
	err := r.db.NewSelect().
		Model((*models.Role)(nil)).
		ColumnExpr("DISTINCT guild_id").
		Where("deadline IS NOT NULL").
		Scan(ctx, &ids)
	if err != nil {
		return nil, r.HandleError("guilds_with_deadlines", "role", err)
	}

	guilds := make([]snowflake.ID, len(ids))
	for i, id := range ids {
		guilds[i] = snowflake.ID(id)
	}
	return guilds, nil
}
