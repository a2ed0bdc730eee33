package roles

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
)

//go:generate mockgen -destination=mock/repository.go -package=mock . OwnershipLedger,EconomyLedger,DeadlineLedger,GrantStore,GuildSettings,RoleActions

// OwnershipLedger is the durable role -> owner mapping. Every mutating call
// is one conditional write; a false result means the condition did not hold.
type OwnershipLedger interface {
	CreateRole(ctx context.Context, guildID, roleID snowflake.ID, name string, owner *snowflake.ID, deadline *time.Time, quota int) (bool, error)
	ImportRoles(ctx context.Context, guildID snowflake.ID, roles []models.Role) (int64, error)
	DeleteRole(ctx context.Context, guildID, roleID, callerID snowflake.ID) (*models.Role, error)
	RestoreRole(ctx context.Context, role *models.Role) error
	TakeOwnership(ctx context.Context, guildID, roleID, userID snowflake.ID, quota int) (bool, error)
	QueryOwner(ctx context.Context, guildID, roleID snowflake.ID) (models.Ownership, error)
	ListOwned(ctx context.Context, guildID, userID snowflake.ID) ([]string, error)
	CountOwned(ctx context.Context, guildID, userID snowflake.ID) (int, error)
	ListOrphaned(ctx context.Context, guildID snowflake.ID) ([]string, error)
	CountOrphaned(ctx context.Context, guildID snowflake.ID) (int, error)
}

// EconomyLedger holds balances. Unknown users sit at the ceiling.
type EconomyLedger interface {
	GetBalance(ctx context.Context, guildID, userID snowflake.ID) (int64, error)
	Withdraw(ctx context.Context, guildID, userID snowflake.ID, amount int64) (int64, bool, error)
	Deposit(ctx context.Context, guildID, userID snowflake.ID, amount int64) (int64, error)
	Transfer(ctx context.Context, guildID, fromID, toID snowflake.ID, amount int64) (models.Transfer, error)
}

type DeadlineLedger interface {
	ExtendDeadline(ctx context.Context, guildID, roleID snowflake.ID, seconds int64) (time.Time, bool, error)
}

// GrantStore mirrors worn roles durably so they survive restarts.
type GrantStore interface {
	Add(ctx context.Context, guildID, userID, roleID snowflake.ID) error
	Remove(ctx context.Context, guildID, userID, roleID snowflake.ID) error
	RemoveRole(ctx context.Context, guildID, roleID snowflake.ID) (int64, error)
	ListByUser(ctx context.Context, guildID, userID snowflake.ID) ([]snowflake.ID, error)
}

type GuildSettings interface {
	SetMainChannel(ctx context.Context, guildID, channelID snowflake.ID) error
	MainChannel(ctx context.Context, guildID snowflake.ID) (snowflake.ID, bool, error)
}

// RoleActions are the platform-side effects. Implementations are not
// idempotent; callers guard every call with a local state change.
type RoleActions interface {
	AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID, reason string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID, reason string) error
	CreateRole(ctx context.Context, guildID snowflake.ID, name string, color int) (snowflake.ID, error)
	DeleteRole(ctx context.Context, guildID, roleID snowflake.ID, reason string) error
}
