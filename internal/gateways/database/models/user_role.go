package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserRole records that a user wears a role, independent of who owns it.
type UserRole struct {
	bun.BaseModel `bun:"table:user_roles,alias:ur"`

	UserID    int64     `bun:"user_id,pk"`
	RoleID    int64     `bun:"role_id,pk"`
	GuildID   int64     `bun:"guild_id,pk"`
	GrantedAt time.Time `bun:"granted_at,notnull"`
}
