package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Role is a managed role. OwnerID nil marks an orphan. Deadline is unix
// seconds; nil means the role never expires.
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:r"`

	RoleID          int64  `bun:"role_id,pk"`
	GuildID         int64  `bun:"guild_id,pk"`
	Name            string `bun:"name,notnull"`
	OwnerID         *int64 `bun:"owner_id"`
	Deadline        *int64 `bun:"deadline"`
	WarningDaySent  bool   `bun:"warning_day_sent,notnull"`
	WarningHourSent bool   `bun:"warning_hour_sent,notnull"`
}

func (r *Role) DeadlineTime() (time.Time, bool) {
	if r.Deadline == nil {
		return time.Time{}, false
	}
	return time.Unix(*r.Deadline, 0), true
}

// WarningFlag names one of the two idempotent warning columns.
type WarningFlag string

const (
	WarningDay  WarningFlag = "warning_day_sent"
	WarningHour WarningFlag = "warning_hour_sent"
)

type OwnerStatus int

const (
	OwnerNotFound OwnerStatus = iota
	OwnerOrphan
	OwnerOwned
)

// Ownership is the answer to "who owns this role".
type Ownership struct {
	Status  OwnerStatus
	OwnerID int64
}
