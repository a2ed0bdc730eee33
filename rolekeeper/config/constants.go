package config

import "time"

const (
	// DefaultMaxOwnedRoles is how many roles one member may own in a guild.
	DefaultMaxOwnedRoles = 20

	// DefaultMaxBalance is the balance ceiling. Unseen members start here.
	DefaultMaxBalance int64 = 1_000_000

	// DefaultGrantCooldown is the minimum age of a grant before it can be
	// revoked. Hydrated grants are backdated by the same amount.
	DefaultGrantCooldown = 48 * time.Hour

	DefaultNewRoleCooldown  = 14 * 24 * time.Hour
	DefaultTransferCooldown = 30 * time.Second

	// DefaultInitialLifetime is the deadline handed to freshly created owned roles.
	DefaultInitialLifetime = 7 * 24 * time.Hour

	// DefaultMaxExtendSeconds caps a single extension. One unit of currency buys one second.
	DefaultMaxExtendSeconds int64 = 30 * 24 * 60 * 60

	DefaultReplyTTL = 5 * time.Minute

	DefaultIncomeAmount   int64 = 100
	DefaultIncomeInterval       = time.Hour

	DefaultSweepInterval = 5 * time.Minute
	DefaultDayHorizon    = 24 * time.Hour
	DefaultHourHorizon   = time.Hour

	// MessageBudget is the byte budget for one outbound chat message.
	MessageBudget = 1900
)
