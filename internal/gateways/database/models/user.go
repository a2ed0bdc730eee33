package models

import "github.com/uptrace/bun"

// User is a member's wallet in one guild. Members without a row sit at the
// balance ceiling.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UserID  int64 `bun:"user_id,pk"`
	GuildID int64 `bun:"guild_id,pk"`
	Balance int64 `bun:"balance,notnull"`
}

// Transfer reports how a transfer settled. Applied is false when the sender
// could not cover the amount; Refunded is what bounced off the recipient's
// ceiling.
type Transfer struct {
	Applied          bool
	Sent             int64
	Refunded         int64
	SenderBalance    int64
	RecipientBalance int64
}
