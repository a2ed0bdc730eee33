package guildstate

import (
	"context"
	"iter"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

//go:generate mockgen -source=source.go -destination=mock/source.go -package=mock

// RoleInfo is one role as the membership source reports it.
type RoleInfo struct {
	ID          snowflake.ID
	Name        string
	Permissions discord.Permissions
	// Managed marks integration and bot roles, which nobody may hand out.
	Managed bool
}

// MemberRoles is one guild member and the roles they currently wear.
type MemberRoles struct {
	UserID  snowflake.ID
	RoleIDs []snowflake.ID
}

// MembershipSource is the platform's view of a guild. It is the source of
// truth and may change at any time without notice.
type MembershipSource interface {
	ListRoles(ctx context.Context, guildID snowflake.ID) ([]RoleInfo, error)
	// StreamMembers yields every member once. Individual entries may fail
	// without ending the stream; the sequence cannot be restarted midway.
	StreamMembers(ctx context.Context, guildID snowflake.ID) iter.Seq2[MemberRoles, error]
}
