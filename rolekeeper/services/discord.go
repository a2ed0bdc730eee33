package services

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
)

// memberPageSize is the largest page the member list endpoint hands out.
const memberPageSize = 1000

// RoleAPI is the slice of the REST client that touches guild roles.
// rest.Rest satisfies it.
type RoleAPI interface {
	GetRoles(guildID snowflake.ID, opts ...rest.RequestOpt) ([]discord.Role, error)
	CreateRole(guildID snowflake.ID, roleCreate discord.RoleCreate, opts ...rest.RequestOpt) (*discord.Role, error)
	DeleteRole(guildID snowflake.ID, roleID snowflake.ID, opts ...rest.RequestOpt) error
}

// MemberAPI is the slice of the REST client that touches guild members.
type MemberAPI interface {
	GetMembers(guildID snowflake.ID, limit int, after snowflake.ID, opts ...rest.RequestOpt) ([]discord.Member, error)
	AddMemberRole(guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID, opts ...rest.RequestOpt) error
	RemoveMemberRole(guildID snowflake.ID, userID snowflake.ID, roleID snowflake.ID, opts ...rest.RequestOpt) error
}

// DiscordService adapts the disgo REST client to the membership source and
// the role actions the ledger drives.
type DiscordService struct {
	roles   RoleAPI
	members MemberAPI
}

func NewDiscordService(roles RoleAPI, members MemberAPI) *DiscordService {
	return &DiscordService{roles: roles, members: members}
}

var _ guildstate.MembershipSource = (*DiscordService)(nil)

func (s *DiscordService) ListRoles(ctx context.Context, guildID snowflake.ID) ([]guildstate.RoleInfo, error) {
	roles, err := s.roles.GetRoles(guildID, rest.WithCtx(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	infos := make([]guildstate.RoleInfo, 0, len(roles))
	for _, role := range roles {
		infos = append(infos, guildstate.RoleInfo{
			ID:          role.ID,
			Name:        role.Name,
			Permissions: role.Permissions,
			Managed:     role.Managed,
		})
	}
	return infos, nil
}

// StreamMembers pages through the member list in ID order. A failed page is
// yielded as an error and ends the stream, since the cursor cannot be trusted
// past it.
func (s *DiscordService) StreamMembers(ctx context.Context, guildID snowflake.ID) iter.Seq2[guildstate.MemberRoles, error] {
	return func(yield func(guildstate.MemberRoles, error) bool) {
		var after snowflake.ID
		for {
			page, err := s.members.GetMembers(guildID, memberPageSize, after, rest.WithCtx(ctx))
			if err != nil {
				yield(guildstate.MemberRoles{}, fmt.Errorf("failed to fetch members after %s: %w", after, err))
				return
			}

			for _, member := range page {
				if !yield(guildstate.MemberRoles{UserID: member.User.ID, RoleIDs: member.RoleIDs}, nil) {
					return
				}
				after = member.User.ID
			}

			if len(page) < memberPageSize {
				return
			}
		}
	}
}

func (s *DiscordService) AddRole(ctx context.Context, guildID, userID, roleID snowflake.ID, reason string) error {
	if err := s.members.AddMemberRole(guildID, userID, roleID, rest.WithCtx(ctx), rest.WithReason(reason)); err != nil {
		slog.Error("Failed to add member role",
			slog.String("type", "error"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()),
			slog.String("role_id", roleID.String()),
			slog.Any("error", err))
		return fmt.Errorf("failed to add role: %w", err)
	}
	return nil
}

func (s *DiscordService) RemoveRole(ctx context.Context, guildID, userID, roleID snowflake.ID, reason string) error {
	if err := s.members.RemoveMemberRole(guildID, userID, roleID, rest.WithCtx(ctx), rest.WithReason(reason)); err != nil {
		slog.Error("Failed to remove member role",
			slog.String("type", "error"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()),
			slog.String("role_id", roleID.String()),
			slog.Any("error", err))
		return fmt.Errorf("failed to remove role: %w", err)
	}
	return nil
}

// CreateRole creates a cosmetic role: hoisted, mentionable and carrying no
// permissions, so the cache accepts it as manageable.
func (s *DiscordService) CreateRole(ctx context.Context, guildID snowflake.ID, name string, color int) (snowflake.ID, error) {
	perms := discord.PermissionsNone
	role, err := s.roles.CreateRole(guildID, discord.RoleCreate{
		Name:        name,
		Color:       color,
		Hoist:       true,
		Mentionable: true,
		Permissions: &perms,
	}, rest.WithCtx(ctx), rest.WithReason("role created by rolekeeper"))
	if err != nil {
		slog.Error("Failed to create role",
			slog.String("type", "error"),
			slog.String("guild_id", guildID.String()),
			slog.String("name", name),
			slog.Any("error", err))
		return 0, fmt.Errorf("failed to create role: %w", err)
	}
	return role.ID, nil
}

func (s *DiscordService) DeleteRole(ctx context.Context, guildID, roleID snowflake.ID, reason string) error {
	if err := s.roles.DeleteRole(guildID, roleID, rest.WithCtx(ctx), rest.WithReason(reason)); err != nil {
		slog.Error("Failed to delete role",
			slog.String("type", "error"),
			slog.String("guild_id", guildID.String()),
			slog.String("role_id", roleID.String()),
			slog.Any("error", err))
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}
