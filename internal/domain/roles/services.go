package roles

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/ellavondegurechaff/rolekeeper/internal/gateways/database/models"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/cooldown"
	"github.com/ellavondegurechaff/rolekeeper/rolekeeper/guildstate"
)

const (
	reasonAdd     = "added custom role to a user using the add command"
	reasonRemove  = "removed custom role from a user using the remove command"
	reasonDelete  = "custom role deleted by its owner"
	reasonCleanup = "ledger refused the new role"
)

// Recorder counts operation outcomes.
type Recorder interface {
	Outcome(operation string, err error)
}

type nopRecorder struct{}

func (nopRecorder) Outcome(string, error) {}

type Deps struct {
	Cache     *guildstate.Cache
	Owners    OwnershipLedger
	Economy   EconomyLedger
	Deadlines DeadlineLedger
	Grants    GrantStore
	Guilds    GuildSettings
	Actions   RoleActions
	Metrics   Recorder
}

// Service sequences every user-facing operation: cooldown gate, local or
// ledger mutation, platform action, and rollback when the platform refuses.
type Service struct {
	cfg  Config
	deps Deps

	newRoleCooldown  *cooldown.Guard[cooldown.MemberKey]
	transferCooldown *cooldown.Guard[cooldown.PairKey]

	now func() time.Time
}

func NewService(cfg Config, deps Deps) *Service {
	if deps.Metrics == nil {
		deps.Metrics = nopRecorder{}
	}
	return &Service{
		cfg:              cfg,
		deps:             deps,
		newRoleCooldown:  cooldown.NewGuard[cooldown.MemberKey](),
		transferCooldown: cooldown.NewGuard[cooldown.PairKey](),
		now:              time.Now,
	}
}

// Grant puts roleID on userID. The local slot is claimed first so two
// concurrent grants cannot both reach the platform.
func (s *Service) Grant(ctx context.Context, guildID, userID, roleID snowflake.ID) (err error) {
	defer func() { s.deps.Metrics.Outcome("grant", err) }()

	state, err := s.deps.Cache.Get(ctx, guildID)
	if err != nil {
		return err
	}

	stamp, err := state.Grant(userID, roleID)
	if err != nil {
		return err
	}

	if err = s.deps.Actions.AddRole(ctx, guildID, userID, roleID, reasonAdd); err != nil {
		state.RollbackGrant(userID, roleID, stamp)
		return fmt.Errorf("failed to add role: %w", err)
	}

	if err := s.deps.Grants.Add(ctx, guildID, userID, roleID); err != nil {
		slog.Error("Failed to record role grant",
			slog.String("type", "db"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()),
			slog.String("role_id", roleID.String()),
			slog.Any("error", err))
	}
	return nil
}

// Revoke takes roleID off userID once the grant is old enough.
func (s *Service) Revoke(ctx context.Context, guildID, userID, roleID snowflake.ID) (err error) {
	defer func() { s.deps.Metrics.Outcome("revoke", err) }()

	state, err := s.deps.Cache.Get(ctx, guildID)
	if err != nil {
		return err
	}

	prior, err := state.Revoke(userID, roleID, s.cfg.GrantCooldown)
	if err != nil {
		return err
	}

	if err = s.deps.Actions.RemoveRole(ctx, guildID, userID, roleID, reasonRemove); err != nil {
		state.RestoreGrant(userID, roleID, prior)
		return fmt.Errorf("failed to remove role: %w", err)
	}

	if err := s.deps.Grants.Remove(ctx, guildID, userID, roleID); err != nil {
		slog.Error("Failed to drop role grant",
			slog.String("type", "db"),
			slog.String("guild_id", guildID.String()),
			slog.String("user_id", userID.String()),
			slog.String("role_id", roleID.String()),
			slog.Any("error", err))
	}
	return nil
}

// NewRole creates an unowned cosmetic role. Each member gets one per
// cooldown window; a refused attempt does not spend the window.
func (s *Service) NewRole(ctx context.Context, guildID, actorID snowflake.ID, name, colour string) (id snowflake.ID, err error) {
	defer func() { s.deps.Metrics.Outcome("new_role", err) }()

	name, err = validateName(name)
	if err != nil {
		return 0, err
	}
	color, err := ParseColour(colour)
	if err != nil {
		return 0, err
	}

	key := cooldown.MemberKey{GuildID: guildID, UserID: actorID}
	if ok, remaining := s.newRoleCooldown.Check(key, s.cfg.NewRoleCooldown); !ok {
		return 0, &CooldownError{Remaining: remaining}
	}
	defer func() {
		if err != nil {
			s.newRoleCooldown.Forget(key)
		}
	}()

	state, err := s.deps.Cache.Get(ctx, guildID)
	if err != nil {
		return 0, err
	}
	if !state.ReserveName(name) {
		return 0, ErrDuplicateName
	}

	id, err = s.deps.Actions.CreateRole(ctx, guildID, name, color)
	if err != nil {
		state.ReleaseName(name)
		return 0, fmt.Errorf("failed to create role: %w", err)
	}
	state.AddManagedRole(id, name)

	if _, err := s.deps.Owners.CreateRole(ctx, guildID, id, name, nil, nil, s.cfg.Quota); err != nil {
		slog.Error("Failed to record new role",
			slog.String("type", "db"),
			slog.String("guild_id", guildID.String()),
			slog.String("role_id", id.String()),
			slog.Any("error", err))
	}
	return id, nil
}

// CreateRole creates a role owned by actorID with the initial lifetime. The
// platform role is created first and deleted again if the ledger refuses it.
func (s *Service) CreateRole(ctx context.Context, guildID, actorID snowflake.ID, name, colour string) (id snowflake.ID, deadline time.Time, err error) {
	defer func() { s.deps.Metrics.Outcome("create", err) }()

	name, err = validateName(name)
	if err != nil {
		return 0, time.Time{}, err
	}
	color, err := ParseColour(colour)
	if err != nil {
		return 0, time.Time{}, err
	}

	state, err := s.deps.Cache.Get(ctx, guildID)
	if err != nil {
		return 0, time.Time{}, err
	}
	if !state.ReserveName(name) {
		return 0, time.Time{}, ErrDuplicateName
	}

	id, err = s.deps.Actions.CreateRole(ctx, guildID, name, color)
	if err != nil {
		state.ReleaseName(name)
		return 0, time.Time{}, fmt.Errorf("failed to create role: %w", err)
	}

	deadline = s.now().Add(s.cfg.InitialLifetime).Truncate(time.Second)
	owner := actorID
	inserted, err := s.deps.Owners.CreateRole(ctx, guildID, id, name, &owner, &deadline, s.cfg.Quota)
	if err != nil || !inserted {
		if delErr := s.deps.Actions.DeleteRole(ctx, guildID, id, reasonCleanup); delErr != nil {
			slog.Error("Failed to clean up refused role",
				slog.String("type", "sys"),
				slog.String("guild_id", guildID.String()),
				slog.String("role_id", id.String()),
				slog.Any("error", delErr))
		}
		state.ReleaseName(name)
		if err != nil {
			return 0, time.Time{}, err
		}
		return 0, time.Time{}, ErrQuotaExceeded
	}

	state.AddManagedRole(id, name)
	return id, deadline, nil
}

// DeleteRole removes a role owned by actorID. The ledger row goes first and
// is put back if the platform delete fails.
func (s *Service) DeleteRole(ctx context.Context, guildID, actorID, roleID snowflake.ID) (name string, err error) {
	defer func() { s.deps.Metrics.Outcome("delete", err) }()

	deleted, err := s.deps.Owners.DeleteRole(ctx, guildID, roleID, actorID)
	if err != nil {
		return "", err
	}
	if deleted == nil {
		return "", ErrNotOwner
	}

	if err = s.deps.Actions.DeleteRole(ctx, guildID, roleID, reasonDelete); err != nil {
		if restoreErr := s.deps.Owners.RestoreRole(ctx, deleted); restoreErr != nil {
			slog.Error("Failed to restore role record",
				slog.String("type", "db"),
				slog.String("guild_id", guildID.String()),
				slog.String("role_id", roleID.String()),
				slog.Any("error", restoreErr))
		}
		return "", fmt.Errorf("failed to delete role: %w", err)
	}

	if state, ok := s.deps.Cache.Peek(guildID); ok {
		state.RemoveManagedRole(roleID, deleted.Name)
	}
	if _, err := s.deps.Grants.RemoveRole(ctx, guildID, roleID); err != nil {
		slog.Error("Failed to drop grants of deleted role",
			slog.String("type", "db"),
			slog.String("guild_id", guildID.String()),
			slog.String("role_id", roleID.String()),
			slog.Any("error", err))
	}
	return deleted.Name, nil
}

func (s *Service) TakeOwnership(ctx context.Context, guildID, actorID, roleID snowflake.ID) (err error) {
	defer func() { s.deps.Metrics.Outcome("take_ownership", err) }()

	ok, err := s.deps.Owners.TakeOwnership(ctx, guildID, roleID, actorID, s.cfg.Quota)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOwnershipUnavailable
	}
	return nil
}

func (s *Service) Query(ctx context.Context, guildID, roleID snowflake.ID) (models.Ownership, error) {
	return s.deps.Owners.QueryOwner(ctx, guildID, roleID)
}

func (s *Service) ListOwned(ctx context.Context, guildID, userID snowflake.ID) ([]string, error) {
	return s.deps.Owners.ListOwned(ctx, guildID, userID)
}

func (s *Service) Orphaned(ctx context.Context, guildID snowflake.ID) ([]string, error) {
	return s.deps.Owners.ListOrphaned(ctx, guildID)
}

func (s *Service) CountOrphaned(ctx context.Context, guildID snowflake.ID) (int, error) {
	return s.deps.Owners.CountOrphaned(ctx, guildID)
}

func (s *Service) Balance(ctx context.Context, guildID, userID snowflake.ID) (int64, error) {
	return s.deps.Economy.GetBalance(ctx, guildID, userID)
}

// Transfer moves currency between members, gated per (actor, target) pair.
func (s *Service) Transfer(ctx context.Context, guildID, actorID, targetID snowflake.ID, amount int64) (result models.Transfer, err error) {
	defer func() { s.deps.Metrics.Outcome("transfer", err) }()

	if amount <= 0 {
		return models.Transfer{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if actorID == targetID {
		return models.Transfer{}, ErrSelfTransfer
	}

	key := cooldown.PairKey{GuildID: guildID, Actor: actorID, Target: targetID}
	if ok, remaining := s.transferCooldown.Check(key, s.cfg.TransferCooldown); !ok {
		return models.Transfer{}, &CooldownError{Remaining: remaining}
	}

	result, err = s.deps.Economy.Transfer(ctx, guildID, actorID, targetID, amount)
	if err != nil {
		s.transferCooldown.Forget(key)
		return models.Transfer{}, err
	}
	if !result.Applied {
		s.transferCooldown.Forget(key)
		return result, ErrInsufficientFunds
	}
	return result, nil
}

// Extend spends amount currency to push the role's deadline out by amount
// seconds. Only the owner may extend; the charge is refunded if the role is
// gone by the time the deadline is written.
func (s *Service) Extend(ctx context.Context, guildID, actorID, roleID snowflake.ID, amount int64) (deadline time.Time, err error) {
	defer func() { s.deps.Metrics.Outcome("extend", err) }()

	if amount <= 0 {
		return time.Time{}, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	amount = s.extendCap(amount)

	owner, err := s.deps.Owners.QueryOwner(ctx, guildID, roleID)
	if err != nil {
		return time.Time{}, err
	}
	switch {
	case owner.Status == models.OwnerNotFound:
		return time.Time{}, ErrRoleNotFound
	case owner.Status != models.OwnerOwned || snowflake.ID(owner.OwnerID) != actorID:
		return time.Time{}, ErrNotOwner
	}

	_, ok, err := s.deps.Economy.Withdraw(ctx, guildID, actorID, amount)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Time{}, ErrInsufficientFunds
	}

	deadline, ok, err = s.deps.Deadlines.ExtendDeadline(ctx, guildID, roleID, amount)
	if err != nil || !ok {
		if _, refundErr := s.deps.Economy.Deposit(ctx, guildID, actorID, amount); refundErr != nil {
			slog.Error("Failed to refund extension",
				slog.String("type", "db"),
				slog.String("guild_id", guildID.String()),
				slog.String("user_id", actorID.String()),
				slog.Int64("amount", amount),
				slog.Any("error", refundErr))
		}
		if err != nil {
			return time.Time{}, err
		}
		return time.Time{}, ErrRoleNotFound
	}
	return deadline, nil
}

// extendCap bounds one extension so the same value is debited, added to the
// deadline and refunded.
func (s *Service) extendCap(amount int64) int64 {
	if s.cfg.MaxExtendSeconds > 0 {
		amount = min(amount, s.cfg.MaxExtendSeconds)
	}
	if s.cfg.MaxBalance > 0 {
		amount = min(amount, s.cfg.MaxBalance)
	}
	return amount
}

func (s *Service) SetMainChannel(ctx context.Context, guildID, channelID snowflake.ID, admin bool) error {
	if !admin {
		return ErrPermissionDenied
	}
	return s.deps.Guilds.SetMainChannel(ctx, guildID, channelID)
}

// Resync drops the guild's in-memory state and hydrates it again from the
// platform. This repairs grants left behind by a crash between a local
// commit and its platform call.
func (s *Service) Resync(ctx context.Context, guildID snowflake.ID, admin bool) (int, error) {
	if !admin {
		return 0, ErrPermissionDenied
	}
	s.deps.Cache.Invalidate(guildID)
	state, err := s.deps.Cache.Get(ctx, guildID)
	if err != nil {
		return 0, err
	}
	return len(state.ManagedRoles()), nil
}

// PruneCooldowns drops cooldown entries whose window has passed and reports
// how many were removed.
func (s *Service) PruneCooldowns() int {
	return s.newRoleCooldown.Prune(s.cfg.NewRoleCooldown) +
		s.transferCooldown.Prune(s.cfg.TransferCooldown)
}

// ImportOnHydrate records every manageable role of a freshly hydrated guild
// in the ownership ledger as an orphan, so legacy roles can be claimed.
func (s *Service) ImportOnHydrate(ctx context.Context, state *guildstate.GuildState, infos []guildstate.RoleInfo) {
	records := make([]models.Role, 0, len(infos))
	for _, info := range infos {
		records = append(records, models.Role{RoleID: int64(info.ID), Name: info.Name})
	}

	n, err := s.deps.Owners.ImportRoles(ctx, state.ID, records)
	if err != nil {
		slog.Error("Failed to import roles",
			slog.String("type", "db"),
			slog.String("guild_id", state.ID.String()),
			slog.Any("error", err))
		return
	}
	if n > 0 {
		slog.Info("Imported roles as orphans",
			slog.String("type", "db"),
			slog.String("guild_id", state.ID.String()),
			slog.Int64("count", n))
	}
}
