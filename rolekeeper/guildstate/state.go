package guildstate

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/puzpuzpuz/xsync/v3"
)

type userGrants = xsync.MapOf[snowflake.ID, time.Time]

// GuildState is the in-memory index for one guild: which roles the bot
// manages, which names are taken, and who wears what since when.
//
// Every mutation goes through the maps' own atomic primitives. Nothing here
// is held across network calls; callers commit first and roll back if the
// platform refuses.
type GuildState struct {
	ID snowflake.ID

	managedRoles *xsync.MapOf[snowflake.ID, struct{}]
	roleNames    *xsync.MapOf[string, struct{}]
	grants       *xsync.MapOf[snowflake.ID, *userGrants]

	now func() time.Time
}

func newGuildState(id snowflake.ID, now func() time.Time) *GuildState {
	return &GuildState{
		ID:           id,
		managedRoles: xsync.NewMapOf[snowflake.ID, struct{}](),
		roleNames:    xsync.NewMapOf[string, struct{}](),
		grants:       xsync.NewMapOf[snowflake.ID, *userGrants](),
		now:          now,
	}
}

func (s *GuildState) IsManaged(roleID snowflake.ID) bool {
	_, ok := s.managedRoles.Load(roleID)
	return ok
}

func (s *GuildState) ManagedRoles() []snowflake.ID {
	ids := make([]snowflake.ID, 0, s.managedRoles.Size())
	s.managedRoles.Range(func(id snowflake.ID, _ struct{}) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}

// AddManagedRole records a role the bot just created.
func (s *GuildState) AddManagedRole(roleID snowflake.ID, name string) {
	s.managedRoles.Store(roleID, struct{}{})
	s.roleNames.Store(name, struct{}{})
}

// RemoveManagedRole forgets a deleted role along with every grant of it.
func (s *GuildState) RemoveManagedRole(roleID snowflake.ID, name string) {
	s.managedRoles.Delete(roleID)
	s.grants.Range(func(_ snowflake.ID, roles *userGrants) bool {
		roles.Delete(roleID)
		return true
	})
	if name != "" {
		s.roleNames.Delete(name)
	}
}

// ReserveName claims name for a role about to be created. Names are compared
// case-sensitively. It returns false when the name is taken.
func (s *GuildState) ReserveName(name string) bool {
	_, loaded := s.roleNames.LoadOrStore(name, struct{}{})
	return !loaded
}

func (s *GuildState) ReleaseName(name string) {
	s.roleNames.Delete(name)
}

func (s *GuildState) userRoles(userID snowflake.ID) *userGrants {
	roles, _ := s.grants.LoadOrCompute(userID, func() *userGrants {
		return xsync.NewMapOf[snowflake.ID, time.Time]()
	})
	return roles
}

// Grant records that userID wears roleID as of now and returns the stamp.
// The insert is a single compare-and-insert: of two racing grants for the
// same slot exactly one succeeds.
func (s *GuildState) Grant(userID, roleID snowflake.ID) (time.Time, error) {
	if !s.IsManaged(roleID) {
		return time.Time{}, ErrRoleNotManaged
	}
	stamp := s.now()
	if _, loaded := s.userRoles(userID).LoadOrStore(roleID, stamp); loaded {
		return time.Time{}, ErrAlreadyGranted
	}
	return stamp, nil
}

// RollbackGrant undoes a Grant whose platform call failed. Only the entry
// carrying stamp is removed.
func (s *GuildState) RollbackGrant(userID, roleID snowflake.ID, stamp time.Time) {
	roles, ok := s.grants.Load(userID)
	if !ok {
		return
	}
	roles.Compute(roleID, func(current time.Time, loaded bool) (time.Time, bool) {
		return current, !loaded || current.Equal(stamp)
	})
}

// Revoke removes the grant if it is at least minAge old and returns the
// stamp it carried.
func (s *GuildState) Revoke(userID, roleID snowflake.ID, minAge time.Duration) (time.Time, error) {
	if !s.IsManaged(roleID) {
		return time.Time{}, ErrRoleNotManaged
	}
	roles, ok := s.grants.Load(userID)
	if !ok {
		return time.Time{}, ErrNotGranted
	}

	now := s.now()
	var (
		prior time.Time
		err   error
	)
	roles.Compute(roleID, func(stamp time.Time, loaded bool) (time.Time, bool) {
		if !loaded {
			err = ErrNotGranted
			return stamp, true
		}
		if elapsed := now.Sub(stamp); elapsed < minAge {
			err = &CooldownError{Remaining: minAge - elapsed}
			return stamp, false
		}
		prior = stamp
		return stamp, true
	})
	return prior, err
}

// RestoreGrant puts back a grant removed by Revoke whose platform call failed.
func (s *GuildState) RestoreGrant(userID, roleID snowflake.ID, stamp time.Time) {
	s.userRoles(userID).LoadOrStore(roleID, stamp)
}

// HasGrant reports whether userID currently wears roleID.
func (s *GuildState) HasGrant(userID, roleID snowflake.ID) bool {
	roles, ok := s.grants.Load(userID)
	if !ok {
		return false
	}
	_, ok = roles.Load(roleID)
	return ok
}

// RolesOf lists the managed roles userID is known to wear. The record stays
// after the member leaves, which is what rejoin reinstatement relies on.
func (s *GuildState) RolesOf(userID snowflake.ID) []snowflake.ID {
	roles, ok := s.grants.Load(userID)
	if !ok {
		return nil
	}
	ids := make([]snowflake.ID, 0, roles.Size())
	roles.Range(func(roleID snowflake.ID, _ time.Time) bool {
		if s.IsManaged(roleID) {
			ids = append(ids, roleID)
		}
		return true
	})
	return ids
}

// seed stores a hydrated grant without the managed check of Grant.
func (s *GuildState) seed(userID, roleID snowflake.ID, stamp time.Time) {
	s.userRoles(userID).Store(roleID, stamp)
}
