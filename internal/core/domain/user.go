package domain

import (
	"errors"
	"time"
)

// Role is the single coarse-grained authorization tag carried by every user.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleEmployee   Role = "employee"
	RoleAccountant Role = "accountant"
	RoleArtist     Role = "artist"
)

var validRoles = map[Role]struct{}{
	RoleSuperadmin: {},
	RoleEmployee:   {},
	RoleAccountant: {},
	RoleArtist:     {},
}

// ParseRole validates a role string at the data-model boundary. Unknown
// values are rejected before they ever reach the credential store.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := validRoles[r]; !ok {
		return "", ErrUnknownRole
	}
	return r, nil
}

// Permission is a fine-grained capability tag. Permissions gate what the
// back-office UI renders; route authorization is decided by Role alone.
type Permission string

const (
	PermManageArtists  Permission = "manage_artists"
	PermManageFiles    Permission = "manage_files"
	PermViewAnalytics  Permission = "view_analytics"
	PermManageSocial   Permission = "manage_social"
	PermManageCalendar Permission = "manage_calendar"
	PermViewFinancials Permission = "view_financials"
)

var validPermissions = map[Permission]struct{}{
	PermManageArtists:  {},
	PermManageFiles:    {},
	PermViewAnalytics:  {},
	PermManageSocial:   {},
	PermManageCalendar: {},
	PermViewFinancials: {},
}

// AllPermissions returns every known permission tag. The seed routine grants
// the full set to the default superadmin.
func AllPermissions() []Permission {
	return []Permission{
		PermManageArtists,
		PermManageFiles,
		PermViewAnalytics,
		PermManageSocial,
		PermManageCalendar,
		PermViewFinancials,
	}
}

// ParsePermissions validates a set of permission strings, rejecting unknown tags.
func ParsePermissions(tags []string) ([]Permission, error) {
	perms := make([]Permission, 0, len(tags))
	for _, t := range tags {
		p := Permission(t)
		if _, ok := validPermissions[p]; !ok {
			return nil, ErrUnknownPermission
		}
		perms = append(perms, p)
	}
	return perms, nil
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already used")
	ErrLastSuperadmin     = errors.New("cannot delete the last superadmin")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownPermission  = errors.New("unknown permission")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// User models an account in the label back office. PasswordHash never leaves
// the server: it is excluded from JSON serialization entirely.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Permissions  []Permission `json:"permissions"`
	Active       bool         `json:"active"`
	Avatar       string       `json:"avatar,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	LastLogin    time.Time    `json:"last_login,omitempty"`
}
