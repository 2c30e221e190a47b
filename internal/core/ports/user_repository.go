package ports

import (
	"context"
	"time"

	"github.com/braizerecords/label-api/internal/core/domain"
)

// UserUpdate carries the mutable fields of a user record. Nil pointers leave
// the stored value untouched.
type UserUpdate struct {
	Email        *string
	Name         *string
	PasswordHash *string
	Role         *domain.Role
	Permissions  []domain.Permission
	Active       *bool
}

// UserRepository is the credential store access layer.
type UserRepository interface {
	// FindActiveByEmail returns domain.ErrUserNotFound for both unknown and
	// inactive accounts, so callers cannot tell the two apart.
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	// CountActiveSuperadmins counts active superadmins excluding the given id.
	// Pass an empty excludeID to count them all.
	CountActiveSuperadmins(ctx context.Context, excludeID string) (int64, error)
}
