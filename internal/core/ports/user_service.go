package ports

import (
	"context"

	"github.com/braizerecords/label-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create an account.
type CreateUserInput struct {
	Email       string
	Name        string
	Password    string
	Role        string
	Permissions []string
	Active      *bool
}

// UpdateUserInput is a partial patch applied to an existing account.
// Nil fields are left unchanged; Password, when set, is re-hashed.
type UpdateUserInput struct {
	Email       *string
	Name        *string
	Password    *string
	Role        *string
	Permissions []string
	Active      *bool
}

// LoginThrottle bounds repeated failed logins per account.
type LoginThrottle interface {
	// Allow reports whether another attempt for the key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
	// RecordFailure counts one failed attempt against the key.
	RecordFailure(ctx context.Context, key string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, key string) error
}

// UserService implements authentication and user administration.
type UserService interface {
	// Authenticate verifies credentials and mints a session token. Unknown
	// email, inactive account and wrong password all return
	// domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (string, *domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete refuses with domain.ErrLastSuperadmin when the target is the
	// last active superadmin.
	Delete(ctx context.Context, id string) error
}
