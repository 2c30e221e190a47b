package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// UserService implements authentication and superadmin user administration
// against the credential store.
type UserService struct {
	repo     ports.UserRepository
	identity ports.IdentityService
	throttle ports.LoginThrottle // optional; nil disables throttling
}

func NewUserService(repo ports.UserRepository, identity ports.IdentityService, throttle ports.LoginThrottle) *UserService {
	return &UserService{repo: repo, identity: identity, throttle: throttle}
}

// Authenticate verifies credentials and mints a session token. Unknown email,
// inactive account and wrong password are indistinguishable to the caller:
// all three resolve to domain.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, email)
		if err != nil {
			return "", nil, fmt.Errorf("login throttle: %w", err)
		}
		if !ok {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.identity.VerifyPassword(password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, err
	}
	user.LastLogin = now

	token, err := s.identity.IssueToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}

	user.Avatar = GravatarURL(user.Email)
	return token, user, nil
}

func (s *UserService) recordFailure(ctx context.Context, email string) {
	if s.throttle != nil {
		_ = s.throttle.RecordFailure(ctx, email)
	}
}

// Get returns one user's public profile.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Avatar = GravatarURL(user.Email)
	return user, nil
}

// List returns all users, newest first, with avatar URLs populated.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Avatar = GravatarURL(users[i].Email)
	}
	return users, nil
}

// Create registers a new account with a hashed initial password. The email
// must not already be in use, active or not.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Email == "" || input.Name == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	perms, err := domain.ParsePermissions(input.Permissions)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := s.identity.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
		Permissions:  perms,
		Active:       active,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	created.Avatar = GravatarURL(created.Email)
	return created, nil
}

// Update applies a partial patch. A new password is re-hashed; role and
// permission strings are validated before touching the store.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	update := ports.UserUpdate{
		Email:  input.Email,
		Name:   input.Name,
		Active: input.Active,
	}

	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		update.Role = &role
	}
	if input.Permissions != nil {
		perms, err := domain.ParsePermissions(input.Permissions)
		if err != nil {
			return nil, err
		}
		update.Permissions = perms
	}
	if input.Password != nil {
		hash, err := s.identity.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	updated.Avatar = GravatarURL(updated.Email)
	return updated, nil
}

// Delete removes an account unless it is the last active superadmin: the
// system must always retain at least one.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleSuperadmin && user.Active {
		remaining, err := s.repo.CountActiveSuperadmins(ctx, id)
		if err != nil {
			return err
		}
		if remaining == 0 {
			return domain.ErrLastSuperadmin
		}
	}

	return s.repo.Delete(ctx, id)
}

// GravatarURL derives the avatar URL shown next to a user in the back office.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon&s=200", hex.EncodeToString(sum[:]))
}
