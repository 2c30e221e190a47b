package ports

import "github.com/braizerecords/label-api/internal/core/domain"

// Claims is the decoded content of a session token.
type Claims struct {
	UserID string
	Role   domain.Role
}

// IdentityService owns password hashing, token minting/verification and
// role evaluation. Token verification is a pure computation: it never blocks
// and always resolves to a (Claims, error) outcome.
type IdentityService interface {
	HashPassword(plaintext string) (string, error)
	VerifyPassword(plaintext, hash string) bool
	IssueToken(userID string, role domain.Role) (string, error)
	VerifyToken(token string) (*Claims, error)
	HasPermission(role domain.Role, required ...domain.Role) bool
}
