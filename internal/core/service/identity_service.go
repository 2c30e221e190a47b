package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

const (
	defaultTokenTTL = 24 * time.Hour
	// expiryLeeway tolerates small clock skew between instances when
	// validating the exp claim.
	expiryLeeway = 30 * time.Second
)

// tokenClaims is the wire shape of a session token: the registered subject
// carries the user id, plus a custom role claim.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IdentityService implements password hashing and stateless session tokens.
// Tokens are HS256-signed and carry all session state, so no server-side
// session store exists; rotating the secret invalidates every issued token.
type IdentityService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewIdentityService(secret string, tokenTTL time.Duration) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &IdentityService{secret: []byte(secret), tokenTTL: tokenTTL}
}

// HashPassword derives a salted one-way hash. bcrypt embeds a random salt,
// so the same plaintext yields a different hash on every call.
func (s *IdentityService) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext produced hash. bcrypt's compare
// runs in time independent of where a mismatch occurs.
func (s *IdentityService) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken mints a signed session token asserting {userID, role} for the
// configured TTL.
func (s *IdentityService) IssueToken(userID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken decodes and validates a session token. Malformed input, a bad
// signature, an unexpected algorithm or a passed expiry all yield
// domain.ErrUnauthorized; it never panics.
func (s *IdentityService) VerifyToken(token string) (*ports.Claims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithLeeway(expiryLeeway), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil || claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}

	return &ports.Claims{UserID: claims.Subject, Role: role}, nil
}

// HasPermission reports whether role satisfies the required set. Superadmin
// implicitly satisfies any check.
func (s *IdentityService) HasPermission(role domain.Role, required ...domain.Role) bool {
	if role == domain.RoleSuperadmin {
		return true
	}
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
