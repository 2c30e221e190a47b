package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/braizerecords/label-api/internal/core/domain"
)

func TestIdentityService_TokenRoundTrip(t *testing.T) {
	svc := NewIdentityService("secret", time.Hour)

	token, err := svc.IssueToken("user_1", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken returned error: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("unexpected user id: %s", claims.UserID)
	}
	if claims.Role != domain.RoleEmployee {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestIdentityService_VerifyToken_WrongSecret(t *testing.T) {
	token, err := NewIdentityService("secret-a", time.Hour).IssueToken("user_1", domain.RoleArtist)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := NewIdentityService("secret-b", time.Hour).VerifyToken(token); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestIdentityService_VerifyToken_Garbage(t *testing.T) {
	svc := NewIdentityService("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyToken(tok); err != domain.ErrUnauthorized {
			t.Fatalf("token %q: expected ErrUnauthorized, got %v", tok, err)
		}
	}
}

func TestIdentityService_VerifyToken_Expired(t *testing.T) {
	svc := NewIdentityService("secret", time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: string(domain.RoleEmployee),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyToken(signed); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestIdentityService_VerifyToken_MissingExpiry(t *testing.T) {
	svc := NewIdentityService("secret", time.Hour)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role:             string(domain.RoleEmployee),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user_1"},
	})
	signed, err := noExp.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyToken(signed); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for token without exp, got %v", err)
	}
}

func TestIdentityService_VerifyToken_UnknownRole(t *testing.T) {
	svc := NewIdentityService("secret", time.Hour)

	now := time.Now()
	bogus := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: "intern",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := bogus.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.VerifyToken(signed); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for unknown role, got %v", err)
	}
}

func TestIdentityService_PasswordHashing(t *testing.T) {
	svc := NewIdentityService("secret", time.Hour)

	h1, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	h2, err := svc.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if h1 == "s3cret" || h2 == "s3cret" {
		t.Fatalf("password stored in clear")
	}
	if h1 == h2 {
		t.Fatalf("expected salted hashes to differ")
	}

	if !svc.VerifyPassword("s3cret", h1) {
		t.Fatalf("correct password rejected")
	}
	if svc.VerifyPassword("wrong", h1) {
		t.Fatalf("wrong password accepted")
	}
}

func TestIdentityService_HasPermission(t *testing.T) {
	svc := NewIdentityService("secret", time.Hour)

	cases := []struct {
		name     string
		role     domain.Role
		required []domain.Role
		want     bool
	}{
		{"superadmin passes empty set", domain.RoleSuperadmin, nil, true},
		{"superadmin passes any set", domain.RoleSuperadmin, []domain.Role{domain.RoleAccountant}, true},
		{"employee passes when listed", domain.RoleEmployee, []domain.Role{domain.RoleEmployee}, true},
		{"employee fails when not listed", domain.RoleEmployee, []domain.Role{domain.RoleAccountant}, false},
		{"artist fails empty set", domain.RoleArtist, nil, false},
		{"accountant passes mixed set", domain.RoleAccountant, []domain.Role{domain.RoleEmployee, domain.RoleAccountant}, true},
	}

	for _, tc := range cases {
		if got := svc.HasPermission(tc.role, tc.required...); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
