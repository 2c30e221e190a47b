package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/service"
)

func runRBAC(t *testing.T, role any, allowed ...domain.Role) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	called := false
	identity := service.NewIdentityService("secret", time.Hour)
	handler := RBAC(identity, allowed...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestRBAC_SuperadminPassesEverything(t *testing.T) {
	if code, called := runRBAC(t, domain.RoleSuperadmin); code != http.StatusOK || !called {
		t.Fatalf("superadmin blocked on empty set: code=%d called=%v", code, called)
	}
	if code, called := runRBAC(t, domain.RoleSuperadmin, domain.RoleAccountant); code != http.StatusOK || !called {
		t.Fatalf("superadmin blocked on accountant gate: code=%d called=%v", code, called)
	}
}

func TestRBAC_AllowedRolePasses(t *testing.T) {
	if code, called := runRBAC(t, domain.RoleEmployee, domain.RoleEmployee); code != http.StatusOK || !called {
		t.Fatalf("listed role blocked: code=%d called=%v", code, called)
	}
}

func TestRBAC_UnlistedRoleForbidden(t *testing.T) {
	code, called := runRBAC(t, domain.RoleArtist, domain.RoleEmployee)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if called {
		t.Fatalf("next should not run")
	}
}

func TestRBAC_EmptyAllowedSetIsSuperadminOnly(t *testing.T) {
	if code, _ := runRBAC(t, domain.RoleEmployee); code != http.StatusForbidden {
		t.Fatalf("expected 403 for non superadmin, got %d", code)
	}
}

func TestRBAC_MissingRoleForbidden(t *testing.T) {
	if code, _ := runRBAC(t, nil, domain.RoleEmployee); code != http.StatusForbidden {
		t.Fatalf("expected 403 when role absent, got %d", code)
	}
}
