package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/braizerecords/label-api/internal/api/middleware"
	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

// stubUserService lets each test wire only the methods it exercises.
type stubUserService struct {
	authenticateFn func(ctx context.Context, email, password string) (string, *domain.User, error)
	getFn          func(ctx context.Context, id string) (*domain.User, error)
	listFn         func(ctx context.Context) ([]domain.User, error)
	createFn       func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn       func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubUserService) Authenticate(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.authenticateFn(ctx, email, password)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.CookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", middleware.CookieName)
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubUserService{
		authenticateFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "carol@braizerecords.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s / %s", email, password)
			}
			return "signed-token", &domain.User{ID: "user_1", Email: email, Role: domain.RoleEmployee}, nil
		},
	}
	h := NewAuthHandler(svc, false)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"carol@braizerecords.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be SameSite=Strict")
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path must be /, got %q", cookie.Path)
	}
	if cookie.Secure {
		t.Fatalf("secure flag should be off outside production")
	}
	if cookie.MaxAge != int((24 * 60 * 60)) {
		t.Fatalf("unexpected max age: %d", cookie.MaxAge)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID != "user_1" || resp.User.Role != domain.RoleEmployee {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
}

func TestAuthHandler_Login_SecureCookieInProduction(t *testing.T) {
	svc := &stubUserService{
		authenticateFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "signed-token", &domain.User{ID: "user_1"}, nil
		},
	}
	h := NewAuthHandler(svc, true)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"carol@braizerecords.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !sessionCookieFrom(t, rec).Secure {
		t.Fatalf("expected Secure cookie in production")
	}
}

func TestAuthHandler_Login_FailureShapeIsUniform(t *testing.T) {
	// Whatever the underlying cause, the response must be byte-identical so
	// callers cannot tell a wrong password from an unknown account.
	h := NewAuthHandler(&stubUserService{
		authenticateFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}, false)

	var bodies []string
	for _, payload := range []string{
		`{"email":"ghost@braizerecords.com","password":"whatever"}`,
		`{"email":"carol@braizerecords.com","password":"wrongpass"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/auth/login", payload)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == middleware.CookieName {
				t.Fatalf("failed login must not set a session cookie")
			}
		}
		bodies = append(bodies, rec.Body.String())
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("failure bodies differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	h := NewAuthHandler(&stubUserService{
		authenticateFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}, false)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"carol@braizerecords.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubUserService{}, false)

	cases := []string{
		`{"email":"not-an-email","password":"s3cret"}`,
		`{"password":"s3cret"}`,
		`{"email":"carol@braizerecords.com"}`,
	}
	for _, payload := range cases {
		c, rec := newJSONContext(t, http.MethodPost, "/auth/login", payload)
		if err := h.Login(c); err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: expected 400, got %d", payload, rec.Code)
		}
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubUserService{}, false)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie.Value != "" {
		t.Fatalf("expected empty cookie value, got %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Fatalf("expected negative max age, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubUserService{
		getFn: func(_ context.Context, id string) (*domain.User, error) {
			if id != "user_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: id, Email: "carol@braizerecords.com", Role: domain.RoleEmployee}, nil
		},
	}, false)

	c, rec := newJSONContext(t, http.MethodGet, "/auth/me", "")
	c.Set("user_id", "user_1")
	c.Set("role", domain.RoleEmployee)

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.ID != "user_1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubUserService{}, false)

	c, _ := newJSONContext(t, http.MethodGet, "/auth/me", "")
	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
