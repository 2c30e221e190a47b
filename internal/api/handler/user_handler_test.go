package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/braizerecords/label-api/internal/core/domain"
	"github.com/braizerecords/label-api/internal/core/ports"
)

func asSuperadmin(c echo.Context) {
	c.Set("user_id", "admin_1")
	c.Set("role", domain.RoleSuperadmin)
}

func TestUserHandler_List(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "user_1", Email: "a@braizerecords.com", PasswordHash: "$2a$10$secret", Role: domain.RoleEmployee},
				{ID: "user_2", Email: "b@braizerecords.com", Role: domain.RoleArtist},
			}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/users", "")
	asSuperadmin(c)

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if strings.Contains(rec.Body.String(), "$2a$10$secret") {
		t.Fatalf("password hash leaked in response body")
	}
}

func TestUserHandler_List_NoClaims(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newJSONContext(t, http.MethodGet, "/users", "")
	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestUserHandler_Create(t *testing.T) {
	var got ports.CreateUserInput
	h := NewUserHandler(&stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			got = input
			return &domain.User{ID: "user_9", Email: input.Email, Role: domain.Role(input.Role)}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPost, "/users",
		`{"email":"new@braizerecords.com","name":"New Hire","password":"changeme1","role":"employee","permissions":["manage_artists"]}`)
	asSuperadmin(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Email != "new@braizerecords.com" || got.Role != "employee" || len(got.Permissions) != 1 {
		t.Fatalf("unexpected input forwarded: %+v", got)
	}
}

func TestUserHandler_Create_Validation(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	cases := []struct {
		name    string
		payload string
	}{
		{"short password", `{"email":"a@b.com","name":"A","password":"short","role":"employee"}`},
		{"unknown role", `{"email":"a@b.com","name":"A","password":"changeme1","role":"intern"}`},
		{"missing email", `{"name":"A","password":"changeme1","role":"employee"}`},
	}
	for _, tc := range cases {
		c, rec := newJSONContext(t, http.MethodPost, "/users", tc.payload)
		asSuperadmin(c)
		if err := h.Create(c); err != nil {
			t.Fatalf("%s: Create returned error: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	c, _ := newJSONContext(t, http.MethodPost, "/users",
		`{"email":"taken@braizerecords.com","name":"A","password":"changeme1","role":"employee"}`)
	asSuperadmin(c)

	if err := h.Create(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken to bubble to the error handler, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	var gotID string
	var gotInput ports.UpdateUserInput
	h := NewUserHandler(&stubUserService{
		updateFn: func(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			gotID, gotInput = id, input
			return &domain.User{ID: id}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodPatch, "/users",
		`{"id":"user_3","name":"Renamed","active":false}`)
	asSuperadmin(c)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "user_3" {
		t.Fatalf("unexpected id: %s", gotID)
	}
	if gotInput.Name == nil || *gotInput.Name != "Renamed" {
		t.Fatalf("name not forwarded: %+v", gotInput)
	}
	if gotInput.Active == nil || *gotInput.Active {
		t.Fatalf("active not forwarded: %+v", gotInput)
	}
	if gotInput.Email != nil || gotInput.Password != nil {
		t.Fatalf("absent fields must stay nil: %+v", gotInput)
	}
}

func TestUserHandler_Update_MissingID(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, rec := newJSONContext(t, http.MethodPatch, "/users", `{"name":"Renamed"}`)
	asSuperadmin(c)

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "user_3" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	})

	c, rec := newJSONContext(t, http.MethodDelete, "/users", `{"id":"user_3"}`)
	asSuperadmin(c)

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_LastSuperadmin(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(context.Context, string) error {
			return domain.ErrLastSuperadmin
		},
	})

	c, _ := newJSONContext(t, http.MethodDelete, "/users", `{"id":"admin_1"}`)
	asSuperadmin(c)

	if err := h.Delete(c); err != domain.ErrLastSuperadmin {
		t.Fatalf("expected ErrLastSuperadmin to bubble to the error handler, got %v", err)
	}
}
