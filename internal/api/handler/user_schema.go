package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createUserRequest struct {
	Email       string   `json:"email"       validate:"required,email"`
	Name        string   `json:"name"        validate:"required"`
	Password    string   `json:"password"    validate:"required,min=8"`
	Role        string   `json:"role"        validate:"required,oneof=superadmin employee accountant artist"`
	Permissions []string `json:"permissions"`
	Active      *bool    `json:"active"`
}

// updateUserRequest carries the target id in the body, matching the PATCH
// /users contract. Nil fields leave the stored value untouched.
type updateUserRequest struct {
	ID          string   `json:"id"          validate:"required"`
	Email       *string  `json:"email"       validate:"omitempty,email"`
	Name        *string  `json:"name"`
	Password    *string  `json:"password"    validate:"omitempty,min=8"`
	Role        *string  `json:"role"        validate:"omitempty,oneof=superadmin employee accountant artist"`
	Permissions []string `json:"permissions"`
	Active      *bool    `json:"active"`
}

type deleteUserRequest struct {
	ID string `json:"id" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}
