package auth

import "github.com/medivac/portal/service"

// DefaultRole is sent when a registration does not name a role.
const DefaultRole = "patient"

type (
	// RegisterRequest is the registration payload; ConfirmPassword is checked locally only.
	RegisterRequest struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		Role            string `json:"role"`
		ConfirmPassword string `json:"-"`
	}

	// RegisterResponse covers both backend variants: {success,message} and {token,user}.
	RegisterResponse struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Token   string           `json:"token,omitempty"`
		User    *service.Profile `json:"user,omitempty"`
	}

	// LoginRequest carries the sign-in credentials.
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	// LoginResponse is the backend answer; Token is required.
	LoginResponse struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
)

// State is the authentication state derived from the session.
type State int

// Authentication states.
const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}
