package httpapi

import "time"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the generic `{msg}` envelope.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// UserPayload is the client-visible projection of a user record. The
// password hash is deliberately absent.
type UserPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserResponse is the body of GET /user/:id.
type UserResponse struct {
	User UserPayload `json:"user"`
}
