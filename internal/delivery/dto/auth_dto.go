package dto

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Name             string `json:"name" validate:"required"`
	Username         string `json:"username" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	SecurityQuestion string `json:"security_question" validate:"required"`
	SecurityAnswer   string `json:"security_answer" validate:"required"`
}

// LoginRequest carries the three login credentials: username, password, and
// the shared passkey.
type LoginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Passkey  string `json:"passkey" validate:"required"`
}

// SecurityQuestionResponse drives the password-reset flow
type SecurityQuestionResponse struct {
	Username         string `json:"username"`
	SecurityQuestion string `json:"security_question"`
}

// ResetPasswordRequest carries a security-answer authorized password reset
type ResetPasswordRequest struct {
	Username       string `json:"username" validate:"required,email"`
	SecurityAnswer string `json:"security_answer" validate:"required"`
	NewPassword    string `json:"new_password" validate:"required,min=8"`
}

// UserResponse represents an account in responses
type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// LoginResponse is returned on successful login; the session id is also set
// as a cookie by the handler.
type LoginResponse struct {
	SessionID string        `json:"session_id"`
	ExpiresIn int64         `json:"expires_in"`
	User      *UserResponse `json:"user"`
}
