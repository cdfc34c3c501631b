package auth

// LoginInput represents the request body for user authentication. The
// rules match the login form: a well-formed email and a password of at
// least 8 characters, checked before any network call.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginSurfaceDTO is the login page state derived from the stored
// credential.
type LoginSurfaceDTO struct {
	SessionExpired bool   `json:"session_expired"`
	Notice         string `json:"notice,omitempty"`
}
