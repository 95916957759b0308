package dto

// LoginRequest carries the sign-in credentials: the user's email identity and
// the shared application password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the session token for subsequent API calls.
type LoginResponse struct {
	Token string `json:"token"`
}
