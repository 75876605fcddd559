package model

// LoginRequest carries the credentials presented to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RefreshRequest carries the token presented for near-expiry renewal.
type RefreshRequest struct {
	Token string `json:"token" validate:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds until the token expires
}
