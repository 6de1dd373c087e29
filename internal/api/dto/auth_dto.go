package dto

// Data Transfer Objects for the signup / token exchange flow.

// SignupRequest: payload for requesting a confirmation code. Username rules
// (reserved "me", allowed characters) are checked in the service so the
// error can name the first offending character.
type SignupRequest struct {
	Username string `json:"username" binding:"required,max=32"`
	Email    string `json:"email" binding:"required,email,max=254"`
}

// SignupResponse echoes the identity the code was issued for.
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest: payload for exchanging a confirmation code for a JWT.
type TokenRequest struct {
	Username         string `json:"username" binding:"required"`
	ConfirmationCode string `json:"confirmation_code" binding:"required"`
}

// TokenResponse carries the signed access token.
type TokenResponse struct {
	Token string `json:"token"`
}
