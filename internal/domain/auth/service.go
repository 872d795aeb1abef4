package auth

import "context"

// AuthService defines login and identity lookups.
type AuthService interface {
	// Login verifies credentials and issues an access token. All credential
	// failures surface uniformly as ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Me resolves the authenticated account from the request context
	Me(ctx context.Context) (MeResponse, error)
}
