package repository

import "context"

// TokenRepository defines the interface for acquiring upstream bearer tokens
type TokenRepository interface {
	AccessToken(ctx context.Context) (string, error)
}
