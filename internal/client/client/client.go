package client

import (
	"context"

	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
)

// Client is the badge API as seen by the pages. Each method issues exactly
// one request; success means HTTP 200 and nothing else.
type Client interface {
	// Signup registers a user and returns the credential the server issued.
	Signup(ctx context.Context, creds models.Credentials) (string, error)
	// Login authenticates a user and returns a fresh credential.
	Login(ctx context.Context, creds models.Credentials) (string, error)
	// CreateBadge stores the badge of the user identified by token.
	CreateBadge(ctx context.Context, token string, details models.BadgeDetails) error
	// GetBadge fetches the badge of user id. No credential is sent.
	GetBadge(ctx context.Context, id string) (*models.Badge, error)
}
