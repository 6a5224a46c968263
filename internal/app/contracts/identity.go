package contracts

import (
	"clinicdesk-service/internal/app/models"
	"context"
)

// IdentityProvider wraps credential sign-in, session retrieval and the
// admin-privileged user management surface of the auth backend.
type IdentityProvider interface {
	// SignIn verifies credentials, stores a session carrying the user's
	// cached claims and returns the session plus a signed token.
	SignIn(ctx context.Context, email, password string) (*models.Session, string, error)
	// GetSession resolves a signed token to its live session. Returns
	// nil, nil when the session no longer exists.
	GetSession(ctx context.Context, token string) (*models.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	// RefreshSessionClaims rewrites the live session with new claims so
	// the current session observes them immediately, without waiting
	// for a natural token refresh.
	RefreshSessionClaims(ctx context.Context, sessionID string, claims models.SessionClaims) error

	CreateUser(ctx context.Context, email, password string, claims models.SessionClaims) (string, error)
	FindUserByEmail(ctx context.Context, email string) (*models.IdentityUser, error)
	UpdateClaims(ctx context.Context, userID string, claims models.SessionClaims) error
	UpdatePassword(ctx context.Context, userID, newPassword string) error
	DeleteUser(ctx context.Context, userID string) error
}
