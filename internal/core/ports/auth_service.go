package ports

import (
	"context"

	"github.com/northmart/commerce-system/internal/core/domain"
)

// RegisterInput carries all data needed to create a new user account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Role     string
}

// AuthService defines the authentication use cases.
type AuthService interface {
	// Register stores a new user with a hashed password and returns the
	// created record alongside a freshly issued session token.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies credentials and returns a session token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the user record for an authenticated principal.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
