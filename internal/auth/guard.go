package auth

import (
	"context"

	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
)

// UserRepository is the identity store.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

func ErrUserNotFound() error {
	return httperr.NotFoundErr("user_not_found", "User not found.")
}

func ErrEmailTaken() error {
	return httperr.Conflict("email_already_registered", "Email is already registered.")
}

// Guard answers who is calling and whether they may administer the salon.
type Guard interface {
	Authenticate(token string) (Identity, error)
	IsAdmin(ctx context.Context, id Identity) (bool, error)
}

type TokenGuard struct {
	tokens *Tokens
	users  UserRepository
}

func NewTokenGuard(tokens *Tokens, users UserRepository) *TokenGuard {
	return &TokenGuard{tokens: tokens, users: users}
}

func (g *TokenGuard) Authenticate(token string) (Identity, error) {
	return g.tokens.Verify(token)
}

// IsAdmin reads the flag from the users table so revocation applies to
// tokens already issued.
func (g *TokenGuard) IsAdmin(ctx context.Context, id Identity) (bool, error) {
	u, err := g.users.GetByID(ctx, id.UserID)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return false, httperr.Forbidden("user_not_found", "User not found.")
		}
		return false, err
	}
	return u.IsAdmin, nil
}

var _ Guard = (*TokenGuard)(nil)
