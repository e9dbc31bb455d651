package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/models"
	"github.com/BruksfildServices01/salon-queue/internal/validators"
)

type SignupInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
}

// bcrypt rejects longer inputs; the bound is in bytes, not characters.
const maxPasswordBytes = 72

func checkPassword(p string) error {
	if len(p) < 6 || len(p) > maxPasswordBytes {
		return httperr.Validation("invalid_password", "Password must have between 6 and 72 bytes.")
	}
	return nil
}

type UpdateInput struct {
	Name     *string
	Password *string
}

type Options struct {
	// IsAdminEmail decides the admin flag at signup.
	IsAdminEmail func(email string) bool
	// EmailDomainCheck, when set, rejects addresses whose domain does not
	// resolve.
	EmailDomainCheck func(ctx context.Context, email string) bool
}

type Service struct {
	users  UserRepository
	tokens *Tokens
	opts   Options
}

func NewService(users UserRepository, tokens *Tokens, opts Options) *Service {
	return &Service{users: users, tokens: tokens, opts: opts}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if err := validators.Struct(in); err != nil {
		return nil, "", err
	}
	if err := checkPassword(in.Password); err != nil {
		return nil, "", err
	}

	if s.opts.EmailDomainCheck != nil && !s.opts.EmailDomainCheck(ctx, in.Email) {
		return nil, "", httperr.Validation("invalid_email_domain", "Email domain does not accept mail.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
	}
	if s.opts.IsAdminEmail != nil {
		u.IsAdmin = s.opts.IsAdminEmail(in.Email)
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	invalid := httperr.UnauthorizedErr("invalid_credentials", "Invalid email or password.")

	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return nil, "", invalid
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", invalid
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Update changes the caller's own profile. The admin flag is never writable
// here.
func (s *Service) Update(ctx context.Context, id Identity, in UpdateInput) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.Validation("name_required", "Name is required.")
		}
		u.Name = name
	}

	if in.Password != nil {
		if err := checkPassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Me(ctx context.Context, id Identity) (*models.User, error) {
	return s.users.GetByID(ctx, id.UserID)
}
