package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-queue/internal/auth"
	"github.com/BruksfildServices01/salon-queue/internal/db/dbtest"
	"github.com/BruksfildServices01/salon-queue/internal/httperr"
	"github.com/BruksfildServices01/salon-queue/internal/infra/repository"
)

func newService(t *testing.T) (*auth.Service, *auth.TokenGuard) {
	t.Helper()
	users := repository.NewUserGormRepository(dbtest.Open(t))
	tokens := auth.NewTokens("test-secret")
	svc := auth.NewService(users, tokens, auth.Options{
		IsAdminEmail: func(email string) bool { return email == "boss@salon.com" },
	})
	return svc, auth.NewTokenGuard(tokens, users)
}

func TestSignupAndLogin(t *testing.T) {
	svc, guard := newService(t)
	ctx := context.Background()

	u, token, err := svc.Signup(ctx, auth.SignupInput{Name: "Ana", Email: " Ana@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.False(t, u.IsAdmin)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	id, err := guard.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)

	_, _, err = svc.Login(ctx, "ana@example.com", "wrong")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))

	_, token, err = svc.Login(ctx, "ANA@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, auth.SignupInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, auth.SignupInput{Name: "Ana 2", Email: "ana@example.com", Password: "secret2"})
	assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
}

func TestSignup_Validation(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Signup(context.Background(), auth.SignupInput{Name: "Ana", Email: "not-an-email", Password: "secret1"})
	assert.True(t, httperr.IsBusiness(err, "invalid_email"))

	_, _, err = svc.Signup(context.Background(), auth.SignupInput{Name: " ", Email: "a@b.com", Password: "secret1"})
	assert.True(t, httperr.IsBusiness(err, "name_required"))

	_, _, err = svc.Signup(context.Background(), auth.SignupInput{Name: "Ana", Email: "a@b.com", Password: "123"})
	assert.True(t, httperr.IsBusiness(err, "invalid_password"))

	_, _, err = svc.Signup(context.Background(), auth.SignupInput{Name: "Ana", Email: "a@b.com", Password: strings.Repeat("x", 73)})
	assert.True(t, httperr.IsBusiness(err, "invalid_password"))
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	// 40 characters but 80 bytes.
	_, _, err = svc.Signup(context.Background(), auth.SignupInput{Name: "Ana", Email: "a@b.com", Password: strings.Repeat("é", 40)})
	assert.True(t, httperr.IsBusiness(err, "invalid_password"))
}

func TestUpdate_RejectsOverlongPassword(t *testing.T) {
	svc, guard := newService(t)
	ctx := context.Background()

	_, token, err := svc.Signup(ctx, auth.SignupInput{Name: "Ana", Email: "ana@salon.com", Password: "secret1"})
	require.NoError(t, err)
	id, err := guard.Authenticate(token)
	require.NoError(t, err)

	long := strings.Repeat("x", 73)
	_, err = svc.Update(ctx, id, auth.UpdateInput{Password: &long})
	assert.True(t, httperr.IsBusiness(err, "invalid_password"))
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	ok := strings.Repeat("x", 72)
	_, err = svc.Update(ctx, id, auth.UpdateInput{Password: &ok})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ana@salon.com", ok)
	require.NoError(t, err)
}

func TestAdminBootstrapAndUpdateCannotElevate(t *testing.T) {
	svc, guard := newService(t)
	ctx := context.Background()

	boss, bossToken, err := svc.Signup(ctx, auth.SignupInput{Name: "Boss", Email: "boss@salon.com", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, boss.IsAdmin)

	id, err := guard.Authenticate(bossToken)
	require.NoError(t, err)
	isAdmin, err := guard.IsAdmin(ctx, id)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	_, token, err := svc.Signup(ctx, auth.SignupInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	anaID, err := guard.Authenticate(token)
	require.NoError(t, err)

	name := "Ana Maria"
	updated, err := svc.Update(ctx, anaID, auth.UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.False(t, updated.IsAdmin)

	isAdmin, err = guard.IsAdmin(ctx, anaID)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestTokens_RejectsTampered(t *testing.T) {
	tokens := auth.NewTokens("one")
	token, err := tokens.Issue(7, "a@b.com")
	require.NoError(t, err)

	_, err = auth.NewTokens("two").Verify(token)
	assert.True(t, httperr.IsBusiness(err, "invalid_token"))

	_, err = tokens.Verify(strings.TrimSuffix(token, token[len(token)-2:]))
	assert.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id.UserID)
	assert.Equal(t, "a@b.com", id.Email)
}
