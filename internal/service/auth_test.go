package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/blog-platform/internal/model"
	"github.com/iliyamo/blog-platform/internal/repository"
	"github.com/iliyamo/blog-platform/internal/utils"
)

// fakeDirectory serves canned users keyed by email.
type fakeDirectory struct {
	users map[string]model.User
}

func (f *fakeDirectory) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func newFixture(t *testing.T) (*AuthService, model.User) {
	t.Helper()
	hash, err := utils.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	u := model.User{ID: 11, Email: "a@b.com", Password: hash}
	dir := &fakeDirectory{users: map[string]model.User{u.Email: u}}
	return NewAuthService(dir, "test-secret", 15), u
}

func TestLogin_Success(t *testing.T) {
	svc, u := newFixture(t)

	tok, err := svc.Login(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	userID, err := utils.ParseAccessToken("test-secret", tok.Token)
	require.NoError(t, err)
	require.Equal(t, u.ID, userID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Login(context.Background(), "x@y.com", "whatever")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
