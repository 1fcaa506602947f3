// Package service contains the login orchestration. It sits between the
// HTTP handlers and the user repository so the handlers only ever deal with
// typed errors, never with driver or bcrypt details.
package service

import (
	"context"
	"errors"

	"github.com/iliyamo/blog-platform/internal/model"
	"github.com/iliyamo/blog-platform/internal/repository"
	"github.com/iliyamo/blog-platform/internal/utils"
)

// ErrUserNotFound is returned by Login when no account exists for the email.
// Handlers map it to HTTP 404.
var ErrUserNotFound = errors.New("no user found for email")

// ErrInvalidCredentials is returned by Login when the password does not
// match the stored hash. Handlers map it to HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserDirectory is the lookup surface Login needs from the user repository.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

// AuthService authenticates users and issues access tokens. It holds no
// state beyond immutable configuration; login mutates nothing.
type AuthService struct {
	users     UserDirectory
	jwtSecret string
	ttlMin    int
}

func NewAuthService(users UserDirectory, jwtSecret string, ttlMin int) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, ttlMin: ttlMin}
}

// Login verifies an email/password pair and returns a signed access token
// carrying the user's id. Lookup, verification and issuance short-circuit
// in that order: unknown email never reaches the bcrypt compare, and a bad
// password never reaches the signer.
func (s *AuthService) Login(ctx context.Context, email, password string) (utils.AccessToken, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return utils.AccessToken{}, ErrUserNotFound
		}
		return utils.AccessToken{}, err
	}
	if !utils.VerifyPassword(u.Password, password) {
		return utils.AccessToken{}, ErrInvalidCredentials
	}
	return utils.NewAccessToken(s.jwtSecret, u.ID, s.ttlMin)
}
