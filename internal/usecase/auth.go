package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/domain/repository"
	pkgAuth "github.com/avolkov/clientbase/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and session token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// SignUp creates a new account with a hashed password. The store's
// unique constraint on email reports duplicates.
func (u *AuthUseCase) SignUp(ctx context.Context, name, email, password string) error {
	email = strings.TrimSpace(email)

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	if _, err := u.users.Create(ctx, name, email, hash); err != nil {
		return err
	}
	return nil
}

// Login validates credentials and returns the account with a fresh
// session token. Unknown email and wrong password are indistinguishable
// to the caller.
func (u *AuthUseCase) Login(ctx context.Context, loginID, password string) (*model.User, string, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, loginID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the subject email from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UserByEmail fetches an account by email.
func (u *AuthUseCase) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.users.GetByEmail(ctx, email)
}
