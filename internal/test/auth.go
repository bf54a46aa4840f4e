package test

import (
	"context"
	"errors"

	"github.com/avolkov/clientbase/internal/domain/model"
	pkgAuth "github.com/avolkov/clientbase/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(subject string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject)
	}
	return "token:" + subject, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if len(token) > 6 && token[:6] == "token:" {
		return token[6:], nil
	}
	return "", pkgAuth.ErrInvalidToken
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthenticatorStub implements the session filter contract.
type AuthenticatorStub struct {
	Subject  string
	ParseErr error
	User     *model.User
	UserErr  error
	ParseFn  func(string) (string, error)
	UserFn   func(context.Context, string) (*model.User, error)
}

// ParseToken either delegates to override or returns predefined result.
func (s AuthenticatorStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.ParseErr != nil {
		return "", s.ParseErr
	}
	return s.Subject, nil
}

// UserByEmail either delegates to override or returns predefined user.
func (s AuthenticatorStub) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, email)
	}
	if s.UserErr != nil {
		return nil, s.UserErr
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{ID: 1, Email: email}, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
