package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
	pkgAuth "github.com/avolkov/clientbase/internal/pkg/auth"
	testhelpers "github.com/avolkov/clientbase/internal/test"
)

func TestAuthUseCaseSignUpSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	if err := uc.SignUp(ctx, "Alice", "alice@x.com", "password"); err != nil {
		t.Fatalf("sign up returned error: %v", err)
	}
	stored, err := repo.GetByEmail(ctx, "alice@x.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.Name != "Alice" {
		t.Fatalf("unexpected name %q", stored.Name)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseSignUpDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	if err := uc.SignUp(ctx, "Bob", "bob@x.com", "secret"); err != nil {
		t.Fatalf("unexpected error on first sign up: %v", err)
	}
	if err := uc.SignUp(ctx, "Bobby", "bob@x.com", "other"); !errors.Is(err, domainErrors.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthUseCaseSignUpHashError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	boom := errors.New("boom")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) { return "", boom }}, testhelpers.StrategyStub{})

	if err := uc.SignUp(context.Background(), "Carl", "carl@x.com", "pw"); !errors.Is(err, boom) {
		t.Fatalf("expected hash error, got %v", err)
	}
}

func TestAuthUseCaseLogin(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	if err := uc.SignUp(ctx, "Carol", "carol@x.com", "123456"); err != nil {
		t.Fatalf("sign up failed: %v", err)
	}

	if _, _, err := uc.Login(ctx, "carol@x.com", "bad"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	user, token, err := uc.Login(ctx, "carol@x.com", "123456")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if user.Email != "carol@x.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if token != "token:carol@x.com" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseLoginUnknownUser(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Login(context.Background(), "nobody@x.com", "pw"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseLoginEmptyInput(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Login(context.Background(), "", "pw"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty login, got %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "a@x.com", ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for empty password, got %v", err)
	}
}

func TestAuthUseCaseLoginRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	repo := &testhelpers.UserRepositoryStub{Err: boom}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	if _, _, err := uc.Login(context.Background(), "a@x.com", "pw"); !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	subject, err := uc.ParseToken("token:dave@x.com")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if subject != "dave@x.com" {
		t.Fatalf("unexpected subject %q", subject)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestAuthUseCaseUserByEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	if err := uc.SignUp(ctx, "Eve", "eve@x.com", "pw"); err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	user, err := uc.UserByEmail(ctx, "eve@x.com")
	if err != nil {
		t.Fatalf("user by email: %v", err)
	}
	if user.Name != "Eve" {
		t.Fatalf("unexpected user %+v", user)
	}
	if _, err := uc.UserByEmail(ctx, "ghost@x.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
