package repository

import (
	"context"

	"github.com/avolkov/clientbase/internal/domain/model"
)

// UserRepository describes persistence operations for portal accounts.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
