package repository

import (
	"context"

	"github.com/avolkov/clientbase/internal/domain/model"
)

// CustomerPage bundles one page of customers with the total row count.
type CustomerPage struct {
	Customers []model.Customer
	Total     int64
}

// CustomerRepository describes persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	List(ctx context.Context, pageNo, pageSize int, sortBy string) (*CustomerPage, error)
	Search(ctx context.Context, field, query string) ([]model.Customer, error)
	Delete(ctx context.Context, id int64) error
}
