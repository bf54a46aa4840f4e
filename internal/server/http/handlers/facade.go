package handlers

import (
	"context"
	"encoding/json"

	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, loginID, password string) (string, string, error)
	ParseToken(token string) (string, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	CreateCustomer(ctx context.Context, fields model.CustomerUpdate, sync bool) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, fields model.CustomerUpdate) (*model.Customer, error)
	Customers(ctx context.Context, pageNo, pageSize int, sortBy string) (*repository.CustomerPage, error)
	SearchCustomers(ctx context.Context, searchBy, query string) ([]model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ImportCustomers(ctx context.Context) ([]json.RawMessage, error)
}

// PortalFacade aggregates the full set of operations used across handlers.
type PortalFacade interface {
	AuthFacade
	CustomerFacade
}
