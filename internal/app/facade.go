package app

import (
	"context"
	"encoding/json"

	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/domain/repository"
	"github.com/avolkov/clientbase/internal/usecase"
)

// CustomerImporter pulls customer records from the remote portal.
type CustomerImporter interface {
	FetchCustomers(ctx context.Context) ([]json.RawMessage, error)
}

// PortalFacade aggregates application workflows behind the handler-facing
// interfaces.
type PortalFacade struct {
	auth      *usecase.AuthUseCase
	customers *usecase.CustomerUseCase
	importer  CustomerImporter
}

// NewPortalFacade creates PortalFacade instance.
func NewPortalFacade(auth *usecase.AuthUseCase, customers *usecase.CustomerUseCase, importer CustomerImporter) *PortalFacade {
	return &PortalFacade{auth: auth, customers: customers, importer: importer}
}

func (f *PortalFacade) SignUp(ctx context.Context, name, email, password string) error {
	return f.auth.SignUp(ctx, name, email, password)
}

func (f *PortalFacade) Login(ctx context.Context, loginID, password string) (string, string, error) {
	user, token, err := f.auth.Login(ctx, loginID, password)
	if err != nil {
		return "", "", err
	}
	return user.Email, token, nil
}

func (f *PortalFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *PortalFacade) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.auth.UserByEmail(ctx, email)
}

func (f *PortalFacade) CreateCustomer(ctx context.Context, fields model.CustomerUpdate, sync bool) (*model.Customer, error) {
	return f.customers.Create(ctx, fields, sync)
}

func (f *PortalFacade) UpdateCustomer(ctx context.Context, id int64, fields model.CustomerUpdate) (*model.Customer, error) {
	return f.customers.Update(ctx, id, fields)
}

func (f *PortalFacade) Customers(ctx context.Context, pageNo, pageSize int, sortBy string) (*repository.CustomerPage, error) {
	return f.customers.List(ctx, pageNo, pageSize, sortBy)
}

func (f *PortalFacade) SearchCustomers(ctx context.Context, searchBy, query string) ([]model.Customer, error) {
	return f.customers.Search(ctx, searchBy, query)
}

func (f *PortalFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.GetByID(ctx, id)
}

func (f *PortalFacade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}

func (f *PortalFacade) ImportCustomers(ctx context.Context) ([]json.RawMessage, error) {
	return f.importer.FetchCustomers(ctx)
}
