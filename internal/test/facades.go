package test

import (
	"context"
	"encoding/json"

	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/domain/repository"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	AuthenticatorStub

	SignUpFn func(context.Context, string, string, string) error
	LoginFn  func(context.Context, string, string) (string, string, error)
}

// SignUp completes successfully unless overridden.
func (s AuthFacadeStub) SignUp(ctx context.Context, name, email, password string) error {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, name, email, password)
	}
	return nil
}

// Login returns the login email with a stub token.
func (s AuthFacadeStub) Login(ctx context.Context, loginID, password string) (string, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, loginID, password)
	}
	return loginID, "token:" + loginID, nil
}

// CustomerFacadeStub provides controllable behaviour for customer endpoints.
type CustomerFacadeStub struct {
	CreateFn func(context.Context, model.CustomerUpdate, bool) (*model.Customer, error)
	UpdateFn func(context.Context, int64, model.CustomerUpdate) (*model.Customer, error)
	ListFn   func(context.Context, int, int, string) (*repository.CustomerPage, error)
	SearchFn func(context.Context, string, string) ([]model.Customer, error)
	GetFn    func(context.Context, int64) (*model.Customer, error)
	DeleteFn func(context.Context, int64) error
	ImportFn func(context.Context) ([]json.RawMessage, error)
}

// CreateCustomer delegates to override or returns a default record.
func (s CustomerFacadeStub) CreateCustomer(ctx context.Context, fields model.CustomerUpdate, sync bool) (*model.Customer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, fields, sync)
	}
	c := &model.Customer{ID: 1, UUID: "u-1"}
	fields.Apply(c)
	return c, nil
}

// UpdateCustomer delegates to override or echoes back the merged record.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id int64, fields model.CustomerUpdate) (*model.Customer, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, fields)
	}
	c := &model.Customer{ID: id, UUID: "u-1"}
	fields.Apply(c)
	return c, nil
}

// Customers returns preconfigured page.
func (s CustomerFacadeStub) Customers(ctx context.Context, pageNo, pageSize int, sortBy string) (*repository.CustomerPage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, pageNo, pageSize, sortBy)
	}
	return &repository.CustomerPage{Customers: []model.Customer{{ID: 1, UUID: "u-1"}}, Total: 1}, nil
}

// SearchCustomers returns preconfigured matches.
func (s CustomerFacadeStub) SearchCustomers(ctx context.Context, searchBy, query string) ([]model.Customer, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, searchBy, query)
	}
	return []model.Customer{{ID: 1, UUID: "u-1"}}, nil
}

// Customer returns preconfigured record by id.
func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Customer{ID: id, UUID: "u-1"}, nil
}

// DeleteCustomer executes configured delete handler.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ImportCustomers returns preconfigured remote records.
func (s CustomerFacadeStub) ImportCustomers(ctx context.Context) ([]json.RawMessage, error) {
	if s.ImportFn != nil {
		return s.ImportFn(ctx)
	}
	return []json.RawMessage{json.RawMessage(`{"uuid":"r-1"}`)}, nil
}

// PortalFacadeStub aggregates facade dependencies for HTTP layer tests.
type PortalFacadeStub struct {
	AuthFacadeStub
	CustomerFacadeStub
}

// ImporterStub simulates the remote customer importer.
type ImporterStub struct {
	Records []json.RawMessage
	Err     error
}

// FetchCustomers returns preconfigured records or error.
func (s ImporterStub) FetchCustomers(ctx context.Context) ([]json.RawMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}
