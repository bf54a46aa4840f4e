package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/domain/repository"
)

const defaultPageSize = 10

// searchFields are the attribute names accepted by Search, matched
// case-sensitively.
var searchFields = map[string]struct{}{
	"firstName": {},
	"city":      {},
	"email":     {},
	"phone":     {},
}

// CustomerUseCase implements the customer workflow: create with an
// optional sync merge, partial update, paging, search and deletion.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Create inserts a new customer with a generated UUID. When sync is set
// and a customer with the same email exists, the incoming fields are
// merged into that record instead. Email and phone uniqueness is
// enforced by the store's constraints.
func (u *CustomerUseCase) Create(ctx context.Context, fields model.CustomerUpdate, sync bool) (*model.Customer, error) {
	var email string
	if fields.Email != nil {
		email = *fields.Email
	}

	existing, err := u.customers.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !sync {
			return nil, domainErrors.ErrEmailExists
		}
		return u.Update(ctx, existing.ID, fields)
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	customer := &model.Customer{UUID: uuid.NewString()}
	fields.Apply(customer)
	return u.customers.Create(ctx, customer)
}

// Update merges the non-nil fields into the stored customer.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, fields model.CustomerUpdate) (*model.Customer, error) {
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fields.Apply(customer)
	return u.customers.Update(ctx, customer)
}

// List returns a zero-indexed page ordered by sortBy ascending, or by
// the natural id order when sortBy is empty or unknown.
func (u *CustomerUseCase) List(ctx context.Context, pageNo, pageSize int, sortBy string) (*repository.CustomerPage, error) {
	if pageNo < 0 {
		pageNo = 0
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return u.customers.List(ctx, pageNo, pageSize, sortBy)
}

// Search performs a case-insensitive substring match on one of the
// allowed fields: firstName, city, email or phone.
func (u *CustomerUseCase) Search(ctx context.Context, searchBy, query string) ([]model.Customer, error) {
	if _, ok := searchFields[searchBy]; !ok {
		return nil, domainErrors.ErrInvalidSearchField
	}
	return u.customers.Search(ctx, searchBy, query)
}

// GetByID fetches a customer by identifier.
func (u *CustomerUseCase) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// Delete removes a customer by identifier.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return u.customers.Delete(ctx, id)
}
