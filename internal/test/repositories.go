package test

import (
	"context"
	"sort"
	"strings"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/domain/repository"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers account unless email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrEmailExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	return user, nil
}

// GetByEmail fetches account by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CustomerRepositoryStub keeps customers in-memory and mimics the
// store's uniqueness and not-found behaviour.
type CustomerRepositoryStub struct {
	Customers map[int64]*model.Customer
	Next      int64
	Err       error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{
		Customers: make(map[int64]*model.Customer),
		Next:      1,
	}
}

// Create inserts customer enforcing email/phone uniqueness.
func (s *CustomerRepositoryStub) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Customers {
		if existing.Email == c.Email {
			return nil, domainErrors.ErrEmailExists
		}
		if existing.Phone == c.Phone {
			return nil, domainErrors.ErrPhoneExists
		}
	}
	created := *c
	created.ID = s.Next
	s.Next++
	s.Customers[created.ID] = &created
	return &created, nil
}

// Update replaces stored customer fields or returns not found.
func (s *CustomerRepositoryStub) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Customers[c.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	updated := *c
	s.Customers[c.ID] = &updated
	return &updated, nil
}

// GetByID fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.Customers[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches customer by exact email or returns not found.
func (s *CustomerRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Customers {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List pages customers ordered by id.
func (s *CustomerRepositoryStub) List(ctx context.Context, pageNo, pageSize int, sortBy string) (*repository.CustomerPage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	all := s.sorted()
	total := int64(len(all))
	start := pageNo * pageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return &repository.CustomerPage{Customers: all[start:end], Total: total}, nil
}

// Search matches the field value case-insensitively by substring.
func (s *CustomerRepositoryStub) Search(ctx context.Context, field, query string) ([]model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	query = strings.ToLower(query)
	var result []model.Customer
	for _, c := range s.sorted() {
		var value string
		switch field {
		case "firstName":
			value = c.FirstName
		case "city":
			value = c.City
		case "email":
			value = c.Email
		case "phone":
			value = c.Phone
		default:
			return nil, domainErrors.ErrInvalidSearchField
		}
		if strings.Contains(strings.ToLower(value), query) {
			result = append(result, c)
		}
	}
	return result, nil
}

// Delete removes customer or returns not found.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Customers[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Customers, id)
	return nil
}

func (s *CustomerRepositoryStub) sorted() []model.Customer {
	ids := make([]int64, 0, len(s.Customers))
	for id := range s.Customers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.Customer, 0, len(ids))
	for _, id := range ids {
		result = append(result, *s.Customers[id])
	}
	return result
}
