package dto

import "github.com/avolkov/clientbase/internal/domain/model"

// CustomerCreateRequest describes a new customer payload.
type CustomerCreateRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// Fields converts the request into the optional-field form used by the
// customer workflow.
func (r CustomerCreateRequest) Fields() model.CustomerUpdate {
	return model.CustomerUpdate{
		FirstName: &r.FirstName,
		LastName:  &r.LastName,
		Address:   &r.Address,
		City:      &r.City,
		State:     &r.State,
		Email:     &r.Email,
		Phone:     &r.Phone,
	}
}

// CustomerUpdateRequest describes a partial customer update; absent
// fields stay untouched.
type CustomerUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// Fields converts the request into the domain update form.
func (r CustomerUpdateRequest) Fields() model.CustomerUpdate {
	return model.CustomerUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}

// CustomerResponse projects a customer record without its numeric id.
type CustomerResponse struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// NewCustomerResponse builds the projection from a domain record.
func NewCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		UUID:      c.UUID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// NewCustomerResponses projects a slice of domain records.
func NewCustomerResponses(customers []model.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, NewCustomerResponse(c))
	}
	return out
}

// PageResponse wraps a single page of customer projections.
type PageResponse struct {
	Content       []CustomerResponse `json:"content"`
	PageNo        int                `json:"pageNo"`
	PageSize      int                `json:"pageSize"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}
