package model

import "time"

// Customer is a CRM record. UUID is assigned once at creation and never
// recomputed; ID is the internal surrogate key.
type Customer struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"-"`
}

// CustomerUpdate carries the mutable customer attributes for a partial
// update. Nil fields are left untouched.
type CustomerUpdate struct {
	FirstName *string
	LastName  *string
	Address   *string
	City      *string
	State     *string
	Email     *string
	Phone     *string
}

// Apply overwrites the customer's fields with the non-nil values.
func (u CustomerUpdate) Apply(c *Customer) {
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		c.LastName = *u.LastName
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.City != nil {
		c.City = *u.City
	}
	if u.State != nil {
		c.State = *u.State
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
}
