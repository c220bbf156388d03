package domain

import "fmt"

// UserRole is the variant tag of a User.
type UserRole string

const (
	RoleCustomer      UserRole = "customer"
	RoleAdministrator UserRole = "administrator"
)

// CustomerDetails is the payload carried by the customer variant.
type CustomerDetails struct {
	PostalAddress string `json:"postal_address"`
}

// User models a registered actor. The role is fixed at construction.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	role     UserRole
	customer *CustomerDetails
}

// NewUser builds a user with the given role and no variant payload.
func NewUser(id, name, email string, role UserRole) *User {
	return &User{ID: id, Name: name, Email: email, role: role}
}

// NewCustomer builds the customer variant.
func NewCustomer(id, name, email, postalAddress string) *User {
	u := NewUser(id, name, email, RoleCustomer)
	u.customer = &CustomerDetails{PostalAddress: postalAddress}
	return u
}

// NewAdministrator builds the administrator variant.
func NewAdministrator(id, name, email string) *User {
	return NewUser(id, name, email, RoleAdministrator)
}

func (u *User) Role() UserRole { return u.role }

// Customer returns the customer payload, if u is a customer.
func (u *User) Customer() (CustomerDetails, bool) {
	if u.role != RoleCustomer || u.customer == nil {
		return CustomerDetails{}, false
	}
	return *u.customer, true
}

// IsCustomer reports whether u may place orders.
func (u *User) IsCustomer() bool {
	switch u.role {
	case RoleCustomer:
		return true
	default:
		return false
	}
}

func (u *User) IsAdministrator() bool {
	switch u.role {
	case RoleAdministrator:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.customer != nil {
		details := *u.customer
		c.customer = &details
	}
	return &c
}

func (u *User) String() string {
	base := fmt.Sprintf("[%s] %s <%s>", u.ID, u.Name, u.Email)
	switch u.role {
	case RoleCustomer:
		details, _ := u.Customer()
		return fmt.Sprintf("%s - Customer - Address: %s", base, details.PostalAddress)
	case RoleAdministrator:
		return base + " - Administrator"
	default:
		return base + " - User"
	}
}
