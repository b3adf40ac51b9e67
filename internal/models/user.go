package models

// UserRole is the active viewer's role. GUEST is a declared variant that the
// shipped flows never reach; sessions start as CUSTOMER.
type UserRole string

const (
	RoleGuest    UserRole = "GUEST"
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// Customer is the lightweight identity stored after a customer login.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
