// Package store holds the storefront session core: catalog, cart, order
// history and viewer role for one client session. The Session struct is the
// single state container; nothing here is package-global.
package store

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"yellow-mart/internal/auth"
	"yellow-mart/internal/models"
)

// ErrMissingFields is returned by LoginCustomer when any field is empty.
var ErrMissingFields = errors.New("all fields are required")

// Session owns all client-side state. Mutations from UI actions are
// serialized through the mutex; fire-and-forget confirmations land on
// goroutines and take the same lock.
type Session struct {
	mu       sync.Mutex
	remote   Remote
	verifier auth.Verifier
	logger   *zap.Logger

	products []models.Product
	cart     []models.CartLine
	orders   []OrderRecord

	role        models.UserRole
	currentUser *models.Customer

	orderSeq int
}

// New creates a session in the default CUSTOMER role.
func New(remote Remote, verifier auth.Verifier, logger *zap.Logger) *Session {
	return NewWithRole(remote, verifier, logger, models.RoleCustomer)
}

// NewWithRole creates a session with an explicit initial role. Callers that
// want true anonymous browsing pass models.RoleGuest.
func NewWithRole(remote Remote, verifier auth.Verifier, logger *zap.Logger, role models.UserRole) *Session {
	return &Session{
		remote:   remote,
		verifier: verifier,
		logger:   logger,
		role:     role,
	}
}

// Role returns the active viewer role.
func (s *Session) Role() models.UserRole {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// ElevateAdmin compares the submitted passcode against the configured
// secret. On mismatch the role is unchanged and ErrInvalidCredentials is
// returned for the caller to surface.
func (s *Session) ElevateAdmin(passcode string) error {
	if !s.verifier.Verify(passcode) {
		return auth.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.role = models.RoleAdmin
	s.mu.Unlock()
	return nil
}

// LoginCustomer accepts any non-empty name/email/password triple. The
// password is never checked against a store; it only has to be present.
func (s *Session) LoginCustomer(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	s.mu.Lock()
	s.currentUser = &models.Customer{Name: name, Email: email}
	s.role = models.RoleCustomer
	s.mu.Unlock()
	return nil
}

// LogoutCustomer clears the identity and the locally held order history.
// Remote data is untouched.
func (s *Session) LogoutCustomer() {
	s.mu.Lock()
	s.currentUser = nil
	s.orders = nil
	s.mu.Unlock()
}

// CurrentUser returns the authenticated customer, or nil.
func (s *Session) CurrentUser() *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// Summary holds the admin dashboard projections over the order history.
type Summary struct {
	TotalRevenue    float64
	OrderCount      int
	UniqueCustomers int
	PendingCount    int
}

// Summarize derives the dashboard figures from the current order history.
// Pending counts orders still Placed or Processing.
func (s *Session) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{OrderCount: len(s.orders)}
	customers := make(map[string]struct{})
	for _, rec := range s.orders {
		sum.TotalRevenue += rec.Total
		customers[rec.CustomerEmail] = struct{}{}
		if rec.Status == models.StatusPlaced || rec.Status == models.StatusProcessing {
			sum.PendingCount++
		}
	}
	sum.UniqueCustomers = len(customers)
	return sum
}
