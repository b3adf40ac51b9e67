package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yellow-mart/internal/auth"
	"yellow-mart/internal/models"
	"yellow-mart/internal/store"
)

func TestSessionDefaultsToCustomerRole(t *testing.T) {
	s := newTestSession(newFakeRemote())
	assert.Equal(t, models.RoleCustomer, s.Role())
}

func TestNewWithRoleGuest(t *testing.T) {
	s := store.NewWithRole(newFakeRemote(), acceptAllVerifier{}, zap.NewNop(), models.RoleGuest)
	assert.Equal(t, models.RoleGuest, s.Role())
}

func TestElevateAdmin(t *testing.T) {
	verifier := auth.NewStaticVerifier("200230")
	s := store.New(newFakeRemote(), verifier, zap.NewNop())

	tests := []struct {
		name     string
		passcode string
		wantErr  error
		wantRole models.UserRole
	}{
		{"wrong passcode", "123456", auth.ErrInvalidCredentials, models.RoleCustomer},
		{"empty passcode", "", auth.ErrInvalidCredentials, models.RoleCustomer},
		{"prefix only", "2002", auth.ErrInvalidCredentials, models.RoleCustomer},
		{"exact match", "200230", nil, models.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ElevateAdmin(tt.passcode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantRole, s.Role())
		})
	}
}

func TestLoginCustomer(t *testing.T) {
	s := newTestSession(newFakeRemote())

	require.NoError(t, s.LoginCustomer("Rahim", "rahim@example.com", "anything"))

	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Rahim", user.Name)
	assert.Equal(t, "rahim@example.com", user.Email)
	assert.Equal(t, models.RoleCustomer, s.Role())
}

func TestLoginCustomerRejectsEmptyFields(t *testing.T) {
	s := newTestSession(newFakeRemote())

	assert.ErrorIs(t, s.LoginCustomer("", "rahim@example.com", "pw"), store.ErrMissingFields)
	assert.ErrorIs(t, s.LoginCustomer("Rahim", "", "pw"), store.ErrMissingFields)
	assert.ErrorIs(t, s.LoginCustomer("Rahim", "rahim@example.com", ""), store.ErrMissingFields)
	assert.Nil(t, s.CurrentUser())
}

func TestLogoutClearsIdentityAndLocalHistory(t *testing.T) {
	s := newTestSession(newFakeRemote())
	require.NoError(t, s.LoginCustomer("Rahim", "rahim@example.com", "pw"))
	s.AddToCart(testProduct("p1", 100), 1)
	_, ok := s.PlaceOrder("Rahim", "rahim@example.com")
	require.True(t, ok)

	s.LogoutCustomer()

	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, s.Orders())
}
