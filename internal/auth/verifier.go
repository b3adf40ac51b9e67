package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrInvalidCredentials is returned when an admin passcode does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks a submitted admin passcode. The session core only depends
// on this capability, so tests and future credential stores can swap in
// their own implementation.
type Verifier interface {
	Verify(passcode string) bool
}

// StaticVerifier compares against a single configured secret.
type StaticVerifier struct {
	secret []byte
}

func NewStaticVerifier(secret string) *StaticVerifier {
	return &StaticVerifier{secret: []byte(secret)}
}

func (v *StaticVerifier) Verify(passcode string) bool {
	return subtle.ConstantTimeCompare(v.secret, []byte(passcode)) == 1
}
