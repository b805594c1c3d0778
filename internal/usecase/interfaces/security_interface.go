package interfaces

import (
	"errors"
	"time"
)

//go:generate mockgen -source=security_interface.go -destination=mocks/security_interface.go -package=mock_interfaces

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// SessionClaims is what a bearer token asserts about its holder.
type SessionClaims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// IPasswordHasher hashes and verifies passwords. Plaintext is never stored.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// ITokenCodec issues and parses session tokens.
type ITokenCodec interface {
	Issue(subject, email, role string) (string, error)
	Parse(token string) (SessionClaims, error)
}
