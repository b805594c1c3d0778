package security

import (
	"workshop_jobs/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes passwords with bcrypt.
type PasswordHasher struct {
	cost int
}

var _ interfaces.IPasswordHasher = (*PasswordHasher)(nil)

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
