package security

import (
	"errors"
	"fmt"
	"time"
	"workshop_jobs/internal/usecase/interfaces"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TokenCodec issues HS256 session tokens. Tokens are self-contained and
// cannot be revoked before they expire.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwtlib.RegisteredClaims
}

var _ interfaces.ITokenCodec = (*TokenCodec)(nil)

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (c *TokenCodec) Issue(subject, email, role string) (string, error) {
	now := c.now()
	claims := sessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *TokenCodec) Parse(tokenStr string) (interfaces.SessionClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwtlib.WithTimeFunc(c.now), jwtlib.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return interfaces.SessionClaims{}, interfaces.ErrTokenExpired
		}
		return interfaces.SessionClaims{}, fmt.Errorf("%w: %v", interfaces.ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return interfaces.SessionClaims{}, interfaces.ErrTokenInvalid
	}

	return interfaces.SessionClaims{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
