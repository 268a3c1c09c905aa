// Package identity issues and verifies the signed access tokens handed out at
// login.
package identity

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

const issuer = "cinema-schedule"

var ErrInvalidToken = errors.New("invalid or expired access token")

type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// OwnerID returns the subject claim as an owner id.
func (c *Claims) OwnerID() (int, error) {
	return strconv.Atoi(c.Subject)
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// Issuer signs HS256 tokens for authenticated owners.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (i *Issuer) Issue(owner *domain.Owner) (AccessToken, error) {
	now := i.now().UTC()
	exp := now.Add(i.ttl)

	claims := Claims{
		Role:  owner.Role,
		Email: owner.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.Itoa(owner.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign access token: %w", err)
	}

	return AccessToken{Token: signed, ExpiresAt: exp.Truncate(time.Second)}, nil
}

func (i *Issuer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.OwnerID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
