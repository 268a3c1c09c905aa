package service

import (
	"context"
	"errors"
	"strings"

	"github.com/metinatakli/cinema-schedule/internal/domain"
)

// AuthService registers owners and verifies their credentials.
type AuthService struct {
	owners domain.OwnerRepository
}

func NewAuthService(owners domain.OwnerRepository) *AuthService {
	return &AuthService{owners: owners}
}

func (s *AuthService) Register(ctx context.Context, email, secret, role string) (*domain.Owner, error) {
	email = strings.TrimSpace(email)
	role = strings.TrimSpace(role)

	if email == "" || strings.TrimSpace(secret) == "" || role == "" {
		return nil, domain.ErrMissingField
	}

	if len(secret) > domain.MaxSecretBytes {
		return nil, domain.ErrSecretTooLong
	}

	owner := &domain.Owner{
		Email: email,
		Role:  role,
	}

	err := owner.Secret.Set(secret)
	if err != nil {
		return nil, err
	}

	err = s.owners.Create(ctx, owner)
	if err != nil {
		return nil, err
	}

	return owner, nil
}

// Authenticate returns the owner whose email and secret match. Unknown emails
// and wrong secrets fail the same way.
func (s *AuthService) Authenticate(ctx context.Context, email, secret string) (*domain.Owner, error) {
	owner, err := s.owners.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}

		return nil, err
	}

	ok, err := owner.Secret.Matches(secret)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	return owner, nil
}

func (s *AuthService) GetOwner(ctx context.Context, id int) (*domain.Owner, error) {
	owner, err := s.owners.GetById(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, domain.EntityOwner)
	}

	return owner, nil
}
