package mocks

import (
	"context"

	"github.com/metinatakli/cinema-schedule/internal/domain"
)

type MockOwnerRepo struct {
	domain.OwnerRepository
	CreateFunc     func(ctx context.Context, owner *domain.Owner) error
	GetByIdFunc    func(ctx context.Context, id int) (*domain.Owner, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Owner, error)
}

func (m *MockOwnerRepo) Create(ctx context.Context, owner *domain.Owner) error {
	return m.CreateFunc(ctx, owner)
}

func (m *MockOwnerRepo) GetById(ctx context.Context, id int) (*domain.Owner, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockOwnerRepo) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	return m.GetByEmailFunc(ctx, email)
}
