package mocks

import (
	"context"

	"github.com/metinatakli/cinema-schedule/internal/domain"
)

type MockCinemaRepo struct {
	domain.CinemaRepository
	CreateFunc  func(ctx context.Context, cinema *domain.Cinema) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Cinema, error)
	GetAllFunc  func(ctx context.Context) ([]*domain.Cinema, error)
}

func (m *MockCinemaRepo) Create(ctx context.Context, cinema *domain.Cinema) error {
	return m.CreateFunc(ctx, cinema)
}

func (m *MockCinemaRepo) GetById(ctx context.Context, id int) (*domain.Cinema, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockCinemaRepo) GetAll(ctx context.Context) ([]*domain.Cinema, error) {
	return m.GetAllFunc(ctx)
}
