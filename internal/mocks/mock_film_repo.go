package mocks

import (
	"context"

	"github.com/metinatakli/cinema-schedule/internal/domain"
)

type MockFilmRepo struct {
	domain.FilmRepository
	CreateFunc  func(ctx context.Context, film *domain.Film) error
	GetByIdFunc func(ctx context.Context, id int) (*domain.Film, error)
	GetAllFunc  func(ctx context.Context, filters domain.FilmFilters) ([]*domain.Film, error)
}

func (m *MockFilmRepo) Create(ctx context.Context, film *domain.Film) error {
	return m.CreateFunc(ctx, film)
}

func (m *MockFilmRepo) GetById(ctx context.Context, id int) (*domain.Film, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockFilmRepo) GetAll(ctx context.Context, filters domain.FilmFilters) ([]*domain.Film, error) {
	return m.GetAllFunc(ctx, filters)
}

type MockActorRepo struct {
	domain.ActorRepository
	CreateFunc func(ctx context.Context, actor *domain.Actor) error
	GetAllFunc func(ctx context.Context) ([]domain.Actor, error)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) GetAll(ctx context.Context) ([]domain.Actor, error) {
	return m.GetAllFunc(ctx)
}
