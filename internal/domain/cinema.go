package domain

import "context"

type Cinema struct {
	ID      int
	Name    string
	Address string
	City    string
	OwnerID int
}

type CinemaRepository interface {
	Create(ctx context.Context, cinema *Cinema) error
	GetById(ctx context.Context, id int) (*Cinema, error)
	GetAll(ctx context.Context) ([]*Cinema, error)
}
