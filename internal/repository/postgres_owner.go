package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

type PostgresOwnerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOwnerRepository(db *pgxpool.Pool) *PostgresOwnerRepository {
	return &PostgresOwnerRepository{
		db: db,
	}
}

func (p *PostgresOwnerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	query := `INSERT INTO owners (email, secret_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := p.db.QueryRow(ctx,
		query,
		owner.Email,
		owner.Secret.Hash,
		owner.Role).Scan(&owner.ID, &owner.CreatedAt)

	if err != nil {
		return translateError(err)
	}

	return nil
}

func (p *PostgresOwnerRepository) GetById(ctx context.Context, id int) (*domain.Owner, error) {
	query := `SELECT id, email, secret_hash, role, created_at
		FROM owners
		WHERE id = $1`

	return p.getOne(ctx, query, id)
}

func (p *PostgresOwnerRepository) GetByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	query := `SELECT id, email, secret_hash, role, created_at
		FROM owners
		WHERE lower(email) = lower($1)`

	return p.getOne(ctx, query, email)
}

func (p *PostgresOwnerRepository) getOne(ctx context.Context, query string, arg any) (*domain.Owner, error) {
	var owner domain.Owner

	err := p.db.QueryRow(ctx, query, arg).Scan(
		&owner.ID,
		&owner.Email,
		&owner.Secret.Hash,
		&owner.Role,
		&owner.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err, domain.EntityOwner)
	}

	return &owner, nil
}
