package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

type PostgresCinemaRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCinemaRepository(db *pgxpool.Pool) *PostgresCinemaRepository {
	return &PostgresCinemaRepository{
		db: db,
	}
}

func (p *PostgresCinemaRepository) Create(ctx context.Context, cinema *domain.Cinema) error {
	query := `INSERT INTO cinemas (name, address, city, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := p.db.QueryRow(ctx,
		query,
		cinema.Name,
		cinema.Address,
		cinema.City,
		cinema.OwnerID).Scan(&cinema.ID)

	return translateError(err)
}

func (p *PostgresCinemaRepository) GetById(ctx context.Context, id int) (*domain.Cinema, error) {
	query := `SELECT id, name, address, city, owner_id
		FROM cinemas
		WHERE id = $1`

	var cinema domain.Cinema

	err := p.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.Address,
		&cinema.City,
		&cinema.OwnerID,
	)
	if err != nil {
		return nil, notFound(err, domain.EntityCinema)
	}

	return &cinema, nil
}

func (p *PostgresCinemaRepository) GetAll(ctx context.Context) ([]*domain.Cinema, error) {
	query := `SELECT id, name, address, city, owner_id
		FROM cinemas
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cinemas := []*domain.Cinema{}

	for rows.Next() {
		var cinema domain.Cinema

		err := rows.Scan(
			&cinema.ID,
			&cinema.Name,
			&cinema.Address,
			&cinema.City,
			&cinema.OwnerID,
		)
		if err != nil {
			return nil, err
		}

		cinemas = append(cinemas, &cinema)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cinemas, nil
}
