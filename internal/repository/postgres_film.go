package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

const filmColumns = `f.id, f.title, f.duration, f.language, f.director, f.min_age, f.subtitle_language, f.owner_id,
	COALESCE(array_agg(fa.actor_id ORDER BY fa.actor_id) FILTER (WHERE fa.actor_id IS NOT NULL), '{}')`

type PostgresFilmRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFilmRepository(db *pgxpool.Pool) *PostgresFilmRepository {
	return &PostgresFilmRepository{
		db: db,
	}
}

func (p *PostgresFilmRepository) Create(ctx context.Context, film *domain.Film) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO films (title, duration, language, director, min_age, subtitle_language, owner_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`

		err := tx.QueryRow(
			ctx,
			query,
			film.Title,
			film.Duration,
			film.Language,
			film.Director,
			film.MinAge,
			film.SubtitleLanguage,
			film.OwnerID).Scan(&film.ID)
		if err != nil {
			return err
		}

		if len(film.ActorIDs) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(film.ActorIDs))
		for _, actorID := range film.ActorIDs {
			rows = append(rows, []any{film.ID, actorID})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"film_actors"},
			[]string{"film_id", "actor_id"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
	if err != nil {
		film.ID = 0
		return translateError(err)
	}

	return nil
}

func (p *PostgresFilmRepository) GetById(ctx context.Context, id int) (*domain.Film, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM films f
		LEFT JOIN film_actors fa ON fa.film_id = f.id
		WHERE f.id = $1
		GROUP BY f.id
	`, filmColumns)

	film, err := scanFilm(p.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, domain.EntityFilm)
	}

	return film, nil
}

// GetAll returns films ordered by id. The city filter keeps films with at least
// one screening run at a cinema in that city; the title filter is a substring
// match. Both comparisons ignore case and are combined in one query.
func (p *PostgresFilmRepository) GetAll(ctx context.Context, filters domain.FilmFilters) ([]*domain.Film, error) {
	var (
		conditions []string
		args       []any
	)

	if filters.HasCity() {
		args = append(args, strings.TrimSpace(filters.City))
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1
			FROM screening_runs r
			JOIN cinemas c ON c.id = r.cinema_id
			WHERE r.film_id = f.id AND lower(c.city) = lower($%d)
		)`, len(args)))
	}

	if filters.HasTitle() {
		args = append(args, strings.TrimSpace(filters.Title))
		conditions = append(conditions, fmt.Sprintf(`strpos(lower(f.title), lower($%d)) > 0`, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM films f
		LEFT JOIN film_actors fa ON fa.film_id = f.id
		%s
		GROUP BY f.id
		ORDER BY f.id
	`, filmColumns, where)

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	films := []*domain.Film{}

	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}

		films = append(films, film)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return films, nil
}

func scanFilm(row pgx.Row) (*domain.Film, error) {
	var film domain.Film

	err := row.Scan(
		&film.ID,
		&film.Title,
		&film.Duration,
		&film.Language,
		&film.Director,
		&film.MinAge,
		&film.SubtitleLanguage,
		&film.OwnerID,
		&film.ActorIDs,
	)
	if err != nil {
		return nil, err
	}

	return &film, nil
}
