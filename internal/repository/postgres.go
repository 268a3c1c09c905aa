package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

// foreignKeys maps foreign key constraint names to the entity they point at.
var foreignKeys = map[string]domain.Entity{
	"films_owner_id_fkey":           domain.EntityOwner,
	"cinemas_owner_id_fkey":         domain.EntityOwner,
	"film_actors_actor_id_fkey":     domain.EntityActor,
	"film_actors_film_id_fkey":      domain.EntityFilm,
	"screening_runs_film_id_fkey":   domain.EntityFilm,
	"screening_runs_cinema_id_fkey": domain.EntityCinema,
	"weekly_slots_run_id_fkey":      domain.EntityScreeningRun,
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// translateError turns constraint violations into domain errors and leaves
// everything else untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ForeignKeyViolation:
		if entity, ok := foreignKeys[pgErr.ConstraintName]; ok {
			return domain.NewNotFoundError(entity)
		}
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case "owners_email_key":
			return domain.ErrDuplicateEmail
		case "weekly_slots_run_id_weekday_key":
			return domain.ErrDuplicateWeekday
		}
	case pgerrcode.CheckViolation:
		if pgErr.ConstraintName == "screening_runs_date_range_check" {
			return domain.ErrInvalidRange
		}
	}

	return err
}

func notFound(err error, entity domain.Entity) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError(entity)
	}

	return err
}
