package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

type PostgresScreeningRunRepository struct {
	db *pgxpool.Pool
}

func NewPostgresScreeningRunRepository(db *pgxpool.Pool) *PostgresScreeningRunRepository {
	return &PostgresScreeningRunRepository{
		db: db,
	}
}

func (p *PostgresScreeningRunRepository) CreateWithSlots(
	ctx context.Context,
	run *domain.ScreeningRun,
	buildSlots func(*domain.ScreeningRun) ([]domain.WeeklySlot, error)) error {

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO screening_runs (film_id, cinema_id, start_date, end_date)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err := tx.QueryRow(
			ctx,
			query,
			run.FilmID,
			run.CinemaID,
			run.StartDate,
			run.EndDate).Scan(&run.ID)
		if err != nil {
			return err
		}

		slots, err := buildSlots(run)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(slots))
		for _, slot := range slots {
			rows = append(rows, []any{
				run.ID,
				string(slot.Weekday),
				pgtype.Time{Microseconds: slot.StartTime.Microseconds(), Valid: true},
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"weekly_slots"},
			[]string{"run_id", "weekday", "start_time"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
	if err != nil {
		run.ID = 0
		return translateError(err)
	}

	return nil
}

func (p *PostgresScreeningRunRepository) GetByFilmId(ctx context.Context, filmID int) ([]domain.ScreeningRun, error) {
	query := `
		SELECT id, film_id, cinema_id, start_date, end_date
		FROM screening_runs
		WHERE film_id = $1
		ORDER BY start_date, id
	`

	return p.getRuns(ctx, query, filmID)
}

func (p *PostgresScreeningRunRepository) GetByCinemaId(ctx context.Context, cinemaID int) ([]domain.ScreeningRun, error) {
	query := `
		SELECT id, film_id, cinema_id, start_date, end_date
		FROM screening_runs
		WHERE cinema_id = $1
		ORDER BY start_date, id
	`

	return p.getRuns(ctx, query, cinemaID)
}

func (p *PostgresScreeningRunRepository) getRuns(ctx context.Context, query string, id int) ([]domain.ScreeningRun, error) {
	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]domain.ScreeningRun, 0)

	for rows.Next() {
		var run domain.ScreeningRun

		err := rows.Scan(
			&run.ID,
			&run.FilmID,
			&run.CinemaID,
			&run.StartDate,
			&run.EndDate,
		)
		if err != nil {
			return nil, err
		}

		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func (p *PostgresScreeningRunRepository) GetSlotsByRunIds(ctx context.Context, runIDs []int) (map[int][]domain.WeeklySlot, error) {
	query := `
		SELECT id, run_id, weekday, start_time
		FROM weekly_slots
		WHERE run_id = ANY($1)
		ORDER BY run_id,
			array_position(ARRAY['MONDAY','TUESDAY','WEDNESDAY','THURSDAY','FRIDAY','SATURDAY','SUNDAY'], weekday),
			start_time
	`

	rows, err := p.db.Query(ctx, query, runIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make(map[int][]domain.WeeklySlot, len(runIDs))

	for rows.Next() {
		var (
			slot      domain.WeeklySlot
			weekday   string
			startTime pgtype.Time
		)

		err := rows.Scan(&slot.ID, &slot.RunID, &weekday, &startTime)
		if err != nil {
			return nil, err
		}

		slot.Weekday = domain.Weekday(weekday)
		slot.StartTime = domain.TimeOfDayFromMicroseconds(startTime.Microseconds)

		slots[slot.RunID] = append(slots[slot.RunID], slot)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return slots, nil
}
