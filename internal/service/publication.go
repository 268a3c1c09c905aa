package service

import (
	"context"
	"errors"
	"time"

	"github.com/metinatakli/cinema-schedule/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type FilmInput struct {
	Title            string
	Duration         int
	Language         string
	Director         string
	MinAge           int
	SubtitleLanguage string
	ActorIDs         []int
}

type CinemaInput struct {
	Name    string
	Address string
	City    string
}

type ScreeningRunInput struct {
	FilmID    int
	CinemaID  int
	StartDate time.Time
	EndDate   time.Time
	Slots     []domain.SlotInput
}

// PublicationService validates and persists films, cinemas and screening runs.
type PublicationService struct {
	owners  domain.OwnerRepository
	films   domain.FilmRepository
	cinemas domain.CinemaRepository
	actors  domain.ActorRepository
	runs    domain.ScreeningRunRepository

	instruments
}

func NewPublicationService(
	owners domain.OwnerRepository,
	films domain.FilmRepository,
	cinemas domain.CinemaRepository,
	actors domain.ActorRepository,
	runs domain.ScreeningRunRepository,
) *PublicationService {
	return &PublicationService{
		owners:      owners,
		films:       films,
		cinemas:     cinemas,
		actors:      actors,
		runs:        runs,
		instruments: newInstruments(),
	}
}

func (s *PublicationService) CreateFilm(ctx context.Context, input FilmInput, ownerID int) (film *domain.Film, err error) {
	ctx, span := s.tracer.Start(ctx, "PublicationService.CreateFilm",
		trace.WithAttributes(attribute.Int("owner.id", ownerID)))
	defer func() { s.finish(ctx, span, domain.EntityFilm, err) }()

	err = s.ensureOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	film = &domain.Film{
		Title:            input.Title,
		Duration:         input.Duration,
		Language:         input.Language,
		Director:         input.Director,
		MinAge:           input.MinAge,
		SubtitleLanguage: input.SubtitleLanguage,
		OwnerID:          ownerID,
		ActorIDs:         dedupe(input.ActorIDs),
	}

	err = s.films.Create(ctx, film)
	if err != nil {
		return nil, err
	}

	return film, nil
}

func (s *PublicationService) CreateCinema(ctx context.Context, input CinemaInput, ownerID int) (cinema *domain.Cinema, err error) {
	ctx, span := s.tracer.Start(ctx, "PublicationService.CreateCinema",
		trace.WithAttributes(attribute.Int("owner.id", ownerID)))
	defer func() { s.finish(ctx, span, domain.EntityCinema, err) }()

	err = s.ensureOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	cinema = &domain.Cinema{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		OwnerID: ownerID,
	}

	err = s.cinemas.Create(ctx, cinema)
	if err != nil {
		return nil, err
	}

	return cinema, nil
}

func (s *PublicationService) CreateActor(ctx context.Context, name string) (actor *domain.Actor, err error) {
	ctx, span := s.tracer.Start(ctx, "PublicationService.CreateActor")
	defer func() { s.finish(ctx, span, domain.EntityActor, err) }()

	actor = &domain.Actor{Name: name}

	err = s.actors.Create(ctx, actor)
	if err != nil {
		return nil, err
	}

	return actor, nil
}

// CreateScreeningRun checks the input in a fixed order and stops at the first
// failure: date range, slot count, film, cinema, weekday distinctness. The run
// and its three slots are then written in one transaction.
func (s *PublicationService) CreateScreeningRun(ctx context.Context, input ScreeningRunInput) (run *domain.ScreeningRun, err error) {
	ctx, span := s.tracer.Start(ctx, "PublicationService.CreateScreeningRun",
		trace.WithAttributes(
			attribute.Int("film.id", input.FilmID),
			attribute.Int("cinema.id", input.CinemaID),
		))
	defer func() { s.finish(ctx, span, domain.EntityScreeningRun, err) }()

	startDate, endDate := dateOnly(input.StartDate), dateOnly(input.EndDate)

	if endDate.Before(startDate) {
		return nil, domain.ErrInvalidRange
	}

	if len(input.Slots) != domain.SlotsPerRun {
		return nil, domain.ErrInvalidSlotCount
	}

	_, err = s.films.GetById(ctx, input.FilmID)
	if err != nil {
		return nil, notFoundAs(err, domain.EntityFilm)
	}

	_, err = s.cinemas.GetById(ctx, input.CinemaID)
	if err != nil {
		return nil, notFoundAs(err, domain.EntityCinema)
	}

	if !distinctWeekdays(input.Slots) {
		return nil, domain.ErrDuplicateWeekday
	}

	run = &domain.ScreeningRun{
		FilmID:    input.FilmID,
		CinemaID:  input.CinemaID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	err = s.runs.CreateWithSlots(ctx, run, func(run *domain.ScreeningRun) ([]domain.WeeklySlot, error) {
		slots := make([]domain.WeeklySlot, len(input.Slots))
		for i, in := range input.Slots {
			slots[i] = domain.WeeklySlot{
				RunID:     run.ID,
				Weekday:   in.Weekday,
				StartTime: in.StartTime,
			}
		}

		return slots, nil
	})
	if err != nil {
		return nil, err
	}

	return run, nil
}

func (s *PublicationService) ensureOwner(ctx context.Context, ownerID int) error {
	_, err := s.owners.GetById(ctx, ownerID)
	if err != nil {
		return notFoundAs(err, domain.EntityOwner)
	}

	return nil
}

// notFoundAs pins a missing-record error to the entity the caller referenced.
func notFoundAs(err error, entity domain.Entity) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.NewNotFoundError(entity)
	}

	return err
}

func distinctWeekdays(slots []domain.SlotInput) bool {
	seen := make(map[domain.Weekday]bool, len(slots))

	for _, slot := range slots {
		if seen[slot.Weekday] {
			return false
		}
		seen[slot.Weekday] = true
	}

	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dedupe(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))

	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	return out
}
