package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/metinatakli/cinema-schedule/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CatalogueService answers read-only catalogue queries.
type CatalogueService struct {
	films   domain.FilmRepository
	cinemas domain.CinemaRepository
	actors  domain.ActorRepository
	runs    domain.ScreeningRunRepository

	tracer trace.Tracer
}

func NewCatalogueService(
	films domain.FilmRepository,
	cinemas domain.CinemaRepository,
	actors domain.ActorRepository,
	runs domain.ScreeningRunRepository,
) *CatalogueService {
	return &CatalogueService{
		films:   films,
		cinemas: cinemas,
		actors:  actors,
		runs:    runs,
		tracer:  newInstruments().tracer,
	}
}

// ListFilms returns films ordered by id. A city filter matches the city of any
// cinema the film has a screening run at, ignoring case; a title filter is a
// case-insensitive substring match. Both filters are trimmed first and apply
// together when both are set.
func (s *CatalogueService) ListFilms(ctx context.Context, filters domain.FilmFilters) (films []*domain.Film, err error) {
	filters = filters.Normalize()

	ctx, span := s.tracer.Start(ctx, "CatalogueService.ListFilms",
		trace.WithAttributes(
			attribute.String("filter.city", filters.City),
			attribute.String("filter.title", filters.Title),
		))
	defer func() { endSpan(span, err) }()

	return s.films.GetAll(ctx, filters)
}

func (s *CatalogueService) ListCinemas(ctx context.Context) (cinemas []*domain.Cinema, err error) {
	ctx, span := s.tracer.Start(ctx, "CatalogueService.ListCinemas")
	defer func() { endSpan(span, err) }()

	return s.cinemas.GetAll(ctx)
}

func (s *CatalogueService) ListActors(ctx context.Context) (actors []domain.Actor, err error) {
	ctx, span := s.tracer.Start(ctx, "CatalogueService.ListActors")
	defer func() { endSpan(span, err) }()

	return s.actors.GetAll(ctx)
}

// GetFilmDetails assembles a film with every screening run it has, the cinema
// of each run and each run's weekly slots.
func (s *CatalogueService) GetFilmDetails(ctx context.Context, filmID int) (detail *domain.FilmDetail, err error) {
	ctx, span := s.tracer.Start(ctx, "CatalogueService.GetFilmDetails",
		trace.WithAttributes(attribute.Int("film.id", filmID)))
	defer func() { endSpan(span, err) }()

	film, err := s.films.GetById(ctx, filmID)
	if err != nil {
		return nil, notFoundAs(err, domain.EntityFilm)
	}

	runs, err := s.runs.GetByFilmId(ctx, filmID)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotsOf(ctx, runs)
	if err != nil {
		return nil, err
	}

	cinemas := make(map[int]*domain.Cinema)
	detail = &domain.FilmDetail{
		Film: *film,
		Runs: make([]domain.FilmRunDetail, 0, len(runs)),
	}

	for _, run := range runs {
		cinema, ok := cinemas[run.CinemaID]
		if !ok {
			cinema, err = s.cinemas.GetById(ctx, run.CinemaID)
			if err != nil {
				return nil, notFoundAs(err, domain.EntityCinema)
			}
			cinemas[run.CinemaID] = cinema
		}

		detail.Runs = append(detail.Runs, domain.FilmRunDetail{
			RunID:         run.ID,
			CinemaID:      cinema.ID,
			CinemaName:    cinema.Name,
			CinemaAddress: cinema.Address,
			CinemaCity:    cinema.City,
			StartDate:     run.StartDate,
			EndDate:       run.EndDate,
			Slots:         slots[run.ID],
		})
	}

	return detail, nil
}

// GetCinemaDetails assembles a cinema with every screening run it hosts, the
// film of each run and each run's weekly slots.
func (s *CatalogueService) GetCinemaDetails(ctx context.Context, cinemaID int) (detail *domain.CinemaDetail, err error) {
	ctx, span := s.tracer.Start(ctx, "CatalogueService.GetCinemaDetails",
		trace.WithAttributes(attribute.Int("cinema.id", cinemaID)))
	defer func() { endSpan(span, err) }()

	cinema, err := s.cinemas.GetById(ctx, cinemaID)
	if err != nil {
		return nil, notFoundAs(err, domain.EntityCinema)
	}

	runs, err := s.runs.GetByCinemaId(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	slots, err := s.slotsOf(ctx, runs)
	if err != nil {
		return nil, err
	}

	films := make(map[int]*domain.Film)
	detail = &domain.CinemaDetail{
		Cinema: *cinema,
		Runs:   make([]domain.CinemaRunDetail, 0, len(runs)),
	}

	for _, run := range runs {
		film, ok := films[run.FilmID]
		if !ok {
			film, err = s.films.GetById(ctx, run.FilmID)
			if err != nil {
				return nil, notFoundAs(err, domain.EntityFilm)
			}
			films[run.FilmID] = film
		}

		detail.Runs = append(detail.Runs, domain.CinemaRunDetail{
			RunID:     run.ID,
			Film:      *film,
			StartDate: run.StartDate,
			EndDate:   run.EndDate,
			Slots:     slots[run.ID],
		})
	}

	return detail, nil
}

func (s *CatalogueService) slotsOf(ctx context.Context, runs []domain.ScreeningRun) (map[int][]domain.WeeklySlot, error) {
	sortRuns(runs)

	if len(runs) == 0 {
		return map[int][]domain.WeeklySlot{}, nil
	}

	ids := make([]int, len(runs))
	for i, run := range runs {
		ids[i] = run.ID
	}

	slots, err := s.runs.GetSlotsByRunIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, runSlots := range slots {
		sortSlots(runSlots)
	}

	return slots, nil
}

// sortRuns orders runs by start date, then id.
func sortRuns(runs []domain.ScreeningRun) {
	slices.SortStableFunc(runs, func(a, b domain.ScreeningRun) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// sortSlots orders slots Monday first, then by start time.
func sortSlots(slots []domain.WeeklySlot) {
	slices.SortStableFunc(slots, func(a, b domain.WeeklySlot) int {
		switch {
		case a.Weekday.Before(b.Weekday):
			return -1
		case b.Weekday.Before(a.Weekday):
			return 1
		case a.StartTime.Before(b.StartTime):
			return -1
		case b.StartTime.Before(a.StartTime):
			return 1
		default:
			return 0
		}
	})
}
