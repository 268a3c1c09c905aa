package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/metinatakli/cinema-schedule/internal/domain"
	"github.com/metinatakli/cinema-schedule/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jan1  = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	mar1  = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	errDB = errors.New("connection reset")
)

func slot(day domain.Weekday, hour, minute int) domain.SlotInput {
	return domain.SlotInput{Weekday: day, StartTime: domain.TimeOfDay{Hour: hour, Minute: minute}}
}

func threeSlots() []domain.SlotInput {
	return []domain.SlotInput{
		slot(domain.Monday, 20, 0),
		slot(domain.Wednesday, 20, 0),
		slot(domain.Friday, 18, 0),
	}
}

func filmRepoWith(ids ...int) *mocks.MockFilmRepo {
	return &mocks.MockFilmRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Film, error) {
			for _, known := range ids {
				if known == id {
					return &domain.Film{ID: id, Title: "Dune"}, nil
				}
			}
			return nil, domain.ErrRecordNotFound
		},
	}
}

func cinemaRepoWith(ids ...int) *mocks.MockCinemaRepo {
	return &mocks.MockCinemaRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Cinema, error) {
			for _, known := range ids {
				if known == id {
					return &domain.Cinema{ID: id, Name: "Rex", City: "Lyon"}, nil
				}
			}
			return nil, domain.ErrRecordNotFound
		},
	}
}

func ownerRepoWith(ids ...int) *mocks.MockOwnerRepo {
	return &mocks.MockOwnerRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Owner, error) {
			for _, known := range ids {
				if known == id {
					return &domain.Owner{ID: id, Email: "owner@example.com", Role: "owner"}, nil
				}
			}
			return nil, domain.ErrRecordNotFound
		},
	}
}

func TestCreateScreeningRun(t *testing.T) {
	tests := []struct {
		name       string
		input      ScreeningRunInput
		films      *mocks.MockFilmRepo
		cinemas    *mocks.MockCinemaRepo
		failWrite  error
		wantErr    error
		wantEntity domain.Entity
		wantKind   domain.ErrorKind
	}{
		{
			name:     "successful creation",
			input:    ScreeningRunInput{FilmID: 1, CinemaID: 2, StartDate: jan1, EndDate: mar1, Slots: threeSlots()},
			films:    filmRepoWith(1),
			cinemas:  cinemaRepoWith(2),
			wantKind: "",
		},
		{
			name:    "single day run",
			input:   ScreeningRunInput{FilmID: 1, CinemaID: 2, StartDate: jan1, EndDate: jan1, Slots: threeSlots()},
			films:   filmRepoWith(1),
			cinemas: cinemaRepoWith(2),
		},
		{
			name: "range is checked before everything else",
			input: ScreeningRunInput{FilmID: 99, CinemaID: 98, StartDate: mar1, EndDate: jan1, Slots: []domain.SlotInput{
				slot(domain.Monday, 20, 0),
				slot(domain.Monday, 21, 0),
			}},
			films:    filmRepoWith(1),
			cinemas:  cinemaRepoWith(2),
			wantErr:  domain.ErrInvalidRange,
			wantKind: domain.KindInvalidRange,
		},
		{
			name:     "no slots",
			input:    ScreeningRunInput{FilmID: 99, CinemaID: 98, StartDate: jan1, EndDate: mar1},
			films:    filmRepoWith(1),
			cinemas:  cinemaRepoWith(2),
			wantErr:  domain.ErrInvalidSlotCount,
			wantKind: domain.KindInvalidSlotCount,
		},
		{
			name: "two slots is checked before film lookup",
			input: ScreeningRunInput{FilmID: 99, CinemaID: 98, StartDate: jan1, EndDate: mar1, Slots: []domain.SlotInput{
				slot(domain.Monday, 20, 0),
				slot(domain.Tuesday, 20, 0),
			}},
			films:    filmRepoWith(1),
			cinemas:  cinemaRepoWith(2),
			wantErr:  domain.ErrInvalidSlotCount,
			wantKind: domain.KindInvalidSlotCount,
		},
		{
			name: "four slots",
			input: ScreeningRunInput{FilmID: 1, CinemaID: 2, StartDate: jan1, EndDate: mar1, Slots: append(threeSlots(),
				slot(domain.Sunday, 14, 0))},
			films:    filmRepoWith(1),
			cinemas:  cinemaRepoWith(2),
			wantErr:  domain.ErrInvalidSlotCount,
			wantKind: domain.KindInvalidSlotCount,
		},
		{
			name:       "film is checked before cinema",
			input:      ScreeningRunInput{FilmID: 99, CinemaID: 98, StartDate: jan1, EndDate: mar1, Slots: threeSlots()},
			films:      filmRepoWith(1),
			cinemas:    cinemaRepoWith(2),
			wantErr:    domain.ErrRecordNotFound,
			wantEntity: domain.EntityFilm,
			wantKind:   domain.KindNotFound,
		},
		{
			name: "cinema is checked before weekday distinctness",
			input: ScreeningRunInput{FilmID: 1, CinemaID: 98, StartDate: jan1, EndDate: mar1, Slots: []domain.SlotInput{
				slot(domain.Monday, 20, 0),
				slot(domain.Monday, 22, 0),
				slot(domain.Friday, 18, 0),
			}},
			films:      filmRepoWith(1),
			cinemas:    cinemaRepoWith(2),
			wantErr:    domain.ErrRecordNotFound,
			wantEntity: domain.EntityCinema,
			wantKind:   domain.KindNotFound,
		},
		{
			name: "duplicate weekday",
			input: ScreeningRunInput{FilmID: 1, CinemaID: 2, StartDate: jan1, EndDate: mar1, Slots: []domain.SlotInput{
				slot(domain.Monday, 20, 0),
				slot(domain.Wednesday, 20, 0),
				slot(domain.Monday, 18, 0),
			}},
			films:    filmRepoWith(1),
			cinemas:  cinemaRepoWith(2),
			wantErr:  domain.ErrDuplicateWeekday,
			wantKind: domain.KindDuplicateWeekday,
		},
		{
			name:  "film lookup failure is not reported as not found",
			input: ScreeningRunInput{FilmID: 1, CinemaID: 2, StartDate: jan1, EndDate: mar1, Slots: threeSlots()},
			films: &mocks.MockFilmRepo{GetByIdFunc: func(ctx context.Context, id int) (*domain.Film, error) {
				return nil, errDB
			}},
			cinemas:  cinemaRepoWith(2),
			wantErr:  errDB,
			wantKind: domain.KindInternal,
		},
		{
			name:      "failed slot write leaves nothing behind",
			input:     ScreeningRunInput{FilmID: 1, CinemaID: 2, StartDate: jan1, EndDate: mar1, Slots: threeSlots()},
			films:     filmRepoWith(1),
			cinemas:   cinemaRepoWith(2),
			failWrite: errDB,
			wantErr:   errDB,
			wantKind:  domain.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mocks.InMemoryRunStore{FailSlotWrite: tt.failWrite}
			svc := NewPublicationService(ownerRepoWith(1), tt.films, tt.cinemas, &mocks.MockActorRepo{}, store)

			run, err := svc.CreateScreeningRun(context.Background(), tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				if tt.wantEntity != "" {
					assert.True(t, domain.IsNotFound(err, tt.wantEntity), "want not found %s, got %v", tt.wantEntity, err)
				}
				assert.Nil(t, run)
				assert.Empty(t, store.Runs)
				assert.Empty(t, store.Slots)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, run)
			assert.Equal(t, 1, run.ID)
			assert.Equal(t, tt.input.StartDate, run.StartDate)
			assert.Equal(t, tt.input.EndDate, run.EndDate)

			require.Len(t, store.Runs, 1)
			require.Len(t, store.Slots, domain.SlotsPerRun)
			for i, s := range store.Slots {
				assert.Equal(t, run.ID, s.RunID)
				assert.Equal(t, tt.input.Slots[i].Weekday, s.Weekday)
				assert.Equal(t, tt.input.Slots[i].StartTime, s.StartTime)
			}
		})
	}
}

func TestCreateScreeningRunAllowsIdenticalRuns(t *testing.T) {
	store := &mocks.InMemoryRunStore{}
	svc := NewPublicationService(ownerRepoWith(1), filmRepoWith(1), cinemaRepoWith(2), &mocks.MockActorRepo{}, store)
	input := ScreeningRunInput{FilmID: 1, CinemaID: 2, StartDate: jan1, EndDate: mar1, Slots: threeSlots()}

	first, err := svc.CreateScreeningRun(context.Background(), input)
	require.NoError(t, err)

	second, err := svc.CreateScreeningRun(context.Background(), input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.Runs, 2)
	assert.Len(t, store.Slots, 2*domain.SlotsPerRun)
}

func TestCreateScreeningRunDropsTimeOfDayFromDates(t *testing.T) {
	store := &mocks.InMemoryRunStore{}
	svc := NewPublicationService(ownerRepoWith(1), filmRepoWith(1), cinemaRepoWith(2), &mocks.MockActorRepo{}, store)

	// same calendar day, end earlier in the day than start
	input := ScreeningRunInput{
		FilmID:    1,
		CinemaID:  2,
		StartDate: jan1.Add(20 * time.Hour),
		EndDate:   jan1.Add(8 * time.Hour),
		Slots:     threeSlots(),
	}

	run, err := svc.CreateScreeningRun(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, jan1, run.StartDate)
	assert.Equal(t, jan1, run.EndDate)
}

func TestCreateFilm(t *testing.T) {
	tests := []struct {
		name        string
		ownerID     int
		input       FilmInput
		createErr   error
		wantErr     error
		wantActors  []int
		wantCreated bool
	}{
		{
			name:        "successful creation",
			ownerID:     1,
			input:       FilmInput{Title: "Dune", Duration: 155, Language: "EN", Director: "Villeneuve", MinAge: 12, SubtitleLanguage: "FR", ActorIDs: []int{3, 4, 3}},
			wantActors:  []int{3, 4},
			wantCreated: true,
		},
		{
			name:        "fields are stored as given",
			ownerID:     1,
			input:       FilmInput{Title: "", Duration: 0, MinAge: 0},
			wantCreated: true,
		},
		{
			name:    "unknown owner",
			ownerID: 2,
			input:   FilmInput{Title: "Dune"},
			wantErr: domain.NewNotFoundError(domain.EntityOwner),
		},
		{
			name:      "unknown actor",
			ownerID:   1,
			input:     FilmInput{Title: "Dune", ActorIDs: []int{42}},
			createErr: domain.NewNotFoundError(domain.EntityActor),
			wantErr:   domain.NewNotFoundError(domain.EntityActor),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *domain.Film
			films := &mocks.MockFilmRepo{CreateFunc: func(ctx context.Context, film *domain.Film) error {
				if tt.createErr != nil {
					return tt.createErr
				}
				film.ID = 10
				created = film
				return nil
			}}

			svc := NewPublicationService(ownerRepoWith(1), films, &mocks.MockCinemaRepo{}, &mocks.MockActorRepo{}, &mocks.InMemoryRunStore{})

			film, err := svc.CreateFilm(context.Background(), tt.input, tt.ownerID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
				assert.Nil(t, created)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 10, film.ID)
			assert.Equal(t, tt.ownerID, film.OwnerID)
			assert.Equal(t, tt.input.Title, film.Title)
			assert.Equal(t, tt.wantActors, film.ActorIDs)
			assert.Equal(t, tt.wantCreated, created != nil)
		})
	}
}

func TestCreateCinema(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  int
		owners   *mocks.MockOwnerRepo
		wantKind domain.ErrorKind
	}{
		{
			name:    "successful creation",
			ownerID: 1,
			owners:  ownerRepoWith(1),
		},
		{
			name:     "unknown owner",
			ownerID:  7,
			owners:   ownerRepoWith(1),
			wantKind: domain.KindNotFound,
		},
		{
			name:    "owner lookup failure",
			ownerID: 1,
			owners: &mocks.MockOwnerRepo{GetByIdFunc: func(ctx context.Context, id int) (*domain.Owner, error) {
				return nil, errDB
			}},
			wantKind: domain.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cinemas := &mocks.MockCinemaRepo{CreateFunc: func(ctx context.Context, cinema *domain.Cinema) error {
				cinema.ID = 5
				return nil
			}}

			svc := NewPublicationService(tt.owners, &mocks.MockFilmRepo{}, cinemas, &mocks.MockActorRepo{}, &mocks.InMemoryRunStore{})

			cinema, err := svc.CreateCinema(context.Background(), CinemaInput{Name: "Rex", Address: "1 Rue", City: "Lyon"}, tt.ownerID)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				if tt.wantKind == domain.KindNotFound {
					assert.True(t, domain.IsNotFound(err, domain.EntityOwner))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, &domain.Cinema{ID: 5, Name: "Rex", Address: "1 Rue", City: "Lyon", OwnerID: 1}, cinema)
		})
	}
}
