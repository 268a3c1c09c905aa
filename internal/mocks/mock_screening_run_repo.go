package mocks

import (
	"context"

	"github.com/metinatakli/cinema-schedule/internal/domain"
)

type MockScreeningRunRepo struct {
	domain.ScreeningRunRepository
	CreateWithSlotsFunc  func(ctx context.Context, run *domain.ScreeningRun, buildSlots func(*domain.ScreeningRun) ([]domain.WeeklySlot, error)) error
	GetByFilmIdFunc      func(ctx context.Context, filmID int) ([]domain.ScreeningRun, error)
	GetByCinemaIdFunc    func(ctx context.Context, cinemaID int) ([]domain.ScreeningRun, error)
	GetSlotsByRunIdsFunc func(ctx context.Context, runIDs []int) (map[int][]domain.WeeklySlot, error)
}

func (m *MockScreeningRunRepo) CreateWithSlots(
	ctx context.Context,
	run *domain.ScreeningRun,
	buildSlots func(*domain.ScreeningRun) ([]domain.WeeklySlot, error)) error {

	return m.CreateWithSlotsFunc(ctx, run, buildSlots)
}

func (m *MockScreeningRunRepo) GetByFilmId(ctx context.Context, filmID int) ([]domain.ScreeningRun, error) {
	return m.GetByFilmIdFunc(ctx, filmID)
}

func (m *MockScreeningRunRepo) GetByCinemaId(ctx context.Context, cinemaID int) ([]domain.ScreeningRun, error) {
	return m.GetByCinemaIdFunc(ctx, cinemaID)
}

func (m *MockScreeningRunRepo) GetSlotsByRunIds(ctx context.Context, runIDs []int) (map[int][]domain.WeeklySlot, error) {
	return m.GetSlotsByRunIdsFunc(ctx, runIDs)
}

// InMemoryRunStore is a ScreeningRunRepository that keeps a run and its slots
// only when the whole write succeeds. Setting FailSlotWrite makes every write
// fail after the run row was assigned an id.
type InMemoryRunStore struct {
	NextID        int
	Runs          []domain.ScreeningRun
	Slots         []domain.WeeklySlot
	FailSlotWrite error
}

func (s *InMemoryRunStore) CreateWithSlots(
	_ context.Context,
	run *domain.ScreeningRun,
	buildSlots func(*domain.ScreeningRun) ([]domain.WeeklySlot, error)) error {

	s.NextID++
	run.ID = s.NextID

	slots, err := buildSlots(run)
	if err == nil {
		err = s.FailSlotWrite
	}
	if err != nil {
		run.ID = 0
		return err
	}

	s.Runs = append(s.Runs, *run)
	for i := range slots {
		slots[i].ID = len(s.Slots) + 1
		s.Slots = append(s.Slots, slots[i])
	}

	return nil
}

func (s *InMemoryRunStore) GetByFilmId(_ context.Context, filmID int) ([]domain.ScreeningRun, error) {
	var runs []domain.ScreeningRun
	for _, run := range s.Runs {
		if run.FilmID == filmID {
			runs = append(runs, run)
		}
	}

	return runs, nil
}

func (s *InMemoryRunStore) GetByCinemaId(_ context.Context, cinemaID int) ([]domain.ScreeningRun, error) {
	var runs []domain.ScreeningRun
	for _, run := range s.Runs {
		if run.CinemaID == cinemaID {
			runs = append(runs, run)
		}
	}

	return runs, nil
}

func (s *InMemoryRunStore) GetSlotsByRunIds(_ context.Context, runIDs []int) (map[int][]domain.WeeklySlot, error) {
	wanted := make(map[int]bool, len(runIDs))
	for _, id := range runIDs {
		wanted[id] = true
	}

	slots := make(map[int][]domain.WeeklySlot)
	for _, slot := range s.Slots {
		if wanted[slot.RunID] {
			slots[slot.RunID] = append(slots[slot.RunID], slot)
		}
	}

	return slots, nil
}
