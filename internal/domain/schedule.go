package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const SlotsPerRun = 3

type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts full names and three letter abbreviations in any case.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 3 {
		return "", ErrInvalidWeekday
	}

	for _, d := range weekdays {
		if s == string(d) || s == string(d)[:3] {
			return d, nil
		}
	}

	return "", ErrInvalidWeekday
}

func (d Weekday) Valid() bool {
	return d.index() >= 0
}

// Before orders weekdays Monday first.
func (d Weekday) Before(other Weekday) bool {
	return d.index() < other.index()
}

func (d Weekday) index() int {
	for i, w := range weekdays {
		if w == d {
			return i
		}
	}

	return -1
}

// TimeOfDay is a wall-clock time without date or zone, at minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay accepts HH:MM only. Seconds are rejected rather than dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TimeOfDayFromMicroseconds converts a duration since midnight, as stored by
// PostgreSQL time columns.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	minutes := int(us / int64(time.Minute/time.Microsecond))
	return TimeOfDay{Hour: minutes / 60, Minute: minutes % 60}
}

func (t TimeOfDay) Microseconds() int64 {
	return int64(t.Hour*60+t.Minute) * int64(time.Minute/time.Microsecond)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Hour*60+t.Minute < other.Hour*60+other.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ScreeningRun is a film playing weekly at one cinema between two dates.
type ScreeningRun struct {
	ID        int
	FilmID    int
	CinemaID  int
	StartDate time.Time
	EndDate   time.Time
}

type WeeklySlot struct {
	ID        int
	RunID     int
	Weekday   Weekday
	StartTime TimeOfDay
}

type SlotInput struct {
	Weekday   Weekday
	StartTime TimeOfDay
}

type ScreeningRunRepository interface {
	// CreateWithSlots inserts run and the slots returned by buildSlots in a
	// single transaction. buildSlots runs after the run has its ID; any error
	// it returns rolls the whole write back.
	CreateWithSlots(ctx context.Context, run *ScreeningRun, buildSlots func(*ScreeningRun) ([]WeeklySlot, error)) error
	GetByFilmId(ctx context.Context, filmID int) ([]ScreeningRun, error)
	GetByCinemaId(ctx context.Context, cinemaID int) ([]ScreeningRun, error)
	GetSlotsByRunIds(ctx context.Context, runIDs []int) (map[int][]WeeklySlot, error)
}
