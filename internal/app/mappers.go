package app

import (
	"time"

	"github.com/metinatakli/cinema-schedule/api"
	"github.com/metinatakli/cinema-schedule/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func toOwnerResponse(owner *domain.Owner) api.OwnerResponse {
	return api.OwnerResponse{
		Id:    owner.ID,
		Email: owner.Email,
		Role:  owner.Role,
	}
}

func toFilmSummary(film *domain.Film) api.FilmSummary {
	actorIds := film.ActorIDs
	if actorIds == nil {
		actorIds = []int{}
	}

	return api.FilmSummary{
		Id:               film.ID,
		Title:            film.Title,
		Duration:         film.Duration,
		Language:         film.Language,
		Director:         film.Director,
		MinAge:           film.MinAge,
		SubtitleLanguage: film.SubtitleLanguage,
		OwnerId:          film.OwnerID,
		ActorIds:         actorIds,
	}
}

func toCinemaSummary(cinema *domain.Cinema) api.CinemaSummary {
	return api.CinemaSummary{
		Id:      cinema.ID,
		Name:    cinema.Name,
		Address: cinema.Address,
		City:    cinema.City,
		OwnerId: cinema.OwnerID,
	}
}

func toWeeklySlots(slots []domain.WeeklySlot) []api.WeeklySlot {
	out := make([]api.WeeklySlot, len(slots))

	for i, slot := range slots {
		out[i] = api.WeeklySlot{
			Weekday:   api.Weekday(slot.Weekday),
			StartTime: slot.StartTime.String(),
		}
	}

	return out
}

func toDate(t time.Time) types.Date {
	return types.Date{Time: t}
}
