package app

import (
	"net/http"

	"github.com/metinatakli/cinema-schedule/api"
	"github.com/metinatakli/cinema-schedule/internal/domain"
	"github.com/metinatakli/cinema-schedule/internal/service"
)

func (app *Application) PublishFilm(w http.ResponseWriter, r *http.Request, params api.PublishFilmParams) {
	var input api.PublishFilmRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	film, err := app.publication.CreateFilm(r.Context(), service.FilmInput{
		Title:            input.Title,
		Duration:         input.Duration,
		Language:         input.Language,
		Director:         input.Director,
		MinAge:           input.MinAge,
		SubtitleLanguage: input.SubtitleLanguage,
		ActorIDs:         input.ActorIds,
	}, params.OwnerId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: film.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PublishCinema(w http.ResponseWriter, r *http.Request, params api.PublishCinemaParams) {
	var input api.PublishCinemaRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	cinema, err := app.publication.CreateCinema(r.Context(), service.CinemaInput{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
	}, params.OwnerId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: cinema.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// PublishScreeningRun only checks the format of each slot here. Range, slot
// count, references and weekday distinctness are left to the publication
// service, which checks them in a fixed order.
func (app *Application) PublishScreeningRun(w http.ResponseWriter, r *http.Request) {
	var input api.PublishScreeningRunRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	slots, err := toSlotInputs(input.Slots)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	run, err := app.publication.CreateScreeningRun(r.Context(), service.ScreeningRunInput{
		FilmID:    input.FilmId,
		CinemaID:  input.CinemaId,
		StartDate: input.StartDate.Time,
		EndDate:   input.EndDate.Time,
		Slots:     slots,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("screening run published",
		"runId", run.ID, "filmId", run.FilmID, "cinemaId", run.CinemaID)

	err = app.writeJSON(w, http.StatusCreated, api.CreatedResponse{Id: run.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSlotInputs(slots []api.WeeklySlot) ([]domain.SlotInput, error) {
	inputs := make([]domain.SlotInput, len(slots))

	for i, slot := range slots {
		weekday, err := domain.ParseWeekday(string(slot.Weekday))
		if err != nil {
			return nil, err
		}

		startTime, err := domain.ParseTimeOfDay(slot.StartTime)
		if err != nil {
			return nil, err
		}

		inputs[i] = domain.SlotInput{Weekday: weekday, StartTime: startTime}
	}

	return inputs, nil
}
