package app

import (
	"net/http"

	"github.com/metinatakli/cinema-schedule/api"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

func (app *Application) ListFilms(w http.ResponseWriter, r *http.Request, params api.ListFilmsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var filters domain.FilmFilters
	if params.City != nil {
		filters.City = *params.City
	}
	if params.Q != nil {
		filters.Title = *params.Q
	}

	films, err := app.catalogue.ListFilms(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FilmListResponse{Films: make([]api.FilmSummary, len(films))}
	for i, film := range films {
		resp.Films[i] = toFilmSummary(film)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFilmDetails(w http.ResponseWriter, r *http.Request, filmId int) {
	detail, err := app.catalogue.GetFilmDetails(r.Context(), filmId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.FilmDetailResponse{
		Film:          toFilmSummary(&detail.Film),
		ScreeningRuns: make([]api.FilmScreeningRun, len(detail.Runs)),
	}

	for i, run := range detail.Runs {
		resp.ScreeningRuns[i] = api.FilmScreeningRun{
			Id:            run.RunID,
			CinemaId:      run.CinemaID,
			CinemaName:    run.CinemaName,
			CinemaAddress: run.CinemaAddress,
			CinemaCity:    run.CinemaCity,
			StartDate:     toDate(run.StartDate),
			EndDate:       toDate(run.EndDate),
			Slots:         toWeeklySlots(run.Slots),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := app.catalogue.ListCinemas(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CinemaListResponse{Cinemas: make([]api.CinemaSummary, len(cinemas))}
	for i, cinema := range cinemas {
		resp.Cinemas[i] = toCinemaSummary(cinema)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemaDetails(w http.ResponseWriter, r *http.Request, cinemaId int) {
	detail, err := app.catalogue.GetCinemaDetails(r.Context(), cinemaId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	resp := api.CinemaDetailResponse{
		Cinema:        toCinemaSummary(&detail.Cinema),
		ScreeningRuns: make([]api.CinemaScreeningRun, len(detail.Runs)),
	}

	for i, run := range detail.Runs {
		resp.ScreeningRuns[i] = api.CinemaScreeningRun{
			Id:        run.RunID,
			Film:      toFilmSummary(&run.Film),
			StartDate: toDate(run.StartDate),
			EndDate:   toDate(run.EndDate),
			Slots:     toWeeklySlots(run.Slots),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
