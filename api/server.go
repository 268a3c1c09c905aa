package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface is implemented by the application handlers.
type ServerInterface interface {
	// (GET /healthcheck)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// (POST /auth/register)
	RegisterOwner(w http.ResponseWriter, r *http.Request)
	// (POST /auth/login)
	Login(w http.ResponseWriter, r *http.Request)
	// (GET /actors)
	ListActors(w http.ResponseWriter, r *http.Request)
	// (POST /actors)
	CreateActor(w http.ResponseWriter, r *http.Request)
	// (GET /catalogue/films)
	ListFilms(w http.ResponseWriter, r *http.Request, params ListFilmsParams)
	// (GET /catalogue/films/{filmId})
	GetFilmDetails(w http.ResponseWriter, r *http.Request, filmId int)
	// (GET /catalogue/cinemas)
	ListCinemas(w http.ResponseWriter, r *http.Request)
	// (GET /catalogue/cinemas/{cinemaId})
	GetCinemaDetails(w http.ResponseWriter, r *http.Request, cinemaId int)
	// (POST /publication/films)
	PublishFilm(w http.ResponseWriter, r *http.Request, params PublishFilmParams)
	// (POST /publication/cinemas)
	PublishCinema(w http.ResponseWriter, r *http.Request, params PublishCinemaParams)
	// (POST /publication/screening-runs)
	PublishScreeningRun(w http.ResponseWriter, r *http.Request)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper binds path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, handler http.Handler) {
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.GetHealth))
}

func (siw *ServerInterfaceWrapper) RegisterOwner(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.RegisterOwner))
}

func (siw *ServerInterfaceWrapper) Login(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.Login))
}

func (siw *ServerInterfaceWrapper) ListActors(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.ListActors))
}

func (siw *ServerInterfaceWrapper) CreateActor(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.CreateActor))
}

func (siw *ServerInterfaceWrapper) ListFilms(w http.ResponseWriter, r *http.Request) {
	var params ListFilmsParams

	err := runtime.BindQueryParameter("form", true, false, "city", r.URL.Query(), &params.City)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "city", Err: err})
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &params.Q)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "q", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListFilms(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) GetFilmDetails(w http.ResponseWriter, r *http.Request) {
	filmId, err := bindPathID(r, "filmId")
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetFilmDetails(w, r, filmId)
	}))
}

func (siw *ServerInterfaceWrapper) ListCinemas(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.ListCinemas))
}

func (siw *ServerInterfaceWrapper) GetCinemaDetails(w http.ResponseWriter, r *http.Request) {
	cinemaId, err := bindPathID(r, "cinemaId")
	if err != nil {
		siw.ErrorHandlerFunc(w, r, err)
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCinemaDetails(w, r, cinemaId)
	}))
}

func (siw *ServerInterfaceWrapper) PublishFilm(w http.ResponseWriter, r *http.Request) {
	var params PublishFilmParams

	err := runtime.BindQueryParameter("form", true, true, "ownerId", r.URL.Query(), &params.OwnerId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "ownerId", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PublishFilm(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) PublishCinema(w http.ResponseWriter, r *http.Request) {
	var params PublishCinemaParams

	err := runtime.BindQueryParameter("form", true, true, "ownerId", r.URL.Query(), &params.OwnerId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "ownerId", Err: err})
		return
	}

	siw.serve(w, r, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PublishCinema(w, r, params)
	}))
}

func (siw *ServerInterfaceWrapper) PublishScreeningRun(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, http.HandlerFunc(siw.Handler.PublishScreeningRun))
}

func bindPathID(r *http.Request, name string) (int, error) {
	var id int

	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, &InvalidParamFormatError{ParamName: name, Err: err}
	}

	return id, nil
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux registers every operation on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/healthcheck", wrapper.GetHealth)
		r.Post(options.BaseURL+"/auth/register", wrapper.RegisterOwner)
		r.Post(options.BaseURL+"/auth/login", wrapper.Login)
		r.Get(options.BaseURL+"/actors", wrapper.ListActors)
		r.Post(options.BaseURL+"/actors", wrapper.CreateActor)
		r.Get(options.BaseURL+"/catalogue/films", wrapper.ListFilms)
		r.Get(options.BaseURL+"/catalogue/films/{filmId}", wrapper.GetFilmDetails)
		r.Get(options.BaseURL+"/catalogue/cinemas", wrapper.ListCinemas)
		r.Get(options.BaseURL+"/catalogue/cinemas/{cinemaId}", wrapper.GetCinemaDetails)
		r.Post(options.BaseURL+"/publication/films", wrapper.PublishFilm)
		r.Post(options.BaseURL+"/publication/cinemas", wrapper.PublishCinema)
		r.Post(options.BaseURL+"/publication/screening-runs", wrapper.PublishScreeningRun)
	})

	return r
}
