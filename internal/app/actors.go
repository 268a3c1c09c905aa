package app

import (
	"net/http"
	"strings"

	"github.com/metinatakli/cinema-schedule/api"
)

func (app *Application) ListActors(w http.ResponseWriter, r *http.Request) {
	actors, err := app.catalogue.ListActors(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ActorListResponse{Actors: make([]api.Actor, len(actors))}
	for i, actor := range actors {
		resp.Actors[i] = api.Actor{Id: actor.ID, Name: actor.Name}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var input api.ActorRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input.Name = strings.TrimSpace(input.Name)

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	actor, err := app.publication.CreateActor(r.Context(), input.Name)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.Actor{Id: actor.ID, Name: actor.Name}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
