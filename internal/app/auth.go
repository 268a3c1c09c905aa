package app

import (
	"net/http"

	"github.com/metinatakli/cinema-schedule/api"
	"github.com/metinatakli/cinema-schedule/internal/domain"
)

func (app *Application) RegisterOwner(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterRequest

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

	owner, err := app.auth.Register(r.Context(), input.Email, input.Secret, input.Role)
	if err != nil {
		if domain.KindOf(err) == domain.KindDuplicateEmail {
			logger.Warn("registration attempt for existing email")
		}

		app.domainErrorResponse(w, r, err)
		return
	}

	logger.Info("owner registered", "ownerId", owner.ID, "role", owner.Role)

	err = app.writeJSON(w, http.StatusCreated, toOwnerResponse(owner), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Login checks the credentials, binds the owner to a renewed session and
// returns an access token for clients that do not keep cookies.
func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	owner, err := app.auth.Authenticate(r.Context(), input.Email, input.Secret)
	if err != nil {
		if domain.KindOf(err) == domain.KindInvalidCredentials {
			logger.Warn("login failed")
		}

		app.domainErrorResponse(w, r, err)
		return
	}

	// To help prevent session fixation attacks we should renew the session token after any privilege level change.
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyOwnerId.String(), owner.ID)

	token, err := app.identity.Issue(owner)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LoginResponse{
		Id:          owner.ID,
		Email:       owner.Email,
		Role:        owner.Role,
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) GetCurrentOwner(w http.ResponseWriter, r *http.Request) {
	ownerId := app.contextGetOwnerId(r)

	owner, err := app.auth.GetOwner(r.Context(), ownerId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toOwnerResponse(owner), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
