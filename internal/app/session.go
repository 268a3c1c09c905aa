package app

import (
	"context"
	"log/slog"
	"net/http"
)

type sessionKey string

const (
	SessionKeyOwnerId = sessionKey("ownerID")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const (
	ownerContextKey  = contextKey("ownerId")
	loggerContextKey = contextKey("logger")
)

func (app *Application) contextSetOwnerId(r *http.Request, ownerId int) *http.Request {
	ctx := context.WithValue(r.Context(), ownerContextKey, ownerId)
	return r.WithContext(ctx)
}

func (app *Application) contextOwnerId(r *http.Request) (int, bool) {
	ownerId, ok := r.Context().Value(ownerContextKey).(int)
	return ownerId, ok && ownerId != 0
}

func (app *Application) contextGetOwnerId(r *http.Request) int {
	ownerId, ok := app.contextOwnerId(r)
	if !ok {
		panic("missing owner id from context")
	}

	return ownerId
}

// contextGetLogger returns the request-scoped logger, or the application
// logger for requests that did not pass through logRequest.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
