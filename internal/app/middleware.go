package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/metinatakli/cinema-schedule/internal/identity"
	"go.opentelemetry.io/otel/trace"
)

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// logRequest stores a logger carrying the request id and trace id in the
// request context and logs each completed request.
func (app *Application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With("requestId", middleware.GetReqID(r.Context()))

		if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
			logger = logger.With("traceId", sc.TraceID().String())
		}

		r = r.WithContext(context.WithValue(r.Context(), loggerContextKey, logger))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logger.Info("request completed",
			"method", r.Method,
			"uri", r.URL.RequestURI(),
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// enableCORS only answers cross-origin requests from the configured origins.
// With none configured, no CORS headers are sent at all.
func (app *Application) enableCORS() func(http.Handler) http.Handler {
	if len(app.config.CORS.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

func (app *Application) rateLimit() func(http.Handler) http.Handler {
	if !app.config.RateLimit.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		app.config.RateLimit.Requests,
		app.config.RateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(app.rateLimitExceededResponse),
	)
}

// authenticate resolves the caller from a Bearer access token or, failing
// that, from the session. Anonymous requests pass through unchanged.
func (app *Application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		header := r.Header.Get("Authorization")
		if header != "" {
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				app.unauthorizedAccessResponse(w, r)
				return
			}

			claims, err := app.identity.Parse(token)
			if err != nil {
				if !errors.Is(err, identity.ErrInvalidToken) {
					app.serverErrorResponse(w, r, err)
					return
				}

				app.contextGetLogger(r).Warn("rejected access token")
				app.unauthorizedAccessResponse(w, r)
				return
			}

			ownerId, _ := claims.OwnerID()
			next.ServeHTTP(w, app.contextSetOwnerId(r, ownerId))
			return
		}

		ownerId := app.sessionManager.GetInt(r.Context(), SessionKeyOwnerId.String())
		if ownerId != 0 {
			r = app.contextSetOwnerId(r, ownerId)
		}

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := app.contextOwnerId(r); !ok {
			app.unauthorizedAccessResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
