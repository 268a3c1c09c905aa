package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-schedule/api"
	"github.com/metinatakli/cinema-schedule/internal/domain"
	"github.com/metinatakli/cinema-schedule/internal/identity"
	"github.com/metinatakli/cinema-schedule/internal/mocks"
	"github.com/metinatakli/cinema-schedule/internal/validator"
)

type testRepos struct {
	owners  domain.OwnerRepository
	films   domain.FilmRepository
	cinemas domain.CinemaRepository
	actors  domain.ActorRepository
	runs    domain.ScreeningRunRepository
}

func newTestApplication(opts ...func(*testRepos)) *Application {
	repos := &testRepos{
		owners:  &mocks.MockOwnerRepo{},
		films:   &mocks.MockFilmRepo{},
		cinemas: &mocks.MockCinemaRepo{},
		actors:  &mocks.MockActorRepo{},
		runs:    &mocks.InMemoryRunStore{},
	}

	for _, opt := range opts {
		opt(repos)
	}

	cfg := Config{Env: "test"}

	return NewApp(
		cfg,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		nil,
		validator.NewValidator(),
		scs.New(),
		identity.NewIssuer("test-secret", time.Hour),
		repos.owners,
		repos.films,
		repos.cinemas,
		repos.actors,
		repos.runs,
	)
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, ownerId int) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	if ownerId != 0 {
		app.sessionManager.Put(ctx, SessionKeyOwnerId.String(), ownerId)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

type errorExpectation struct {
	wantStatus     int
	wantCode       api.ErrorCode
	wantErrMessage string
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt errorExpectation) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if _, ok := raw["validationErrors"]; ok {
		var validationResp api.ValidationErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

		return
	}

	var errorResp api.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if tt.wantCode != "" && errorResp.Code != tt.wantCode {
		t.Errorf("Error code = %v, want %v", errorResp.Code, tt.wantCode)
	}

	if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
	}
}

func ptr[T any](v T) *T {
	return &v
}
