package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-schedule/internal/domain"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var keysToIgnore = map[string]struct{}{
	"timestamp":   {},
	"requestId":   {},
	"accessToken": {},
	"expiresAt":   {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		switch nested := m[k].(type) {
		case map[string]any:
			cleanMap(nested)
		case []any:
			for _, item := range nested {
				if nestedMap, ok := item.(map[string]any); ok {
					cleanMap(nestedMap)
				}
			}
		}
	}
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(), `
		TRUNCATE weekly_slots, screening_runs, film_actors, films, cinemas, actors, owners
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func insertOwner(t testing.TB, db *pgxpool.Pool, email, secret, role string) int {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)

	var id int
	err = db.QueryRow(context.Background(), `
		INSERT INTO owners (email, secret_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id`, email, hash, role).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertActor(t testing.TB, db *pgxpool.Pool, name string) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO actors (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertFilm(t testing.TB, db *pgxpool.Pool, title string, ownerID int, actorIDs ...int) int {
	ctx := context.Background()

	var id int
	err := db.QueryRow(ctx, `
		INSERT INTO films (title, duration, language, director, min_age, subtitle_language, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		title, TestFilmDuration, TestFilmLanguage, TestFilmDirector, TestFilmMinAge, TestFilmSubtitleLanguage, ownerID,
	).Scan(&id)
	require.NoError(t, err)

	for _, actorID := range actorIDs {
		_, err = db.Exec(ctx, `INSERT INTO film_actors (film_id, actor_id) VALUES ($1, $2)`, id, actorID)
		require.NoError(t, err)
	}

	return id
}

func insertCinema(t testing.TB, db *pgxpool.Pool, name, city string, ownerID int) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO cinemas (name, address, city, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, name, TestCinemaAddress, city, ownerID).Scan(&id)
	require.NoError(t, err)

	return id
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	var count int
	err := db.QueryRow(context.Background(), fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	require.NoError(t, err)

	return count
}

func bearer(t testing.TB, app *TestApp, ownerID int, email string) map[string]string {
	token, err := app.Identity.Issue(&domain.Owner{ID: ownerID, Email: email, Role: TestOwnerRole})
	require.NoError(t, err)

	return map[string]string{"Authorization": "Bearer " + token.Token}
}
