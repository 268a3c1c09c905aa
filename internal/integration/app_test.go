package integration_test

import (
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-schedule/internal/app"
	"github.com/metinatakli/cinema-schedule/internal/identity"
	"github.com/metinatakli/cinema-schedule/internal/repository"
	appvalidator "github.com/metinatakli/cinema-schedule/internal/validator"
)

const testJWTSecret = "integration-secret"

type TestApp struct {
	App      *app.Application
	DB       *pgxpool.Pool
	Identity *identity.Issuer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	issuer := identity.NewIssuer(testJWTSecret, time.Hour)

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		sessionManager,
		issuer,
		repository.NewPostgresOwnerRepository(db),
		repository.NewPostgresFilmRepository(db),
		repository.NewPostgresCinemaRepository(db),
		repository.NewPostgresActorRepository(db),
		repository.NewPostgresScreeningRunRepository(db),
	)

	return &TestApp{
		App:      application,
		DB:       db,
		Identity: issuer,
	}, nil
}
