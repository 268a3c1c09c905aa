package integration_test

const (
	// Owner related constants
	TestOwnerEmail  = "owner@example.com"
	TestOwnerSecret = "s3cret-value"
	TestOwnerRole   = "distributor"

	// Film related constants
	TestFilmTitle            = "Dune"
	TestFilmDuration         = 155
	TestFilmLanguage         = "English"
	TestFilmDirector         = "Denis Villeneuve"
	TestFilmMinAge           = 12
	TestFilmSubtitleLanguage = "French"

	// Cinema related constants
	TestCinemaName    = "Rex"
	TestCinemaAddress = "1 Rue de la République"
	TestCinemaCity    = "Lyon"
)
