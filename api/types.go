package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type ErrorCode string

const (
	NOTFOUND           ErrorCode = "NOT_FOUND"
	INVALIDRANGE       ErrorCode = "INVALID_RANGE"
	INVALIDSLOTCOUNT   ErrorCode = "INVALID_SLOT_COUNT"
	DUPLICATEWEEKDAY   ErrorCode = "DUPLICATE_WEEKDAY"
	INVALIDCREDENTIALS ErrorCode = "INVALID_CREDENTIALS"
	MISSINGFIELD       ErrorCode = "MISSING_FIELD"
	INVALIDSECRET      ErrorCode = "INVALID_SECRET"
	DUPLICATEEMAIL     ErrorCode = "DUPLICATE_EMAIL"
	BADREQUEST         ErrorCode = "BAD_REQUEST"
	UNAUTHORIZED       ErrorCode = "UNAUTHORIZED"
	INTERNAL           ErrorCode = "INTERNAL"
)

type ErrorResponse struct {
	Code      ErrorCode `json:"code,omitempty"`
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type SystemInfo struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type RegisterRequest struct {
	Email  string `json:"email" validate:"omitempty,email,max=254"`
	Secret string `json:"secret" validate:"max_bytes=72"`
	Role   string `json:"role" validate:"max=50"`
}

type LoginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type OwnerResponse struct {
	Id    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Id          int       `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type CreatedResponse struct {
	Id int `json:"id"`
}

type ActorRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type Actor struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type ActorListResponse struct {
	Actors []Actor `json:"actors"`
}

type Weekday string

const (
	MONDAY    Weekday = "MONDAY"
	TUESDAY   Weekday = "TUESDAY"
	WEDNESDAY Weekday = "WEDNESDAY"
	THURSDAY  Weekday = "THURSDAY"
	FRIDAY    Weekday = "FRIDAY"
	SATURDAY  Weekday = "SATURDAY"
	SUNDAY    Weekday = "SUNDAY"
)

type WeeklySlot struct {
	Weekday   Weekday `json:"weekday" validate:"required,weekday"`
	StartTime string  `json:"startTime" validate:"required,time_of_day"`
}

type PublishFilmRequest struct {
	Title            string `json:"title" validate:"max=255"`
	Duration         int    `json:"duration"`
	Language         string `json:"language" validate:"max=100"`
	Director         string `json:"director" validate:"max=255"`
	MinAge           int    `json:"minAge"`
	SubtitleLanguage string `json:"subtitleLanguage" validate:"max=100"`
	ActorIds         []int  `json:"actorIds,omitempty" validate:"max=100"`
}

type PublishCinemaRequest struct {
	Name    string `json:"name" validate:"max=255"`
	Address string `json:"address" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
}

type PublishScreeningRunRequest struct {
	FilmId    int                `json:"filmId"`
	CinemaId  int                `json:"cinemaId"`
	StartDate openapi_types.Date `json:"startDate" validate:"required"`
	EndDate   openapi_types.Date `json:"endDate" validate:"required"`
	Slots     []WeeklySlot       `json:"slots" validate:"dive"`
}

type PublishFilmParams struct {
	OwnerId int `json:"ownerId"`
}

type PublishCinemaParams struct {
	OwnerId int `json:"ownerId"`
}

type ListFilmsParams struct {
	City *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Q    *string `json:"q,omitempty" validate:"omitempty,max=100"`
}

type FilmSummary struct {
	Id               int    `json:"id"`
	Title            string `json:"title"`
	Duration         int    `json:"duration"`
	Language         string `json:"language"`
	Director         string `json:"director"`
	MinAge           int    `json:"minAge"`
	SubtitleLanguage string `json:"subtitleLanguage"`
	OwnerId          int    `json:"ownerId"`
	ActorIds         []int  `json:"actorIds"`
}

type FilmListResponse struct {
	Films []FilmSummary `json:"films"`
}

type FilmScreeningRun struct {
	Id            int                `json:"id"`
	CinemaId      int                `json:"cinemaId"`
	CinemaName    string             `json:"cinemaName"`
	CinemaAddress string             `json:"cinemaAddress"`
	CinemaCity    string             `json:"cinemaCity"`
	StartDate     openapi_types.Date `json:"startDate"`
	EndDate       openapi_types.Date `json:"endDate"`
	Slots         []WeeklySlot       `json:"slots"`
}

type FilmDetailResponse struct {
	Film          FilmSummary        `json:"film"`
	ScreeningRuns []FilmScreeningRun `json:"screeningRuns"`
}

type CinemaSummary struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	OwnerId int    `json:"ownerId"`
}

type CinemaListResponse struct {
	Cinemas []CinemaSummary `json:"cinemas"`
}

type CinemaScreeningRun struct {
	Id        int                `json:"id"`
	Film      FilmSummary        `json:"film"`
	StartDate openapi_types.Date `json:"startDate"`
	EndDate   openapi_types.Date `json:"endDate"`
	Slots     []WeeklySlot       `json:"slots"`
}

type CinemaDetailResponse struct {
	Cinema        CinemaSummary        `json:"cinema"`
	ScreeningRuns []CinemaScreeningRun `json:"screeningRuns"`
}
