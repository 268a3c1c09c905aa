package domain

import "time"

type FilmLight = Film

type CinemaLight = Cinema

type FilmDetail struct {
	Film
	Runs []FilmRunDetail
}

// FilmRunDetail is one screening run of a film, seen from the film side.
type FilmRunDetail struct {
	RunID         int
	CinemaID      int
	CinemaName    string
	CinemaAddress string
	CinemaCity    string
	StartDate     time.Time
	EndDate       time.Time
	Slots         []WeeklySlot
}

type CinemaDetail struct {
	Cinema
	Runs []CinemaRunDetail
}

// CinemaRunDetail is one screening run at a cinema, seen from the cinema side.
type CinemaRunDetail struct {
	RunID     int
	Film      Film
	StartDate time.Time
	EndDate   time.Time
	Slots     []WeeklySlot
}
