package domain

import (
	"context"
	"strings"
)

type Film struct {
	ID               int
	Title            string
	Duration         int
	Language         string
	Director         string
	MinAge           int
	SubtitleLanguage string
	OwnerID          int
	ActorIDs         []int
}

type Actor struct {
	ID   int
	Name string
}

// FilmFilters selects films by city and/or title. Blank values mean no filter.
type FilmFilters struct {
	City  string
	Title string
}

// Normalize trims both filters so that whitespace-only values count as absent.
func (f FilmFilters) Normalize() FilmFilters {
	return FilmFilters{
		City:  strings.TrimSpace(f.City),
		Title: strings.TrimSpace(f.Title),
	}
}

func (f FilmFilters) HasCity() bool {
	return strings.TrimSpace(f.City) != ""
}

func (f FilmFilters) HasTitle() bool {
	return strings.TrimSpace(f.Title) != ""
}

type FilmRepository interface {
	Create(ctx context.Context, film *Film) error
	GetById(ctx context.Context, id int) (*Film, error)
	GetAll(ctx context.Context, filters FilmFilters) ([]*Film, error)
}

type ActorRepository interface {
	Create(ctx context.Context, actor *Actor) error
	GetAll(ctx context.Context) ([]Actor, error)
}
