package service

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/georeads/georeads/internal/store"
)

// NationalitySource answers nationality questions for a single author.
// *wikidata.Client implements it.
type NationalitySource interface {
	CountryOfCitizenship(ctx context.Context, name string) (string, error)
}

// NationalityStore is the slice of store.NationalityCache the services use.
type NationalityStore interface {
	GetNationality(ctx context.Context, name string) (*store.CachedNationality, error)
	SetNationality(ctx context.Context, name, nationality string) error
	NationalityCounts(ctx context.Context) (map[string]int, error)
}
