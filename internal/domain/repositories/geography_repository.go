package repositories

import (
	"context"

	"toolbox-api/internal/domain/entities"
)

type TownRepository interface {
	Create(ctx context.Context, town *entities.Town) (*entities.Town, error)
	FindByID(ctx context.Context, id uint) (*entities.Town, error)
	// FindByNameLike matches towns whose name contains the fragment,
	// case-insensitively, ordered by id.
	FindByNameLike(ctx context.Context, fragment string) ([]entities.Town, error)
	// List returns all towns, or only those of a country when
	// countryCode is non-empty.
	List(ctx context.Context, countryCode string) ([]entities.Town, error)
}

type CountryRepository interface {
	Create(ctx context.Context, country *entities.Country) (*entities.Country, error)
	List(ctx context.Context) ([]entities.Country, error)
}
