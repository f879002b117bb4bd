package services

import (
	"context"
	"strings"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/common"
	"toolbox-api/internal/application/interfaces"
	"toolbox-api/internal/application/mapper"
	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

// CatalogService manages the reference geography: countries and towns.
type CatalogService struct {
	townRepo    repositories.TownRepository
	countryRepo repositories.CountryRepository
}

func NewCatalogService(townRepo repositories.TownRepository, countryRepo repositories.CountryRepository) interfaces.CatalogService {
	return &CatalogService{
		townRepo:    townRepo,
		countryRepo: countryRepo,
	}
}

func (s *CatalogService) CreateTown(ctx context.Context, cmd *command.CreateTownCommand) (*command.CreateTownCommandResult, error) {
	town := entities.NewTown(cmd.Name, strings.ToUpper(cmd.CountryCode), cmd.Latitude, cmd.Longitude)
	if err := town.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	createdTown, err := s.townRepo.Create(ctx, town)
	if err != nil {
		return nil, err
	}

	return &command.CreateTownCommandResult{
		Result: mapper.NewTownResultFromEntity(createdTown),
	}, nil
}

func (s *CatalogService) ListTowns(ctx context.Context, countryCode string) ([]*common.TownResult, error) {
	towns, err := s.townRepo.List(ctx, strings.ToUpper(countryCode))
	if err != nil {
		return nil, err
	}
	return mapper.NewTownResultsFromEntities(towns), nil
}

func (s *CatalogService) CreateCountry(ctx context.Context, cmd *command.CreateCountryCommand) (*command.CreateCountryCommandResult, error) {
	country := entities.NewCountry(strings.ToUpper(cmd.Code), cmd.Name)
	if err := country.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	createdCountry, err := s.countryRepo.Create(ctx, country)
	if err != nil {
		return nil, err
	}

	return &command.CreateCountryCommandResult{
		Result: mapper.NewCountryResultFromEntity(createdCountry),
	}, nil
}

func (s *CatalogService) ListCountries(ctx context.Context) ([]*common.CountryResult, error) {
	countries, err := s.countryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*common.CountryResult, 0, len(countries))
	for i := range countries {
		results = append(results, mapper.NewCountryResultFromEntity(&countries[i]))
	}
	return results, nil
}
