package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

type TownRepository struct {
	db *gorm.DB
}

func NewTownRepository(db *gorm.DB) repositories.TownRepository {
	return &TownRepository{db: db}
}

func (r *TownRepository) Create(ctx context.Context, town *entities.Town) (*entities.Town, error) {
	townModel := TownModel{
		Name:        town.Name,
		CountryCode: town.CountryCode,
		Latitude:    town.Latitude,
		Longitude:   town.Longitude,
	}

	if err := r.db.WithContext(ctx).Create(&townModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	town.ID = townModel.ID
	return town, nil
}

func (r *TownRepository) FindByID(ctx context.Context, id uint) (*entities.Town, error) {
	var townModel TownModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&townModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapTownToEntity(&townModel), nil
}

func (r *TownRepository) FindByNameLike(ctx context.Context, fragment string) ([]entities.Town, error) {
	var townModels []TownModel
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("id").
		Find(&townModels).Error
	if err != nil {
		return nil, err
	}

	return mapTownsToEntities(townModels), nil
}

func (r *TownRepository) List(ctx context.Context, countryCode string) ([]entities.Town, error) {
	query := r.db.WithContext(ctx).Order("name")
	if countryCode != "" {
		query = query.Where("country_code = ?", countryCode)
	}

	var townModels []TownModel
	if err := query.Find(&townModels).Error; err != nil {
		return nil, err
	}

	return mapTownsToEntities(townModels), nil
}

func mapTownToEntity(townModel *TownModel) *entities.Town {
	return &entities.Town{
		ID:          townModel.ID,
		Name:        townModel.Name,
		CountryCode: townModel.CountryCode,
		Latitude:    townModel.Latitude,
		Longitude:   townModel.Longitude,
	}
}

func mapTownsToEntities(townModels []TownModel) []entities.Town {
	towns := make([]entities.Town, 0, len(townModels))
	for i := range townModels {
		towns = append(towns, *mapTownToEntity(&townModels[i]))
	}
	return towns
}

type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) repositories.CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) Create(ctx context.Context, country *entities.Country) (*entities.Country, error) {
	countryModel := CountryModel{
		Code: country.Code,
		Name: country.Name,
	}

	if err := r.db.WithContext(ctx).Create(&countryModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	return country, nil
}

func (r *CountryRepository) List(ctx context.Context) ([]entities.Country, error) {
	var countryModels []CountryModel
	if err := r.db.WithContext(ctx).Order("code").Find(&countryModels).Error; err != nil {
		return nil, err
	}

	countries := make([]entities.Country, 0, len(countryModels))
	for _, m := range countryModels {
		countries = append(countries, entities.Country{Code: m.Code, Name: m.Name})
	}
	return countries, nil
}
