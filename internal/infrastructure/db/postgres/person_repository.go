package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) repositories.PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, person *entities.ValidatedPerson) (*entities.Person, error) {
	personEntity := person.GetPerson()

	// Hash password before saving
	if err := personEntity.HashPassword(); err != nil {
		return nil, err
	}

	personModel := PersonModel{
		CreatedAt: personEntity.CreatedAt,
		UpdatedAt: personEntity.UpdatedAt,
		Email:     personEntity.Email,
		Alias:     personEntity.Alias,
		FirstName: personEntity.FirstName,
		LastName:  personEntity.LastName,
		Password:  personEntity.Password,
		IsAdmin:   personEntity.IsAdmin,
	}

	if err := r.db.WithContext(ctx).Create(&personModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	return r.FindByID(ctx, personModel.ID)
}

func (r *PersonRepository) FindByID(ctx context.Context, id uint) (*entities.Person, error) {
	var personModel PersonModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&personModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&personModel), nil
}

func (r *PersonRepository) FindByEmail(ctx context.Context, email string) (*entities.Person, error) {
	var personModel PersonModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&personModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&personModel), nil
}

func (r *PersonRepository) List(ctx context.Context) ([]entities.Person, error) {
	var personModels []PersonModel
	if err := r.db.WithContext(ctx).Order("last_name").Find(&personModels).Error; err != nil {
		return nil, err
	}

	persons := make([]entities.Person, 0, len(personModels))
	for i := range personModels {
		persons = append(persons, *r.mapToEntity(&personModels[i]))
	}
	return persons, nil
}

func (r *PersonRepository) ListAliases(ctx context.Context) ([]string, error) {
	var aliases []string
	if err := r.db.WithContext(ctx).Model(&PersonModel{}).Order("alias").Pluck("alias", &aliases).Error; err != nil {
		return nil, err
	}
	return aliases, nil
}

func (r *PersonRepository) Update(ctx context.Context, person *entities.ValidatedPerson) (*entities.Person, error) {
	personEntity := person.GetPerson()

	personModel := PersonModel{
		ID:        personEntity.ID,
		CreatedAt: personEntity.CreatedAt,
		UpdatedAt: personEntity.UpdatedAt,
		Email:     personEntity.Email,
		Alias:     personEntity.Alias,
		FirstName: personEntity.FirstName,
		LastName:  personEntity.LastName,
		Password:  personEntity.Password,
		IsAdmin:   personEntity.IsAdmin,
	}

	if err := r.db.WithContext(ctx).Save(&personModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	return r.FindByID(ctx, personEntity.ID)
}

func (r *PersonRepository) AddReview(ctx context.Context, review *entities.PersonReview) (*entities.PersonReview, error) {
	reviewModel := PersonReviewModel{
		PersonID:   review.PersonID,
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
	}

	if err := r.db.WithContext(ctx).Create(&reviewModel).Error; err != nil {
		return nil, err
	}

	review.ID = reviewModel.ID
	return review, nil
}

func (r *PersonRepository) ListReviews(ctx context.Context, personID uint) ([]entities.PersonReview, error) {
	var reviewModels []PersonReviewModel
	if err := r.db.WithContext(ctx).Where("person_id = ?", personID).Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]entities.PersonReview, 0, len(reviewModels))
	for _, m := range reviewModels {
		reviews = append(reviews, entities.PersonReview{
			ID:         m.ID,
			PersonID:   m.PersonID,
			ReviewerID: m.ReviewerID,
			Rating:     m.Rating,
			Comment:    m.Comment,
		})
	}
	return reviews, nil
}

func (r *PersonRepository) AddTown(ctx context.Context, link *entities.PersonTown) (*entities.PersonTown, error) {
	linkModel := PersonTownModel{
		PersonID: link.PersonID,
		TownID:   link.TownID,
	}

	if err := r.db.WithContext(ctx).Create(&linkModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	return link, nil
}

func (r *PersonRepository) ListTowns(ctx context.Context, personID uint) ([]entities.Town, error) {
	var townModels []TownModel
	err := r.db.WithContext(ctx).
		Joins("JOIN persons_towns ON persons_towns.town_id = towns.id").
		Where("persons_towns.person_id = ?", personID).
		Find(&townModels).Error
	if err != nil {
		return nil, err
	}

	towns := make([]entities.Town, 0, len(townModels))
	for _, m := range townModels {
		towns = append(towns, entities.Town{
			ID:          m.ID,
			Name:        m.Name,
			CountryCode: m.CountryCode,
			Latitude:    m.Latitude,
			Longitude:   m.Longitude,
		})
	}
	return towns, nil
}

func (r *PersonRepository) mapToEntity(personModel *PersonModel) *entities.Person {
	return &entities.Person{
		ID:        personModel.ID,
		CreatedAt: personModel.CreatedAt,
		UpdatedAt: personModel.UpdatedAt,
		Email:     personModel.Email,
		Alias:     personModel.Alias,
		FirstName: personModel.FirstName,
		LastName:  personModel.LastName,
		Password:  personModel.Password,
		IsAdmin:   personModel.IsAdmin,
	}
}
