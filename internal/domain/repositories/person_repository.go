package repositories

import (
	"context"

	"toolbox-api/internal/domain/entities"
)

type PersonRepository interface {
	Create(ctx context.Context, person *entities.ValidatedPerson) (*entities.Person, error)
	FindByID(ctx context.Context, id uint) (*entities.Person, error)
	FindByEmail(ctx context.Context, email string) (*entities.Person, error)
	List(ctx context.Context) ([]entities.Person, error)
	ListAliases(ctx context.Context) ([]string, error)
	Update(ctx context.Context, person *entities.ValidatedPerson) (*entities.Person, error)
	AddReview(ctx context.Context, review *entities.PersonReview) (*entities.PersonReview, error)
	ListReviews(ctx context.Context, personID uint) ([]entities.PersonReview, error)
	AddTown(ctx context.Context, link *entities.PersonTown) (*entities.PersonTown, error)
	ListTowns(ctx context.Context, personID uint) ([]entities.Town, error)
}
