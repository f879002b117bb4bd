package services

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/common"
	"toolbox-api/internal/application/interfaces"
	"toolbox-api/internal/application/mapper"
	"toolbox-api/internal/application/query"
	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
	"toolbox-api/internal/infrastructure"
)

const profileCacheTTL = 24 * time.Hour

// loginFailedMessage is deliberately identical for unknown emails and
// wrong passwords so a caller cannot probe which accounts exist.
const loginFailedMessage = "no account matching this email and password"

type AccountService struct {
	personRepo   repositories.PersonRepository
	townRepo     repositories.TownRepository
	tokenService *infrastructure.TokenService
	redisService *infrastructure.RedisService
	mailer       *infrastructure.Mailer
	rateLimiter  *infrastructure.RateLimiter
}

func NewAccountService(
	personRepo repositories.PersonRepository,
	townRepo repositories.TownRepository,
	tokenService *infrastructure.TokenService,
	redisService *infrastructure.RedisService,
	mailer *infrastructure.Mailer,
	rateLimiter *infrastructure.RateLimiter,
) interfaces.AccountService {
	return &AccountService{
		personRepo:   personRepo,
		townRepo:     townRepo,
		tokenService: tokenService,
		redisService: redisService,
		mailer:       mailer,
		rateLimiter:  rateLimiter,
	}
}

func (s *AccountService) Register(ctx context.Context, cmd *command.RegisterPersonCommand) (*command.RegisterPersonCommandResult, error) {
	newPerson := entities.NewPerson(cmd.Email, cmd.Alias, cmd.FirstName, cmd.LastName, cmd.Password)
	validatedPerson, err := entities.NewValidatedPerson(newPerson)
	if err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	// Uniqueness of email and alias is enforced by the store; the
	// repository reports which constraint fired as a Conflict.
	createdPerson, err := s.personRepo.Create(ctx, validatedPerson)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.Issue(createdPerson.ID)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendWelcome(context.Background(), createdPerson.Email, createdPerson.Alias); err != nil {
			log.Printf("Failed to send welcome email: %v", err)
		}
	}()

	return &command.RegisterPersonCommandResult{
		Result: mapper.NewPersonResultFromEntity(createdPerson),
		Token:  token,
	}, nil
}

func (s *AccountService) Login(ctx context.Context, cmd *command.LoginCommand) (*command.LoginCommandResult, error) {
	// Stored emails are lowercased at registration; normalize the same
	// way so mixed-case input matches the account it registered.
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if !s.rateLimiter.Allow(email) {
		return nil, apperrors.RateLimited("too many login attempts, please try again later")
	}

	person, err := s.personRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.NotFound(loginFailedMessage)
	}

	if err := person.CheckPassword(cmd.Password); err != nil {
		return nil, apperrors.NotFound(loginFailedMessage)
	}

	token, err := s.tokenService.Issue(person.ID)
	if err != nil {
		return nil, err
	}

	// Warm the profile cache off the request path
	go func() {
		if err := s.redisService.SetProfile(context.Background(), strconv.FormatUint(uint64(person.ID), 10), person, profileCacheTTL); err != nil {
			log.Printf("Failed to cache profile: %v", err)
		}
	}()

	return &command.LoginCommandResult{
		Token:  token,
		Person: mapper.NewPersonResultFromEntity(person),
	}, nil
}

func (s *AccountService) LoginByToken(ctx context.Context, token string) (*query.PersonQueryResult, error) {
	personID, err := s.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	return s.GetPerson(ctx, personID)
}

func (s *AccountService) GetPerson(ctx context.Context, id uint) (*query.PersonQueryResult, error) {
	key := strconv.FormatUint(uint64(id), 10)

	cachedPerson, err := s.redisService.GetProfile(ctx, key)
	if err == nil && cachedPerson != nil {
		cachedPerson.Password = ""
		return &query.PersonQueryResult{
			Result: mapper.NewPersonResultFromEntity(cachedPerson),
		}, nil
	}
	// Cache miss or Redis unavailable, fall through to the database

	person, err := s.personRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.NotFound("no person with id: %d", id)
	}

	if err := s.redisService.SetProfile(ctx, key, person, profileCacheTTL); err != nil {
		log.Printf("Failed to cache profile: %v", err)
	}

	return &query.PersonQueryResult{
		Result: mapper.NewPersonResultFromEntity(person),
	}, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, personID uint, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.NotFound("no person with id: %d", personID)
	}

	validatedPerson, err := entities.NewValidatedPerson(person)
	if err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}
	if err := validatedPerson.UpdateProfile(cmd.FirstName, cmd.LastName); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	updatedPerson, err := s.personRepo.Update(ctx, validatedPerson)
	if err != nil {
		return nil, err
	}

	// Drop the cached profile so the next read sees the new names
	key := strconv.FormatUint(uint64(personID), 10)
	if err := s.redisService.DeleteProfile(ctx, key); err != nil {
		log.Printf("Failed to invalidate cached profile: %v", err)
	}

	return &command.UpdateProfileCommandResult{
		Result: mapper.NewPersonResultFromEntity(updatedPerson),
	}, nil
}

func (s *AccountService) ListPersons(ctx context.Context) ([]*common.PersonResult, error) {
	persons, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.NewPersonResultsFromEntities(persons), nil
}

func (s *AccountService) ListAliases(ctx context.Context) ([]string, error) {
	return s.personRepo.ListAliases(ctx)
}

func (s *AccountService) AddReview(ctx context.Context, personID uint, cmd *command.AddPersonReviewCommand) (*command.AddPersonReviewCommandResult, error) {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.NotFound("no person with id: %d", personID)
	}

	review := &entities.PersonReview{
		PersonID:   personID,
		ReviewerID: cmd.ReviewerID,
		Rating:     cmd.Rating,
		Comment:    cmd.Comment,
	}
	if err := review.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	createdReview, err := s.personRepo.AddReview(ctx, review)
	if err != nil {
		return nil, err
	}

	return &command.AddPersonReviewCommandResult{
		Result: mapper.NewPersonReviewResultFromEntity(createdReview),
	}, nil
}

func (s *AccountService) ListReviews(ctx context.Context, personID uint) ([]*common.PersonReviewResult, error) {
	reviews, err := s.personRepo.ListReviews(ctx, personID)
	if err != nil {
		return nil, err
	}

	results := make([]*common.PersonReviewResult, 0, len(reviews))
	for i := range reviews {
		results = append(results, mapper.NewPersonReviewResultFromEntity(&reviews[i]))
	}
	return results, nil
}

func (s *AccountService) AddTown(ctx context.Context, personID uint, cmd *command.AddPersonTownCommand) (*common.TownResult, error) {
	town, err := s.townRepo.FindByID(ctx, cmd.TownID)
	if err != nil {
		return nil, err
	}
	if town == nil {
		return nil, apperrors.NotFound("no town with id: %d", cmd.TownID)
	}

	if _, err := s.personRepo.AddTown(ctx, &entities.PersonTown{PersonID: personID, TownID: cmd.TownID}); err != nil {
		return nil, err
	}

	return mapper.NewTownResultFromEntity(town), nil
}

func (s *AccountService) ListTowns(ctx context.Context, personID uint) ([]*common.TownResult, error) {
	towns, err := s.personRepo.ListTowns(ctx, personID)
	if err != nil {
		return nil, err
	}
	return mapper.NewTownResultsFromEntities(towns), nil
}
