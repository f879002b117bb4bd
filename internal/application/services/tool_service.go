package services

import (
	"context"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/common"
	"toolbox-api/internal/application/interfaces"
	"toolbox-api/internal/application/mapper"
	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

type ToolService struct {
	toolRepo   repositories.ToolRepository
	groupRepo  repositories.GroupRepository
	personRepo repositories.PersonRepository
}

func NewToolService(
	toolRepo repositories.ToolRepository,
	groupRepo repositories.GroupRepository,
	personRepo repositories.PersonRepository,
) interfaces.ToolService {
	return &ToolService{
		toolRepo:   toolRepo,
		groupRepo:  groupRepo,
		personRepo: personRepo,
	}
}

func (s *ToolService) Create(ctx context.Context, personID uint, cmd *command.CreateToolCommand) (*command.CreateToolCommandResult, error) {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.NotFound("no person with id: %d", personID)
	}

	tool := entities.NewTool(personID, cmd.Name, cmd.Description)
	if err := tool.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	createdTool, err := s.toolRepo.Create(ctx, tool)
	if err != nil {
		return nil, err
	}

	return &command.CreateToolCommandResult{
		Result: mapper.NewToolResultFromEntity(createdTool),
	}, nil
}

func (s *ToolService) List(ctx context.Context) ([]*common.ToolResult, error) {
	tools, err := s.toolRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.NewToolResultsFromEntities(tools), nil
}

func (s *ToolService) ListByPerson(ctx context.Context, personID uint) ([]*common.ToolResult, error) {
	tools, err := s.toolRepo.ListByPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return mapper.NewToolResultsFromEntities(tools), nil
}

func (s *ToolService) ListGroups(ctx context.Context, toolID uint) ([]*common.GroupResult, error) {
	groups, err := s.groupRepo.ListByTool(ctx, toolID)
	if err != nil {
		return nil, err
	}
	return mapper.NewGroupResultsFromEntities(groups), nil
}

func (s *ToolService) AddImage(ctx context.Context, toolID uint, cmd *command.AddToolImageCommand) (*command.AddToolImageCommandResult, error) {
	if err := s.requireTool(ctx, toolID); err != nil {
		return nil, err
	}

	image := &entities.ToolImage{ToolID: toolID, URL: cmd.URL}
	if err := image.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	createdImage, err := s.toolRepo.AddImage(ctx, image)
	if err != nil {
		return nil, err
	}

	return &command.AddToolImageCommandResult{
		Result: mapper.NewToolImageResultFromEntity(createdImage),
	}, nil
}

func (s *ToolService) ListImages(ctx context.Context, toolID uint) ([]*common.ToolImageResult, error) {
	images, err := s.toolRepo.ListImages(ctx, toolID)
	if err != nil {
		return nil, err
	}

	results := make([]*common.ToolImageResult, 0, len(images))
	for i := range images {
		results = append(results, mapper.NewToolImageResultFromEntity(&images[i]))
	}
	return results, nil
}

func (s *ToolService) AddReview(ctx context.Context, toolID uint, cmd *command.AddToolReviewCommand) (*command.AddToolReviewCommandResult, error) {
	if err := s.requireTool(ctx, toolID); err != nil {
		return nil, err
	}

	review := &entities.ToolReview{
		ToolID:   toolID,
		PersonID: cmd.PersonID,
		Rating:   cmd.Rating,
		Comment:  cmd.Comment,
	}
	if err := review.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	createdReview, err := s.toolRepo.AddReview(ctx, review)
	if err != nil {
		return nil, err
	}

	return &command.AddToolReviewCommandResult{
		Result: mapper.NewToolReviewResultFromEntity(createdReview),
	}, nil
}

func (s *ToolService) ListReviews(ctx context.Context, toolID uint) ([]*common.ToolReviewResult, error) {
	reviews, err := s.toolRepo.ListReviews(ctx, toolID)
	if err != nil {
		return nil, err
	}

	results := make([]*common.ToolReviewResult, 0, len(reviews))
	for i := range reviews {
		results = append(results, mapper.NewToolReviewResultFromEntity(&reviews[i]))
	}
	return results, nil
}

func (s *ToolService) requireTool(ctx context.Context, toolID uint) error {
	tool, err := s.toolRepo.FindByID(ctx, toolID)
	if err != nil {
		return err
	}
	if tool == nil {
		return apperrors.NotFound("no tool with id: %d", toolID)
	}
	return nil
}
