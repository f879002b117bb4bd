package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

type ToolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) repositories.ToolRepository {
	return &ToolRepository{db: db}
}

func (r *ToolRepository) Create(ctx context.Context, tool *entities.Tool) (*entities.Tool, error) {
	toolModel := ToolModel{
		PersonID:    tool.PersonID,
		Name:        tool.Name,
		Description: tool.Description,
	}

	if err := r.db.WithContext(ctx).Create(&toolModel).Error; err != nil {
		return nil, err
	}

	tool.ID = toolModel.ID
	return tool, nil
}

func (r *ToolRepository) FindByID(ctx context.Context, id uint) (*entities.Tool, error) {
	var toolModel ToolModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&toolModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToolToEntity(&toolModel), nil
}

func (r *ToolRepository) List(ctx context.Context) ([]entities.Tool, error) {
	var toolModels []ToolModel
	if err := r.db.WithContext(ctx).Order("name").Find(&toolModels).Error; err != nil {
		return nil, err
	}

	return mapToolsToEntities(toolModels), nil
}

func (r *ToolRepository) ListByPerson(ctx context.Context, personID uint) ([]entities.Tool, error) {
	var toolModels []ToolModel
	if err := r.db.WithContext(ctx).Where("person_id = ?", personID).Order("name").Find(&toolModels).Error; err != nil {
		return nil, err
	}

	return mapToolsToEntities(toolModels), nil
}

func (r *ToolRepository) AddImage(ctx context.Context, image *entities.ToolImage) (*entities.ToolImage, error) {
	imageModel := ToolImageModel{
		ToolID: image.ToolID,
		URL:    image.URL,
	}

	if err := r.db.WithContext(ctx).Create(&imageModel).Error; err != nil {
		return nil, err
	}

	image.ID = imageModel.ID
	return image, nil
}

func (r *ToolRepository) ListImages(ctx context.Context, toolID uint) ([]entities.ToolImage, error) {
	var imageModels []ToolImageModel
	if err := r.db.WithContext(ctx).Where("tool_id = ?", toolID).Find(&imageModels).Error; err != nil {
		return nil, err
	}

	images := make([]entities.ToolImage, 0, len(imageModels))
	for _, m := range imageModels {
		images = append(images, entities.ToolImage{ID: m.ID, ToolID: m.ToolID, URL: m.URL})
	}
	return images, nil
}

func (r *ToolRepository) AddReview(ctx context.Context, review *entities.ToolReview) (*entities.ToolReview, error) {
	reviewModel := ToolReviewModel{
		ToolID:   review.ToolID,
		PersonID: review.PersonID,
		Rating:   review.Rating,
		Comment:  review.Comment,
	}

	if err := r.db.WithContext(ctx).Create(&reviewModel).Error; err != nil {
		return nil, err
	}

	review.ID = reviewModel.ID
	return review, nil
}

func (r *ToolRepository) ListReviews(ctx context.Context, toolID uint) ([]entities.ToolReview, error) {
	var reviewModels []ToolReviewModel
	if err := r.db.WithContext(ctx).Where("tool_id = ?", toolID).Find(&reviewModels).Error; err != nil {
		return nil, err
	}

	reviews := make([]entities.ToolReview, 0, len(reviewModels))
	for _, m := range reviewModels {
		reviews = append(reviews, entities.ToolReview{
			ID:       m.ID,
			ToolID:   m.ToolID,
			PersonID: m.PersonID,
			Rating:   m.Rating,
			Comment:  m.Comment,
		})
	}
	return reviews, nil
}

func mapToolToEntity(toolModel *ToolModel) *entities.Tool {
	return &entities.Tool{
		ID:          toolModel.ID,
		PersonID:    toolModel.PersonID,
		Name:        toolModel.Name,
		Description: toolModel.Description,
	}
}

func mapToolsToEntities(toolModels []ToolModel) []entities.Tool {
	tools := make([]entities.Tool, 0, len(toolModels))
	for i := range toolModels {
		tools = append(tools, *mapToolToEntity(&toolModels[i]))
	}
	return tools
}
