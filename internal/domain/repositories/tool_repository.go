package repositories

import (
	"context"

	"toolbox-api/internal/domain/entities"
)

type ToolRepository interface {
	Create(ctx context.Context, tool *entities.Tool) (*entities.Tool, error)
	FindByID(ctx context.Context, id uint) (*entities.Tool, error)
	List(ctx context.Context) ([]entities.Tool, error)
	ListByPerson(ctx context.Context, personID uint) ([]entities.Tool, error)
	AddImage(ctx context.Context, image *entities.ToolImage) (*entities.ToolImage, error)
	ListImages(ctx context.Context, toolID uint) ([]entities.ToolImage, error)
	AddReview(ctx context.Context, review *entities.ToolReview) (*entities.ToolReview, error)
	ListReviews(ctx context.Context, toolID uint) ([]entities.ToolReview, error)
}
