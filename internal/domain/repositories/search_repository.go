package repositories

import (
	"context"

	"toolbox-api/internal/domain/entities"
)

// GroupLocation is a public group joined with the town it is anchored to.
type GroupLocation struct {
	Group entities.Group
	Town  entities.Town
}

type SearchRepository interface {
	// FindPublicGroupsWithTool returns every public group offering at
	// least one tool whose name contains the fragment,
	// case-insensitively, with the group's town coordinates attached.
	// Ordered by group name.
	FindPublicGroupsWithTool(ctx context.Context, fragment string) ([]GroupLocation, error)
}
