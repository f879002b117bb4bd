package repositories

import (
	"context"

	"toolbox-api/internal/domain/entities"
)

// GroupFilter narrows group listings; zero values mean no filtering.
type GroupFilter struct {
	CountryCode string
	TownID      uint
}

type GroupRepository interface {
	Create(ctx context.Context, group *entities.Group) (*entities.Group, error)
	FindByName(ctx context.Context, name string) (*entities.Group, error)
	List(ctx context.Context) ([]entities.Group, error)
	ListByType(ctx context.Context, groupType entities.GroupType, filter GroupFilter) ([]entities.Group, error)
	ListByTool(ctx context.Context, toolID uint) ([]entities.Group, error)

	AddMember(ctx context.Context, member *entities.GroupMember) (*entities.GroupMember, error)
	ListMembers(ctx context.Context, groupName string, adminsOnly bool) ([]entities.GroupMember, error)
	RemoveMember(ctx context.Context, groupName string, personID uint) error
	ListMemberships(ctx context.Context, personID uint) ([]entities.GroupMember, error)

	AddTool(ctx context.Context, link *entities.ToolGroup) (*entities.ToolGroup, error)
	ListTools(ctx context.Context, groupName string) ([]entities.Tool, error)
	RemoveTool(ctx context.Context, groupName string, toolID uint) error
}
