package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) repositories.GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *entities.Group) (*entities.Group, error) {
	groupModel := GroupModel{
		Name:      group.Name,
		GroupType: string(group.Type),
		TownID:    group.TownID,
		Radius:    group.Radius,
	}

	if err := r.db.WithContext(ctx).Create(&groupModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	return group, nil
}

func (r *GroupRepository) FindByName(ctx context.Context, name string) (*entities.Group, error) {
	var groupModel GroupModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&groupModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapGroupToEntity(&groupModel), nil
}

func (r *GroupRepository) List(ctx context.Context) ([]entities.Group, error) {
	var groupModels []GroupModel
	if err := r.db.WithContext(ctx).Order("name").Find(&groupModels).Error; err != nil {
		return nil, err
	}

	return mapGroupsToEntities(groupModels), nil
}

func (r *GroupRepository) ListByType(ctx context.Context, groupType entities.GroupType, filter repositories.GroupFilter) ([]entities.Group, error) {
	query := r.db.WithContext(ctx).
		Where("groups.group_type = ?", string(groupType)).
		Order("groups.name")

	if filter.CountryCode != "" {
		query = query.
			Joins("JOIN towns ON towns.id = groups.town_id").
			Where("towns.country_code = ?", filter.CountryCode)
	} else if filter.TownID != 0 {
		query = query.Where("groups.town_id = ?", filter.TownID)
	}

	var groupModels []GroupModel
	if err := query.Find(&groupModels).Error; err != nil {
		return nil, err
	}

	return mapGroupsToEntities(groupModels), nil
}

func (r *GroupRepository) ListByTool(ctx context.Context, toolID uint) ([]entities.Group, error) {
	var groupModels []GroupModel
	err := r.db.WithContext(ctx).
		Joins("JOIN tools_groups ON tools_groups.group_name = groups.name").
		Where("tools_groups.tool_id = ?", toolID).
		Order("groups.name").
		Find(&groupModels).Error
	if err != nil {
		return nil, err
	}

	return mapGroupsToEntities(groupModels), nil
}

func (r *GroupRepository) AddMember(ctx context.Context, member *entities.GroupMember) (*entities.GroupMember, error) {
	memberModel := GroupMemberModel{
		GroupName:  member.GroupName,
		PersonID:   member.PersonID,
		GroupAdmin: member.GroupAdmin,
	}

	if err := r.db.WithContext(ctx).Create(&memberModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	return member, nil
}

func (r *GroupRepository) ListMembers(ctx context.Context, groupName string, adminsOnly bool) ([]entities.GroupMember, error) {
	query := r.db.WithContext(ctx).Where("group_name = ?", groupName)
	if adminsOnly {
		query = query.Where("group_admin = ?", true)
	}

	var memberModels []GroupMemberModel
	if err := query.Find(&memberModels).Error; err != nil {
		return nil, err
	}

	return mapMembersToEntities(memberModels), nil
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupName string, personID uint) error {
	result := r.db.WithContext(ctx).
		Where("group_name = ? AND person_id = ?", groupName, personID).
		Delete(&GroupMemberModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *GroupRepository) ListMemberships(ctx context.Context, personID uint) ([]entities.GroupMember, error) {
	var memberModels []GroupMemberModel
	if err := r.db.WithContext(ctx).Where("person_id = ?", personID).Find(&memberModels).Error; err != nil {
		return nil, err
	}

	return mapMembersToEntities(memberModels), nil
}

func (r *GroupRepository) AddTool(ctx context.Context, link *entities.ToolGroup) (*entities.ToolGroup, error) {
	linkModel := ToolGroupModel{
		ToolID:    link.ToolID,
		GroupName: link.GroupName,
	}

	if err := r.db.WithContext(ctx).Create(&linkModel).Error; err != nil {
		return nil, translateConflict(err)
	}

	return link, nil
}

func (r *GroupRepository) ListTools(ctx context.Context, groupName string) ([]entities.Tool, error) {
	var toolModels []ToolModel
	err := r.db.WithContext(ctx).
		Joins("JOIN tools_groups ON tools_groups.tool_id = tools.id").
		Where("tools_groups.group_name = ?", groupName).
		Order("tools.name").
		Find(&toolModels).Error
	if err != nil {
		return nil, err
	}

	tools := make([]entities.Tool, 0, len(toolModels))
	for _, m := range toolModels {
		tools = append(tools, entities.Tool{
			ID:          m.ID,
			PersonID:    m.PersonID,
			Name:        m.Name,
			Description: m.Description,
		})
	}
	return tools, nil
}

func (r *GroupRepository) RemoveTool(ctx context.Context, groupName string, toolID uint) error {
	result := r.db.WithContext(ctx).
		Where("group_name = ? AND tool_id = ?", groupName, toolID).
		Delete(&ToolGroupModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func mapGroupToEntity(groupModel *GroupModel) *entities.Group {
	return &entities.Group{
		Name:   groupModel.Name,
		Type:   entities.GroupType(groupModel.GroupType),
		TownID: groupModel.TownID,
		Radius: groupModel.Radius,
	}
}

func mapGroupsToEntities(groupModels []GroupModel) []entities.Group {
	groups := make([]entities.Group, 0, len(groupModels))
	for i := range groupModels {
		groups = append(groups, *mapGroupToEntity(&groupModels[i]))
	}
	return groups
}

func mapMembersToEntities(memberModels []GroupMemberModel) []entities.GroupMember {
	members := make([]entities.GroupMember, 0, len(memberModels))
	for _, m := range memberModels {
		members = append(members, entities.GroupMember{
			GroupName:  m.GroupName,
			PersonID:   m.PersonID,
			GroupAdmin: m.GroupAdmin,
		})
	}
	return members
}
