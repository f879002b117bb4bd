package services

import (
	"context"
	"errors"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/common"
	"toolbox-api/internal/application/interfaces"
	"toolbox-api/internal/application/mapper"
	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

type GroupService struct {
	groupRepo  repositories.GroupRepository
	townRepo   repositories.TownRepository
	personRepo repositories.PersonRepository
	toolRepo   repositories.ToolRepository
}

func NewGroupService(
	groupRepo repositories.GroupRepository,
	townRepo repositories.TownRepository,
	personRepo repositories.PersonRepository,
	toolRepo repositories.ToolRepository,
) interfaces.GroupService {
	return &GroupService{
		groupRepo:  groupRepo,
		townRepo:   townRepo,
		personRepo: personRepo,
		toolRepo:   toolRepo,
	}
}

func (s *GroupService) Create(ctx context.Context, cmd *command.CreateGroupCommand) (*command.CreateGroupCommandResult, error) {
	group := entities.NewGroup(cmd.Name, entities.GroupType(cmd.Type), cmd.TownID, cmd.Radius)
	if err := group.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	town, err := s.townRepo.FindByID(ctx, cmd.TownID)
	if err != nil {
		return nil, err
	}
	if town == nil {
		return nil, apperrors.NotFound("no town with id: %d", cmd.TownID)
	}

	createdGroup, err := s.groupRepo.Create(ctx, group)
	if err != nil {
		return nil, err
	}

	return &command.CreateGroupCommandResult{
		Result: mapper.NewGroupResultFromEntity(createdGroup),
	}, nil
}

func (s *GroupService) List(ctx context.Context) ([]*common.GroupResult, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.NewGroupResultsFromEntities(groups), nil
}

func (s *GroupService) ListByType(ctx context.Context, groupType, countryCode string, townID uint) ([]*common.GroupResult, error) {
	parsedType := entities.GroupType(groupType)
	if parsedType != entities.GroupTypePublic && parsedType != entities.GroupTypePrivate {
		return nil, apperrors.Validation("group type must be public or private")
	}

	groups, err := s.groupRepo.ListByType(ctx, parsedType, repositories.GroupFilter{
		CountryCode: countryCode,
		TownID:      townID,
	})
	if err != nil {
		return nil, err
	}
	return mapper.NewGroupResultsFromEntities(groups), nil
}

func (s *GroupService) AddMember(ctx context.Context, cmd *command.AddGroupMemberCommand) (*command.AddGroupMemberCommandResult, error) {
	member := &entities.GroupMember{
		GroupName:  cmd.GroupName,
		PersonID:   cmd.PersonID,
		GroupAdmin: cmd.GroupAdmin,
	}
	if err := member.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	group, err := s.groupRepo.FindByName(ctx, cmd.GroupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NotFound("no group named: %s", cmd.GroupName)
	}

	person, err := s.personRepo.FindByID(ctx, cmd.PersonID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperrors.NotFound("no person with id: %d", cmd.PersonID)
	}

	createdMember, err := s.groupRepo.AddMember(ctx, member)
	if err != nil {
		return nil, err
	}

	return &command.AddGroupMemberCommandResult{
		Result: mapper.NewGroupMemberResultFromEntity(createdMember),
	}, nil
}

func (s *GroupService) ListMembers(ctx context.Context, groupName string, adminsOnly bool) ([]*common.GroupMemberResult, error) {
	members, err := s.groupRepo.ListMembers(ctx, groupName, adminsOnly)
	if err != nil {
		return nil, err
	}
	return mapper.NewGroupMemberResultsFromEntities(members), nil
}

func (s *GroupService) RemoveMember(ctx context.Context, groupName string, personID uint) error {
	err := s.groupRepo.RemoveMember(ctx, groupName, personID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("The member with id: %d does not exist in group: %s", personID, groupName)
	}
	return err
}

func (s *GroupService) ListMemberships(ctx context.Context, personID uint) ([]*common.GroupMemberResult, error) {
	memberships, err := s.groupRepo.ListMemberships(ctx, personID)
	if err != nil {
		return nil, err
	}
	return mapper.NewGroupMemberResultsFromEntities(memberships), nil
}

func (s *GroupService) AddTool(ctx context.Context, cmd *command.AddGroupToolCommand) (*command.AddGroupToolCommandResult, error) {
	link := &entities.ToolGroup{
		ToolID:    cmd.ToolID,
		GroupName: cmd.GroupName,
	}
	if err := link.Validate(); err != nil {
		return nil, apperrors.Validation("%s", err.Error())
	}

	group, err := s.groupRepo.FindByName(ctx, cmd.GroupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.NotFound("no group named: %s", cmd.GroupName)
	}

	tool, err := s.toolRepo.FindByID(ctx, cmd.ToolID)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, apperrors.NotFound("no tool with id: %d", cmd.ToolID)
	}

	if _, err := s.groupRepo.AddTool(ctx, link); err != nil {
		return nil, err
	}

	return &command.AddGroupToolCommandResult{
		Result: mapper.NewToolResultFromEntity(tool),
	}, nil
}

func (s *GroupService) ListTools(ctx context.Context, groupName string) ([]*common.ToolResult, error) {
	tools, err := s.groupRepo.ListTools(ctx, groupName)
	if err != nil {
		return nil, err
	}
	return mapper.NewToolResultsFromEntities(tools), nil
}

func (s *GroupService) RemoveTool(ctx context.Context, groupName string, toolID uint) error {
	err := s.groupRepo.RemoveTool(ctx, groupName, toolID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("The tool with id: %d does not exist in group: %s", toolID, groupName)
	}
	return err
}
