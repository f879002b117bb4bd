package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
)

func TestCreateGroup(t *testing.T) {
	env := newTestEnv(t, 100)
	town := env.createTown(t, "Brussels", 50.85, 4.35)

	result, err := env.groups.Create(context.Background(), &command.CreateGroupCommand{
		Name:   "Woodworkers",
		Type:   "public",
		TownID: town.ID,
		Radius: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Woodworkers", result.Result.Name)
	assert.Equal(t, "public", result.Result.Type)
}

func TestCreateGroupUnknownTown(t *testing.T) {
	env := newTestEnv(t, 100)

	_, err := env.groups.Create(context.Background(), &command.CreateGroupCommand{
		Name:   "Woodworkers",
		Type:   "public",
		TownID: 9999,
		Radius: 10,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCreateGroupInvalidType(t *testing.T) {
	env := newTestEnv(t, 100)
	town := env.createTown(t, "Brussels", 50.85, 4.35)

	_, err := env.groups.Create(context.Background(), &command.CreateGroupCommand{
		Name:   "Woodworkers",
		Type:   "secret",
		TownID: town.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestListGroupsByTypeValidation(t *testing.T) {
	env := newTestEnv(t, 100)

	_, err := env.groups.ListByType(context.Background(), "secret", "", 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestGroupMembershipLifecycle(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	town := env.createTown(t, "Brussels", 50.85, 4.35)
	person := env.register(t, "alice@example.com", "alice")

	_, err := env.groups.Create(ctx, &command.CreateGroupCommand{
		Name: "Woodworkers", Type: "public", TownID: town.ID, Radius: 10,
	})
	require.NoError(t, err)

	_, err = env.groups.AddMember(ctx, &command.AddGroupMemberCommand{
		GroupName:  "Woodworkers",
		PersonID:   person.Result.ID,
		GroupAdmin: true,
	})
	require.NoError(t, err)

	admins, err := env.groups.ListMembers(ctx, "Woodworkers", true)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, person.Result.ID, admins[0].PersonID)

	memberships, err := env.groups.ListMemberships(ctx, person.Result.ID)
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, "Woodworkers", memberships[0].GroupName)

	require.NoError(t, env.groups.RemoveMember(ctx, "Woodworkers", person.Result.ID))

	err = env.groups.RemoveMember(ctx, "Woodworkers", person.Result.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Contains(t, err.Error(), "does not exist in group")
}

func TestAddMemberUnknownGroup(t *testing.T) {
	env := newTestEnv(t, 100)
	person := env.register(t, "alice@example.com", "alice")

	_, err := env.groups.AddMember(context.Background(), &command.AddGroupMemberCommand{
		GroupName: "Nowhere",
		PersonID:  person.Result.ID,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestAddMemberUnknownPerson(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	town := env.createTown(t, "Brussels", 50.85, 4.35)
	_, err := env.groups.Create(ctx, &command.CreateGroupCommand{
		Name: "Woodworkers", Type: "public", TownID: town.ID, Radius: 10,
	})
	require.NoError(t, err)

	_, err = env.groups.AddMember(ctx, &command.AddGroupMemberCommand{
		GroupName: "Woodworkers",
		PersonID:  9999,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestGroupToolAssociation(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	town := env.createTown(t, "Brussels", 50.85, 4.35)
	owner := env.register(t, "owner@example.com", "owner")

	_, err := env.groups.Create(ctx, &command.CreateGroupCommand{
		Name: "Woodworkers", Type: "public", TownID: town.ID, Radius: 10,
	})
	require.NoError(t, err)

	toolResult, err := env.tools.Create(ctx, owner.Result.ID, &command.CreateToolCommand{Name: "Circular Saw"})
	require.NoError(t, err)

	_, err = env.groups.AddTool(ctx, &command.AddGroupToolCommand{
		GroupName: "Woodworkers",
		ToolID:    toolResult.Result.ID,
	})
	require.NoError(t, err)

	groupTools, err := env.groups.ListTools(ctx, "Woodworkers")
	require.NoError(t, err)
	require.Len(t, groupTools, 1)
	assert.Equal(t, "Circular Saw", groupTools[0].Name)

	toolGroups, err := env.tools.ListGroups(ctx, toolResult.Result.ID)
	require.NoError(t, err)
	require.Len(t, toolGroups, 1)
	assert.Equal(t, "Woodworkers", toolGroups[0].Name)

	require.NoError(t, env.groups.RemoveTool(ctx, "Woodworkers", toolResult.Result.ID))

	err = env.groups.RemoveTool(ctx, "Woodworkers", toolResult.Result.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Contains(t, err.Error(), "does not exist in group")
}
