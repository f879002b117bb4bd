package interfaces

import (
	"context"

	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/common"
	"toolbox-api/internal/application/query"
)

type AccountService interface {
	Register(ctx context.Context, cmd *command.RegisterPersonCommand) (*command.RegisterPersonCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginCommand) (*command.LoginCommandResult, error)
	LoginByToken(ctx context.Context, token string) (*query.PersonQueryResult, error)
	GetPerson(ctx context.Context, id uint) (*query.PersonQueryResult, error)
	UpdateProfile(ctx context.Context, personID uint, cmd *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
	ListPersons(ctx context.Context) ([]*common.PersonResult, error)
	ListAliases(ctx context.Context) ([]string, error)
	AddReview(ctx context.Context, personID uint, cmd *command.AddPersonReviewCommand) (*command.AddPersonReviewCommandResult, error)
	ListReviews(ctx context.Context, personID uint) ([]*common.PersonReviewResult, error)
	AddTown(ctx context.Context, personID uint, cmd *command.AddPersonTownCommand) (*common.TownResult, error)
	ListTowns(ctx context.Context, personID uint) ([]*common.TownResult, error)
}

type SearchService interface {
	Search(ctx context.Context, what, where string) (*query.SearchQueryResult, error)
}

type GroupService interface {
	Create(ctx context.Context, cmd *command.CreateGroupCommand) (*command.CreateGroupCommandResult, error)
	List(ctx context.Context) ([]*common.GroupResult, error)
	ListByType(ctx context.Context, groupType, countryCode string, townID uint) ([]*common.GroupResult, error)
	AddMember(ctx context.Context, cmd *command.AddGroupMemberCommand) (*command.AddGroupMemberCommandResult, error)
	ListMembers(ctx context.Context, groupName string, adminsOnly bool) ([]*common.GroupMemberResult, error)
	RemoveMember(ctx context.Context, groupName string, personID uint) error
	ListMemberships(ctx context.Context, personID uint) ([]*common.GroupMemberResult, error)
	AddTool(ctx context.Context, cmd *command.AddGroupToolCommand) (*command.AddGroupToolCommandResult, error)
	ListTools(ctx context.Context, groupName string) ([]*common.ToolResult, error)
	RemoveTool(ctx context.Context, groupName string, toolID uint) error
}

type ToolService interface {
	Create(ctx context.Context, personID uint, cmd *command.CreateToolCommand) (*command.CreateToolCommandResult, error)
	List(ctx context.Context) ([]*common.ToolResult, error)
	ListByPerson(ctx context.Context, personID uint) ([]*common.ToolResult, error)
	ListGroups(ctx context.Context, toolID uint) ([]*common.GroupResult, error)
	AddImage(ctx context.Context, toolID uint, cmd *command.AddToolImageCommand) (*command.AddToolImageCommandResult, error)
	ListImages(ctx context.Context, toolID uint) ([]*common.ToolImageResult, error)
	AddReview(ctx context.Context, toolID uint, cmd *command.AddToolReviewCommand) (*command.AddToolReviewCommandResult, error)
	ListReviews(ctx context.Context, toolID uint) ([]*common.ToolReviewResult, error)
}

type CatalogService interface {
	CreateTown(ctx context.Context, cmd *command.CreateTownCommand) (*command.CreateTownCommandResult, error)
	ListTowns(ctx context.Context, countryCode string) ([]*common.TownResult, error)
	CreateCountry(ctx context.Context, cmd *command.CreateCountryCommand) (*command.CreateCountryCommandResult, error)
	ListCountries(ctx context.Context) ([]*common.CountryResult, error)
}
