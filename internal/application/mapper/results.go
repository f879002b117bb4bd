package mapper

import (
	"toolbox-api/internal/application/common"
	"toolbox-api/internal/domain/entities"
)

func NewPersonResultFromEntity(person *entities.Person) *common.PersonResult {
	return &common.PersonResult{
		ID:        person.ID,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
		Email:     person.Email,
		Alias:     person.Alias,
		FirstName: person.FirstName,
		LastName:  person.LastName,
		IsAdmin:   person.IsAdmin,
	}
}

func NewPersonResultsFromEntities(persons []entities.Person) []*common.PersonResult {
	results := make([]*common.PersonResult, 0, len(persons))
	for i := range persons {
		results = append(results, NewPersonResultFromEntity(&persons[i]))
	}
	return results
}

func NewCountryResultFromEntity(country *entities.Country) *common.CountryResult {
	return &common.CountryResult{Code: country.Code, Name: country.Name}
}

func NewTownResultFromEntity(town *entities.Town) *common.TownResult {
	return &common.TownResult{
		ID:          town.ID,
		Name:        town.Name,
		CountryCode: town.CountryCode,
		Latitude:    town.Latitude,
		Longitude:   town.Longitude,
	}
}

func NewTownResultsFromEntities(towns []entities.Town) []*common.TownResult {
	results := make([]*common.TownResult, 0, len(towns))
	for i := range towns {
		results = append(results, NewTownResultFromEntity(&towns[i]))
	}
	return results
}

func NewGroupResultFromEntity(group *entities.Group) *common.GroupResult {
	return &common.GroupResult{
		Name:   group.Name,
		Type:   string(group.Type),
		TownID: group.TownID,
		Radius: group.Radius,
	}
}

func NewGroupResultsFromEntities(groups []entities.Group) []*common.GroupResult {
	results := make([]*common.GroupResult, 0, len(groups))
	for i := range groups {
		results = append(results, NewGroupResultFromEntity(&groups[i]))
	}
	return results
}

func NewGroupMemberResultFromEntity(member *entities.GroupMember) *common.GroupMemberResult {
	return &common.GroupMemberResult{
		GroupName:  member.GroupName,
		PersonID:   member.PersonID,
		GroupAdmin: member.GroupAdmin,
	}
}

func NewGroupMemberResultsFromEntities(members []entities.GroupMember) []*common.GroupMemberResult {
	results := make([]*common.GroupMemberResult, 0, len(members))
	for i := range members {
		results = append(results, NewGroupMemberResultFromEntity(&members[i]))
	}
	return results
}

func NewToolResultFromEntity(tool *entities.Tool) *common.ToolResult {
	return &common.ToolResult{
		ID:          tool.ID,
		PersonID:    tool.PersonID,
		Name:        tool.Name,
		Description: tool.Description,
	}
}

func NewToolResultsFromEntities(tools []entities.Tool) []*common.ToolResult {
	results := make([]*common.ToolResult, 0, len(tools))
	for i := range tools {
		results = append(results, NewToolResultFromEntity(&tools[i]))
	}
	return results
}

func NewToolImageResultFromEntity(image *entities.ToolImage) *common.ToolImageResult {
	return &common.ToolImageResult{ID: image.ID, ToolID: image.ToolID, URL: image.URL}
}

func NewToolReviewResultFromEntity(review *entities.ToolReview) *common.ToolReviewResult {
	return &common.ToolReviewResult{
		ID:       review.ID,
		ToolID:   review.ToolID,
		PersonID: review.PersonID,
		Rating:   review.Rating,
		Comment:  review.Comment,
	}
}

func NewPersonReviewResultFromEntity(review *entities.PersonReview) *common.PersonReviewResult {
	return &common.PersonReviewResult{
		ID:         review.ID,
		PersonID:   review.PersonID,
		ReviewerID: review.ReviewerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
	}
}
