package services

import (
	"context"

	"toolbox-api/internal/application/common"
	"toolbox-api/internal/application/interfaces"
	"toolbox-api/internal/application/mapper"
	"toolbox-api/internal/application/query"
	"toolbox-api/internal/domain/repositories"
	"toolbox-api/internal/geo"
)

// SearchService answers "which public groups within reach of a given
// place offer a tool matching a given text fragment?".
type SearchService struct {
	townRepo   repositories.TownRepository
	searchRepo repositories.SearchRepository
}

func NewSearchService(townRepo repositories.TownRepository, searchRepo repositories.SearchRepository) interfaces.SearchService {
	return &SearchService{
		townRepo:   townRepo,
		searchRepo: searchRepo,
	}
}

// Search matches `what` against tool names and `where` against town
// names, both as case-insensitive substrings. When several towns match
// `where`, the first one (lowest id) anchors the search; this mirrors
// the platform's historical behavior. An unknown place yields an empty
// result, not an error.
func (s *SearchService) Search(ctx context.Context, what, where string) (*query.SearchQueryResult, error) {
	towns, err := s.townRepo.FindByNameLike(ctx, where)
	if err != nil {
		return nil, err
	}
	if len(towns) == 0 {
		return &query.SearchQueryResult{Result: []*common.SearchMatch{}}, nil
	}
	searchTown := towns[0]

	candidates, err := s.searchRepo.FindPublicGroupsWithTool(ctx, what)
	if err != nil {
		return nil, err
	}

	matches := make([]*common.SearchMatch, 0, len(candidates))
	for _, candidate := range candidates {
		distance := geo.Distance(
			searchTown.Latitude, searchTown.Longitude,
			candidate.Town.Latitude, candidate.Town.Longitude,
		)
		if distance <= candidate.Group.Radius {
			matches = append(matches, &common.SearchMatch{
				Group:      *mapper.NewGroupResultFromEntity(&candidate.Group),
				Town:       *mapper.NewTownResultFromEntity(&candidate.Town),
				DistanceKm: distance,
			})
		}
	}

	return &query.SearchQueryResult{Result: matches}, nil
}
