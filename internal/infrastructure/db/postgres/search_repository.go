package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
)

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) repositories.SearchRepository {
	return &SearchRepository{db: db}
}

type groupLocationRow struct {
	Name        string
	GroupType   string
	TownID      uint
	Radius      float64
	TownName    string
	CountryCode string
	Latitude    float64
	Longitude   float64
}

// FindPublicGroupsWithTool runs the candidate half of the geo search:
// public groups offering a matching tool, joined to their town
// coordinates. User input only ever appears as a bind parameter.
func (r *SearchRepository) FindPublicGroupsWithTool(ctx context.Context, fragment string) ([]repositories.GroupLocation, error) {
	pattern := "%" + strings.ToLower(fragment) + "%"

	var rows []groupLocationRow
	err := r.db.WithContext(ctx).
		Table("groups").
		Distinct("groups.name", "groups.group_type", "groups.town_id", "groups.radius",
			"towns.name AS town_name", "towns.country_code", "towns.latitude", "towns.longitude").
		Joins("JOIN tools_groups ON tools_groups.group_name = groups.name").
		Joins("JOIN tools ON tools.id = tools_groups.tool_id").
		Joins("JOIN towns ON towns.id = groups.town_id").
		Where("groups.group_type = ?", string(entities.GroupTypePublic)).
		Where("LOWER(tools.name) LIKE ?", pattern).
		Order("groups.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	locations := make([]repositories.GroupLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, repositories.GroupLocation{
			Group: entities.Group{
				Name:   row.Name,
				Type:   entities.GroupType(row.GroupType),
				TownID: row.TownID,
				Radius: row.Radius,
			},
			Town: entities.Town{
				ID:          row.TownID,
				Name:        row.TownName,
				CountryCode: row.CountryCode,
				Latitude:    row.Latitude,
				Longitude:   row.Longitude,
			},
		})
	}
	return locations, nil
}
