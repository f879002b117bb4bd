// Package common holds the serializer shapes returned to API clients.
// Field names follow the platform's historical naming (id_person,
// groupName, countryCode).
package common

import "time"

type PersonResult struct {
	ID        uint      `json:"id_person"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `json:"email"`
	Alias     string    `json:"alias"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	IsAdmin   bool      `json:"isAdmin"`
}

type CountryResult struct {
	Code string `json:"countryCode"`
	Name string `json:"name"`
}

type TownResult struct {
	ID          uint    `json:"id_town"`
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type GroupResult struct {
	Name   string  `json:"groupName"`
	Type   string  `json:"groupType"`
	TownID uint    `json:"id_town"`
	Radius float64 `json:"radius"`
}

type GroupMemberResult struct {
	GroupName  string `json:"groupName"`
	PersonID   uint   `json:"id_person"`
	GroupAdmin bool   `json:"groupAdmin"`
}

type ToolResult struct {
	ID          uint   `json:"id_tool"`
	PersonID    uint   `json:"id_person"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ToolImageResult struct {
	ID     uint   `json:"id_image"`
	ToolID uint   `json:"id_tool"`
	URL    string `json:"url"`
}

type ToolReviewResult struct {
	ID       uint   `json:"id_review"`
	ToolID   uint   `json:"id_tool"`
	PersonID uint   `json:"id_person"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type PersonReviewResult struct {
	ID         uint   `json:"id_review"`
	PersonID   uint   `json:"id_person"`
	ReviewerID uint   `json:"id_reviewer"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// SearchMatch is one group within reach of the searched town.
type SearchMatch struct {
	Group      GroupResult `json:"group"`
	Town       TownResult  `json:"town"`
	DistanceKm float64     `json:"distance_km"`
}
