package postgres

import (
	"time"

	"gorm.io/gorm"
)

type PersonModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex:uniq_persons_email;not null"`
	Alias     string `gorm:"uniqueIndex:uniq_persons_alias;not null"`
	FirstName string
	LastName  string
	Password  string `gorm:"not null"`
	IsAdmin   bool   `gorm:"default:false"`
}

func (PersonModel) TableName() string {
	return "persons"
}

type CountryModel struct {
	Code string `gorm:"primaryKey;size:2"`
	Name string `gorm:"not null"`
}

func (CountryModel) TableName() string {
	return "countries"
}

type TownModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"index;not null"`
	CountryCode string `gorm:"size:2;not null"`
	Latitude    float64
	Longitude   float64
}

func (TownModel) TableName() string {
	return "towns"
}

type GroupModel struct {
	Name      string `gorm:"primaryKey"`
	GroupType string `gorm:"not null"`
	TownID    uint   `gorm:"not null"`
	Radius    float64
}

func (GroupModel) TableName() string {
	return "groups"
}

type GroupMemberModel struct {
	GroupName  string `gorm:"primaryKey"`
	PersonID   uint   `gorm:"primaryKey"`
	GroupAdmin bool   `gorm:"default:false"`
}

func (GroupMemberModel) TableName() string {
	return "group_members"
}

type ToolModel struct {
	ID          uint   `gorm:"primaryKey"`
	PersonID    uint   `gorm:"index;not null"`
	Name        string `gorm:"index;not null"`
	Description string
}

func (ToolModel) TableName() string {
	return "tools"
}

type ToolGroupModel struct {
	ToolID    uint   `gorm:"primaryKey"`
	GroupName string `gorm:"primaryKey"`
}

func (ToolGroupModel) TableName() string {
	return "tools_groups"
}

type ToolImageModel struct {
	ID     uint `gorm:"primaryKey"`
	ToolID uint `gorm:"index;not null"`
	URL    string
}

func (ToolImageModel) TableName() string {
	return "tool_images"
}

type ToolReviewModel struct {
	ID       uint `gorm:"primaryKey"`
	ToolID   uint `gorm:"index;not null"`
	PersonID uint `gorm:"not null"`
	Rating   int
	Comment  string
}

func (ToolReviewModel) TableName() string {
	return "tool_reviews"
}

type PersonReviewModel struct {
	ID         uint `gorm:"primaryKey"`
	PersonID   uint `gorm:"index;not null"`
	ReviewerID uint `gorm:"not null"`
	Rating     int
	Comment    string
}

func (PersonReviewModel) TableName() string {
	return "person_reviews"
}

type PersonTownModel struct {
	PersonID uint `gorm:"primaryKey"`
	TownID   uint `gorm:"primaryKey"`
}

func (PersonTownModel) TableName() string {
	return "persons_towns"
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&PersonModel{},
		&CountryModel{},
		&TownModel{},
		&GroupModel{},
		&GroupMemberModel{},
		&ToolModel{},
		&ToolGroupModel{},
		&ToolImageModel{},
		&ToolReviewModel{},
		&PersonReviewModel{},
		&PersonTownModel{},
	)
}
