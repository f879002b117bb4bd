package entities

import "errors"

type GroupType string

const (
	GroupTypePublic  GroupType = "public"
	GroupTypePrivate GroupType = "private"
)

// Group is addressed by its name everywhere in the API; the name is the
// natural key.
type Group struct {
	Name   string
	Type   GroupType
	TownID uint
	// Radius is the declared coverage radius in kilometers around the
	// group's town.
	Radius float64
}

func NewGroup(name string, groupType GroupType, townID uint, radius float64) *Group {
	return &Group{
		Name:   name,
		Type:   groupType,
		TownID: townID,
		Radius: radius,
	}
}

func (g *Group) Validate() error {
	if g.Name == "" {
		return errors.New("group name must not be empty")
	}
	if g.Type != GroupTypePublic && g.Type != GroupTypePrivate {
		return errors.New("group type must be public or private")
	}
	if g.TownID == 0 {
		return errors.New("group must reference a town")
	}
	if g.Radius < 0 {
		return errors.New("group radius must not be negative")
	}
	return nil
}

type GroupMember struct {
	GroupName  string
	PersonID   uint
	GroupAdmin bool
}

func (m *GroupMember) Validate() error {
	if m.GroupName == "" {
		return errors.New("group name must not be empty")
	}
	if m.PersonID == 0 {
		return errors.New("member must reference a person")
	}
	return nil
}
