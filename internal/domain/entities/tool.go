package entities

import "errors"

type Tool struct {
	ID          uint
	PersonID    uint
	Name        string
	Description string
}

func NewTool(personID uint, name, description string) *Tool {
	return &Tool{
		PersonID:    personID,
		Name:        name,
		Description: description,
	}
}

func (t *Tool) Validate() error {
	if t.Name == "" {
		return errors.New("tool name must not be empty")
	}
	if t.PersonID == 0 {
		return errors.New("tool must reference an owner")
	}
	return nil
}

// ToolGroup makes a tool visible through a group.
type ToolGroup struct {
	ToolID    uint
	GroupName string
}

func (tg *ToolGroup) Validate() error {
	if tg.ToolID == 0 {
		return errors.New("association must reference a tool")
	}
	if tg.GroupName == "" {
		return errors.New("association must reference a group")
	}
	return nil
}

type ToolImage struct {
	ID     uint
	ToolID uint
	URL    string
}

func (ti *ToolImage) Validate() error {
	if ti.ToolID == 0 {
		return errors.New("image must reference a tool")
	}
	if ti.URL == "" {
		return errors.New("image url must not be empty")
	}
	return nil
}
