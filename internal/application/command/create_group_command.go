package command

import "toolbox-api/internal/application/common"

type CreateGroupCommand struct {
	Name   string  `json:"groupName"`
	Type   string  `json:"groupType"`
	TownID uint    `json:"id_town"`
	Radius float64 `json:"radius"`
}

type CreateGroupCommandResult struct {
	Result *common.GroupResult `json:"result"`
}

type AddGroupMemberCommand struct {
	GroupName  string `json:"groupName"`
	PersonID   uint   `json:"id_person"`
	GroupAdmin bool   `json:"groupAdmin"`
}

type AddGroupMemberCommandResult struct {
	Result *common.GroupMemberResult `json:"result"`
}

type AddGroupToolCommand struct {
	GroupName string `json:"groupName"`
	ToolID    uint   `json:"id_tool"`
}

type AddGroupToolCommandResult struct {
	Result *common.ToolResult `json:"result"`
}
