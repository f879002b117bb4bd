package command

import "toolbox-api/internal/application/common"

type UpdateProfileCommand struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UpdateProfileCommandResult struct {
	Result *common.PersonResult `json:"result"`
}
