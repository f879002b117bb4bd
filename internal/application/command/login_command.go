package command

import "toolbox-api/internal/application/common"

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginCommandResult struct {
	Token  string               `json:"token"`
	Person *common.PersonResult `json:"person"`
}
