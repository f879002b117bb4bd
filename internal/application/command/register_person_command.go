package command

import "toolbox-api/internal/application/common"

type RegisterPersonCommand struct {
	Email     string `json:"email"`
	Alias     string `json:"alias"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type RegisterPersonCommandResult struct {
	Result *common.PersonResult `json:"result"`
	Token  string               `json:"token"`
}
