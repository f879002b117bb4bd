package command

import "toolbox-api/internal/application/common"

type CreateTownCommand struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type CreateTownCommandResult struct {
	Result *common.TownResult `json:"result"`
}

type CreateCountryCommand struct {
	Code string `json:"countryCode"`
	Name string `json:"name"`
}

type CreateCountryCommandResult struct {
	Result *common.CountryResult `json:"result"`
}

type AddPersonTownCommand struct {
	TownID uint `json:"id_town"`
}
