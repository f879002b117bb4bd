package command

import "toolbox-api/internal/application/common"

type AddToolReviewCommand struct {
	PersonID uint   `json:"id_person"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type AddToolReviewCommandResult struct {
	Result *common.ToolReviewResult `json:"result"`
}

type AddPersonReviewCommand struct {
	ReviewerID uint   `json:"id_reviewer"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type AddPersonReviewCommandResult struct {
	Result *common.PersonReviewResult `json:"result"`
}
