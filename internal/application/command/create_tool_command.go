package command

import "toolbox-api/internal/application/common"

type CreateToolCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateToolCommandResult struct {
	Result *common.ToolResult `json:"result"`
}

type AddToolImageCommand struct {
	URL string `json:"url"`
}

type AddToolImageCommandResult struct {
	Result *common.ToolImageResult `json:"result"`
}
