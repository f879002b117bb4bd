package query

import "toolbox-api/internal/application/common"

type PersonQueryResult struct {
	Result *common.PersonResult `json:"result"`
}

type SearchQueryResult struct {
	Result []*common.SearchMatch `json:"result"`
}
