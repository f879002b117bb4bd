package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"toolbox-api/internal/application/interfaces"
)

type SearchHandler struct {
	searchService interfaces.SearchService
}

func NewSearchHandler(searchService interfaces.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search handles GET /api/search?what=&where=. Both parameters are
// free-text substrings; either may be empty, which matches everything.
func (h *SearchHandler) Search(c echo.Context) error {
	result, err := h.searchService.Search(c.Request().Context(), c.QueryParam("what"), c.QueryParam("where"))
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, result)
}
