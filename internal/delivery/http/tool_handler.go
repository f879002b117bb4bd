package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/interfaces"
)

type ToolHandler struct {
	toolService interfaces.ToolService
}

func NewToolHandler(toolService interfaces.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

func (h *ToolHandler) List(c echo.Context) error {
	results, err := h.toolService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *ToolHandler) ListImages(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.toolService.ListImages(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *ToolHandler) AddImage(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var cmd command.AddToolImageCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.toolService.AddImage(c.Request().Context(), id, &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *ToolHandler) ListReviews(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.toolService.ListReviews(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *ToolHandler) AddReview(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var cmd command.AddToolReviewCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if cmd.PersonID == 0 {
		cmd.PersonID = authenticatedPersonID(c)
	}

	result, err := h.toolService.AddReview(c.Request().Context(), id, &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *ToolHandler) ListGroups(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.toolService.ListGroups(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}
