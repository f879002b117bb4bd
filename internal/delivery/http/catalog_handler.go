package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/interfaces"
)

type CatalogHandler struct {
	catalogService interfaces.CatalogService
}

func NewCatalogHandler(catalogService interfaces.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListTowns(c echo.Context) error {
	results, err := h.catalogService.ListTowns(c.Request().Context(), c.QueryParam("countryCode"))
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *CatalogHandler) CreateTown(c echo.Context) error {
	var cmd command.CreateTownCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.catalogService.CreateTown(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *CatalogHandler) ListCountries(c echo.Context) error {
	results, err := h.catalogService.ListCountries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *CatalogHandler) CreateCountry(c echo.Context) error {
	var cmd command.CreateCountryCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.catalogService.CreateCountry(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}
