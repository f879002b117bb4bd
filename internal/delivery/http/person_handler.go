package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/interfaces"
)

type PersonHandler struct {
	accountService interfaces.AccountService
	toolService    interfaces.ToolService
	groupService   interfaces.GroupService
}

func NewPersonHandler(
	accountService interfaces.AccountService,
	toolService interfaces.ToolService,
	groupService interfaces.GroupService,
) *PersonHandler {
	return &PersonHandler{
		accountService: accountService,
		toolService:    toolService,
		groupService:   groupService,
	}
}

func (h *PersonHandler) List(c echo.Context) error {
	results, err := h.accountService.ListPersons(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *PersonHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.accountService.GetPerson(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, result)
}

func (h *PersonHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	// A profile is mutated only by its owner
	if authenticatedPersonID(c) != id {
		return apperrors.Forbidden("cannot modify another person's profile")
	}

	var cmd command.UpdateProfileCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.accountService.UpdateProfile(c.Request().Context(), id, &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, result)
}

func (h *PersonHandler) Register(c echo.Context) error {
	var cmd command.RegisterPersonCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.accountService.Register(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *PersonHandler) Aliases(c echo.Context) error {
	aliases, err := h.accountService.ListAliases(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, aliases)
}

func (h *PersonHandler) Login(c echo.Context) error {
	cmd := command.LoginCommand{
		Email:    c.QueryParam("email"),
		Password: c.QueryParam("pwd"),
	}
	if cmd.Email == "" || cmd.Password == "" {
		return apperrors.Validation("email and pwd are required")
	}

	result, err := h.accountService.Login(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, result)
}

func (h *PersonHandler) LoginByToken(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return apperrors.Validation("token is required")
	}

	result, err := h.accountService.LoginByToken(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, result)
}

func (h *PersonHandler) ListTools(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.toolService.ListByPerson(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *PersonHandler) AddTool(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	// Only the owning person may add tools to their profile
	if authenticatedPersonID(c) != id {
		return apperrors.Forbidden("cannot add tools for another person")
	}

	var cmd command.CreateToolCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.toolService.Create(c.Request().Context(), id, &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *PersonHandler) ListReviews(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.accountService.ListReviews(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *PersonHandler) AddReview(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var cmd command.AddPersonReviewCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}
	if cmd.ReviewerID == 0 {
		cmd.ReviewerID = authenticatedPersonID(c)
	}

	result, err := h.accountService.AddReview(c.Request().Context(), id, &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *PersonHandler) ListTowns(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.accountService.ListTowns(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *PersonHandler) AddTown(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if authenticatedPersonID(c) != id {
		return apperrors.Forbidden("cannot modify another person's towns")
	}

	var cmd command.AddPersonTownCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.accountService.AddTown(c.Request().Context(), id, &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *PersonHandler) ListGroups(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	results, err := h.groupService.ListMemberships(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("invalid %s: %s", name, raw)
	}
	return uint(id), nil
}
