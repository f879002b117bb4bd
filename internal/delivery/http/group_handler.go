package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/interfaces"
)

type GroupHandler struct {
	groupService interfaces.GroupService
}

func NewGroupHandler(groupService interfaces.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) List(c echo.Context) error {
	results, err := h.groupService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *GroupHandler) Create(c echo.Context) error {
	var cmd command.CreateGroupCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.groupService.Create(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *GroupHandler) ListPublic(c echo.Context) error {
	return h.listByType(c, "public")
}

func (h *GroupHandler) ListPrivate(c echo.Context) error {
	return h.listByType(c, "private")
}

func (h *GroupHandler) listByType(c echo.Context, groupType string) error {
	townID, err := parseOptionalID(c.QueryParam("id_town"))
	if err != nil {
		return apperrors.Validation("invalid id_town: %s", c.QueryParam("id_town"))
	}

	results, err := h.groupService.ListByType(c.Request().Context(), groupType, c.QueryParam("countryCode"), townID)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *GroupHandler) ListMembers(c echo.Context) error {
	groupName := c.QueryParam("groupName")
	if groupName == "" {
		return apperrors.Validation("groupName is required")
	}

	results, err := h.groupService.ListMembers(c.Request().Context(), groupName, false)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *GroupHandler) AddMember(c echo.Context) error {
	var cmd command.AddGroupMemberCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.groupService.AddMember(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *GroupHandler) RemoveMember(c echo.Context) error {
	groupName := c.QueryParam("groupName")
	personID, err := parseOptionalID(c.QueryParam("id_person"))
	if err != nil || groupName == "" || personID == 0 {
		return apperrors.Validation("groupName and id_person are required")
	}

	if err := h.groupService.RemoveMember(c.Request().Context(), groupName, personID); err != nil {
		return err
	}
	return c.NoContent(nethttp.StatusNoContent)
}

func (h *GroupHandler) ListAdmins(c echo.Context) error {
	groupName := c.QueryParam("groupName")
	if groupName == "" {
		return apperrors.Validation("groupName is required")
	}

	results, err := h.groupService.ListMembers(c.Request().Context(), groupName, true)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *GroupHandler) ListTools(c echo.Context) error {
	groupName := c.QueryParam("groupName")
	if groupName == "" {
		return apperrors.Validation("groupName is required")
	}

	results, err := h.groupService.ListTools(c.Request().Context(), groupName)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusOK, results)
}

func (h *GroupHandler) AddTool(c echo.Context) error {
	var cmd command.AddGroupToolCommand
	if err := c.Bind(&cmd); err != nil {
		return apperrors.Validation("invalid request body")
	}

	result, err := h.groupService.AddTool(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(nethttp.StatusCreated, result)
}

func (h *GroupHandler) RemoveTool(c echo.Context) error {
	groupName := c.QueryParam("groupName")
	toolID, err := parseOptionalID(c.QueryParam("id_tool"))
	if err != nil || groupName == "" || toolID == 0 {
		return apperrors.Validation("groupName and id_tool are required")
	}

	if err := h.groupService.RemoveTool(c.Request().Context(), groupName, toolID); err != nil {
		return err
	}
	return c.NoContent(nethttp.StatusNoContent)
}

// parseOptionalID parses a numeric query parameter; empty means absent.
func parseOptionalID(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
