package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storelane/catalog-system/internal/api/metrics"
	"github.com/storelane/catalog-system/internal/core/domain"
	"github.com/storelane/catalog-system/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateRolesRequest struct {
	// Roles is the complete new role id set. An empty list removes every
	// role from the target user.
	Roles []int64 `json:"roles"`
}

// Show returns a single user with their role names.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  ports.UserDTO
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Show(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrUserNotFound
	}

	user, err := h.service.Show(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Index lists all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.UserSummaryDTO
// @Router       /users [get]
func (h *UserHandler) Index(c echo.Context) error {
	users, err := h.service.Index(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRoles replaces the target user's role set.
//
// @Summary      Replace a user's roles
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                 true  "Target user id"
// @Param        body  body  updateRolesRequest  true  "Complete new role id set"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/roles [put]
func (h *UserHandler) UpdateRoles(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return domain.ErrUserNotFound
	}

	actingID, err := actingUserID(c)
	if err != nil {
		return err
	}

	var req updateRolesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err = h.service.UpdateRoles(c.Request().Context(), ports.UpdateRolesInput{
		TargetUserID: id,
		RoleIDs:      req.Roles,
		ActingUserID: actingID,
	})
	if err != nil {
		metrics.RoleSyncsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.RoleSyncsTotal.WithLabelValues("success").Inc()
	return c.NoContent(http.StatusNoContent)
}
