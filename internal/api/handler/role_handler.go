package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// RoleHandler handles the admin-only role endpoints.
type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

type roleRequest struct {
	Name string `json:"role" validate:"required"`
}

type roleResponse struct {
	Role *domain.Role `json:"role"`
}

type rolesResponse struct {
	Roles []*domain.Role `json:"roles"`
}

// List handles GET /admin/roles.
//
// @Summary      List all roles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rolesResponse
// @Router       /admin/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rolesResponse{Roles: roles})
}

// Get handles GET /admin/roles/:id.
//
// @Summary      Get a role by id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.roleService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "role not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// Create handles POST /admin/roles.
//
// @Summary      Create a role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role name"
// @Success      200   {object}  roleResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	role, err := h.roleService.Create(c.Request().Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRoleExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "role already exists"})
		}
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// Update handles PUT /admin/roles/:id.
//
// @Summary      Rename a role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Role id"
// @Param        body  body      roleRequest  true  "New role name"
// @Success      200   {object}  roleResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	role, err := h.roleService.Update(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "role not found"})
		}
		if errors.Is(err, domain.ErrRoleExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "role already exists"})
		}
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// Delete handles DELETE /admin/roles/:id.
//
// @Summary      Delete a role
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	role, err := h.roleService.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "role not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Role: role})
}
