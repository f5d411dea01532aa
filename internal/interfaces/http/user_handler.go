package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/auth"
	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// UserHandler registro, login y administración de usuarios.
type UserHandler struct {
	uc  *auth.AuthUseCase
	v   *RequestValidator
	log *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *auth.AuthUseCase, v *RequestValidator, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, v: v, log: log}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := h.v.Bind(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := h.v.Bind(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Sesión actual
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionUser
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	s := GetSession(c)
	if s == nil {
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sesión requerida")
	}
	return c.JSON(dto.SessionUser{ID: s.UserID, Email: s.Email, Name: s.Name, Role: s.Role})
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.UserListResponse{Success: true, Users: list})
}

// Stats godoc
// @Summary      Conteo de usuarios por rol
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserStatsResponse
// @Router       /api/users/stats [get]
func (h *UserHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.UserStats(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateRole godoc
// @Summary      Cambiar rol de un usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del usuario"
// @Param        body  body  dto.UpdateRoleRequest  true  "user | admin"
// @Success      200   {object}  dto.UserEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := h.v.Bind(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.UpdateRole(c.UserContext(), c.Params("id"), in.Role)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.UserEnvelope{Success: true, User: *out})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if c.Params("id") == GetUserID(c) {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", "no puede eliminar su propia cuenta")
	}
	if err := h.uc.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
