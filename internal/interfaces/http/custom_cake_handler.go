package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/catalog"
	"github.com/jhoicas/tortas-api/internal/application/customcake"
	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// CustomCakeHandler diseñador de tortas personalizadas.
type CustomCakeHandler struct {
	uc      *customcake.UseCase
	catalog *catalog.Service
	v       *RequestValidator
	log     *logger.Logger
}

// NewCustomCakeHandler construye el handler.
func NewCustomCakeHandler(uc *customcake.UseCase, cat *catalog.Service, v *RequestValidator, log *logger.Logger) *CustomCakeHandler {
	return &CustomCakeHandler{uc: uc, catalog: cat, v: v, log: log}
}

// Options godoc
// @Summary      Opciones del diseñador
// @Tags         custom-cakes
// @Produce      json
// @Success      200  {object}  dto.CustomCakeOptionsResponse
// @Router       /api/custom-cakes/options [get]
func (h *CustomCakeHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.catalog.CustomCakeOptions())
}

// Create godoc
// @Summary      Guardar diseño de torta
// @Tags         custom-cakes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomCakeRequest  true  "Diseño"
// @Success      201   {object}  dto.CustomCakeEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/custom-cakes [post]
func (h *CustomCakeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomCakeRequest
	if err := h.v.Bind(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetEmail(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CustomCakeEnvelope{Success: true, Cake: *out})
}

// ByUser godoc
// @Summary      Diseños guardados de un cliente
// @Tags         custom-cakes
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email del cliente"
// @Success      200  {object}  dto.CustomCakeListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/custom-cakes/user/{email} [get]
func (h *CustomCakeHandler) ByUser(c *fiber.Ctx) error {
	list, err := h.uc.ListByUser(c.UserContext(), pathEmail(c, "email"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.CustomCakeListResponse{Success: true, Cakes: list})
}
