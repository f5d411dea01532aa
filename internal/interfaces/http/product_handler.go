package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/catalog"
	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// ProductHandler catálogo público y cotización del carrito.
type ProductHandler struct {
	svc *catalog.Service
	v   *RequestValidator
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *catalog.Service, v *RequestValidator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, v: v, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Categoría"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ProductListResponse{Success: true, Products: h.svc.List(c.Query("category"))})
}

// Seasonal godoc
// @Summary      Ofertas de temporada
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products/seasonal [get]
func (h *ProductHandler) Seasonal(c *fiber.Ctx) error {
	return c.JSON(dto.ProductListResponse{Success: true, Products: h.svc.Seasonal()})
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "categories": h.svc.Categories()})
}

// Sizes godoc
// @Summary      Tamaños y multiplicadores
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/products/sizes [get]
func (h *ProductHandler) Sizes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "sizes": h.svc.Sizes()})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, domain.ErrNotFound)
	}
	out, err := h.svc.Get(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.ProductEnvelope{Success: true, Product: *out})
}

// Quote godoc
// @Summary      Cotizar carrito
// @Description  Consolida líneas por producto, tamaño y fecha, y calcula el total con precios del servidor.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Líneas del carrito"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/quote [post]
func (h *ProductHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := h.v.Bind(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.svc.QuoteCart(in.Items)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
