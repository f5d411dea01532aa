package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/application/order"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// OrderHandler checkout, seguimiento y panel de pedidos.
type OrderHandler struct {
	svc *order.Service
	v   *RequestValidator
	log *logger.Logger
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(svc *order.Service, v *RequestValidator, log *logger.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, v: v, log: log}
}

// Create godoc
// @Summary      Confirmar pedido (checkout)
// @Description  Los precios se recalculan en el servidor desde el catálogo.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Carrito y datos de entrega"
// @Success      201   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := h.v.Bind(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.svc.Checkout(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OrderEnvelope{Success: true, Order: *out})
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "all | active | finished | pending | <estado>"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter", c.Query("status", order.FilterAll))
	list, err := h.svc.ListOrders(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OrderListResponse{Success: true, Orders: list})
}

// Stats godoc
// @Summary      Estadísticas de pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderStatsResponse
// @Router       /api/orders/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.svc.GetOrderStats(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetOrderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OrderEnvelope{Success: true, Order: *out})
}

// ByUser godoc
// @Summary      Pedidos de un cliente
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email del cliente"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/user/{email} [get]
func (h *OrderHandler) ByUser(c *fiber.Ctx) error {
	list, err := h.svc.GetOrdersByUser(c.UserContext(), pathEmail(c, "email"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OrderListResponse{Success: true, Orders: list})
}

// Track godoc
// @Summary      Seguimiento por token
// @Description  Público. Con sesión de administrador incluye las acciones disponibles.
// @Tags         orders
// @Produce      json
// @Param        token  path  string  true  "Token de seguimiento"
// @Success      200  {object}  dto.TrackingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/track/{token} [get]
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	token := c.Params("token")
	if !h.v.ValidToken(token) {
		return respondError(c, h.log, domain.ErrOrderNotFound)
	}
	out, err := h.svc.Tracking(c.UserContext(), token, GetSession(c).IsAdmin())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante PDF del pedido
// @Tags         orders
// @Produce      application/pdf
// @Param        token  path  string  true  "Token de seguimiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/track/{token}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	token := c.Params("token")
	if !h.v.ValidToken(token) {
		return respondError(c, h.log, domain.ErrOrderNotFound)
	}
	pdf, filename, err := h.svc.Receipt(c.UserContext(), token)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Sin force solo avanza al siguiente estado o cancela. force exige adminNotes.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del pedido"
// @Param        body  body  dto.UpdateStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := h.v.Bind(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.svc.UpdateOrderStatus(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OrderEnvelope{Success: true, Order: *out})
}
