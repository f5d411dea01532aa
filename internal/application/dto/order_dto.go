package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerInfoDTO datos de contacto y entrega. Todos obligatorios.
type CustomerInfoDTO struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone9"`
	Address string `json:"address" validate:"required,max=300"`
	City    string `json:"city" validate:"required,max=100"`
}

// CustomDesignDTO opciones del diseñador para una línea de torta personalizada.
type CustomDesignDTO struct {
	Flavor     string `json:"flavor" validate:"required"`
	Filling    string `json:"filling" validate:"required"`
	Decoration string `json:"decoration" validate:"required"`
}

// CartLineRequest línea enviada por el cliente. El precio lo calcula el servidor:
// desde el catálogo si productId existe, o desde el diseño si viene customDesign.
type CartLineRequest struct {
	ProductID     int              `json:"productId" validate:"required_without=CustomDesign"`
	Size          string           `json:"size" validate:"required"`
	Quantity      int              `json:"quantity" validate:"required,min=1,max=50"`
	DeliveryDate  string           `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`
	CustomMessage string           `json:"customMessage" validate:"max=200"`
	CustomDesign  *CustomDesignDTO `json:"customDesign,omitempty" validate:"omitempty"`
}

// CreateOrderRequest checkout. trackingToken es opcional: si es válido y no está en uso se conserva.
type CreateOrderRequest struct {
	Items         []CartLineRequest `json:"items" validate:"required,min=1,dive"`
	CustomerInfo  CustomerInfoDTO   `json:"customerInfo" validate:"required"`
	DeliveryDate  string            `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=card transfer"`
	TrackingToken string            `json:"trackingToken" validate:"omitempty,max=64"`
}

// OrderItemResponse línea de un pedido.
type OrderItemResponse struct {
	ID              string          `json:"id"`
	ProductID       int             `json:"productId"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Size            string          `json:"size"`
	DeliveryDate    string          `json:"deliveryDate,omitempty"`
	CustomMessage   string          `json:"customMessage,omitempty"`
	IsSeasonalOffer bool            `json:"isSeasonalOffer,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// OrderResponse pedido completo.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	TrackingToken string              `json:"trackingToken"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	CustomerInfo  CustomerInfoDTO     `json:"customerInfo"`
	DeliveryDate  string              `json:"deliveryDate"`
	PaymentMethod string              `json:"paymentMethod"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     *time.Time          `json:"updatedAt,omitempty"`
	AdminNotes    string              `json:"adminNotes,omitempty"`
}

// OrderEnvelope {success, order}.
type OrderEnvelope struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// OrderListResponse {success, orders}.
type OrderListResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}

// UpdateStatusRequest cambio de estado desde el panel. Force permite saltos fuera de la
// secuencia y exige adminNotes.
type UpdateStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=pending confirmed preparing delivering delivered cancelled"`
	AdminNotes string `json:"adminNotes" validate:"max=1000"`
	Force      bool   `json:"force"`
}

// StepResponse paso de la línea de tiempo del seguimiento.
type StepResponse struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// ActionResponse acción disponible para el administrador.
type ActionResponse struct {
	Kind   string `json:"kind"` // advance | cancel
	Target string `json:"target"`
}

// TrackingResponse vista pública del seguimiento.
type TrackingResponse struct {
	Success bool             `json:"success"`
	Order   OrderResponse    `json:"order"`
	Steps   []StepResponse   `json:"steps"`
	Actions []ActionResponse `json:"actions,omitempty"`
}

// OrderStatsResponse agregados para el panel.
type OrderStatsResponse struct {
	Success  bool            `json:"success"`
	Total    int             `json:"total"`
	ByStatus map[string]int  `json:"byStatus"`
	Pending  int             `json:"pending"`
	Active   int             `json:"active"`
	Revenue  decimal.Decimal `json:"revenue"`
}
