package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus etapa del ciclo de vida de un pedido.
type OrderStatus string

// Estados del pedido. pending es el inicial; delivered y cancelled son terminales.
const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Métodos de pago aceptados en el checkout (el cobro es simulado).
const (
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// CustomerInfo datos de contacto y entrega; todos obligatorios.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
}

// OrderItem línea del pedido. Price ya incluye el ajuste por tamaño y descuento.
type OrderItem struct {
	ID              string // clave compuesta producto (o diseño)-tamaño-fecha
	ProductID       int
	Name            string
	Price           decimal.Decimal
	Quantity        int
	Size            string
	DeliveryDate    string
	CustomMessage   string
	IsSeasonalOffer bool
}

// Subtotal precio por cantidad.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order pedido confirmado en el checkout. Nunca se elimina; solo cambia de estado.
type Order struct {
	ID            string
	OrderNumber   string // legible, no garantizado único
	TrackingToken string // único; secreto para el seguimiento público
	Items         []OrderItem
	Total         decimal.Decimal
	Status        OrderStatus
	Customer      CustomerInfo
	DeliveryDate  string // YYYY-MM-DD
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	AdminNotes    string
}

// ItemsTotal suma de subtotales de las líneas.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
