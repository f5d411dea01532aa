package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// OrderFilter criterio de listado. Statuses vacío = todos.
type OrderFilter struct {
	Statuses      []entity.OrderStatus
	CustomerEmail string
}

// StatusChange cambio de estado con compare-and-swap sobre el estado previo.
type StatusChange struct {
	OrderID    string
	From       entity.OrderStatus
	To         entity.OrderStatus
	AdminNotes string // vacío conserva la nota existente
	UpdatedAt  time.Time
}

// OrderStats agregados para el panel de administración.
type OrderStats struct {
	Total    int
	ByStatus map[entity.OrderStatus]int
	Revenue  decimal.Decimal // suma de totales de pedidos no cancelados
}

// OrderRepository define el puerto de persistencia para Order (DIP).
// Los pedidos nunca se eliminan.
type OrderRepository interface {
	// Create devuelve domain.ErrDuplicate si el tracking token ya existe.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByTrackingToken(ctx context.Context, token string) (*entity.Order, error)
	// List ordena por fecha de creación descendente.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
	// UpdateStatus devuelve domain.ErrOrderNotFound si no existe y domain.ErrConflict
	// si el estado actual ya no es change.From.
	UpdateStatus(ctx context.Context, change StatusChange) (*entity.Order, error)
	Stats(ctx context.Context) (OrderStats, error)
}
