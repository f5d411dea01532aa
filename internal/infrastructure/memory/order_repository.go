// Package memory implementa los puertos de persistencia en memoria de proceso.
// Cada registro se guarda por separado (no hay reescritura de la colección completa) y
// un único RWMutex por repositorio serializa las escrituras.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo almacén de pedidos indexado por id y por tracking token.
type OrderRepo struct {
	mu      sync.RWMutex
	byID    map[string]*entity.Order
	byToken map[string]string // token -> id
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{
		byID:    make(map[string]*entity.Order),
		byToken: make(map[string]string),
	}
}

// Create guarda una copia del pedido.
func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byToken[order.TrackingToken]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.byID[order.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[order.ID] = cloneOrder(order)
	r.byToken[order.TrackingToken] = order.ID
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.byID[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, nil
}

// GetByTrackingToken búsqueda exacta (sensible a mayúsculas).
func (r *OrderRepo) GetByTrackingToken(_ context.Context, token string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byToken[token]
	if !ok {
		return nil, nil
	}
	return cloneOrder(r.byID[id]), nil
}

// List filtra por estado y/o email del cliente; más recientes primero.
func (r *OrderRepo) List(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email := entity.NormalizeEmail(filter.CustomerEmail)
	out := make([]*entity.Order, 0, len(r.byID))
	for _, o := range r.byID {
		if email != "" && entity.NormalizeEmail(o.Customer.Email) != email {
			continue
		}
		if len(filter.Statuses) > 0 && !hasStatus(filter.Statuses, o.Status) {
			continue
		}
		out = append(out, cloneOrder(o))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus aplica el cambio solo si el estado actual coincide con change.From.
func (r *OrderRepo) UpdateStatus(_ context.Context, change repository.StatusChange) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[change.OrderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if o.Status != change.From {
		return nil, domain.ErrConflict
	}
	o.Status = change.To
	updated := change.UpdatedAt
	o.UpdatedAt = &updated
	if change.AdminNotes != "" {
		o.AdminNotes = change.AdminNotes
	}
	return cloneOrder(o), nil
}

// Stats conteos por estado e ingresos.
func (r *OrderRepo) Stats(_ context.Context) (repository.OrderStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := repository.OrderStats{
		Total:    len(r.byID),
		ByStatus: make(map[entity.OrderStatus]int),
		Revenue:  decimal.Zero,
	}
	for _, o := range r.byID {
		stats.ByStatus[o.Status]++
		if o.Status != entity.StatusCancelled {
			stats.Revenue = stats.Revenue.Add(o.Total)
		}
	}
	return stats, nil
}

func hasStatus(list []entity.OrderStatus, s entity.OrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.Items = append([]entity.OrderItem(nil), o.Items...)
	if o.UpdatedAt != nil {
		t := *o.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}
