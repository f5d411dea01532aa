package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/lifecycle"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
)

// GetOrderByToken búsqueda exacta y sensible a mayúsculas. Sin autenticación: el token es el secreto.
func (s *Service) GetOrderByToken(ctx context.Context, token string) (*dto.OrderResponse, error) {
	o, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	out := dto.FromOrder(o)
	return &out, nil
}

func (s *Service) findByToken(ctx context.Context, token string) (*entity.Order, error) {
	o, err := s.repo.GetByTrackingToken(ctx, token)
	if err != nil {
		s.log.Error().Err(err).Msg("buscar pedido por token")
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

// GetOrderByID detalle para el panel.
func (s *Service) GetOrderByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", id).Msg("buscar pedido")
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	out := dto.FromOrder(o)
	return &out, nil
}

// GetOrdersByUser pedidos de un cliente (email sin distinguir mayúsculas), más recientes primero.
func (s *Service) GetOrdersByUser(ctx context.Context, email string) ([]dto.OrderResponse, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "El email es requerido")
	}
	return s.list(ctx, repository.OrderFilter{CustomerEmail: email})
}

// ListOrders todos los pedidos, opcionalmente filtrados: all, pending, active, finished o un estado.
func (s *Service) ListOrders(ctx context.Context, filter string) ([]dto.OrderResponse, error) {
	statuses, err := statusesFor(filter)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, repository.OrderFilter{Statuses: statuses})
}

// PendingOrders pedidos que esperan confirmación.
func (s *Service) PendingOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	return s.ListOrders(ctx, string(entity.StatusPending))
}

// ActiveOrders pedidos confirmados aún no entregados.
func (s *Service) ActiveOrders(ctx context.Context) ([]dto.OrderResponse, error) {
	return s.ListOrders(ctx, FilterActive)
}

func (s *Service) list(ctx context.Context, f repository.OrderFilter) ([]dto.OrderResponse, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		s.log.Error().Err(err).Str("email", f.CustomerEmail).Msg("listar pedidos")
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	return dto.FromOrders(list), nil
}

func statusesFor(filter string) ([]entity.OrderStatus, error) {
	switch f := strings.ToLower(strings.TrimSpace(filter)); f {
	case "", FilterAll:
		return nil, nil
	case FilterActive:
		return []entity.OrderStatus{entity.StatusConfirmed, entity.StatusPreparing, entity.StatusDelivering}, nil
	case FilterFinished:
		return []entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}, nil
	default:
		st, err := lifecycle.Parse(f)
		if err != nil {
			return nil, err
		}
		return []entity.OrderStatus{st}, nil
	}
}

// GetOrderStats conteos por estado e ingresos (excluye cancelados).
func (s *Service) GetOrderStats(ctx context.Context) (*dto.OrderStatsResponse, error) {
	st, err := s.repo.Stats(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("estadísticas de pedidos")
		return nil, fmt.Errorf("estadísticas de pedidos: %w", err)
	}
	out := &dto.OrderStatsResponse{
		Success:  true,
		Total:    st.Total,
		ByStatus: make(map[string]int, len(lifecycle.All)),
		Revenue:  st.Revenue,
	}
	for _, status := range lifecycle.All {
		n := st.ByStatus[status]
		out.ByStatus[string(status)] = n
		if lifecycle.IsActive(status) && status != entity.StatusPending {
			out.Active += n
		}
	}
	out.Pending = st.ByStatus[entity.StatusPending]
	return out, nil
}

// Tracking vista de seguimiento: pedido y pasos derivados. withActions agrega las
// acciones del panel (solo para administradores).
func (s *Service) Tracking(ctx context.Context, token string, withActions bool) (*dto.TrackingResponse, error) {
	o, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	out := &dto.TrackingResponse{Success: true, Order: dto.FromOrder(o)}
	for _, st := range lifecycle.Steps(o.Status) {
		out.Steps = append(out.Steps, dto.StepResponse{Name: st.Name, Completed: st.Completed})
	}
	if withActions {
		for _, a := range lifecycle.Actions(o.Status) {
			out.Actions = append(out.Actions, dto.ActionResponse{Kind: string(a.Kind), Target: string(a.Target)})
		}
	}
	return out, nil
}

// Receipt comprobante PDF y nombre de archivo sugerido.
func (s *Service) Receipt(ctx context.Context, token string) ([]byte, string, error) {
	if s.receipts == nil {
		return nil, "", fmt.Errorf("comprobantes no configurados")
	}
	o, err := s.findByToken(ctx, token)
	if err != nil {
		return nil, "", err
	}
	b, err := s.receipts.GenerateReceipt(ctx, o)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", o.ID).Msg("generar comprobante")
		return nil, "", fmt.Errorf("generar comprobante: %w", err)
	}
	return b, fmt.Sprintf("pedido-%s.pdf", o.OrderNumber), nil
}
