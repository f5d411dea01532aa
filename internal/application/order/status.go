package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/lifecycle"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
)

// UpdateOrderStatus cambia el estado de un pedido.
//
// Sin force solo se permite avanzar al siguiente estado o cancelar uno no terminal.
// Con force se acepta cualquier destino, pero adminNotes es obligatorio y queda registrado.
// Si otro administrador cambió el estado entre la lectura y la escritura devuelve domain.ErrConflict.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, in dto.UpdateStatusRequest) (*dto.OrderResponse, error) {
	to, err := lifecycle.Parse(in.Status)
	if err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(in.AdminNotes)

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", id).Msg("buscar pedido")
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}
	if current == nil {
		return nil, domain.ErrOrderNotFound
	}

	if in.Force {
		if notes == "" {
			return nil, domain.NewValidationError("adminNotes", "Se requiere una nota para forzar el cambio de estado")
		}
		s.log.Warn().Str("order_id", id).Str("from", string(current.Status)).Str("to", string(to)).
			Str("notes", notes).Msg("cambio de estado forzado")
	} else if err := lifecycle.CheckTransition(current.Status, to); err != nil {
		return nil, fmt.Errorf("%w: %s → %s", err, current.Status, to)
	}

	updated, err := s.repo.UpdateStatus(ctx, repository.StatusChange{
		OrderID:    id,
		From:       current.Status,
		To:         to,
		AdminNotes: notes,
		UpdatedAt:  s.now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Str("order_id", id).Str("status", string(to)).Msg("actualizar estado")
		return nil, fmt.Errorf("actualizar estado: %w", err)
	}
	s.log.Info().Str("order_id", id).Str("from", string(current.Status)).Str("status", string(to)).Msg("estado actualizado")
	out := dto.FromOrder(updated)
	return &out, nil
}
