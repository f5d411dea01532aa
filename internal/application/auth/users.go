package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// ListUsers todos los usuarios (panel de administración).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar usuarios")
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.FromUser(u))
	}
	return out, nil
}

// UpdateRole cambia el rol de un usuario. ErrUserNotFound si no existe.
func (uc *AuthUseCase) UpdateRole(ctx context.Context, id, role string) (*dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.NewValidationError("role", "Rol inválido")
	}
	u, err := uc.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		uc.log.Error().Err(err).Str("user_id", id).Msg("actualizar rol")
		return nil, fmt.Errorf("actualizar rol: %w", err)
	}
	uc.log.Info().Str("user_id", id).Str("role", role).Msg("rol actualizado")
	out := dto.FromUser(u)
	return &out, nil
}

// DeleteUser elimina una cuenta. Los pedidos del cliente se conservan (se asocian por email).
func (uc *AuthUseCase) DeleteUser(ctx context.Context, id string) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		uc.log.Error().Err(err).Str("user_id", id).Msg("eliminar usuario")
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	uc.log.Info().Str("user_id", id).Msg("usuario eliminado")
	return nil
}

// UserStats total, administradores y clientes.
func (uc *AuthUseCase) UserStats(ctx context.Context) (*dto.UserStatsResponse, error) {
	list, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Msg("estadísticas de usuarios")
		return nil, fmt.Errorf("estadísticas de usuarios: %w", err)
	}
	out := &dto.UserStatsResponse{Success: true, Total: len(list)}
	for _, u := range list {
		if u.Role == entity.RoleAdmin {
			out.Admins++
		} else {
			out.Regular++
		}
	}
	return out, nil
}
