package repository

import (
	"context"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los emails llegan ya normalizados desde el caso de uso.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID y GetByEmail devuelven (nil, nil) cuando no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// UpdateRole devuelve domain.ErrUserNotFound si el id no existe.
	UpdateRole(ctx context.Context, id, role string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
