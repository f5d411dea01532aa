package repository

import (
	"context"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// CustomCakeRepository persistencia de diseños personalizados.
type CustomCakeRepository interface {
	Create(ctx context.Context, cake *entity.CustomCake) error
	ListByUserEmail(ctx context.Context, email string) ([]*entity.CustomCake, error)
}
