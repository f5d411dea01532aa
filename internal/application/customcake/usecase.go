// Package customcake guarda y lista los diseños del diseñador de tortas.
package customcake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	domcatalog "github.com/jhoicas/tortas-api/internal/domain/catalog"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
	"github.com/jhoicas/tortas-api/pkg/idgen"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// UseCase diseños personalizados.
type UseCase struct {
	repo repository.CustomCakeRepository
	log  *logger.Logger
}

func NewUseCase(repo repository.CustomCakeRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log.Named("customcake")}
}

// Create valida las opciones, calcula el precio en el servidor y persiste el diseño.
func (uc *UseCase) Create(ctx context.Context, email string, in dto.CreateCustomCakeRequest) (*dto.CustomCakeResponse, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	design, err := domcatalog.Design{
		Size: in.Size, Flavor: in.Flavor, Filling: in.Filling, Decoration: in.Decoration,
	}.Resolve()
	if err != nil {
		return nil, err
	}
	cake := &entity.CustomCake{
		ID:                  idgen.NewID(),
		UserEmail:           email,
		Size:                design.Size.Name,
		Flavor:              design.Flavor.Name,
		Filling:             design.Filling.Name,
		Decoration:          design.Decoration.Name,
		Message:             strings.TrimSpace(in.Message),
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		DeliveryDate:        in.DeliveryDate,
		Price:               design.Price(),
		CreatedAt:           time.Now(),
	}
	if err := uc.repo.Create(ctx, cake); err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("guardar torta personalizada")
		return nil, fmt.Errorf("guardar torta personalizada: %w", err)
	}
	out := dto.FromCustomCake(cake)
	return &out, nil
}

// ListByUser diseños de un cliente (email sin distinguir mayúsculas).
func (uc *UseCase) ListByUser(ctx context.Context, email string) ([]dto.CustomCakeResponse, error) {
	list, err := uc.repo.ListByUserEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		uc.log.Error().Err(err).Str("email", email).Msg("listar tortas personalizadas")
		return nil, fmt.Errorf("listar tortas personalizadas: %w", err)
	}
	out := make([]dto.CustomCakeResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.FromCustomCake(c))
	}
	return out, nil
}
