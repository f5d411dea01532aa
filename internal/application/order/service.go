// Package order contiene los casos de uso del pedido: checkout, consultas, seguimiento
// público por token y cambios de estado desde el panel de administración.
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/repository"
	"github.com/jhoicas/tortas-api/pkg/idgen"
	"github.com/jhoicas/tortas-api/pkg/logger"
)

// Filtros de listado además de los seis estados.
const (
	FilterAll      = "all"
	FilterActive   = "active"   // confirmed, preparing, delivering
	FilterFinished = "finished" // delivered, cancelled
)

const tokenAttempts = 3

// Config reglas del checkout.
type Config struct {
	MinLeadDays int
	OrderPrefix string
}

// Service casos de uso del pedido.
type Service struct {
	repo     repository.OrderRepository
	carts    CartBuilder
	receipts ReceiptGenerator
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// NewService construye el servicio. receipts puede ser nil si no se sirven comprobantes.
func NewService(repo repository.OrderRepository, carts CartBuilder, receipts ReceiptGenerator, cfg Config, log *logger.Logger) *Service {
	if cfg.OrderPrefix == "" {
		cfg.OrderPrefix = "TM"
	}
	return &Service{
		repo:     repo,
		carts:    carts,
		receipts: receipts,
		cfg:      cfg,
		log:      log.Named("order"),
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateOrder persiste un pedido ya armado (token, número y total asignados por el llamador).
func (s *Service) CreateOrder(ctx context.Context, o *entity.Order) error {
	if err := s.repo.Create(ctx, o); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return err
		}
		s.log.Error().Err(err).Str("order_id", o.ID).Str("tracking_token", o.TrackingToken).Msg("crear pedido")
		return fmt.Errorf("crear pedido: %w", err)
	}
	s.log.Info().Str("order_id", o.ID).Str("order_number", o.OrderNumber).
		Str("total", o.Total.StringFixed(2)).Msg("pedido creado")
	return nil
}

// Checkout valida el formulario, recalcula el carrito y crea el pedido en estado pending.
func (s *Service) Checkout(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	now := s.now()
	if verr := s.validateCheckout(in, now); verr != nil {
		return nil, verr
	}
	c, err := s.carts.BuildCart(in.Items)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, domain.NewValidationError("items", "el carrito está vacío")
	}

	o := &entity.Order{
		ID:          idgen.NewID(),
		OrderNumber: idgen.OrderNumber(s.cfg.OrderPrefix, now),
		Items:       c.Items(),
		Total:       c.Total(),
		Status:      entity.StatusPending,
		Customer: entity.CustomerInfo{
			Name:    strings.TrimSpace(in.CustomerInfo.Name),
			Email:   entity.NormalizeEmail(in.CustomerInfo.Email),
			Phone:   entity.NormalizePhone(in.CustomerInfo.Phone),
			Address: strings.TrimSpace(in.CustomerInfo.Address),
			City:    strings.TrimSpace(in.CustomerInfo.City),
		},
		DeliveryDate:  in.DeliveryDate,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
	}

	requested := in.TrackingToken
	for attempt := 0; attempt < tokenAttempts; attempt++ {
		token, err := s.pickToken(ctx, requested)
		if err != nil {
			return nil, err
		}
		o.TrackingToken = token
		err = s.CreateOrder(ctx, o)
		if err == nil {
			out := dto.FromOrder(o)
			return &out, nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		requested = ""
	}
	return nil, fmt.Errorf("crear pedido: no se pudo asignar un token único: %w", domain.ErrConflict)
}

// pickToken conserva el token del cliente si tiene formato válido y no está en uso.
func (s *Service) pickToken(ctx context.Context, requested string) (string, error) {
	if idgen.ValidTrackingToken(requested) {
		existing, err := s.repo.GetByTrackingToken(ctx, requested)
		if err != nil {
			s.log.Error().Err(err).Msg("verificar token")
			return "", fmt.Errorf("verificar token: %w", err)
		}
		if existing == nil {
			return requested, nil
		}
	}
	return idgen.TrackingToken()
}

func (s *Service) validateCheckout(in dto.CreateOrderRequest, now time.Time) error {
	verr := &domain.ValidationError{}
	ci := in.CustomerInfo
	if strings.TrimSpace(ci.Name) == "" {
		verr.Add("customerInfo.name", "El nombre es requerido")
	}
	if strings.TrimSpace(ci.Email) == "" {
		verr.Add("customerInfo.email", "El email es requerido")
	}
	if !entity.ValidPhone(ci.Phone) {
		verr.Add("customerInfo.phone", "Teléfono inválido (9 dígitos)")
	}
	if strings.TrimSpace(ci.Address) == "" {
		verr.Add("customerInfo.address", "La dirección es requerida")
	}
	if strings.TrimSpace(ci.City) == "" {
		verr.Add("customerInfo.city", "La ciudad es requerida")
	}
	if in.PaymentMethod != entity.PaymentCard && in.PaymentMethod != entity.PaymentTransfer {
		verr.Add("paymentMethod", "Método de pago inválido")
	}
	if len(in.Items) == 0 {
		verr.Add("items", "el carrito está vacío")
	}
	if msg := s.checkDeliveryDate(in.DeliveryDate, now); msg != "" {
		verr.Add("deliveryDate", msg)
	}
	if verr.Empty() {
		return nil
	}
	return verr
}

// MinDeliveryDate primera fecha de entrega aceptada (hoy + MinLeadDays).
func (s *Service) MinDeliveryDate(now time.Time) string {
	y, m, d := now.Date()
	return time.Date(y, m, d+s.cfg.MinLeadDays, 0, 0, 0, 0, now.Location()).Format(time.DateOnly)
}

func (s *Service) checkDeliveryDate(date string, now time.Time) string {
	if date == "" {
		return "La fecha de entrega es requerida"
	}
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return "Fecha inválida (AAAA-MM-DD)"
	}
	// YYYY-MM-DD se ordena lexicográficamente igual que cronológicamente.
	if earliest := s.MinDeliveryDate(now); date < earliest {
		return fmt.Sprintf("La entrega requiere al menos %d días de anticipación (desde %s)", s.cfg.MinLeadDays, earliest)
	}
	return ""
}
