// Package catalog expone el catálogo estático y calcula precios de carrito en el servidor.
package catalog

import (
	"fmt"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/cart"
	domcatalog "github.com/jhoicas/tortas-api/internal/domain/catalog"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// Service lecturas del catálogo y cotización de carritos. No tiene estado.
type Service struct{}

// NewService construye el servicio.
func NewService() *Service { return &Service{} }

// List productos de una categoría ("Todas" o vacío = todos).
func (s *Service) List(category string) []dto.ProductResponse {
	return toProducts(domcatalog.ByCategory(category))
}

// Seasonal ofertas de temporada.
func (s *Service) Seasonal() []dto.ProductResponse {
	return toProducts(domcatalog.Seasonal())
}

// Get producto por id; domain.ErrNotFound si no existe.
func (s *Service) Get(id int) (*dto.ProductResponse, error) {
	p, ok := domcatalog.ByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	r := dto.FromProduct(p, domcatalog.Sizes())
	return &r, nil
}

func (s *Service) Categories() []string { return domcatalog.Categories() }

func (s *Service) Sizes() []dto.SizeResponse { return dto.FromSizes(domcatalog.Sizes()) }

// PriceLine arma la línea con nombre y precio del servidor. Los precios enviados por el cliente se ignoran.
func (s *Service) PriceLine(line dto.CartLineRequest) (entity.OrderItem, error) {
	item := entity.OrderItem{
		ProductID:     line.ProductID,
		Quantity:      line.Quantity,
		Size:          line.Size,
		DeliveryDate:  line.DeliveryDate,
		CustomMessage: line.CustomMessage,
	}
	if line.CustomDesign != nil {
		d, err := domcatalog.Design{
			Size:       line.Size,
			Flavor:     line.CustomDesign.Flavor,
			Filling:    line.CustomDesign.Filling,
			Decoration: line.CustomDesign.Decoration,
		}.Resolve()
		if err != nil {
			return entity.OrderItem{}, err
		}
		item.ProductID = 0
		item.ID = cart.CustomLineKey(d.Flavor.ID, d.Filling.ID, d.Decoration.ID, d.Size.Name, line.DeliveryDate)
		item.Name = d.Name() + " - " + d.Size.Name
		item.Price = d.Price()
		return item, nil
	}
	p, ok := domcatalog.ByID(line.ProductID)
	if !ok {
		return entity.OrderItem{}, fmt.Errorf("%w: producto %d no existe", domain.ErrInvalidInput, line.ProductID)
	}
	size, ok := domcatalog.SizeByName(line.Size)
	if !ok {
		return entity.OrderItem{}, fmt.Errorf("%w: tamaño %q", domain.ErrInvalidInput, line.Size)
	}
	item.Name = p.Name + " - " + size.Name
	item.Price = domcatalog.PriceFor(p, size)
	item.IsSeasonalOffer = p.IsSeasonal
	return item, nil
}

// BuildCart precia cada línea y las consolida por clave (producto o diseño, tamaño y fecha).
func (s *Service) BuildCart(lines []dto.CartLineRequest) (*cart.Cart, error) {
	c := cart.New()
	for _, line := range lines {
		item, err := s.PriceLine(line)
		if err != nil {
			return nil, err
		}
		c.Add(item)
	}
	return c, nil
}

// QuoteCart cotización sin persistir, usada por el carrito del cliente.
func (s *Service) QuoteCart(lines []dto.CartLineRequest) (*dto.QuoteResponse, error) {
	c, err := s.BuildCart(lines)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		Success:   true,
		Items:     dto.FromItems(c.Items()),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}, nil
}

// CustomCakeOptions opciones del diseñador con sus recargos.
func (s *Service) CustomCakeOptions() dto.CustomCakeOptionsResponse {
	return dto.CustomCakeOptionsResponse{
		Success:     true,
		BasePrice:   domcatalog.CustomCakeBasePrice,
		Sizes:       dto.FromSizes(domcatalog.Sizes()),
		Flavors:     toOptions(domcatalog.Flavors()),
		Fillings:    toOptions(domcatalog.Fillings()),
		Decorations: toOptions(domcatalog.Decorations()),
	}
}

func toProducts(list []entity.Product) []dto.ProductResponse {
	sizes := domcatalog.Sizes()
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromProduct(p, sizes))
	}
	return out
}

func toOptions(list []domcatalog.Option) []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.OptionResponse{ID: o.ID, Name: o.Name, Price: o.Price})
	}
	return out
}
