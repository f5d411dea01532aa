package dto

import (
	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// FromOrder convierte la entidad al formato de respuesta.
func FromOrder(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		TrackingToken: o.TrackingToken,
		Items:         FromItems(o.Items),
		Total:         o.Total,
		Status:        string(o.Status),
		CustomerInfo: CustomerInfoDTO{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
			City:    o.Customer.City,
		},
		DeliveryDate:  o.DeliveryDate,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		AdminNotes:    o.AdminNotes,
	}
}

// FromOrders convierte una lista; nunca devuelve nil.
func FromOrders(list []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromItems(items []entity.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemResponse{
			ID:              it.ID,
			ProductID:       it.ProductID,
			Name:            it.Name,
			Price:           it.Price,
			Quantity:        it.Quantity,
			Size:            it.Size,
			DeliveryDate:    it.DeliveryDate,
			CustomMessage:   it.CustomMessage,
			IsSeasonalOffer: it.IsSeasonalOffer,
			Subtotal:        it.Subtotal(),
		})
	}
	return out
}

func FromSize(s entity.Size) SizeResponse {
	return SizeResponse{Name: s.Name, Label: s.Label, PriceMultiplier: s.Multiplier}
}

func FromSizes(sizes []entity.Size) []SizeResponse {
	out := make([]SizeResponse, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, FromSize(s))
	}
	return out
}

// FromProduct incluye los tamaños disponibles (todos los productos se ofrecen en todos los tamaños).
func FromProduct(p entity.Product, sizes []entity.Size) ProductResponse {
	r := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Image:          p.Image,
		Category:       p.Category,
		Price:          p.BasePrice,
		IsSeasonal:     p.IsSeasonal,
		Discount:       p.Discount,
		AvailableSizes: FromSizes(sizes),
	}
	if p.IsSeasonal && !p.OriginalPrice.IsZero() {
		op := p.OriginalPrice
		r.OriginalPrice = &op
	}
	return r
}

func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromCustomCake(c *entity.CustomCake) CustomCakeResponse {
	return CustomCakeResponse{
		ID:                  c.ID,
		UserEmail:           c.UserEmail,
		Size:                c.Size,
		Flavor:              c.Flavor,
		Filling:             c.Filling,
		Decoration:          c.Decoration,
		Message:             c.Message,
		SpecialInstructions: c.SpecialInstructions,
		DeliveryDate:        c.DeliveryDate,
		Price:               c.Price,
		CreatedAt:           c.CreatedAt,
	}
}
