package order

import (
	"context"

	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain/cart"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// CartBuilder precia y consolida las líneas del checkout (lo implementa catalog.Service).
type CartBuilder interface {
	BuildCart(lines []dto.CartLineRequest) (*cart.Cart, error)
}

// ReceiptGenerator genera el comprobante PDF del pedido (lo implementa pdf.ReceiptGenerator).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}
