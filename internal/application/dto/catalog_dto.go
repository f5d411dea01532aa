package dto

import "github.com/shopspring/decimal"

// SizeResponse tamaño con su multiplicador.
type SizeResponse struct {
	Name            string          `json:"name"`
	Label           string          `json:"label"`
	PriceMultiplier decimal.Decimal `json:"priceMultiplier"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Image          string           `json:"image"`
	Category       string           `json:"category"`
	Price          decimal.Decimal  `json:"price"`
	IsSeasonal     bool             `json:"isSeasonal,omitempty"`
	Discount       int              `json:"discount,omitempty"`
	OriginalPrice  *decimal.Decimal `json:"originalPrice,omitempty"`
	AvailableSizes []SizeResponse   `json:"availableSizes"`
}

// ProductListResponse {success, products}.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
}

// ProductEnvelope {success, product}.
type ProductEnvelope struct {
	Success bool            `json:"success"`
	Product ProductResponse `json:"product"`
}

// QuoteRequest cotización de carrito sin persistir.
type QuoteRequest struct {
	Items []CartLineRequest `json:"items" validate:"required,min=1,dive"`
}

// QuoteResponse líneas consolidadas y total calculado en el servidor.
type QuoteResponse struct {
	Success   bool                `json:"success"`
	Items     []OrderItemResponse `json:"items"`
	ItemCount int                 `json:"itemCount"`
	Total     decimal.Decimal     `json:"total"`
}

// OptionResponse opción del diseñador.
type OptionResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CustomCakeOptionsResponse catálogo del diseñador de tortas.
type CustomCakeOptionsResponse struct {
	Success     bool             `json:"success"`
	BasePrice   decimal.Decimal  `json:"basePrice"`
	Sizes       []SizeResponse   `json:"sizes"`
	Flavors     []OptionResponse `json:"flavors"`
	Fillings    []OptionResponse `json:"fillings"`
	Decorations []OptionResponse `json:"decorations"`
}
