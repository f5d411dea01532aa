package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomCakeRequest diseño a guardar. El precio lo calcula el servidor.
type CreateCustomCakeRequest struct {
	Size                string `json:"size" validate:"required"`
	Flavor              string `json:"flavor" validate:"required"`
	Filling             string `json:"filling" validate:"required"`
	Decoration          string `json:"decoration" validate:"required"`
	Message             string `json:"message" validate:"max=200"`
	SpecialInstructions string `json:"specialInstructions" validate:"max=1000"`
	DeliveryDate        string `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`
}

// CustomCakeResponse diseño guardado.
type CustomCakeResponse struct {
	ID                  string          `json:"id"`
	UserEmail           string          `json:"userEmail"`
	Size                string          `json:"size"`
	Flavor              string          `json:"flavor"`
	Filling             string          `json:"filling"`
	Decoration          string          `json:"decoration"`
	Message             string          `json:"message,omitempty"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
	DeliveryDate        string          `json:"deliveryDate,omitempty"`
	Price               decimal.Decimal `json:"price"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// CustomCakeEnvelope {success, cake}.
type CustomCakeEnvelope struct {
	Success bool               `json:"success"`
	Cake    CustomCakeResponse `json:"cake"`
}

// CustomCakeListResponse {success, cakes}.
type CustomCakeListResponse struct {
	Success bool                 `json:"success"`
	Cakes   []CustomCakeResponse `json:"cakes"`
}
