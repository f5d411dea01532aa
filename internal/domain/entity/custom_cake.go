package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomCake diseño de torta personalizada guardado por un cliente.
type CustomCake struct {
	ID                  string
	UserEmail           string
	Size                string
	Flavor              string
	Filling             string
	Decoration          string
	Message             string
	SpecialInstructions string
	DeliveryDate        string
	Price               decimal.Decimal
	CreatedAt           time.Time
}
