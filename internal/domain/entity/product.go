package entity

import "github.com/shopspring/decimal"

// Size tamaño de torta con su multiplicador de precio.
type Size struct {
	Name       string
	Label      string
	Multiplier decimal.Decimal
}

// Product producto del catálogo. Los productos de temporada traen descuento y precio original.
type Product struct {
	ID            int
	Name          string
	Description   string
	Image         string
	Category      string
	BasePrice     decimal.Decimal
	IsSeasonal    bool
	Discount      int // porcentaje, 0 si no aplica
	OriginalPrice decimal.Decimal
}
