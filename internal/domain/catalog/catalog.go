// Package catalog contiene el catálogo estático de tortas, los tamaños y las reglas de precio.
// No hay inventario: los productos no descuentan stock.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// CategoryAll pseudo-categoría que devuelve el catálogo completo.
const CategoryAll = "Todas"

// CategorySeasonal categoría de los productos de temporada.
const CategorySeasonal = "Navidad"

var hundred = decimal.NewFromInt(100)

var sizes = []entity.Size{
	{Name: `6"`, Label: `6" - Pequeño (6-8 personas)`, Multiplier: decimal.RequireFromString("0.8")},
	{Name: `8"`, Label: `8" - Mediano (10-12 personas)`, Multiplier: decimal.RequireFromString("1.0")},
	{Name: `10"`, Label: `10" - Grande (15-20 personas)`, Multiplier: decimal.RequireFromString("1.4")},
	{Name: `12"`, Label: `12" - Extra Grande (25-30 personas)`, Multiplier: decimal.RequireFromString("1.8")},
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var seasonal = []entity.Product{
	{
		ID: 101, Name: "Torta Navideña Tradicional", Category: CategorySeasonal, Image: "christmas-fruit-cake",
		Description: "Torta navideña con frutas confitadas, nueces, especias y un toque de ron.",
		BasePrice:   money("85.00"), OriginalPrice: money("110.00"), Discount: 23, IsSeasonal: true,
	},
	{
		ID: 102, Name: "Tronco Navideño", Category: CategorySeasonal, Image: "yule-log-cake",
		Description: "Bûche de Noël con bizcocho de chocolate y relleno de crema de chocolate.",
		BasePrice:   money("90.00"), OriginalPrice: money("115.00"), Discount: 22, IsSeasonal: true,
	},
	{
		ID: 103, Name: "Torta Pan de Jengibre", Category: CategorySeasonal, Image: "gingerbread-cake",
		Description: "Torta de jengibre, canela y nuez moscada con glaseado de queso crema.",
		BasePrice:   money("75.00"), OriginalPrice: money("95.00"), Discount: 21, IsSeasonal: true,
	},
	{
		ID: 104, Name: "Torta Nieve Navideña", Category: CategorySeasonal, Image: "snow-cake",
		Description: "Torta blanca con coco, buttercream de vainilla y copos de nieve comestibles.",
		BasePrice:   money("95.00"), OriginalPrice: money("120.00"), Discount: 21, IsSeasonal: true,
	},
}

var regular = []entity.Product{
	{ID: 1, Name: "Torta de Chocolate", Category: "Clásicas", Image: "chocolate-cake", BasePrice: money("65.00"),
		Description: "Capas de bizcocho húmedo y ganache de chocolate belga."},
	{ID: 2, Name: "Torta de Vainilla", Category: "Clásicas", Image: "vanilla-cake", BasePrice: money("60.00"),
		Description: "Relleno de crema pastelera y cubierta de buttercream."},
	{ID: 3, Name: "Torta Red Velvet", Category: "Especiales", Image: "red-velvet-cake", BasePrice: money("75.00"),
		Description: "Red Velvet con relleno de cream cheese."},
	{ID: 4, Name: "Torta de Zanahoria", Category: "Especiales", Image: "carrot-cake", BasePrice: money("70.00"),
		Description: "Zanahoria casera con especias, nueces y cream cheese."},
	{ID: 5, Name: "Black Forest", Category: "Premium", Image: "black-forest-cake", BasePrice: money("80.00"),
		Description: "Selva Negra con crema chantilly, cerezas y virutas de chocolate."},
	{ID: 6, Name: "Torta de Fresa", Category: "Clásicas", Image: "strawberry-cake", BasePrice: money("65.00"),
		Description: "Crema chantilly y fresas naturales."},
	{ID: 7, Name: "Torta Tres Leches", Category: "Tradicionales", Image: "tres-leches", BasePrice: money("68.00"),
		Description: "Empapada en tres leches y coronada con merengue."},
	{ID: 8, Name: "Torta de Limón", Category: "Especiales", Image: "lemon-cake", BasePrice: money("62.00"),
		Description: "Relleno de curd de limón y merengue italiano."},
	{ID: 9, Name: "Torta Selva Tropical", Category: "Premium", Image: "tropical-cake", BasePrice: money("78.00"),
		Description: "Frutas tropicales con crema de coco y bizcocho esponjoso."},
}

var categories = []string{CategoryAll, CategorySeasonal, "Clásicas", "Especiales", "Premium", "Tradicionales"}

// Sizes tamaños disponibles para todas las tortas.
func Sizes() []entity.Size {
	return append([]entity.Size(nil), sizes...)
}

// SizeByName busca un tamaño por su nombre (ej. `8"`).
func SizeByName(name string) (entity.Size, bool) {
	for _, s := range sizes {
		if s.Name == name {
			return s, true
		}
	}
	return entity.Size{}, false
}

// All productos de temporada seguidos del catálogo regular.
func All() []entity.Product {
	out := make([]entity.Product, 0, len(seasonal)+len(regular))
	out = append(out, seasonal...)
	return append(out, regular...)
}

// Seasonal productos con descuento de temporada.
func Seasonal() []entity.Product {
	return append([]entity.Product(nil), seasonal...)
}

// Regular catálogo sin ofertas.
func Regular() []entity.Product {
	return append([]entity.Product(nil), regular...)
}

// ByID busca un producto por ID.
func ByID(id int) (entity.Product, bool) {
	for _, p := range All() {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// ByCategory filtra por categoría; "Todas" o vacío devuelve todo.
func ByCategory(category string) []entity.Product {
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		return All()
	}
	var out []entity.Product
	for _, p := range All() {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories categorías para el filtro del catálogo.
func Categories() []string {
	return append([]string(nil), categories...)
}

// EffectivePrice base × multiplicador, menos el descuento porcentual si aplica. Redondeado a 2 decimales.
func EffectivePrice(base, multiplier decimal.Decimal, discount int) decimal.Decimal {
	price := base.Mul(multiplier)
	if discount > 0 {
		price = price.Mul(hundred.Sub(decimal.NewFromInt(int64(discount)))).Div(hundred)
	}
	return price.Round(2)
}

// PriceFor precio efectivo de un producto en un tamaño.
//
// Los productos de temporada ya traen BasePrice rebajado (OriginalPrice es el de lista), así que
// el descuento solo se aplica cuando se calcula desde OriginalPrice.
func PriceFor(p entity.Product, size entity.Size) decimal.Decimal {
	return EffectivePrice(p.BasePrice, size.Multiplier, 0)
}

// ListPriceFor precio de lista (antes del descuento) de un producto en un tamaño.
func ListPriceFor(p entity.Product, size entity.Size) decimal.Decimal {
	if p.IsSeasonal && !p.OriginalPrice.IsZero() {
		return EffectivePrice(p.OriginalPrice, size.Multiplier, 0)
	}
	return PriceFor(p, size)
}
