package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/entity"
)

// CategoryCustom categoría de las tortas armadas en el diseñador.
const CategoryCustom = "Personalizada"

// Option opción del diseñador de tortas con su recargo sobre el precio base.
type Option struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// CustomCakeBasePrice precio base de una torta personalizada antes de recargos y tamaño.
var CustomCakeBasePrice = decimal.NewFromInt(70)

var flavors = []Option{
	{ID: "chocolate", Name: "Chocolate", Price: decimal.Zero},
	{ID: "vanilla", Name: "Vainilla", Price: decimal.Zero},
	{ID: "red-velvet", Name: "Red Velvet", Price: decimal.NewFromInt(10)},
	{ID: "carrot", Name: "Zanahoria", Price: decimal.NewFromInt(5)},
	{ID: "lemon", Name: "Limón", Price: decimal.NewFromInt(5)},
}

var fillings = []Option{
	{ID: "buttercream", Name: "Buttercream", Price: decimal.Zero},
	{ID: "cream-cheese", Name: "Cream Cheese", Price: decimal.NewFromInt(8)},
	{ID: "chocolate-ganache", Name: "Ganache de Chocolate", Price: decimal.NewFromInt(10)},
	{ID: "fruits", Name: "Frutas Frescas", Price: decimal.NewFromInt(12)},
	{ID: "dulce-leche", Name: "Dulce de Leche", Price: decimal.NewFromInt(8)},
}

var decorations = []Option{
	{ID: "simple", Name: "Decoración Simple", Price: decimal.Zero},
	{ID: "flowers", Name: "Flores Comestibles", Price: decimal.NewFromInt(15)},
	{ID: "fruits-top", Name: "Frutas en la Parte Superior", Price: decimal.NewFromInt(18)},
	{ID: "chocolate-drip", Name: "Goteo de Chocolate", Price: decimal.NewFromInt(20)},
	{ID: "custom", Name: "Diseño Personalizado", Price: decimal.NewFromInt(35)},
}

func Flavors() []Option     { return append([]Option(nil), flavors...) }
func Fillings() []Option    { return append([]Option(nil), fillings...) }
func Decorations() []Option { return append([]Option(nil), decorations...) }

// Design selección del diseñador. Los campos aceptan el id o el nombre visible de la opción.
type Design struct {
	Size       string
	Flavor     string
	Filling    string
	Decoration string
}

// ResolvedDesign diseño con las opciones ya validadas.
type ResolvedDesign struct {
	Size       entity.Size
	Flavor     Option
	Filling    Option
	Decoration Option
}

// Name nombre visible de la torta personalizada, ej. "Torta Personalizada (Chocolate)".
func (d ResolvedDesign) Name() string {
	return fmt.Sprintf("Torta Personalizada (%s)", d.Flavor.Name)
}

// Description resumen de sabor, relleno y decoración.
func (d ResolvedDesign) Description() string {
	return fmt.Sprintf("Sabor: %s, Relleno: %s, Decoración: %s", d.Flavor.Name, d.Filling.Name, d.Decoration.Name)
}

// Price (base + recargos) × multiplicador del tamaño.
func (d ResolvedDesign) Price() decimal.Decimal {
	sum := CustomCakeBasePrice.Add(d.Flavor.Price).Add(d.Filling.Price).Add(d.Decoration.Price)
	return EffectivePrice(sum, d.Size.Multiplier, 0)
}

// Resolve valida cada opción del diseño. Devuelve domain.ErrInvalidInput envuelto con el campo que falla.
func (d Design) Resolve() (ResolvedDesign, error) {
	size, ok := SizeByName(d.Size)
	if !ok {
		return ResolvedDesign{}, fmt.Errorf("%w: tamaño %q", domain.ErrInvalidInput, d.Size)
	}
	flavor, ok := findOption(flavors, d.Flavor)
	if !ok {
		return ResolvedDesign{}, fmt.Errorf("%w: sabor %q", domain.ErrInvalidInput, d.Flavor)
	}
	filling, ok := findOption(fillings, d.Filling)
	if !ok {
		return ResolvedDesign{}, fmt.Errorf("%w: relleno %q", domain.ErrInvalidInput, d.Filling)
	}
	decoration, ok := findOption(decorations, d.Decoration)
	if !ok {
		return ResolvedDesign{}, fmt.Errorf("%w: decoración %q", domain.ErrInvalidInput, d.Decoration)
	}
	return ResolvedDesign{Size: size, Flavor: flavor, Filling: filling, Decoration: decoration}, nil
}

func findOption(list []Option, key string) (Option, bool) {
	for _, o := range list {
		if o.ID == key || o.Name == key {
			return o, true
		}
	}
	return Option{}, false
}
