package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tortas-api/internal/domain"
	"github.com/jhoicas/tortas-api/internal/domain/catalog"
)

func TestEffectivePrice(t *testing.T) {
	base := decimal.RequireFromString("100")
	assert.Equal(t, "80", catalog.EffectivePrice(base, decimal.RequireFromString("0.8"), 0).String())
	assert.Equal(t, "140", catalog.EffectivePrice(base, decimal.RequireFromString("1.4"), 0).String())
	// 100 × 1.8 = 180, menos 20% = 144
	assert.Equal(t, "144", catalog.EffectivePrice(base, decimal.RequireFromString("1.8"), 20).String())
}

func TestSizes_MultiplicadoresFijos(t *testing.T) {
	want := []string{"0.8", "1", "1.4", "1.8"}
	sizes := catalog.Sizes()
	require.Len(t, sizes, 4)
	for i, s := range sizes {
		assert.True(t, decimal.RequireFromString(want[i]).Equal(s.Multiplier), s.Name)
	}
}

func TestSeasonal_TraenDescuentoYPrecioOriginal(t *testing.T) {
	seasonal := catalog.Seasonal()
	require.Len(t, seasonal, 4)
	for _, p := range seasonal {
		assert.True(t, p.IsSeasonal)
		assert.Positive(t, p.Discount)
		assert.True(t, p.OriginalPrice.GreaterThan(p.BasePrice), p.Name)
	}
	for _, p := range catalog.Regular() {
		assert.False(t, p.IsSeasonal)
	}
}

func TestByCategory(t *testing.T) {
	assert.Len(t, catalog.ByCategory("Todas"), len(catalog.All()))
	assert.Len(t, catalog.ByCategory(""), 13)
	premium := catalog.ByCategory("premium")
	require.Len(t, premium, 2)
	assert.Empty(t, catalog.ByCategory("Inexistente"))
}

func TestByID(t *testing.T) {
	p, ok := catalog.ByID(103)
	require.True(t, ok)
	assert.Equal(t, "Torta Pan de Jengibre", p.Name)

	_, ok = catalog.ByID(999)
	assert.False(t, ok)
}

func TestListPriceFor_Temporada(t *testing.T) {
	p, _ := catalog.ByID(101)
	m, _ := catalog.SizeByName(`8"`)
	assert.Equal(t, "85", catalog.PriceFor(p, m).String())
	assert.Equal(t, "110", catalog.ListPriceFor(p, m).String())
}

func TestDesign_Resolve(t *testing.T) {
	d, err := catalog.Design{Size: `10"`, Flavor: "red-velvet", Filling: "Cream Cheese", Decoration: "flowers"}.Resolve()
	require.NoError(t, err)
	// (70 + 10 + 8 + 15) × 1.4 = 144.2
	assert.Equal(t, "144.2", d.Price().String())
	assert.Equal(t, "Torta Personalizada (Red Velvet)", d.Name())
	assert.Contains(t, d.Description(), "Relleno: Cream Cheese")
}

func TestDesign_ResolveBasico(t *testing.T) {
	d, err := catalog.Design{Size: `8"`, Flavor: "chocolate", Filling: "buttercream", Decoration: "simple"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "70", d.Price().String())
}

func TestDesign_ResolveOpcionInvalida(t *testing.T) {
	_, err := catalog.Design{Size: `9"`, Flavor: "chocolate", Filling: "buttercream", Decoration: "simple"}.Resolve()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = catalog.Design{Size: `8"`, Flavor: "mango", Filling: "buttercream", Decoration: "simple"}.Resolve()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "mango")
}
