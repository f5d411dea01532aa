package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tortas-api/internal/application/catalog"
	"github.com/jhoicas/tortas-api/internal/application/dto"
	"github.com/jhoicas/tortas-api/internal/domain"
)

func TestQuoteCart_ConsolidaYRecalcula(t *testing.T) {
	svc := catalog.NewService()
	out, err := svc.QuoteCart([]dto.CartLineRequest{
		{ProductID: 1, Size: `8"`, Quantity: 1, DeliveryDate: "2026-12-24"},
		{ProductID: 1, Size: `8"`, Quantity: 2, DeliveryDate: "2026-12-24"},
		{ProductID: 1, Size: `10"`, Quantity: 1, DeliveryDate: "2026-12-24"},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Items[0].Quantity)
	assert.Equal(t, 4, out.ItemCount)
	// 65 × 3 + 65 × 1.4 = 195 + 91 = 286
	assert.True(t, decimal.RequireFromString("286").Equal(out.Total), out.Total.String())
}

func TestQuoteCart_TortaPersonalizada(t *testing.T) {
	svc := catalog.NewService()
	out, err := svc.QuoteCart([]dto.CartLineRequest{{
		ProductID: 5001, Size: `6"`, Quantity: 1,
		CustomDesign: &dto.CustomDesignDTO{Flavor: "lemon", Filling: "fruits", Decoration: "custom"},
	}})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	// (70 + 5 + 12 + 35) × 0.8 = 97.6
	assert.Equal(t, "97.6", out.Total.String())
	assert.Contains(t, out.Items[0].Name, "Torta Personalizada (Limón)")
}

func TestQuoteCart_DisenosDistintosNoSeMezclan(t *testing.T) {
	svc := catalog.NewService()
	date := "2026-12-24"
	out, err := svc.QuoteCart([]dto.CartLineRequest{
		{Size: `8"`, Quantity: 1, DeliveryDate: date,
			CustomDesign: &dto.CustomDesignDTO{Flavor: "chocolate", Filling: "buttercream", Decoration: "simple"}},
		{Size: `8"`, Quantity: 1, DeliveryDate: date,
			CustomDesign: &dto.CustomDesignDTO{Flavor: "red-velvet", Filling: "fruits", Decoration: "custom"}},
		{ProductID: 1, Size: `8"`, Quantity: 1, DeliveryDate: date},
		{ProductID: 1, Size: `8"`, Quantity: 1, DeliveryDate: date,
			CustomDesign: &dto.CustomDesignDTO{Flavor: "lemon", Filling: "fruits", Decoration: "custom"}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 4)

	prices := map[string]string{}
	for _, it := range out.Items {
		assert.Equal(t, 1, it.Quantity, it.ID)
		prices[it.ID] = it.Price.String()
	}
	assert.Equal(t, "70", prices[`custom-chocolate-buttercream-simple-8"-2026-12-24`])
	assert.Equal(t, "127", prices[`custom-red-velvet-fruits-custom-8"-2026-12-24`])
	assert.Equal(t, "65", prices[`1-8"-2026-12-24`])
	assert.Equal(t, "122", prices[`custom-lemon-fruits-custom-8"-2026-12-24`])
	assert.Equal(t, 0, out.Items[3].ProductID, "el diseño no hereda el productId del cliente")
	// 70 + 127 + 65 + 122
	assert.Equal(t, "384", out.Total.String())
}

func TestQuoteCart_DisenoIgualSeConsolida(t *testing.T) {
	svc := catalog.NewService()
	out, err := svc.QuoteCart([]dto.CartLineRequest{
		{Size: `8"`, Quantity: 1, DeliveryDate: "2026-12-24",
			CustomDesign: &dto.CustomDesignDTO{Flavor: "chocolate", Filling: "buttercream", Decoration: "simple"}},
		{Size: `8"`, Quantity: 2, DeliveryDate: "2026-12-24",
			CustomDesign: &dto.CustomDesignDTO{Flavor: "Chocolate", Filling: "Buttercream", Decoration: "Decoración Simple"}},
	})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity)
	assert.Equal(t, "210", out.Total.String())
}

func TestQuoteCart_ProductoDesconocido(t *testing.T) {
	_, err := catalog.NewService().QuoteCart([]dto.CartLineRequest{{ProductID: 999, Size: `8"`, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet(t *testing.T) {
	svc := catalog.NewService()
	p, err := svc.Get(101)
	require.NoError(t, err)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, "110", p.OriginalPrice.String())
	assert.Len(t, p.AvailableSizes, 4)

	_, err = svc.Get(0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomCakeOptions(t *testing.T) {
	opts := catalog.NewService().CustomCakeOptions()
	assert.Equal(t, "70", opts.BasePrice.String())
	assert.Len(t, opts.Flavors, 5)
	assert.Len(t, opts.Fillings, 5)
	assert.Len(t, opts.Decorations, 5)
}
