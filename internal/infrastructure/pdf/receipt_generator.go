// Package pdf genera el comprobante del pedido que el cliente descarga desde el seguimiento.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  Tienda                 │  N° pedido + fecha  │
//	│  Cliente / Entrega                            │
//	│  Cant | Producto | Tamaño | P.Unit | Subtotal │
//	│  TOTAL                                        │
//	│  QR (seguimiento) + token + estado            │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tortas-api/internal/domain/entity"
	"github.com/jhoicas/tortas-api/internal/domain/lifecycle"
)

var (
	colorPrimary = &props.Color{Red: 150, Green: 60, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator comprobante de pedido con Maroto v2.
type ReceiptGenerator struct {
	storeName   string
	trackingURL string // base pública del seguimiento; el QR lleva base + token
}

// NewReceiptGenerator construye el generador. Sin trackingURL el QR contiene solo el token.
func NewReceiptGenerator(storeName, trackingURL string) *ReceiptGenerator {
	return &ReceiptGenerator{storeName: storeName, trackingURL: strings.TrimRight(trackingURL, "/")}
}

// GenerateReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(_ context.Context, order *entity.Order) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Pedido "+order.OrderNumber, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.2}))
	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(order.Items)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.2}))
	m.AddRows(totalRow(order))
	m.AddRows(row.New(3))
	m.AddRows(g.trackingRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// QRContent lo que se codifica en el QR del comprobante.
func (g *ReceiptGenerator) QRContent(token string) string {
	if g.trackingURL == "" {
		return token
	}
	return g.trackingURL + "/" + token
}

func (g *ReceiptGenerator) headerRow(o *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
			text.New("Comprobante de pedido", props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(o.OrderNumber, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New("Fecha: "+o.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func customerRow(o *entity.Order) core.Row {
	c := o.Customer
	return row.New(16).Add(
		col.New(12).Add(
			text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(fmt.Sprintf("%s   |   Tel: %s", c.Email, c.Phone), props.Text{Size: 7, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("Entrega: %s, %s   |   %s", c.Address, c.City, nonEmpty(o.DeliveryDate, "-")), props.Text{
				Size: 7, Top: 10, Color: colorGray,
			}),
		),
	)
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Tamaño", 2, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func itemRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.Name
		if it.CustomMessage != "" {
			name += ` ("` + it.CustomMessage + `")`
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(name, props.Text{Size: 7, Top: 1})),
			col.New(2).Add(text.New(it.Size, props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money(it.Price.StringFixed(2)), props.Text{Size: 7, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(money(it.Subtotal().StringFixed(2)), props.Text{Size: 7, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func totalRow(o *entity.Order) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1, Color: colorPrimary})),
		col.New(2).Add(text.New(money(o.Total.StringFixed(2)), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
	)
}

func (g *ReceiptGenerator) trackingRow(o *entity.Order) core.Row {
	status := string(o.Status)
	steps := lifecycle.Steps(o.Status)
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i].Completed {
			status = steps[i].Name
			break
		}
	}
	return row.New(36).Add(
		col.New(4).Add(code.NewQr(g.QRContent(o.TrackingToken), props.Rect{Percent: 95, Center: true})),
		col.New(8).Add(
			text.New("Código de seguimiento", props.Text{Size: 7, Left: 3, Top: 4, Color: colorGray}),
			text.New(o.TrackingToken, props.Text{Style: fontstyle.Bold, Size: 12, Left: 3, Top: 9, Color: colorPrimary}),
			text.New("Estado: "+status, props.Text{Size: 8, Left: 3, Top: 18}),
			text.New("Guarde este código: es la única forma de consultar el pedido sin iniciar sesión.", props.Text{
				Size: 6, Left: 3, Top: 25, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money antepone el símbolo y agrupa miles con coma: "1234.50" → "S/. 1,234.50".
func money(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	if n <= 3 {
		return "S/. " + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return "S/. " + string(buf) + frac
}
