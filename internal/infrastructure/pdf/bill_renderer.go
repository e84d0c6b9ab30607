// Package pdf genera la representación PDF de la factura de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Franquicia          │  N° Pedido + Fecha + Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FRANQUICIA: Dirección / Tel / Email                         │
//	│  CLIENTE: Nombre + contacto                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Desc. | IVA% | Total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuestos / TOTAL           │
//	│  FOOTER: QR con el número de pedido + notas                  │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/application/orders"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoBillRenderer implementa orders.BillRenderer usando Maroto v2.
type MarotoBillRenderer struct{}

var _ orders.BillRenderer = (*MarotoBillRenderer)(nil)

// NewMarotoBillRenderer construye el renderer.
func NewMarotoBillRenderer() *MarotoBillRenderer { return &MarotoBillRenderer{} }

// RenderBill genera el PDF de la factura y devuelve sus bytes.
func (r *MarotoBillRenderer) RenderBill(_ context.Context, bill *dto.BillDTO) ([]byte, error) {
	if bill == nil {
		return nil, fmt.Errorf("pdf: factura vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+bill.OrderNumber, true).
		WithAuthor(bill.Franchise.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bill))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(franchiseRow(bill.Franchise))
	m.AddRows(customerRow(bill.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(bill.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(bill.Totals))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(bill))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(bill *dto.BillDTO) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(bill.Franchise.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Farmacia", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("FACTURA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(bill.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Fecha: "+bill.OrderDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Estado: "+bill.Status, props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

func franchiseRow(p dto.BillParty) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FRANQUICIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(contactLine(p), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func customerRow(p dto.BillParty) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contactLine(p), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("IVA%", 1, align.Center),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDetailRows(items []dto.BillLine) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.Name
		if it.Packing != "" {
			name += " (" + it.Packing + ")"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatMoney(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatMoney(it.Discount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(it.TaxRate.String()+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(it.TotalAmount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(t dto.BillTotals) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(d decimal.Decimal, top float64) core.Component {
		return text.New(formatMoney(d), props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 16,
		})
	}
	return row.New(24).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 0),
			label("Descuento:", 5),
			label("Impuestos:", 10),
			grand("TOTAL A PAGAR:"),
		),
		col.New(3).Add(
			value(t.Total, 0),
			value(t.Discount.Neg(), 5),
			value(t.Tax, 10),
			grand(formatMoney(t.Final)),
		),
	)
}

// footerRow: QR con el número de pedido y notas del pedido.
func footerRow(bill *dto.BillDTO) core.Row {
	notes := "Gracias por su compra."
	if bill.Notes != nil && strings.TrimSpace(*bill.Notes) != "" {
		notes = "Notas: " + strings.TrimSpace(*bill.Notes)
	}
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(bill.OrderNumber, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New(notes, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}),
			text.New("Generada: "+bill.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Top: 30, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func contactLine(p dto.BillParty) string {
	email := "—"
	if p.Email != nil && *p.Email != "" {
		email = *p.Email
	}
	return fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
		nonEmpty(p.Address, "—"), nonEmpty(p.ContactNumber, "—"), email)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un monto con separador de miles y dos decimales.
// Ej: 25000.5 → "$25.000,50", -10 → "-$10,00"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(2)
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "$" + string(buf) + "," + frac
}
