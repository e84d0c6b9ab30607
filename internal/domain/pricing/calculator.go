package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Tolerance diferencia máxima aceptada entre montos enviados por el cliente y los calculados.
var Tolerance = decimal.RequireFromString("0.01")

// Line datos de entrada de una línea de pedido ya resueltos (precio y tasa definidos).
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal // monto absoluto
	TaxRate   decimal.Decimal // porcentaje
}

// LineAmounts montos calculados de una línea.
type LineAmounts struct {
	Gross     decimal.Decimal // cantidad * precio unitario
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Totals montos de cabecera. Final = Total - Discount + Tax.
type Totals struct {
	Total    decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Final    decimal.Decimal
}

// CalculateLine calcula impuesto y total de una línea.
// Impuesto = round2((cantidad*precio - descuento) * tasa / 100); Total = bruto - descuento + impuesto.
func CalculateLine(l Line) LineAmounts {
	gross := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
	base := gross.Sub(l.Discount)
	tax := base.Mul(l.TaxRate).Div(hundred).Round(2)
	return LineAmounts{
		Gross:     gross,
		TaxAmount: tax,
		Total:     base.Add(tax),
	}
}

// CalculateTotals suma las líneas y deriva el monto final.
func CalculateTotals(lines []Line) (Totals, []LineAmounts) {
	var t Totals
	amounts := make([]LineAmounts, len(lines))
	for i, l := range lines {
		a := CalculateLine(l)
		amounts[i] = a
		t.Total = t.Total.Add(a.Gross)
		t.Discount = t.Discount.Add(l.Discount)
		t.Tax = t.Tax.Add(a.TaxAmount)
	}
	t.Final = FinalAmount(t.Total, t.Discount, t.Tax)
	return t, amounts
}

// FinalAmount total - descuento + impuesto.
func FinalAmount(total, discount, tax decimal.Decimal) decimal.Decimal {
	return total.Sub(discount).Add(tax)
}

// WithinTolerance indica si got difiere de want como máximo en Tolerance.
func WithinTolerance(got, want decimal.Decimal) bool {
	return got.Sub(want).Abs().LessThanOrEqual(Tolerance)
}
