package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
)

// Columnas reconocidas en la cabecera del CSV (sin distinguir mayúsculas).
const (
	colPrCode               = "prcode"
	colCategory             = "category"
	colManufacturer         = "manufacturer"
	colName                 = "name"
	colPacking              = "packing"
	colMRP                  = "mrp"
	colCasePack             = "casepack"
	colComposition          = "composition"
	colGST                  = "gst"
	colDiscount             = "discount"
	colExpiryDate           = "expirydate"
	colPrescriptionRequired = "prescriptionrequired"
	colSupplier             = "supplier"
	colLowStockThreshold    = "lowstockthreshold"
)

var requiredColumns = []string{colPrCode, colName, colMRP, colExpiryDate}

// decodeReader envuelve r con el decodificador del charset indicado. Vacío o utf-8 no transforma.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("charset no soportado: %s", charset)
}

// rowError error de una fila concreta; la importación sigue con las demás.
type rowError struct {
	Line int
	Err  error
}

func (e rowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }

// productRow fila leída con su número de línea.
type productRow struct {
	Line int
	Req  dto.CreateProductRequest
}

// readProducts lee el CSV completo. Las filas mal formadas se devuelven como rowError.
func readProducts(r io.Reader, comma rune) ([]productRow, []rowError, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("archivo vacío")
		}
		return nil, nil, fmt.Errorf("leer cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("falta la columna %q", col)
		}
	}

	var rows []productRow
	var bad []rowError
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			bad = append(bad, rowError{Line: line, Err: err})
			continue
		}
		if isBlank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		req, err := parseRecord(record, idx)
		if err != nil {
			bad = append(bad, rowError{Line: line, Err: err})
			continue
		}
		rows = append(rows, productRow{Line: line, Req: req})
	}
	return rows, bad, nil
}

func parseRecord(record []string, idx map[string]int) (dto.CreateProductRequest, error) {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var req dto.CreateProductRequest
	var err error
	if req.PrCode, err = strconv.ParseInt(get(colPrCode), 10, 64); err != nil {
		return req, fmt.Errorf("prCode inválido: %q", get(colPrCode))
	}
	req.Category = get(colCategory)
	req.Manufacturer = get(colManufacturer)
	req.Name = get(colName)
	req.Packing = get(colPacking)
	req.Supplier = get(colSupplier)
	req.ExpiryDate = get(colExpiryDate)

	if req.MRP, err = parseDecimal(get(colMRP)); err != nil {
		return req, fmt.Errorf("mrp inválido: %w", err)
	}
	if req.GST, err = parseDecimal(get(colGST)); err != nil {
		return req, fmt.Errorf("gst inválido: %w", err)
	}
	if req.Discount, err = parseDecimal(get(colDiscount)); err != nil {
		return req, fmt.Errorf("discount inválido: %w", err)
	}

	req.CasePack = 1
	if v := get(colCasePack); v != "" {
		if req.CasePack, err = strconv.Atoi(v); err != nil {
			return req, fmt.Errorf("casePack inválido: %q", v)
		}
	}
	if v := get(colLowStockThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("lowStockThreshold inválido: %q", v)
		}
		req.LowStockThreshold = &n
	}
	if v := get(colComposition); v != "" {
		req.Composition = &v
	}
	req.PrescriptionRequired = parseBool(get(colPrescriptionRequired))
	return req, nil
}

// parseDecimal acepta coma decimal ("12,5"). Vacío es 0.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "si", "sí", "yes", "x":
		return true
	}
	return false
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
