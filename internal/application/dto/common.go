package dto

import "github.com/jhoicas/farmacia-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Errors solo aparece en errores de validación.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// Límites por defecto para listados "recent" y de bajo stock.
const (
	DefaultRecentLimit   = 5
	DefaultLowStockLimit = 20
	MaxListLimit         = 100
)

// ClampLimit aplica el valor por defecto si limit <= 0 y acota al máximo.
func ClampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
