package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// Constraints con manejo específico.
const (
	constraintOrdersIdempotency = "uq_orders_idempotency"
)

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeUniqueViolation
}

// isUniqueViolationOn igual que isUniqueViolation pero restringido a un constraint.
func isUniqueViolationOn(err error, constraint string) bool {
	code, name := pgErrorCode(err)
	return code == codeUniqueViolation && name == constraint
}

func isForeignKeyViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeForeignKeyViolation
}

func isCheckViolation(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeCheckViolation
}

// isOutOfRange valor fuera del rango del tipo de la columna (22003), ej. INTEGER desbordado.
func isOutOfRange(err error) bool {
	code, _ := pgErrorCode(err)
	return code == codeNumericOutOfRange
}
