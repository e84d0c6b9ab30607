package domain

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Actor es la identidad autenticada que ejecuta un caso de uso.
// La provee la capa HTTP a partir del token; el núcleo solo confía en estos campos.
type Actor struct {
	UserID      int64
	FranchiseID int64 // 0 = sin franquicia (acceso a todas)
	Role        string
}

// IsAdmin indica si el actor tiene rol de administrador.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// ResolveFranchise decide sobre qué franquicia opera el actor.
// Un actor ligado a una franquicia solo puede operar sobre ella; requested = 0 significa "la propia"
// (o todas, para actores sin franquicia).
func (a Actor) ResolveFranchise(requested int64) (int64, error) {
	if requested < 0 {
		return 0, NewValidationError("franchiseId", "debe ser positivo")
	}
	if a.FranchiseID == 0 {
		return requested, nil
	}
	if requested != 0 && requested != a.FranchiseID {
		return 0, ErrForbidden
	}
	return a.FranchiseID, nil
}

// CanAccess indica si el actor puede leer o escribir datos de la franquicia dada.
func (a Actor) CanAccess(franchiseID int64) bool {
	return a.FranchiseID == 0 || a.FranchiseID == franchiseID
}
