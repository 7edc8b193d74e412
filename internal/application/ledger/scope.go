package ledger

import (
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// ScopeBase aplica la política de alcance por rol y devuelve la base efectiva
// sobre la que opera la petición.
//
//   - Admin: la base solicitada pasa tal cual; vacía significa "todas las bases".
//   - Cualquier otro rol: queda clampeado a su base propia, ignorando en
//     silencio lo que traiga la petición. El front deshabilita el campo, pero
//     una petición puede saltarse la UI, así que el backend lo impone siempre.
//
// Un rol no-Admin sin base asignada no puede operar: ErrForbidden.
func ScopeBase(role, homeBaseID, requestedBaseID string) (string, error) {
	if role == entity.RoleAdmin {
		return requestedBaseID, nil
	}
	if homeBaseID == "" {
		return "", domain.ErrForbidden
	}
	return homeBaseID, nil
}
