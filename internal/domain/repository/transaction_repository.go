package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
)

// ScanFilter acota un scan del ledger. Campos vacíos/nil significan "todos".
// BaseID matchea la base de la transacción y, para transfers, también el
// origen y el destino. From/To filtran por fecha de negocio (inclusive).
type ScanFilter struct {
	BaseID      string
	EquipmentID string
	Kind        string
	From        *time.Time
	To          *time.Time
}

// TransactionRepository define el puerto del log append-only de transacciones.
//
// Append asigna un commit sequence monótono y hace visible la transacción de
// forma atómica: un scan nunca observa una escritura parcial, y un scan que
// empieza después de que Append retorne siempre la observa.
//
// Scan recorre las transacciones que matchean el filtro en orden ascendente
// de commit sequence, invocando fn por cada una. Cada llamada empieza de
// cero (restartable). Si fn devuelve error o ctx se cancela, el scan aborta
// y devuelve ese error. No existe mutación in-place: el log solo crece.
type TransactionRepository interface {
	Append(ctx context.Context, tx *entity.Transaction) (string, error)
	Scan(ctx context.Context, filter ScanFilter, fn func(*entity.Transaction) error) error
}
