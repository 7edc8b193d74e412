package entity

import "time"

// Kinds de transacción del ledger (conjunto cerrado; el agregador hace
// un solo dispatch sobre Kind al plegar el stream).
const (
	KindPurchase    = "purchase"    // compra: entrada de stock en Base
	KindTransfer    = "transfer"    // traslado entre bases (FromBase → ToBase)
	KindAssignment  = "assignment"  // asignación a personal: reduce stock disponible
	KindExpenditure = "expenditure" // gasto/consumo: reduce stock
)

// Transaction es un registro inmutable del ledger. Una vez confirmado nunca
// se actualiza ni se borra; CommitSeq es la clave de orden autoritativa
// (monótona, asignada por el store) y Date la fecha de negocio del usuario.
//
// Campos por kind:
//   - purchase:    BaseID, EquipmentID, Quantity, Date, Supplier (opcional)
//   - transfer:    FromBaseID, ToBaseID (distintos), EquipmentID, Quantity, Date
//   - assignment:  BaseID, EquipmentID, Personnel, Quantity, Date
//   - expenditure: BaseID, EquipmentID, Quantity, Date, Reason
type Transaction struct {
	ID          string
	Kind        string
	BaseID      string
	FromBaseID  string
	ToBaseID    string
	EquipmentID string
	Quantity    int64 // estrictamente positivo para todos los kinds
	Date        time.Time
	Supplier    string
	Personnel   string
	Reason      string
	CommitSeq   int64
	CreatedAt   time.Time
	CreatedBy   string // UserID
}

// Bases devuelve las bases que la transacción toca (una para purchase,
// assignment y expenditure; origen y destino para transfer).
func (t *Transaction) Bases() []string {
	if t.Kind == KindTransfer {
		return []string{t.FromBaseID, t.ToBaseID}
	}
	return []string{t.BaseID}
}

// Touches indica si la transacción afecta a la base dada.
func (t *Transaction) Touches(baseID string) bool {
	for _, b := range t.Bases() {
		if b == baseID {
			return true
		}
	}
	return false
}
