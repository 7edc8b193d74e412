package dto

// MetricsRequest filtros de GET /api/dashboard. Las fechas van en formato
// YYYY-MM-DD. Base y Equipment vacíos significan "todas" en esa dimensión
// (para roles no-Admin la base se sobreescribe en servidor de todos modos).
type MetricsRequest struct {
	Base      string `query:"base"`
	Equipment string `query:"equipment"`
	FromDate  string `query:"fromDate"`
	ToDate    string `query:"toDate"`
}

// MetricsSnapshotDTO es el snapshot derivado que consume el dashboard.
// Se recalcula en cada consulta; nunca se persiste.
//
// Invariante: ClosingBalance = OpeningBalance + NetMovement − Assignments − Expended.
type MetricsSnapshotDTO struct {
	Base          string `json:"base,omitempty"`
	BaseName      string `json:"baseName,omitempty"`
	Equipment     string `json:"equipment,omitempty"`
	EquipmentName string `json:"equipmentName,omitempty"`
	FromDate      string `json:"fromDate"`
	ToDate        string `json:"toDate"`

	OpeningBalance int64 `json:"openingBalance"`
	Purchases      int64 `json:"purchases"`
	TransfersIn    int64 `json:"transfersIn"`
	TransfersOut   int64 `json:"transfersOut"`
	NetMovement    int64 `json:"netMovement"`
	Assignments    int64 `json:"assignments"`
	Expended       int64 `json:"expended"`
	ClosingBalance int64 `json:"closingBalance"`
}
