package dto

import "time"

// CreatePurchaseRequest body de POST /api/purchases.
type CreatePurchaseRequest struct {
	Base         string `json:"base"`
	Equipment    string `json:"equipment"`
	Quantity     int64  `json:"quantity"`
	PurchaseDate string `json:"purchaseDate"` // YYYY-MM-DD
	Supplier     string `json:"supplier"`
}

// CreateTransferRequest body de POST /api/transfers.
type CreateTransferRequest struct {
	FromBase     string `json:"fromBase"`
	ToBase       string `json:"toBase"`
	Equipment    string `json:"equipment"`
	Quantity     int64  `json:"quantity"`
	TransferDate string `json:"transferDate"`
}

// CreateAssignmentRequest body de POST /api/assignments.
type CreateAssignmentRequest struct {
	Base           string `json:"base"`
	Equipment      string `json:"equipment"`
	Personnel      string `json:"personnel"`
	Quantity       int64  `json:"quantity"`
	AssignmentDate string `json:"assignmentDate"`
}

// CreateExpenditureRequest body de POST /api/expenditures.
type CreateExpenditureRequest struct {
	Base            string `json:"base"`
	Equipment       string `json:"equipment"`
	Quantity        int64  `json:"quantity"`
	ExpenditureDate string `json:"expenditureDate"`
	Reason          string `json:"reason"`
}

// TransactionResponse representación de una transacción confirmada del ledger.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Base        string    `json:"base,omitempty"`
	FromBase    string    `json:"fromBase,omitempty"`
	ToBase      string    `json:"toBase,omitempty"`
	Equipment   string    `json:"equipment"`
	Quantity    int64     `json:"quantity"`
	Date        string    `json:"date"`
	Supplier    string    `json:"supplier,omitempty"`
	Personnel   string    `json:"personnel,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	CommitSeq   int64     `json:"commitSeq"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

// ListTransactionsRequest filtros de los listados GET por kind.
type ListTransactionsRequest struct {
	Base      string `query:"base"`
	Equipment string `query:"equipment"`
	FromDate  string `query:"fromDate"`
	ToDate    string `query:"toDate"`
	PageRequest
}
