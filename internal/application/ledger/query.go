package ledger

import (
	"context"
	"errors"

	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

// errStopScan corta un scan cuando la página está completa.
var errStopScan = errors.New("stop scan")

// ListTransactions lista transacciones de un kind con la base clampeada al
// alcance del actor. Orden ascendente por commit sequence (el orden del log).
func (uc *RecordUseCase) ListTransactions(ctx context.Context, actor Actor, kind string, req dto.ListTransactionsRequest) ([]*dto.TransactionResponse, error) {
	effectiveBase, err := ScopeBase(actor.Role, actor.BaseID, req.Base)
	if err != nil {
		return nil, err
	}
	from, err := parseOptionalDate(req.FromDate)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(req.ToDate)
	if err != nil {
		return nil, err
	}
	req.DefaultPage()

	filter := repository.ScanFilter{
		BaseID:      effectiveBase,
		EquipmentID: req.Equipment,
		Kind:        kind,
		From:        from,
		To:          to,
	}

	list := make([]*dto.TransactionResponse, 0, req.Limit)
	skipped := 0
	err = uc.txRepo.Scan(ctx, filter, func(t *entity.Transaction) error {
		if skipped < req.Offset {
			skipped++
			return nil
		}
		if len(list) >= req.Limit {
			return errStopScan
		}
		list = append(list, toTransactionResponse(t))
		return nil
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return nil, err
	}
	return list, nil
}
