// Package ledger contiene el motor del ledger de activos: el agregador de
// saldos, el facade de consulta del dashboard y la ruta de escritura de
// transacciones. Todo el cálculo es un pliegue puro sobre el log append-only;
// no existe estado derivado persistente.
package ledger

import (
	"context"
	"math"
	"time"

	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
)

// dateLayout formato de fecha de negocio en la API (el que envía el front).
const dateLayout = "2006-01-02"

// Aggregator pliega el stream de transacciones en las métricas del dashboard.
// Lectura pura: no tiene efectos y rehacer el cómputo con los mismos
// argumentos sobre el mismo estado del store da el mismo resultado.
type Aggregator struct {
	txRepo repository.TransactionRepository
}

// NewAggregator construye el agregador sobre el puerto del store.
func NewAggregator(txRepo repository.TransactionRepository) *Aggregator {
	return &Aggregator{txRepo: txRepo}
}

// Compute calcula el snapshot para (baseID, equipmentID, [from, to]).
// baseID/equipmentID vacíos significan "todos" en esa dimensión.
//
// Un solo scan (fecha de negocio ≤ to) y un solo dispatch por kind:
// lo anterior a from alimenta el saldo de apertura, lo demás los totales de
// la ventana. Signos de apertura: +compra, +transfer entrante, −transfer
// saliente, −asignación, −gasto. La asignación resta del saldo aunque el
// stock siga en la base: está comprometido, no disponible, y por eso además
// se reporta como métrica propia.
//
// Acumulación int64 con chequeo de desbordamiento: ErrOverflow, nunca wrap
// silencioso. from > to falla con ErrInvalidRange antes de tocar el store.
func (a *Aggregator) Compute(ctx context.Context, baseID, equipmentID string, from, to time.Time) (*dto.MetricsSnapshotDTO, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidRange
	}

	end := to
	filter := repository.ScanFilter{
		BaseID:      baseID,
		EquipmentID: equipmentID,
		To:          &end,
	}

	var opening, purchases, transfersIn, transfersOut, assigned, expended int64

	err := a.txRepo.Scan(ctx, filter, func(t *entity.Transaction) error {
		inWindow := !t.Date.Before(from)
		switch t.Kind {
		case entity.KindPurchase:
			if inWindow {
				return addTo(&purchases, t.Quantity)
			}
			return addTo(&opening, t.Quantity)

		case entity.KindTransfer:
			// Con base concreta solo cuenta el lado que la toca; sin base
			// ("todas") cuentan ambos lados y se anulan en el saldo.
			if baseID == "" || t.ToBaseID == baseID {
				if inWindow {
					if err := addTo(&transfersIn, t.Quantity); err != nil {
						return err
					}
				} else if err := addTo(&opening, t.Quantity); err != nil {
					return err
				}
			}
			if baseID == "" || t.FromBaseID == baseID {
				if inWindow {
					return addTo(&transfersOut, t.Quantity)
				}
				return addTo(&opening, -t.Quantity)
			}
			return nil

		case entity.KindAssignment:
			if inWindow {
				return addTo(&assigned, t.Quantity)
			}
			return addTo(&opening, -t.Quantity)

		case entity.KindExpenditure:
			if inWindow {
				return addTo(&expended, t.Quantity)
			}
			return addTo(&opening, -t.Quantity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	net, err := sumChecked(purchases, transfersIn, -transfersOut)
	if err != nil {
		return nil, err
	}
	closing, err := sumChecked(opening, net, -assigned, -expended)
	if err != nil {
		return nil, err
	}

	return &dto.MetricsSnapshotDTO{
		Base:           baseID,
		Equipment:      equipmentID,
		FromDate:       from.Format(dateLayout),
		ToDate:         to.Format(dateLayout),
		OpeningBalance: opening,
		Purchases:      purchases,
		TransfersIn:    transfersIn,
		TransfersOut:   transfersOut,
		NetMovement:    net,
		Assignments:    assigned,
		Expended:       expended,
		ClosingBalance: closing,
	}, nil
}

// addTo acumula delta sobre *acc con chequeo de desbordamiento.
func addTo(acc *int64, delta int64) error {
	v, err := addChecked(*acc, delta)
	if err != nil {
		return err
	}
	*acc = v
	return nil
}

// addChecked suma dos int64 y falla con ErrOverflow si el resultado no es representable.
func addChecked(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, domain.ErrOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, domain.ErrOverflow
	}
	return a + b, nil
}

// sumChecked suma una serie de términos con chequeo de desbordamiento.
func sumChecked(terms ...int64) (int64, error) {
	var total int64
	for _, t := range terms {
		v, err := addChecked(total, t)
		if err != nil {
			return 0, err
		}
		total = v
	}
	return total, nil
}
