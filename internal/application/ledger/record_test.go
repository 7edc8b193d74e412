package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/application/ledger"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/infrastructure/memory"
	"github.com/tu-usuario/asset-ledger/pkg/logger"
)

// capturingPublisher guarda los eventos publicados para inspección.
type capturingPublisher struct {
	events []*entity.AuditEvent
}

func (p *capturingPublisher) Publish(_ context.Context, e *entity.AuditEvent) error {
	p.events = append(p.events, e)
	return nil
}

type recordFixture struct {
	uc        *ledger.RecordUseCase
	store     *memory.TransactionStore
	audit     *memory.AuditStore
	publisher *capturingPublisher
}

func newRecordFixture(t *testing.T) *recordFixture {
	t.Helper()
	store := memory.NewTransactionStore()
	auditStore := memory.NewAuditStore()
	publisher := &capturingPublisher{}

	baseStore := memory.NewBaseStore()
	require.NoError(t, baseStore.Create(context.Background(), &entity.Base{ID: base1, Name: "Base Norte", Location: "Norte", CreatedAt: time.Now()}))
	require.NoError(t, baseStore.Create(context.Background(), &entity.Base{ID: base2, Name: "Base Sur", Location: "Sur", CreatedAt: time.Now()}))

	equipmentStore := memory.NewEquipmentStore()
	require.NoError(t, equipmentStore.Create(context.Background(), &entity.Equipment{ID: rifle, Name: "Fusil estándar", Type: "weapon", CreatedAt: time.Now()}))

	uc := ledger.NewRecordUseCase(store, baseStore, equipmentStore, auditStore, publisher, logger.Nop())
	return &recordFixture{uc: uc, store: store, audit: auditStore, publisher: publisher}
}

func adminActor() ledger.Actor {
	return ledger.Actor{UserID: "user-admin", Role: entity.RoleAdmin, BaseID: ""}
}

func logisticsActor(base string) ledger.Actor {
	return ledger.Actor{UserID: "user-log", Role: entity.RoleLogistics, BaseID: base}
}

func TestRecordPurchase_Confirmada(t *testing.T) {
	f := newRecordFixture(t)

	resp, err := f.uc.RecordPurchase(context.Background(), logisticsActor(base1), dto.CreatePurchaseRequest{
		Base: base1, Equipment: rifle, Quantity: 100, PurchaseDate: "2025-03-10", Supplier: "ACME Defense",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.KindPurchase, resp.Kind)
	assert.Equal(t, base1, resp.Base)
	assert.Equal(t, int64(100), resp.Quantity)
	assert.Equal(t, "2025-03-10", resp.Date)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, int64(1), resp.CommitSeq, "la primera transacción toma el seq 1")
	assert.Equal(t, "user-log", resp.CreatedBy)
}

// La base de una compra de no-Admin queda clampeada a la suya aunque pida otra.
func TestRecordPurchase_BaseAjenaClampeada(t *testing.T) {
	f := newRecordFixture(t)

	resp, err := f.uc.RecordPurchase(context.Background(), logisticsActor(base1), dto.CreatePurchaseRequest{
		Base: base2, Equipment: rifle, Quantity: 10, PurchaseDate: "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, base1, resp.Base)
}

func TestRecordPurchase_Validaciones(t *testing.T) {
	f := newRecordFixture(t)

	cases := []struct {
		name    string
		req     dto.CreatePurchaseRequest
		wantErr error
	}{
		{"cantidad cero", dto.CreatePurchaseRequest{Base: base1, Equipment: rifle, Quantity: 0, PurchaseDate: "2025-03-10"}, domain.ErrInvalidInput},
		{"cantidad negativa", dto.CreatePurchaseRequest{Base: base1, Equipment: rifle, Quantity: -5, PurchaseDate: "2025-03-10"}, domain.ErrInvalidInput},
		{"fecha malformada", dto.CreatePurchaseRequest{Base: base1, Equipment: rifle, Quantity: 5, PurchaseDate: "10/03/2025"}, domain.ErrInvalidInput},
		{"sin equipo", dto.CreatePurchaseRequest{Base: base1, Quantity: 5, PurchaseDate: "2025-03-10"}, domain.ErrInvalidInput},
		{"equipo inexistente", dto.CreatePurchaseRequest{Base: base1, Equipment: "eq-fantasma", Quantity: 5, PurchaseDate: "2025-03-10"}, domain.ErrNotFound},
		{"base inexistente (admin)", dto.CreatePurchaseRequest{Base: "base-fantasma", Equipment: rifle, Quantity: 5, PurchaseDate: "2025-03-10"}, domain.ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actor := adminActor()
			_, err := f.uc.RecordPurchase(context.Background(), actor, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	assert.Zero(t, f.store.Len(), "ninguna petición inválida debe confirmar transacciones")
}

func TestRecordTransfer_Confirmada(t *testing.T) {
	f := newRecordFixture(t)

	resp, err := f.uc.RecordTransfer(context.Background(), logisticsActor(base1), dto.CreateTransferRequest{
		FromBase: base1, ToBase: base2, Equipment: rifle, Quantity: 30, TransferDate: "2025-03-12",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.KindTransfer, resp.Kind)
	assert.Equal(t, base1, resp.FromBase)
	assert.Equal(t, base2, resp.ToBase)
}

// Origen y destino iguales no es un traslado; se rechaza sin confirmar nada.
func TestRecordTransfer_MismaBaseRechazada(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordTransfer(context.Background(), adminActor(), dto.CreateTransferRequest{
		FromBase: base1, ToBase: base1, Equipment: rifle, Quantity: 30, TransferDate: "2025-03-12",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.store.Len())
}

// Un no-Admin no puede sacar stock de una base ajena: aquí no hay clamp
// silencioso posible, así que el traslado se rechaza.
func TestRecordTransfer_OrigenAjenoForbidden(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordTransfer(context.Background(), logisticsActor(base1), dto.CreateTransferRequest{
		FromBase: base2, ToBase: base1, Equipment: rifle, Quantity: 30, TransferDate: "2025-03-12",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.store.Len())
}

// Con origen vacío el no-Admin traslada desde su propia base.
func TestRecordTransfer_OrigenImplicito(t *testing.T) {
	f := newRecordFixture(t)

	resp, err := f.uc.RecordTransfer(context.Background(), logisticsActor(base1), dto.CreateTransferRequest{
		ToBase: base2, Equipment: rifle, Quantity: 10, TransferDate: "2025-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, base1, resp.FromBase)
}

func TestRecordAssignment_RequierePersonal(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordAssignment(context.Background(), adminActor(), dto.CreateAssignmentRequest{
		Base: base1, Equipment: rifle, Quantity: 5, AssignmentDate: "2025-03-12",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := f.uc.RecordAssignment(context.Background(), adminActor(), dto.CreateAssignmentRequest{
		Base: base1, Equipment: rifle, Personnel: "Sgt. Vega", Quantity: 5, AssignmentDate: "2025-03-12",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sgt. Vega", resp.Personnel)
}

func TestRecordExpenditure_RequiereMotivo(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordExpenditure(context.Background(), adminActor(), dto.CreateExpenditureRequest{
		Base: base1, Equipment: rifle, Quantity: 5, ExpenditureDate: "2025-03-12",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := f.uc.RecordExpenditure(context.Background(), adminActor(), dto.CreateExpenditureRequest{
		Base: base1, Equipment: rifle, Quantity: 5, ExpenditureDate: "2025-03-12", Reason: "ejercicio de tiro",
	})
	require.NoError(t, err)
	assert.Equal(t, "ejercicio de tiro", resp.Reason)
}

// Admin sin base concreta en una escritura: la escritura necesita base.
func TestRecord_AdminSinBaseEsInvalido(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordPurchase(context.Background(), adminActor(), dto.CreatePurchaseRequest{
		Equipment: rifle, Quantity: 5, PurchaseDate: "2025-03-10",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cada append exitoso deja exactamente un evento en la tabla y otro en el broker.
func TestRecord_EmiteAuditoria(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordPurchase(context.Background(), logisticsActor(base1), dto.CreatePurchaseRequest{
		Base: base1, Equipment: rifle, Quantity: 100, PurchaseDate: "2025-03-10",
	})
	require.NoError(t, err)

	events, err := f.audit.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.KindPurchase, events[0].Action)
	assert.Equal(t, "user-log", events[0].Actor)
	assert.Equal(t, base1, events[0].BaseID)
	assert.Equal(t, int64(100), events[0].Quantity)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, events[0].ID, f.publisher.events[0].ID, "tabla y broker reciben el mismo evento")
}

// Las escrituras rechazadas no dejan rastro en la auditoría.
func TestRecord_SinAuditoriaEnRechazo(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordPurchase(context.Background(), logisticsActor(base1), dto.CreatePurchaseRequest{
		Base: base1, Equipment: rifle, Quantity: -1, PurchaseDate: "2025-03-10",
	})
	require.Error(t, err)

	events, err := f.audit.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Empty(t, f.publisher.events)
}

// Sin publisher configurado el append sigue funcionando (broker opcional).
func TestRecord_SinPublisher(t *testing.T) {
	store := memory.NewTransactionStore()
	baseStore := memory.NewBaseStore()
	require.NoError(t, baseStore.Create(context.Background(), &entity.Base{ID: base1, Name: "Base Norte"}))
	equipmentStore := memory.NewEquipmentStore()
	require.NoError(t, equipmentStore.Create(context.Background(), &entity.Equipment{ID: rifle, Name: "Fusil"}))

	uc := ledger.NewRecordUseCase(store, baseStore, equipmentStore, memory.NewAuditStore(), nil, logger.Nop())

	_, err := uc.RecordPurchase(context.Background(), adminActor(), dto.CreatePurchaseRequest{
		Base: base1, Equipment: rifle, Quantity: 10, PurchaseDate: "2025-03-10",
	})
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListTransactions_FiltraPorKindYAlcance(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.uc.RecordPurchase(context.Background(), adminActor(), dto.CreatePurchaseRequest{
		Base: base1, Equipment: rifle, Quantity: 100, PurchaseDate: "2025-03-10",
	})
	require.NoError(t, err)
	_, err = f.uc.RecordPurchase(context.Background(), adminActor(), dto.CreatePurchaseRequest{
		Base: base2, Equipment: rifle, Quantity: 50, PurchaseDate: "2025-03-11",
	})
	require.NoError(t, err)
	_, err = f.uc.RecordExpenditure(context.Background(), adminActor(), dto.CreateExpenditureRequest{
		Base: base1, Equipment: rifle, Quantity: 5, ExpenditureDate: "2025-03-12", Reason: "ejercicio",
	})
	require.NoError(t, err)

	// Logistics de base1 solo ve las compras de su base, pida lo que pida.
	list, err := f.uc.ListTransactions(context.Background(), logisticsActor(base1), entity.KindPurchase, dto.ListTransactionsRequest{Base: base2})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, base1, list[0].Base)
	assert.Equal(t, int64(100), list[0].Quantity)

	// Admin sin base ve todas las compras, en orden de commit.
	all, err := f.uc.ListTransactions(context.Background(), adminActor(), entity.KindPurchase, dto.ListTransactionsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].CommitSeq, all[1].CommitSeq)
}

func TestListTransactions_Paginacion(t *testing.T) {
	f := newRecordFixture(t)

	for i := 0; i < 5; i++ {
		_, err := f.uc.RecordPurchase(context.Background(), adminActor(), dto.CreatePurchaseRequest{
			Base: base1, Equipment: rifle, Quantity: int64(i + 1), PurchaseDate: "2025-03-10",
		})
		require.NoError(t, err)
	}

	page, err := f.uc.ListTransactions(context.Background(), adminActor(), entity.KindPurchase, dto.ListTransactionsRequest{
		PageRequest: dto.PageRequest{Limit: 2, Offset: 2},
	})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].Quantity)
	assert.Equal(t, int64(4), page[1].Quantity)
}

func TestListTransactions_FiltroDeFechas(t *testing.T) {
	f := newRecordFixture(t)

	for _, d := range []string{"2025-03-05", "2025-03-15", "2025-03-25"} {
		_, err := f.uc.RecordPurchase(context.Background(), adminActor(), dto.CreatePurchaseRequest{
			Base: base1, Equipment: rifle, Quantity: 1, PurchaseDate: d,
		})
		require.NoError(t, err)
	}

	list, err := f.uc.ListTransactions(context.Background(), adminActor(), entity.KindPurchase, dto.ListTransactionsRequest{
		FromDate: "2025-03-10", ToDate: "2025-03-20",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-03-15", list[0].Date)
}
