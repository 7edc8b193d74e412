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
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
	"github.com/tu-usuario/asset-ledger/internal/infrastructure/memory"
)

// countingTxRepo envuelve el store contando los scans: los tests de
// validación comprueban que una petición mal formada no llega al store.
type countingTxRepo struct {
	inner repository.TransactionRepository
	scans int
}

func (r *countingTxRepo) Append(ctx context.Context, tx *entity.Transaction) (string, error) {
	return r.inner.Append(ctx, tx)
}

func (r *countingTxRepo) Scan(ctx context.Context, filter repository.ScanFilter, fn func(*entity.Transaction) error) error {
	r.scans++
	return r.inner.Scan(ctx, filter, fn)
}

// baseLookupSpy registra los IDs consultados para verificar el orden
// clamp → lookup.
type baseLookupSpy struct {
	inner   repository.BaseRepository
	lookups []string
}

func (s *baseLookupSpy) Create(ctx context.Context, b *entity.Base) error {
	return s.inner.Create(ctx, b)
}

func (s *baseLookupSpy) GetByID(ctx context.Context, id string) (*entity.Base, error) {
	s.lookups = append(s.lookups, id)
	return s.inner.GetByID(ctx, id)
}

func (s *baseLookupSpy) List(ctx context.Context) ([]*entity.Base, error) {
	return s.inner.List(ctx)
}

func newFacadeFixture(t *testing.T) (*ledger.MetricsUseCase, *countingTxRepo, *baseLookupSpy, *memory.TransactionStore) {
	t.Helper()
	store := memory.NewTransactionStore()
	txRepo := &countingTxRepo{inner: store}

	baseStore := memory.NewBaseStore()
	require.NoError(t, baseStore.Create(context.Background(), &entity.Base{ID: base1, Name: "Base Norte", Location: "Norte", CreatedAt: time.Now()}))
	require.NoError(t, baseStore.Create(context.Background(), &entity.Base{ID: base2, Name: "Base Sur", Location: "Sur", CreatedAt: time.Now()}))
	baseRepo := &baseLookupSpy{inner: baseStore}

	equipmentStore := memory.NewEquipmentStore()
	require.NoError(t, equipmentStore.Create(context.Background(), &entity.Equipment{ID: rifle, Name: "Fusil estándar", Type: "weapon", CreatedAt: time.Now()}))

	uc := ledger.NewMetricsUseCase(ledger.NewAggregator(txRepo), baseRepo, equipmentStore)
	return uc, txRepo, baseRepo, store
}

func TestGetMetrics_ResuelveNombres(t *testing.T) {
	uc, _, _, store := newFacadeFixture(t)
	seed(t, store, purchase(base1, rifle, 100, "2025-03-10"))

	snap, err := uc.GetMetrics(context.Background(), entity.RoleAdmin, "", dto.MetricsRequest{
		Base: base1, Equipment: rifle, FromDate: "2025-03-01", ToDate: "2025-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "Base Norte", snap.BaseName)
	assert.Equal(t, "Fusil estándar", snap.EquipmentName)
	assert.Equal(t, int64(100), snap.ClosingBalance)
}

// Un rango invertido se rechaza antes de tocar el store: cero scans.
func TestGetMetrics_RangoInvertido_NoTocaElStore(t *testing.T) {
	uc, txRepo, _, _ := newFacadeFixture(t)

	_, err := uc.GetMetrics(context.Background(), entity.RoleAdmin, "", dto.MetricsRequest{
		Base: base1, FromDate: "2025-03-31", ToDate: "2025-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Zero(t, txRepo.scans, "un rango inválido no debe disparar ningún scan")
}

// Fechas malformadas u omitidas son error de entrada, no pánico ni scan.
func TestGetMetrics_FechasInvalidas(t *testing.T) {
	uc, txRepo, _, _ := newFacadeFixture(t)

	for _, req := range []dto.MetricsRequest{
		{Base: base1, FromDate: "10-03-2025", ToDate: "2025-03-31"},
		{Base: base1, FromDate: "2025-03-01", ToDate: "no-es-fecha"},
		{Base: base1, FromDate: "", ToDate: "2025-03-31"},
		{Base: base1, FromDate: "2025-03-01", ToDate: ""},
	} {
		_, err := uc.GetMetrics(context.Background(), entity.RoleAdmin, "", req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, txRepo.scans)
}

// El clamp ocurre antes de los lookups: un Commander pidiendo base ajena
// solo consulta su propia base, nunca la pedida.
func TestGetMetrics_ClampAntesDelLookup(t *testing.T) {
	uc, _, baseSpy, store := newFacadeFixture(t)
	seed(t, store, purchase(base1, rifle, 40, "2025-03-10"))
	seed(t, store, purchase(base2, rifle, 999, "2025-03-10"))

	snap, err := uc.GetMetrics(context.Background(), entity.RoleCommander, base1, dto.MetricsRequest{
		Base: base2, FromDate: "2025-03-01", ToDate: "2025-03-31",
	})
	require.NoError(t, err)

	assert.Equal(t, base1, snap.Base, "la base efectiva debe ser la del token")
	assert.Equal(t, int64(40), snap.ClosingBalance, "solo datos de la base propia")
	assert.NotContains(t, baseSpy.lookups, base2, "la base ajena no debe consultarse")
}

// Admin sin base pedida consulta todas las bases sin resolver nombre alguno.
func TestGetMetrics_AdminTodasLasBases(t *testing.T) {
	uc, _, _, store := newFacadeFixture(t)
	seed(t, store, purchase(base1, rifle, 40, "2025-03-10"))
	seed(t, store, purchase(base2, rifle, 60, "2025-03-10"))

	snap, err := uc.GetMetrics(context.Background(), entity.RoleAdmin, "", dto.MetricsRequest{
		FromDate: "2025-03-01", ToDate: "2025-03-31",
	})
	require.NoError(t, err)

	assert.Empty(t, snap.Base)
	assert.Empty(t, snap.BaseName)
	assert.Equal(t, int64(100), snap.ClosingBalance)
}

// Un rol sin base asignada no tiene alcance de lectura.
func TestGetMetrics_RolSinBase_Forbidden(t *testing.T) {
	uc, _, _, _ := newFacadeFixture(t)

	_, err := uc.GetMetrics(context.Background(), entity.RoleLogistics, "", dto.MetricsRequest{
		FromDate: "2025-03-01", ToDate: "2025-03-31",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Base efectiva inexistente: NotFound al resolver el nombre.
func TestGetMetrics_BaseInexistente(t *testing.T) {
	uc, _, _, _ := newFacadeFixture(t)

	_, err := uc.GetMetrics(context.Background(), entity.RoleAdmin, "", dto.MetricsRequest{
		Base: "base-fantasma", FromDate: "2025-03-01", ToDate: "2025-03-31",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Equipo inexistente: NotFound aunque la base sí exista.
func TestGetMetrics_EquipoInexistente(t *testing.T) {
	uc, _, _, _ := newFacadeFixture(t)

	_, err := uc.GetMetrics(context.Background(), entity.RoleAdmin, "", dto.MetricsRequest{
		Base: base1, Equipment: "eq-fantasma", FromDate: "2025-03-01", ToDate: "2025-03-31",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
