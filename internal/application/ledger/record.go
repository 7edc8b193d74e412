package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/domain"
	"github.com/tu-usuario/asset-ledger/internal/domain/entity"
	"github.com/tu-usuario/asset-ledger/internal/domain/repository"
	"github.com/tu-usuario/asset-ledger/pkg/logger"
)

// Actor identidad ya verificada del que escribe (extraída del JWT).
type Actor struct {
	UserID string
	Role   string
	BaseID string
}

// RecordUseCase es la ruta de escritura hermana del facade: valida, clampa
// el alcance, resuelve claves foráneas y hace el append. Cada append exitoso
// emite un evento de auditoría best-effort (tabla + broker si hay publisher);
// un fallo de auditoría nunca revierte el append. Las escrituras no se
// reintentan automáticamente para no duplicar transacciones.
type RecordUseCase struct {
	txRepo        repository.TransactionRepository
	baseRepo      repository.BaseRepository
	equipmentRepo repository.EquipmentRepository
	auditRepo     repository.AuditRepository
	publisher     AuditPublisher // opcional; nil si no hay broker configurado
	log           *logger.Logger
}

// NewRecordUseCase construye la ruta de escritura. publisher puede ser nil.
func NewRecordUseCase(
	txRepo repository.TransactionRepository,
	baseRepo repository.BaseRepository,
	equipmentRepo repository.EquipmentRepository,
	auditRepo repository.AuditRepository,
	publisher AuditPublisher,
	log *logger.Logger,
) *RecordUseCase {
	return &RecordUseCase{
		txRepo:        txRepo,
		baseRepo:      baseRepo,
		equipmentRepo: equipmentRepo,
		auditRepo:     auditRepo,
		publisher:     publisher,
		log:           log,
	}
}

// RecordPurchase registra una compra en la base (clampeada para no-Admin).
func (uc *RecordUseCase) RecordPurchase(ctx context.Context, actor Actor, in dto.CreatePurchaseRequest) (*dto.TransactionResponse, error) {
	date, err := parseDate(in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	baseID, err := uc.clampWriteBase(actor, in.Base)
	if err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		Kind:        entity.KindPurchase,
		BaseID:      baseID,
		EquipmentID: in.Equipment,
		Quantity:    in.Quantity,
		Date:        date,
		Supplier:    in.Supplier,
	}
	return uc.append(ctx, actor, tx)
}

// RecordTransfer registra un traslado entre bases. Para no-Admin la base de
// origen debe ser su propia base: un traslado que saca stock de una base
// ajena no puede "clampearse" sin cambiar de significado, así que se rechaza.
func (uc *RecordUseCase) RecordTransfer(ctx context.Context, actor Actor, in dto.CreateTransferRequest) (*dto.TransactionResponse, error) {
	date, err := parseDate(in.TransferDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	fromBase := in.FromBase
	if actor.Role != entity.RoleAdmin {
		if actor.BaseID == "" {
			return nil, domain.ErrForbidden
		}
		if fromBase != "" && fromBase != actor.BaseID {
			return nil, domain.ErrForbidden
		}
		fromBase = actor.BaseID
	}
	if fromBase == "" || in.ToBase == "" {
		return nil, domain.ErrInvalidInput
	}
	if fromBase == in.ToBase {
		return nil, domain.ErrInvalidInput
	}
	tx := &entity.Transaction{
		Kind:        entity.KindTransfer,
		FromBaseID:  fromBase,
		ToBaseID:    in.ToBase,
		EquipmentID: in.Equipment,
		Quantity:    in.Quantity,
		Date:        date,
	}
	return uc.append(ctx, actor, tx)
}

// RecordAssignment registra una asignación de equipo a personal. Decremento
// de una sola vía: no existe flujo de devolución.
func (uc *RecordUseCase) RecordAssignment(ctx context.Context, actor Actor, in dto.CreateAssignmentRequest) (*dto.TransactionResponse, error) {
	date, err := parseDate(in.AssignmentDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Personnel == "" {
		return nil, domain.ErrInvalidInput
	}
	baseID, err := uc.clampWriteBase(actor, in.Base)
	if err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		Kind:        entity.KindAssignment,
		BaseID:      baseID,
		EquipmentID: in.Equipment,
		Quantity:    in.Quantity,
		Date:        date,
		Personnel:   in.Personnel,
	}
	return uc.append(ctx, actor, tx)
}

// RecordExpenditure registra un gasto/consumo de equipo.
func (uc *RecordUseCase) RecordExpenditure(ctx context.Context, actor Actor, in dto.CreateExpenditureRequest) (*dto.TransactionResponse, error) {
	date, err := parseDate(in.ExpenditureDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	baseID, err := uc.clampWriteBase(actor, in.Base)
	if err != nil {
		return nil, err
	}
	tx := &entity.Transaction{
		Kind:        entity.KindExpenditure,
		BaseID:      baseID,
		EquipmentID: in.Equipment,
		Quantity:    in.Quantity,
		Date:        date,
		Reason:      in.Reason,
	}
	return uc.append(ctx, actor, tx)
}

// clampWriteBase aplica la misma política de alcance que las lecturas, con
// la diferencia de que una escritura siempre necesita una base concreta.
func (uc *RecordUseCase) clampWriteBase(actor Actor, requestedBase string) (string, error) {
	baseID, err := ScopeBase(actor.Role, actor.BaseID, requestedBase)
	if err != nil {
		return "", err
	}
	if baseID == "" {
		return "", domain.ErrInvalidInput
	}
	return baseID, nil
}

// append valida los comunes, resuelve FKs, persiste y audita.
func (uc *RecordUseCase) append(ctx context.Context, actor Actor, tx *entity.Transaction) (*dto.TransactionResponse, error) {
	if tx.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if tx.EquipmentID == "" {
		return nil, domain.ErrInvalidInput
	}
	eq, err := uc.equipmentRepo.GetByID(ctx, tx.EquipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	for _, baseID := range tx.Bases() {
		base, err := uc.baseRepo.GetByID(ctx, baseID)
		if err != nil {
			return nil, err
		}
		if base == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	tx.CreatedAt = now
	tx.CreatedBy = actor.UserID

	id, err := uc.txRepo.Append(ctx, tx)
	if err != nil {
		return nil, err
	}
	tx.ID = id

	uc.audit(ctx, actor, tx, eq.Name)

	return toTransactionResponse(tx), nil
}

// audit persiste y publica el evento. Fire-and-forget: los errores se
// registran y se sigue adelante.
func (uc *RecordUseCase) audit(ctx context.Context, actor Actor, tx *entity.Transaction, equipmentName string) {
	baseID := tx.BaseID
	details := fmt.Sprintf("%s x%d de %s", tx.Kind, tx.Quantity, equipmentName)
	if tx.Kind == entity.KindTransfer {
		baseID = tx.FromBaseID
		details = fmt.Sprintf("%s x%d de %s hacia base %s", tx.Kind, tx.Quantity, equipmentName, tx.ToBaseID)
	}
	event := &entity.AuditEvent{
		ID:          uuid.New().String(),
		Action:      tx.Kind,
		Actor:       actor.UserID,
		BaseID:      baseID,
		EquipmentID: tx.EquipmentID,
		Quantity:    tx.Quantity,
		Details:     details,
		Timestamp:   tx.CreatedAt,
	}
	if err := uc.auditRepo.Save(ctx, event); err != nil {
		uc.log.Warn().Err(err).Str("transaction_id", tx.ID).Msg("guardar evento de auditoría")
	}
	if uc.publisher != nil {
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.log.Warn().Err(err).Str("transaction_id", tx.ID).Msg("publicar evento de auditoría")
		}
	}
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:        tx.ID,
		Kind:      tx.Kind,
		Base:      tx.BaseID,
		FromBase:  tx.FromBaseID,
		ToBase:    tx.ToBaseID,
		Equipment: tx.EquipmentID,
		Quantity:  tx.Quantity,
		Date:      tx.Date.Format(dateLayout),
		Supplier:  tx.Supplier,
		Personnel: tx.Personnel,
		Reason:    tx.Reason,
		CommitSeq: tx.CommitSeq,
		CreatedAt: tx.CreatedAt,
		CreatedBy: tx.CreatedBy,
	}
}
