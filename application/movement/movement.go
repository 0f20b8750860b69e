package movement

import (
	"context"
	"fmt"
	"time"

	"github.com/ecomstack/inventory-service/cmd/config"
	"github.com/ecomstack/inventory-service/constant"
	"github.com/ecomstack/inventory-service/model"
	inventoryrepo "github.com/ecomstack/inventory-service/repository/inventory"
	movementrepo "github.com/ecomstack/inventory-service/repository/movement"
	"github.com/ecomstack/inventory-service/repository/mysqlerr"
	supplierrepo "github.com/ecomstack/inventory-service/repository/supplier"
	txrepo "github.com/ecomstack/inventory-service/repository/tx"
	warehouserepo "github.com/ecomstack/inventory-service/repository/warehouse"
	"github.com/ecomstack/inventory-service/thirdparty/rabbitmq"
	"github.com/ecomstack/inventory-service/utils/errors"
	"github.com/ecomstack/inventory-service/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type MovementApp interface {
	CreateMovement(ctx context.Context, userID uint64, req *model.CreateMovementRequest) (*model.StockMovementEntity, error)
	CompleteMovement(ctx context.Context, movementID uint64) (*model.StockMovementEntity, error)
	CancelMovement(ctx context.Context, movementID uint64) (*model.StockMovementEntity, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) (*model.MovementListResponse, error)
	GetMovement(ctx context.Context, movementID uint64) (*model.MovementDetail, error)
}

type movementAppImpl struct {
	config        *config.Config
	txRepo        txrepo.TxRepository
	movementRepo  movementrepo.MovementRepository
	inventoryRepo inventoryrepo.InventoryRepository
	warehouseRepo warehouserepo.WarehouseRepository
	supplierRepo  supplierrepo.SupplierRepository
	publisher     *rabbitmq.Publisher
}

func NewMovementApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	movementRepo movementrepo.MovementRepository,
	inventoryRepo inventoryrepo.InventoryRepository,
	warehouseRepo warehouserepo.WarehouseRepository,
	supplierRepo supplierrepo.SupplierRepository,
	publisher *rabbitmq.Publisher,
) MovementApp {
	return &movementAppImpl{
		config:        config,
		txRepo:        txRepo,
		movementRepo:  movementRepo,
		inventoryRepo: inventoryRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		publisher:     publisher,
	}
}

// CreateMovement validates the request and persists a PENDING movement with its
// items. Nothing touches the ledger yet; stock only changes on complete.
// Validation failures happen before any insert, so no partial movement exists.
func (s *movementAppImpl) CreateMovement(ctx context.Context, userID uint64, req *model.CreateMovementRequest) (*model.StockMovementEntity, error) {
	movType := constant.MovementType(req.Type)

	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	switch movType {
	case constant.MovementTypeImport:
		if req.SupplierID == nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		supplier, err := s.supplierRepo.GetByID(ctx, *req.SupplierID)
		if err != nil {
			logger.Error("[CreateMovement] get supplier failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if supplier == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	case constant.MovementTypeExport:
		// no extra references
	case constant.MovementTypeTransferOut:
		if req.ToWarehouseID == nil || *req.ToWarehouseID == req.WarehouseID {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		toWarehouse, err := s.warehouseRepo.GetByID(ctx, *req.ToWarehouseID)
		if err != nil {
			logger.Error("[CreateMovement] get destination warehouse failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if toWarehouse == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, req.WarehouseID)
	if err != nil {
		logger.Error("[CreateMovement] get warehouse failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if warehouse == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	year := time.Now().Year()
	maxAttempts := s.config.Movement.CodeMaxRetries
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	// Codes come from an atomic per-(type, year) counter, so a collision means a
	// competing instance won the same sequence; retry with a fresh one, bounded.
	for attempt := 0; attempt < maxAttempts; attempt++ {
		seq, err := s.movementRepo.NextSequence(ctx, req.Type, year)
		if err != nil {
			logger.Error("[CreateMovement] next sequence failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		movement := &model.StockMovementEntity{
			Code:          fmt.Sprintf("%s-%d-%04d", constant.MovementCodePrefix[movType], year, seq),
			Type:          movType,
			WarehouseID:   req.WarehouseID,
			ToWarehouseID: req.ToWarehouseID,
			SupplierID:    req.SupplierID,
			Status:        constant.MovementStatusPending,
			Note:          req.Note,
			CreatedBy:     userID,
			CreatedAt:     time.Now(),
		}

		duplicate, err := s.insertMovement(ctx, movement, req.Items)
		if err != nil {
			return nil, err
		}
		if duplicate {
			logger.Warn("[CreateMovement] movement code collision, retrying", zap.String("code", movement.Code))
			continue
		}
		return movement, nil
	}

	return nil, errors.SetCustomError(constant.ErrConcurrencyConflict)
}

// insertMovement runs one insert attempt in its own transaction. Returns
// duplicate=true when the generated code already exists so the caller can retry.
func (s *movementAppImpl) insertMovement(ctx context.Context, movement *model.StockMovementEntity, items []model.MovementItemRequest) (bool, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateMovement] begin tx failed", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.movementRepo.InsertMovementTx(ctx, tx, movement)
	if err != nil {
		if mysqlerr.IsDuplicateEntry(err) {
			return true, nil
		}
		logger.Error("[CreateMovement] insert movement failed", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.movementRepo.InsertMovementItemsTx(ctx, tx, id, items); err != nil {
		logger.Error("[CreateMovement] insert items failed", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateMovement] commit tx failed", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	movement.ID = id
	return false, nil
}

// CompleteMovement posts every line item against the ledger and transitions the
// movement to COMPLETED, all inside one transaction. If any adjustment would drive
// a quantity negative the whole transaction rolls back and the movement stays
// PENDING; no partial posting is ever observable.
func (s *movementAppImpl) CompleteMovement(ctx context.Context, movementID uint64) (*model.StockMovementEntity, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CompleteMovement] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	movement, err := s.movementRepo.GetMovementForUpdateTx(ctx, tx, movementID)
	if err != nil {
		if mysqlerr.IsLockContention(err) {
			return nil, errors.SetCustomError(constant.ErrConcurrencyConflict)
		}
		logger.Error("[CompleteMovement] get movement failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if movement == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if movement.Status != constant.MovementStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidMovementStatus)
	}

	items, err := s.movementRepo.GetItemsTx(ctx, tx, movementID)
	if err != nil {
		logger.Error("[CompleteMovement] get items failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var totalAmount float64
	for _, it := range items {
		if err := s.applyItem(ctx, tx, movement, &it); err != nil {
			if err.Error() == errors.SetCustomError(constant.ErrInsufficientStock).Error() {
				return nil, errors.SetCustomError(constant.ErrInsufficientStock)
			}
			// Row-lock wait timeout or deadlock: nothing was applied, caller retries.
			if mysqlerr.IsLockContention(err) {
				return nil, errors.SetCustomError(constant.ErrConcurrencyConflict)
			}
			logger.Error("[CompleteMovement] adjust stock failed",
				zap.Uint64("movement_id", movementID),
				zap.Uint64("variant_id", it.VariantID),
				zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if it.UnitPrice != nil {
			totalAmount += float64(it.Quantity) * *it.UnitPrice
		}
	}

	now := time.Now()
	affected, err := s.movementRepo.CompleteMovementTx(ctx, tx, movementID, totalAmount, now)
	if err != nil {
		if mysqlerr.IsLockContention(err) {
			return nil, errors.SetCustomError(constant.ErrConcurrencyConflict)
		}
		logger.Error("[CompleteMovement] update status failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidMovementStatus)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CompleteMovement] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	movement.Status = constant.MovementStatusCompleted
	movement.TotalAmount = totalAmount
	movement.CompletedAt = &now

	// Publish completion event after commit; a publish failure must not undo the
	// movement, so it is only logged.
	if s.publisher != nil {
		msg := rabbitmq.MovementCompletedMessage{
			MovementID:    movement.ID,
			Code:          movement.Code,
			Type:          string(movement.Type),
			WarehouseID:   movement.WarehouseID,
			ToWarehouseID: movement.ToWarehouseID,
			CompletedAt:   now,
		}
		if err := s.publisher.PublishMovementCompleted(msg); err != nil {
			logger.Error("[CompleteMovement] publish movement completed", zap.String("error", err.Error()))
		}
	}

	return movement, nil
}

// applyItem posts one line item's ledger deltas. A transfer debits the source and
// credits the destination in the same transaction, so the variant's total across
// both warehouses is conserved.
func (s *movementAppImpl) applyItem(ctx context.Context, tx *sqlx.Tx, movement *model.StockMovementEntity, it *model.StockMovementItemEntity) error {
	switch movement.Type {
	case constant.MovementTypeImport:
		_, err := s.inventoryRepo.AdjustStockTx(ctx, tx, movement.WarehouseID, it.VariantID, it.Quantity)
		return err
	case constant.MovementTypeExport:
		_, err := s.inventoryRepo.AdjustStockTx(ctx, tx, movement.WarehouseID, it.VariantID, -it.Quantity)
		return err
	case constant.MovementTypeTransferOut:
		if _, err := s.inventoryRepo.AdjustStockTx(ctx, tx, movement.WarehouseID, it.VariantID, -it.Quantity); err != nil {
			return err
		}
		_, err := s.inventoryRepo.AdjustStockTx(ctx, tx, *movement.ToWarehouseID, it.VariantID, it.Quantity)
		return err
	}
	return errors.SetCustomError(constant.ErrInvalidRequest)
}

// CancelMovement is a compare-and-set on status; it never touches the ledger.
func (s *movementAppImpl) CancelMovement(ctx context.Context, movementID uint64) (*model.StockMovementEntity, error) {
	affected, err := s.movementRepo.CancelMovement(ctx, movementID)
	if err != nil {
		if mysqlerr.IsLockContention(err) {
			return nil, errors.SetCustomError(constant.ErrConcurrencyConflict)
		}
		logger.Error("[CancelMovement] cancel failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		movement, err := s.movementRepo.GetByID(ctx, movementID)
		if err != nil {
			logger.Error("[CancelMovement] get movement failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if movement == nil {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		return nil, errors.SetCustomError(constant.ErrInvalidMovementStatus)
	}

	movement, err := s.movementRepo.GetByID(ctx, movementID)
	if err != nil {
		logger.Error("[CancelMovement] get movement failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movement, nil
}

func (s *movementAppImpl) ListMovements(ctx context.Context, filter *model.MovementFilter) (*model.MovementListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	items, total, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListMovements] error movementRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.MovementListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.Limit,
	}, nil
}

func (s *movementAppImpl) GetMovement(ctx context.Context, movementID uint64) (*model.MovementDetail, error) {
	movement, err := s.movementRepo.GetByID(ctx, movementID)
	if err != nil {
		logger.Error("[GetMovement] get movement failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if movement == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, err := s.movementRepo.GetItems(ctx, movementID)
	if err != nil {
		logger.Error("[GetMovement] get items failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.MovementDetail{
		StockMovementEntity: *movement,
		Items:               items,
	}, nil
}
